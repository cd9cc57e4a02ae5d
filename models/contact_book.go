package models

import (
	"iter"
	"slices"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DEFAULT_CAPACITY_WARNING = 20

// ContactBook is an ordered list of contacts addressed by position.
//
// A contact has no identity beyond its current index: after Delete(i) every
// contact past i moves down one place, so an index noted before a delete may
// refer to a different contact afterwards.
type ContactBook struct {
	contacts        []*Contact
	capacityWarning int
	dateLayout      string
	logg            *zap.SugaredLogger
}

// ContactFields holds the values for an update. Nil fields are left as they are.
type ContactFields struct {
	FirstName    *string
	LastName     *string
	Company      *string
	MobileNumber *string
	Email        *string
	Birthdate    *civil.Date
}

type Option func(*ContactBook)

func WithLogger(logg *zap.SugaredLogger) Option {
	return func(book *ContactBook) {
		if logg != nil {
			book.logg = logg
		}
	}
}

// WithCapacityWarning sets the size at which Add starts reporting the advisory notice.
func WithCapacityWarning(n int) Option {
	return func(book *ContactBook) {
		if n > 0 {
			book.capacityWarning = n
		}
	}
}

func WithDateLayout(layout string) Option {
	return func(book *ContactBook) {
		if layout != "" {
			book.dateLayout = layout
		}
	}
}

func NewContactBook(opts ...Option) *ContactBook {
	book := &ContactBook{
		capacityWarning: DEFAULT_CAPACITY_WARNING,
		dateLayout:      DEFAULT_DATE_LAYOUT,
		logg:            zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(book)
	}

	return book
}

func (book *ContactBook) Len() int {
	return len(book.contacts)
}

// CapacityWarning returns the size at which Add reports the advisory notice.
func (book *ContactBook) CapacityWarning() int {
	return book.capacityWarning
}

// Add appends contact to the book. It never refuses a contact; the returned bool
// reports whether the book already held CapacityWarning() or more contacts.
func (book *ContactBook) Add(contact *Contact) bool {
	overCapacity := len(book.contacts) >= book.capacityWarning
	if overCapacity {
		book.logg.Warnf("contact book already has %v or more contacts", book.capacityWarning)
	}

	book.contacts = append(book.contacts, contact)
	book.logg.Debugf("added contact at index %v", len(book.contacts)-1)

	return overCapacity
}

// List returns the 1-based display position and summary of every contact, in order.
// The bool is false when the book is empty.
func (book *ContactBook) List() (iter.Seq2[int, string], bool) {
	if len(book.contacts) == 0 {
		return func(yield func(int, string) bool) {}, false
	}

	return func(yield func(int, string) bool) {
		for i, contact := range book.contacts {
			if !yield(i+1, contact.Summary()) {
				return
			}
		}
	}, true
}

func (book *ContactBook) Details(index int) (string, error) {
	contact, err := book.contactAt(index)
	if err != nil {
		return "", err
	}

	return contact.Details(book.dateLayout), nil
}

// Update applies each supplied field to the contact at index in the order first
// name, last name, company, mobile number, email, birthdate. A rejected mobile
// number leaves that field unchanged and is returned, but the other fields are
// still applied.
func (book *ContactBook) Update(index int, fields ContactFields) error {
	contact, err := book.contactAt(index)
	if err != nil {
		return err
	}

	var validationErr error

	if fields.FirstName != nil {
		contact.FirstName = *fields.FirstName
	}

	if fields.LastName != nil {
		contact.LastName = *fields.LastName
	}

	if fields.Company != nil {
		contact.Company = *fields.Company
	}

	if fields.MobileNumber != nil {
		validationErr = contact.SetMobileNumber(*fields.MobileNumber)
		if validationErr != nil {
			book.logg.Debugf("mobile number for contact at index %v not updated: %v", index, validationErr)
		}
	}

	if fields.Email != nil {
		contact.Email = *fields.Email
	}

	if fields.Birthdate != nil {
		contact.Birthdate = *fields.Birthdate
	}

	book.logg.Debugf("updated contact at index %v", index)

	return validationErr
}

func (book *ContactBook) Delete(index int) error {
	if _, err := book.contactAt(index); err != nil {
		return err
	}

	book.contacts = slices.Delete(book.contacts, index, index+1)
	book.logg.Debugf("deleted contact at index %v", index)

	return nil
}

func (book *ContactBook) contactAt(index int) (*Contact, error) {
	if index < 0 || index >= len(book.contacts) {
		return nil, errors.WithStack(ErrInvalidIndex)
	}

	return book.contacts[index], nil
}
