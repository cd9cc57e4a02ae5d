package models

import (
	"fmt"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	position int
	summary  string
}

func newTestContact(t *testing.T, first, last, mobile string) *Contact {
	t.Helper()

	contact := NewContact()
	contact.SetName(first, last)
	require.Nil(t, contact.SetMobileNumber(mobile))

	return contact
}

func collect(book *ContactBook) ([]entry, bool) {
	seq, ok := book.List()

	entries := []entry{}
	for position, summary := range seq {
		entries = append(entries, entry{position, summary})
	}

	return entries, ok
}

func TestContactBookScenario(t *testing.T) {
	book := NewContactBook()

	_, ok := book.List()
	assert.False(t, ok, "empty book should report no contacts")

	book.Add(newTestContact(t, "Ana", "Ruiz", "612345678"))

	entries, ok := collect(book)
	assert.True(t, ok)
	assert.Equal(t, []entry{{1, "Ana Ruiz - 612345678"}}, entries)
	assert.Equal(t, "1. Ana Ruiz - 612345678", fmt.Sprintf("%d. %s", entries[0].position, entries[0].summary))

	assert.Nil(t, book.Delete(0))

	_, ok = book.List()
	assert.False(t, ok, "book should be empty again after delete")
}

func TestAdd(t *testing.T) {
	book := NewContactBook()
	book.Add(newTestContact(t, "tony", "stark", "111111111"))
	book.Add(newTestContact(t, "spider", "man", "222222222"))

	before, _ := collect(book)

	book.Add(newTestContact(t, "doctor", "strange", "333333333"))

	after, _ := collect(book)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)], "prior entries should keep their order")
	assert.Equal(t, entry{3, "doctor strange - 333333333"}, after[len(after)-1])
}

func TestAddOverCapacityIsAdvisory(t *testing.T) {
	book := NewContactBook(WithCapacityWarning(2))

	assert.False(t, book.Add(NewContact()))
	assert.False(t, book.Add(NewContact()))
	assert.True(t, book.Add(NewContact()), "third contact should trigger the notice")
	assert.True(t, book.Add(NewContact()))
	assert.Equal(t, 4, book.Len(), "contacts should be added regardless of the notice")
}

func TestDefaultCapacityWarning(t *testing.T) {
	book := NewContactBook()
	for i := 0; i < DEFAULT_CAPACITY_WARNING; i++ {
		assert.False(t, book.Add(NewContact()))
	}

	assert.True(t, book.Add(NewContact()))
	assert.Equal(t, DEFAULT_CAPACITY_WARNING+1, book.Len())
}

func TestListIsRestartable(t *testing.T) {
	book := NewContactBook()
	book.Add(newTestContact(t, "tony", "stark", "111111111"))
	book.Add(newTestContact(t, "spider", "man", "222222222"))

	seq, ok := book.List()
	require.True(t, ok)

	for i := 0; i < 2; i++ {
		count := 0
		for range seq {
			count++
		}
		assert.Equal(t, 2, count)
	}

	// stop early
	for position := range seq {
		assert.Equal(t, 1, position)
		break
	}
}

func TestDetailsIndexBounds(t *testing.T) {
	for count := 0; count < 3; count++ {
		book := NewContactBook()
		for i := 0; i < count; i++ {
			book.Add(NewContact())
		}

		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			_, err := book.Details(-1)
			assert.ErrorIs(t, err, ErrInvalidIndex)

			_, err = book.Details(count)
			assert.ErrorIs(t, err, ErrInvalidIndex)
			assert.EqualError(t, err, "Invalid contact index.")
		})
	}
}

func TestDeleteShiftsLaterContacts(t *testing.T) {
	book := NewContactBook()
	book.Add(newTestContact(t, "tony", "stark", "111111111"))
	book.Add(newTestContact(t, "spider", "man", "222222222"))
	book.Add(newTestContact(t, "doctor", "strange", "333333333"))

	expected, err := book.Details(2)
	require.Nil(t, err)

	assert.Nil(t, book.Delete(1))

	actual, err := book.Details(1)
	assert.Nil(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, 2, book.Len())

	assert.ErrorIs(t, book.Delete(2), ErrInvalidIndex)
	assert.ErrorIs(t, book.Delete(-1), ErrInvalidIndex)
	assert.Equal(t, 2, book.Len(), "invalid delete should be a no-op")
}

func TestUpdate(t *testing.T) {
	str := func(s string) *string { return &s }
	birthdate := civil.Date{Year: 1990, Month: 3, Day: 7}

	newBook := func(t *testing.T) *ContactBook {
		book := NewContactBook()

		first := newTestContact(t, "tony", "stark", "111111111")
		first.Company = "stark industries"
		first.Email = "stark@avengers.com"
		first.Birthdate = civil.Date{Year: 1970, Month: 5, Day: 29}
		book.Add(first)
		book.Add(newTestContact(t, "spider", "man", "222222222"))

		return book
	}

	t.Run("Should apply every supplied field", func(t *testing.T) {
		book := newBook(t)
		before, _ := book.Details(1)

		err := book.Update(0, ContactFields{
			FirstName:    str("ana"),
			LastName:     str("ruiz"),
			Company:      str("acme"),
			MobileNumber: str("612345678"),
			Email:        str("ana@acme.com"),
			Birthdate:    &birthdate,
		})
		assert.Nil(t, err)

		details, _ := book.Details(0)
		assert.Equal(t,
			"Name: ana ruiz\nCompany: acme\nMobile: 612345678\nEmail: ana@acme.com\nBirthdate: 07/03/1990", details)

		after, _ := book.Details(1)
		assert.Equal(t, before, after, "other contacts should be untouched")
	})

	t.Run("Should leave fields that are not supplied", func(t *testing.T) {
		book := newBook(t)
		before, _ := book.Details(0)

		assert.Nil(t, book.Update(0, ContactFields{}))

		after, _ := book.Details(0)
		assert.Equal(t, before, after)
	})

	t.Run("Should reject invalid mobile number and keep everything else", func(t *testing.T) {
		book := newBook(t)
		before, _ := book.Details(0)

		err := book.Update(0, ContactFields{MobileNumber: str("12345")})
		assert.ErrorIs(t, err, ErrInvalidMobileNumber)

		after, _ := book.Details(0)
		assert.Equal(t, before, after)
	})

	t.Run("Should still apply fields after an invalid mobile number", func(t *testing.T) {
		book := newBook(t)

		err := book.Update(0, ContactFields{
			FirstName:    str("ana"),
			MobileNumber: str("000000000"),
			Email:        str("ana@acme.com"),
			Birthdate:    &birthdate,
		})
		assert.ErrorIs(t, err, ErrInvalidMobileNumber)

		details, _ := book.Details(0)
		assert.Equal(t,
			"Name: ana stark\nCompany: stark industries\nMobile: 111111111\nEmail: ana@acme.com\nBirthdate: 07/03/1990",
			details)
	})

	t.Run("Should fail for out of range index", func(t *testing.T) {
		book := newBook(t)

		assert.ErrorIs(t, book.Update(2, ContactFields{FirstName: str("ana")}), ErrInvalidIndex)
		assert.ErrorIs(t, book.Update(-1, ContactFields{FirstName: str("ana")}), ErrInvalidIndex)

		entries, _ := collect(book)
		assert.Equal(t, []entry{{1, "tony stark - 111111111"}, {2, "spider man - 222222222"}}, entries)
	})
}

func TestWithDateLayout(t *testing.T) {
	book := NewContactBook(WithDateLayout("2006-01-02"))
	book.Add(&Contact{Birthdate: civil.Date{Year: 2001, Month: 12, Day: 31}})

	details, err := book.Details(0)
	assert.Nil(t, err)
	assert.Contains(t, details, "Birthdate: 2001-12-31")
}
