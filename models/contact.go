package models

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

const DEFAULT_DATE_LAYOUT = "02/01/2006"

type Contact struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Birthdate civil.Date

	mobileNumber string
}

func NewContact() *Contact {
	return &Contact{}
}

// SetName overwrites the first name and, when given, the last name.
func (contact *Contact) SetName(firstName string, lastName ...string) {
	contact.FirstName = firstName
	if len(lastName) > 0 {
		contact.LastName = lastName[0]
	}
}

func (contact *Contact) MobileNumber() string {
	return contact.mobileNumber
}

// SetMobileNumber stores number if it is a non-zero 9-digit number.
// On failure the previous value is kept and ErrInvalidMobileNumber is returned.
func (contact *Contact) SetMobileNumber(number string) error {
	if !isValidMobile(number) {
		return errors.WithStack(ErrInvalidMobileNumber)
	}

	contact.mobileNumber = number
	return nil
}

func (contact *Contact) Summary() string {
	return fmt.Sprintf("%s %s - %s", contact.FirstName, contact.LastName, contact.mobileNumber)
}

func (contact *Contact) Details(dateLayout string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s %s\n", contact.FirstName, contact.LastName)
	fmt.Fprintf(&sb, "Company: %s\n", contact.Company)
	fmt.Fprintf(&sb, "Mobile: %s\n", contact.mobileNumber)
	fmt.Fprintf(&sb, "Email: %s\n", contact.Email)
	fmt.Fprintf(&sb, "Birthdate: %s", formatDate(contact.Birthdate, dateLayout))

	return sb.String()
}

func formatDate(date civil.Date, layout string) string {
	if date == (civil.Date{}) {
		return ""
	}

	if layout == "" {
		layout = DEFAULT_DATE_LAYOUT
	}

	return date.In(time.UTC).Format(layout)
}
