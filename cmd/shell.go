/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Daskott/contactbook/colors"
	"github.com/Daskott/contactbook/models"
	"github.com/pkg/errors"
)

const (
	addChoice = iota + 1
	listChoice
	detailsChoice
	updateChoice
	deleteChoice

	exitChoice = 0
)

const menu = `---- CONTACT BOOK MENU ----
1: Add Contact
2: Show All Contacts
3: Show Contact Details
4: Update Contact
5: Delete Contact
0: Exit
`

// shell runs the interactive menu over a ContactBook.
type shell struct {
	book   *models.ContactBook
	prompt *prompter
	out    io.Writer
}

func newShell(in io.Reader, out io.Writer, book *models.ContactBook) *shell {
	return &shell{
		book:   book,
		prompt: newPrompter(in, out),
		out:    out,
	}
}

// run shows the menu until the user picks exit or the input ends.
func (s *shell) run() error {
	for {
		fmt.Fprint(s.out, colors.Heading(menu))

		answer, err := s.prompt.ask("Enter choice: ")
		if err != nil {
			return endOfInput(s.out, err)
		}
		fmt.Fprintln(s.out)

		choice, convErr := strconv.Atoi(answer)
		if convErr != nil {
			choice = -1
		}

		switch choice {
		case addChoice:
			err = s.addContact()
		case listChoice:
			s.showAllContacts()
		case detailsChoice:
			err = s.showContactDetails()
		case updateChoice:
			err = s.updateContact()
		case deleteChoice:
			err = s.deleteContact()
		case exitChoice:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			s.println(colors.Failure("Invalid choice. Try again."))
		}

		if err != nil {
			return endOfInput(s.out, err)
		}
	}
}

func (s *shell) addContact() error {
	contact := models.NewContact()

	firstName, err := s.prompt.ask("Enter First Name: ")
	if err != nil {
		return err
	}

	lastName, err := s.prompt.ask("Enter Last Name: ")
	if err != nil {
		return err
	}
	contact.SetName(firstName, lastName)

	contact.Company, err = s.prompt.ask("Enter Company: ")
	if err != nil {
		return err
	}

	mobileNumber, err := s.prompt.ask("Enter Mobile Number (9-digit): ")
	if err != nil {
		return err
	}

	if err := contact.SetMobileNumber(mobileNumber); err != nil {
		s.println(colors.Failure(err.Error()))
		return nil
	}

	contact.Email, err = s.prompt.ask("Enter Email: ")
	if err != nil {
		return err
	}

	birthdate, ok, err := s.prompt.askDate("Enter Birthdate (yyyy-mm-dd): ")
	if err != nil {
		return err
	}

	if !ok {
		s.println(colors.Failure("Invalid date! Use yyyy-mm-dd."))
		return nil
	}
	contact.Birthdate = birthdate

	if s.book.Add(contact) {
		fmt.Fprintf(s.out, "%s Contact list already has %v or more contacts.\n",
			colors.WarningLabel, s.book.CapacityWarning())
	}

	s.println(colors.Success("Contact added successfully!"))
	return nil
}

func (s *shell) showAllContacts() {
	contacts, ok := s.book.List()
	if !ok {
		s.println("No contacts available.")
		return
	}

	fmt.Fprintln(s.out, colors.Heading("--- Contact List ---"))
	for position, summary := range contacts {
		fmt.Fprintf(s.out, "%d. %s\n", position, summary)
	}
	fmt.Fprintln(s.out)
}

func (s *shell) showContactDetails() error {
	index, ok, err := s.prompt.askPosition("Enter Contact Number to View: ")
	if err != nil {
		return err
	}

	if !ok {
		s.printIndexError()
		return nil
	}

	details, err := s.book.Details(index)
	if err != nil {
		s.println(colors.Failure(err.Error()))
		return nil
	}

	fmt.Fprintln(s.out, colors.Heading("--- Contact Details ---"))
	s.println(details)
	return nil
}

func (s *shell) updateContact() error {
	index, ok, err := s.prompt.askPosition("Enter Contact Number to Update: ")
	if err != nil {
		return err
	}

	if !ok || index < 0 || index >= s.book.Len() {
		s.printIndexError()
		return nil
	}

	fields := models.ContactFields{}
	questions := []struct {
		question string
		field    **string
	}{
		{"Enter New First Name: ", &fields.FirstName},
		{"Enter New Last Name: ", &fields.LastName},
		{"Enter New Company: ", &fields.Company},
		{"Enter New Mobile Number (9 digits): ", &fields.MobileNumber},
		{"Enter New Email: ", &fields.Email},
	}

	for _, q := range questions {
		answer, err := s.prompt.ask(q.question)
		if err != nil {
			return err
		}
		*q.field = &answer
	}

	birthdate, ok, err := s.prompt.askDate("Enter New Birthdate (yyyy-mm-dd): ")
	if err != nil {
		return err
	}

	if ok {
		fields.Birthdate = &birthdate
	} else {
		fmt.Fprintln(s.out, colors.Failure("Invalid date! Use yyyy-mm-dd. Birthdate not changed."))
	}

	err = s.book.Update(index, fields)
	if errors.Is(err, models.ErrInvalidMobileNumber) {
		fmt.Fprintln(s.out, colors.Failure(err.Error()))
	} else if err != nil {
		s.println(colors.Failure(err.Error()))
		return nil
	}

	s.println(colors.Success("Contact updated successfully!"))
	return nil
}

func (s *shell) deleteContact() error {
	index, ok, err := s.prompt.askPosition("Enter Contact Number to Delete: ")
	if err != nil {
		return err
	}

	if !ok {
		s.printIndexError()
		return nil
	}

	if err := s.book.Delete(index); err != nil {
		s.println(colors.Failure(err.Error()))
		return nil
	}

	s.println(colors.Success("Contact deleted successfully!"))
	return nil
}

func (s *shell) printIndexError() {
	s.println(colors.Failure(models.ErrInvalidIndex.Error()))
}

// println writes msg followed by a blank line.
func (s *shell) println(msg string) {
	fmt.Fprintf(s.out, "%s\n\n", msg)
}

// endOfInput treats an exhausted input as a normal exit.
func endOfInput(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
		return nil
	}

	return err
}
