package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/authcorp/strongtypes/strong"
)

const maxNameLength = 100

// validName accepts letters, marks, spaces and the punctuation found in
// personal names.
func validName(v string, limit int) error {
	if strings.TrimSpace(v) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(v) > limit {
		return fmt.Errorf("exceeds %d characters", limit)
	}
	for _, r := range v {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r):
		case r == ' ', r == '-', r == '\'', r == '.':
		default:
			return fmt.Errorf("contains %q", r)
		}
	}
	return nil
}

type firstName struct{}

func (firstName) BrandName() string { return "firstname" }

func (firstName) Validate(v string) error { return validName(v, maxNameLength) }

type lastName struct{}

func (lastName) BrandName() string { return "lastname" }

func (lastName) Validate(v string) error { return validName(v, maxNameLength) }

type fullName struct{}

func (fullName) BrandName() string { return "fullname" }

func (fullName) Validate(v string) error {
	if err := validName(v, 2*maxNameLength+1); err != nil {
		return err
	}
	if !strings.Contains(strings.TrimSpace(v), " ") {
		return errors.New("must contain given and family names")
	}
	return nil
}

type (
	FirstName = strong.String[firstName]
	LastName  = strong.String[lastName]
	FullName  = strong.String[fullName]
)

// NewFirstName trims raw, then validates it.
func NewFirstName(raw string) (FirstName, error) {
	return strong.Create[FirstName](strings.TrimSpace(raw))
}

// NewLastName trims raw, then validates it.
func NewLastName(raw string) (LastName, error) {
	return strong.Create[LastName](strings.TrimSpace(raw))
}

// MustFirstName is NewFirstName that panics on invalid input.
func MustFirstName(raw string) FirstName {
	return must(NewFirstName(raw))
}

// MustLastName is NewLastName that panics on invalid input.
func MustLastName(raw string) LastName {
	return must(NewLastName(raw))
}

// NewFullName joins first and last with a single space.
func NewFullName(first FirstName, last LastName) FullName {
	return strong.NewString[fullName](strings.TrimSpace(first.Value() + " " + last.Value()))
}

// NewFullNameText validates a full name given as one string, collapsing
// runs of spaces.
func NewFullNameText(raw string) (FullName, error) {
	return strong.Create[FullName](strings.Join(strings.Fields(raw), " "))
}

// MustFullName is NewFullName that panics on invalid input.
func MustFullName(raw string) FullName {
	return must(NewFullNameText(raw))
}
