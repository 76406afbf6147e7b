package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmptyUserName      = errors.New("user name cannot be empty")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: s}, nil
}

// ReconstructPhoneNumber rehydrates a persisted value without validation.
func ReconstructPhoneNumber(s string) PhoneNumber {
	return PhoneNumber{value: s}
}

func (p PhoneNumber) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyUserName
	}
	return Name{value: s}, nil
}

// ReconstructName rehydrates a persisted value without validation.
func ReconstructName(s string) Name {
	return Name{value: s}
}

func (n Name) Value() string {
	return n.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
