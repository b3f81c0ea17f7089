package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address so that lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
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

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: Password{value: passwordStr}}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
