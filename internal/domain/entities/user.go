package entities

import (
	"errors"
	"time"
)

// User is a registered account. Credential holds the bcrypt hash of the
// password; the plaintext never reaches this type.
type User struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Email           string
	Credential      string
	FullName        string
	ProfileImageURL *string
}

// NewUser builds an unpersisted user. FullName is derived from the two name
// parts joined with a single space; ProfileImageURL is always absent at
// registration time.
func NewUser(firstName, lastName, email, credential string) *User {
	now := time.Now()
	return &User{
		CreatedAt:  now,
		UpdatedAt:  now,
		Email:      email,
		Credential: credential,
		FullName:   firstName + " " + lastName,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Credential == "" {
		return errors.New("credential must not be empty")
	}
	if u.FullName == "" {
		return errors.New("full name must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}
