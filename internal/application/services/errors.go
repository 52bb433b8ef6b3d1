package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so a
// caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// TokenIssuanceError means the token pair could not be signed.
type TokenIssuanceError struct {
	Err error
}

func (e *TokenIssuanceError) Error() string {
	return fmt.Sprintf("Token generation error: %v", e.Err)
}

func (e *TokenIssuanceError) Unwrap() error { return e.Err }

// HashingError means the plaintext password could not be hashed.
type HashingError struct {
	Err error
}

func (e *HashingError) Error() string {
	return fmt.Sprintf("Password hashing error: %v", e.Err)
}

func (e *HashingError) Unwrap() error { return e.Err }

// DatabaseError wraps any store failure that is not a duplicate email.
type DatabaseError struct {
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }
