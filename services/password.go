package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(raw string) (string, error)
	// Compare returns ErrInvalidCredentials when raw does not match hashed.
	Compare(hashed, raw string) error
}

type BcryptHasher struct{ Cost int }

func NewBcryptHasher() *BcryptHasher { return &BcryptHasher{Cost: bcrypt.DefaultCost} }

func (h *BcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Compare(hashed, raw string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return err
}

// PlainHasher stores the raw value. Tests only.
type PlainHasher struct{}

func (PlainHasher) Hash(raw string) (string, error) { return raw, nil }

func (PlainHasher) Compare(hashed, raw string) error {
	if hashed != raw {
		return ErrInvalidCredentials
	}
	return nil
}
