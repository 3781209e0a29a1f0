package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const decoyPassword = "mylogin-decoy-password"

// BcryptHasher implements interfaces.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost  int
	decoy []byte
}

// NewBcryptHasher creates a hasher producing hashes of the given cost.
// The decoy hash used for unknown users is generated with the same cost.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be %d-%d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	decoy, err := bcrypt.GenerateFromPassword([]byte(decoyPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("generate decoy hash: %w", err)
	}
	return &BcryptHasher{cost: cost, decoy: decoy}, nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(hash, password string) (bool, error) {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(h.decoy, []byte(password))
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password hash: %w", err)
	}
}
