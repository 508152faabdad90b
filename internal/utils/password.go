// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultPasswordHashCost is the bcrypt work factor used when none is configured.
	DefaultPasswordHashCost = 10

	// MaxPasswordBytes is the longest password bcrypt can hash.
	MaxPasswordBytes = 72
)

// HashPassword returns the bcrypt hash of plain using the given cost.
// A cost outside bcrypt's bounds falls back to DefaultPasswordHashCost.
//
// Passwords longer than 72 bytes are rejected by bcrypt.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
//
// A mismatch is (false, nil). An error is returned only when the stored hash
// itself cannot be used.
//
// bcrypt only reads the first MaxPasswordBytes bytes, so a longer plain is a
// mismatch: HashPassword never accepted it.
func VerifyPassword(hash, plain string) (bool, error) {
	if len(plain) > MaxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
