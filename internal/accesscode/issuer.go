// Package accesscode issues the human-readable codes that serve as the
// sole login credential for a profile.
package accesscode

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrExhausted is returned when no unique code could be found within the
// attempt budget. It signals namespace exhaustion and should page an
// operator; it is never retried automatically.
var ErrExhausted = errors.New("accesscode: attempts exhausted without finding a unique code")

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Issuer generates ADJECTIVE-ANIMAL-NN codes. Codes are credentials, so
// candidates come from crypto/rand rather than a seeded source.
type Issuer struct {
	maxAttempts int
}

// New creates an Issuer with the given attempt budget.
func New(maxAttempts int) *Issuer {
	if maxAttempts <= 0 {
		maxAttempts = 100
	}
	return &Issuer{maxAttempts: maxAttempts}
}

// Issue generates a code not yet present according to exists. A
// collision is never returned: after maxAttempts the call fails with
// ErrExhausted.
func (i *Issuer) Issue(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < i.maxAttempts; attempt++ {
		code, err := candidate()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrExhausted
}

func candidate() (string, error) {
	adjective, err := pick(adjectives)
	if err != nil {
		return "", err
	}
	animal, err := pick(animals)
	if err != nil {
		return "", err
	}
	n, err := crand.Int(crand.Reader, big.NewInt(100))
	if err != nil {
		return "", fmt.Errorf("accesscode: read random number: %w", err)
	}
	return fmt.Sprintf("%s-%s-%02d", adjective, animal, n.Int64()), nil
}

func pick(words []string) (string, error) {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", fmt.Errorf("accesscode: read random index: %w", err)
	}
	return words[n.Int64()], nil
}
