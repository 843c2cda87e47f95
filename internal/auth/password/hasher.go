// Package password wraps the adaptive one-way hash used for credentials.
package password

import "golang.org/x/crypto/bcrypt"

//go:generate mockgen -destination=../../mocks/mock_hasher.go -package=mocks github.com/agunich/AutoHub/internal/auth/password Hasher

type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher hashes with bcrypt at the given cost. The cost keeps a single
// verification in the tens-of-milliseconds range on current hardware.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
