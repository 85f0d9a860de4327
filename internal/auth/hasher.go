package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	srvErrors "github.com/collabhq/roster/pkg/errors"
)

// Hasher wraps bcrypt password hashing. Every Hash call draws a fresh random
// salt, so hashing the same plaintext twice yields different outputs; the
// salt and cost parameters travel inside the hash itself.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		// bcrypt rejects inputs longer than 72 bytes
		return "", srvErrors.NewValidationError(fmt.Sprintf("password cannot be hashed: %v", err))
	}
	return string(hash), nil
}

// Verify recomputes the hash of the candidate using the salt and parameters
// embedded in stored and compares in constant time. A malformed stored hash
// fails closed: the answer is false, never an error.
func (h *Hasher) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
