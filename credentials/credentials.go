package credentials

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Verifier hashes secrets for storage and checks presented secrets against
// stored hashes. Both users and clients store their secret through this
// interface, so the hashing scheme can change without touching either.
type Verifier interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, hash string) bool
}

// BcryptVerifier implements Verifier using bcrypt.
type BcryptVerifier struct {
	cost int
}

var _ Verifier = (*BcryptVerifier)(nil)

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

func (v *BcryptVerifier) Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", errors.Wrap(err, "hashing secret")
	}
	return string(bytes), nil
}

// Matches reports whether plaintext corresponds to hash. bcrypt's comparison
// is constant-time over the derived key.
func (v *BcryptVerifier) Matches(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
