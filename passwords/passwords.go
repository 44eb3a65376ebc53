// Package passwords implements salted one-way password hashing. Each
// customer gets a fresh random salt; the digest is deterministic for a
// given password+salt pair, so verification recomputes and compares.
package passwords

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 24
	iterations = 100_000
	keyLength  = 32
)

// GenerateSalt returns a cryptographically random salt encoded as a
// printable string.
func GenerateSalt() (string, error) {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "[GenerateSalt] rand.Read")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Encrypt derives the digest of a password and salt. Same inputs always
// yield the same digest; different salts yield different digests for the
// same password.
func Encrypt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return base64.RawStdEncoding.EncodeToString(key)
}

// Verify recomputes the digest for the given password and salt and
// compares it with the expected digest in constant time.
func Verify(password, salt, expectedDigest string) bool {
	recomputed := Encrypt(password, salt)
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(expectedDigest)) == 1
}
