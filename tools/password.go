package tools

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncrypt hashes a password for storage. Admin passwords are never
// persisted or compared in plaintext.
func PasswordEncrypt(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	PanicOnErr(err)
	return string(hash)
}

// PasswordCompare reports whether the plaintext password matches the stored
// bcrypt hash.
func PasswordCompare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SecretEqual compares two shared secrets in constant time. Used for the
// student ID-number credential and the built-in superadmin password, which
// are held as values rather than hashes.
func SecretEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
