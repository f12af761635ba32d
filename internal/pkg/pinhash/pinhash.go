// Package pinhash wraps the kiosk PIN hashing primitive. Callers treat
// the produced hash as opaque; the underlying scheme can change without
// touching punch-intake logic.
package pinhash

import "golang.org/x/crypto/bcrypt"

// Hash hashes a plain-text PIN for storage.
func Hash(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(pin string, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pin)) == nil
}
