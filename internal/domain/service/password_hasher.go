// Package service declares the ports usecases depend on: hashing, tokens,
// object storage, images, QR codes, events and rate limiting.
package service

// PasswordHasher hashes admin passwords and verifies login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
