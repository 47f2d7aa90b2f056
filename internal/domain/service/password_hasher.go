// Package service defines contracts for domain services implemented by the
// infrastructure layer.
package service

// PasswordHasher abstracts one-way credential hashing.
type PasswordHasher interface {
	// Hash derives an irreversible hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
