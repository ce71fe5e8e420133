// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
//
// Both operations are synchronous and CPU-bound for the duration of the
// adaptive hash computation; callers must not hold unrelated locks across them.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	// Every call salts independently, so two hashes of the same plaintext differ.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant time.
	// It returns false for any mismatch and never fails for a wrong password.
	Check(password, hash string) bool
}
