package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying scheme, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives the value stored in the credential column.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored credential.
	Check(password, stored string) bool
}
