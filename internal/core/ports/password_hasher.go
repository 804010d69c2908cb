package ports

// PasswordHasher abstracts the salted one-way hashing of passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
