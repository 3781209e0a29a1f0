package interfaces

// PasswordHasher hashes and verifies passwords with a salted, slow hash.
//
//go:generate moq -stub -out mock/password_hasher.go -pkg mock . PasswordHasher
type PasswordHasher interface {
	// Hash returns an encoded hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. An empty hash is verified against a decoy
	// and always reports false, so unknown users cost the same as known ones.
	// Returns an error only when hash is malformed.
	Verify(hash, password string) (bool, error)
}
