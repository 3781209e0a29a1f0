package domain

// Credential is a stored username/password_hash pair.
// PasswordHash is a bcrypt hash; plaintext passwords are never persisted.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
