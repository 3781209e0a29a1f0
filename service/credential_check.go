package service

import (
	"context"
	"fmt"

	"mylogin/interfaces"
)

// CheckCredential looks username up in session and verifies password against the stored hash.
// An unknown username is verified against the hasher's decoy and reports false.
// Returns internal_server_error when the lookup fails or the stored hash is malformed.
func CheckCredential(
	ctx context.Context,
	session interfaces.CredentialSession,
	hasher interfaces.PasswordHasher,
	username string,
	password string,
) (bool, error) {
	credential, err := session.FindByUsername(ctx, username)
	switch {
	case IsEntityNotFoundError(err):
		if _, err := hasher.Verify("", password); err != nil {
			return false, NewInternalServerError("password verification failed", err)
		}
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to find credential, err: %w", err)
	}

	ok, err := hasher.Verify(credential.PasswordHash, password)
	if err != nil {
		return false, NewInternalServerError("password verification failed", err)
	}
	return ok, nil
}
