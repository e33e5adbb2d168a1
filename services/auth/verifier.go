package auth

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseVerifier verifies dashboard ID tokens against Firebase Auth.
type FirebaseVerifier struct {
	Client *fbauth.Client
}

// Verify checks the ID token and returns the uid and email claims.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, string, error) {
	token, err := v.Client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", fmt.Errorf("failed to verify ID token: %w", err)
	}
	email, _ := token.Claims["email"].(string)
	return token.UID, email, nil
}
