package services

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"

	"github.com/weblynx/backoffice_backend/config"
)

// VerifyFirebaseToken verifies a Firebase ID token issued by the hosted
// identity provider and returns its decoded claims. Fails when Firebase
// credentials were not configured at startup.
func VerifyFirebaseToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if config.FirebaseApp == nil {
		return nil, errors.New("firebase is not configured")
	}

	client, err := config.FirebaseApp.Auth(ctx)
	if err != nil {
		return nil, err
	}

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return token, nil
}

// FirebaseEmail extracts the email claim from a verified token
func FirebaseEmail(token *auth.Token) string {
	if email, ok := token.Claims["email"].(string); ok {
		return email
	}
	return ""
}
