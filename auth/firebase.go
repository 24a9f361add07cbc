package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
)

// IDTokenVerifier is the subset of the Firebase Admin auth client we use.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type FirebaseVerifier struct {
	client IDTokenVerifier
}

func NewFirebaseVerifier(client IDTokenVerifier) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// NewFirebaseVerifierFromApp builds the verifier from application default credentials.
func NewFirebaseVerifierFromApp(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return NewFirebaseVerifier(client), nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := decoded.Claims["role"].(string); ok {
		id.Role = role
	}
	return id, nil
}
