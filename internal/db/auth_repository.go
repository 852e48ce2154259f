package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"firebase.google.com/go/v4/auth"
)

// firebaseAuthRepository implements AuthRepository over the Firebase Admin
// Auth client.
type firebaseAuthRepository struct {
	client *auth.Client
}

// NewFirebaseAuthRepository creates a new instance of firebaseAuthRepository.
func NewFirebaseAuthRepository(client *auth.Client) AuthRepository {
	if client == nil {
		log.Fatal("Firebase Auth client is not initialized for AuthRepository.")
	}
	return &firebaseAuthRepository{client: client}
}

// CreateAccount creates a new auth identity with email/password credentials
// and returns the new UID. The profile document write that follows is a
// separate, non-transactional step owned by the service layer.
func (r *firebaseAuthRepository) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required to create an account")
	}
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false)

	record, err := r.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", fmt.Errorf("%w: '%s'", ErrEmailAlreadyExists, email)
		}
		return "", fmt.Errorf("failed to create auth identity for '%s': %w", email, err)
	}
	return record.UID, nil
}

// EmailVerified reloads the identity record and reports whether the e-mail
// address has been verified.
func (r *firebaseAuthRepository) EmailVerified(ctx context.Context, uid string) (bool, error) {
	if uid == "" {
		return false, errors.New("uid cannot be empty for EmailVerified operation")
	}
	record, err := r.client.GetUser(ctx, uid)
	if err != nil {
		return false, fmt.Errorf("failed to reload identity '%s': %w", uid, err)
	}
	return record.EmailVerified, nil
}
