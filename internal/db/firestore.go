package db

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"wastesync-backend-go/internal/config"
)

var (
	fsClient     *firestore.Client
	fbAuthClient *auth.Client
)

// credentialsOption picks the Admin SDK credential source from config:
// a service-account file path, then a base64-encoded service-account JSON
// blob, then nil to fall through to Application Default Credentials.
func credentialsOption(appConfig *config.Config) (option.ClientOption, error) {
	if path := appConfig.GoogleApplicationCredentials; path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("Warning: credentials file does not exist: %s", path)
		}
		return option.WithCredentialsFile(path), nil
	}
	if encoded := appConfig.FirebaseServiceAccountJSONBase64; encoded != "" {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FirebaseServiceAccountJSONBase64: %w", err)
		}
		return option.WithCredentialsJSON(decoded), nil
	}
	log.Println("No explicit Firebase credentials configured; using Application Default Credentials.")
	return nil, nil
}

// InitFirestore initializes the Firebase Admin SDK and the package-level
// Firestore and Auth clients used by the repositories and the auth
// middleware.
func InitFirestore(ctx context.Context, appConfig *config.Config) error {
	if appConfig == nil {
		return fmt.Errorf("InitFirestore: appConfig cannot be nil")
	}

	credsOption, err := credentialsOption(appConfig)
	if err != nil {
		return err
	}

	var firebaseAppConfig *firebase.Config
	if appConfig.FirebaseProjectID != "" {
		firebaseAppConfig = &firebase.Config{ProjectID: appConfig.FirebaseProjectID}
	}

	var app *firebase.App
	if credsOption != nil {
		app, err = firebase.NewApp(ctx, firebaseAppConfig, credsOption)
	} else {
		app, err = firebase.NewApp(ctx, firebaseAppConfig)
	}
	if err != nil {
		return fmt.Errorf("firebase.NewApp: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("app.Firestore: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("app.Auth: %w", err)
	}

	fsClient = client
	fbAuthClient = authClient
	return nil
}

// GetFirestoreClient returns the package-level Firestore client; nil means
// InitFirestore has not run or failed.
func GetFirestoreClient() *firestore.Client {
	return fsClient
}

// GetFirebaseAuthClient returns the package-level Firebase Auth client; nil
// means InitFirestore has not run or failed.
func GetFirebaseAuthClient() *auth.Client {
	return fbAuthClient
}
