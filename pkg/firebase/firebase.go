// Package firebase wires the Firebase Admin SDK used by the federated
// login endpoint to verify Google-issued ID tokens.
package firebase

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App bundles the SDK app with the auth client the handlers consume
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
}

// InitFirebase builds the Firebase app and auth client from a service
// account credentials file. The caller decides whether a missing file is
// fatal; federated login stays disabled without one.
func InitFirebase(ctx context.Context, credentialsPath string) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file missing at %s", credentialsPath)
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("creating firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firebase auth client: %w", err)
	}

	log.Println("Firebase auth client ready.")
	return &App{FirebaseApp: app, AuthClient: authClient}, nil
}
