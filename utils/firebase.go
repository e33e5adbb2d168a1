// utils/firebase.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"rent2reuse/config"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	FirebaseApp *firebase.App
	AuthClient  *fbauth.Client
)

// FirebaseInit initializes the Firebase App and the Auth client used to
// verify dashboard ID tokens at sign-in.
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     config.AppConfig.FirebaseProjectID,
		StorageBucket: config.AppConfig.FirebaseStorageBucket,
	}, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseApp = app
	AuthClient = authClient
}

// LoadServiceAccount reads the client email and private key from the JSON key
// file, needed for signing storage download URLs.
func LoadServiceAccount(path string) (*config.ServiceAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account file: %w", err)
	}
	var sa config.ServiceAccount
	if err := json.Unmarshal(data, &sa); err != nil {
		return nil, fmt.Errorf("failed to parse service account file: %w", err)
	}
	return &sa, nil
}
