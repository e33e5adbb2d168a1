package database

import (
	"context"
	"log"
	"time"

	"rent2reuse/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := firestore.NewClient(ctx, config.AppConfig.FirebaseProjectID,
		option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile))
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}
