package database

import (
	"TnenntAdmin/config/environment"
	"TnenntAdmin/config/logger"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"firebase.google.com/go/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App
var FirestoreClient *firestore.Client
var AuthClient *auth.Client
var MessagingClient *messaging.Client
var StorageBucket *gcs.BucketHandle

// InitFirebase initializes the Firestore, Auth, Messaging and Storage clients
// from the base64 encoded service account in the environment.
func InitFirebase(ctx context.Context) error {
	encodedCredentials := environment.GetFirebaseKey()
	if encodedCredentials == "" {
		return errors.New("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return fmt.Errorf("decode firebase credentials: %w", err)
	}

	projectID := environment.GetFirebaseProjectID()
	if projectID == "" {
		return errors.New("FIREBASE_PROJECT_ID environment variable is missing")
	}

	config := &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: environment.GetFirebaseStorageBucket(),
	}
	app, err := firebase.NewApp(ctx, config, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return fmt.Errorf("initialize firebase app: %w", err)
	}
	FirebaseApp = app

	FirestoreClient, err = app.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("create firestore client: %w", err)
	}

	AuthClient, err = app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("create auth client: %w", err)
	}

	MessagingClient, err = app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("create messaging client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	StorageBucket, err = storageClient.DefaultBucket()
	if err != nil {
		return fmt.Errorf("open default bucket: %w", err)
	}

	logger.L().Info("firebase initialized",
		zap.String("project", projectID),
		zap.String("bucket", config.StorageBucket))
	return nil
}

// Close releases the Firestore connection.
func Close() {
	if FirestoreClient != nil {
		_ = FirestoreClient.Close()
	}
}

func GetFirestoreClient() *firestore.Client {
	return FirestoreClient
}

func GetFirebaseAuthClient() *auth.Client {
	return AuthClient
}

func GetMessagingClient() *messaging.Client {
	return MessagingClient
}

func GetStorageBucket() *gcs.BucketHandle {
	return StorageBucket
}
