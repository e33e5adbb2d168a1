package storage

import (
	"fmt"

	"rent2reuse/config"
	"rent2reuse/utils"

	"github.com/spf13/viper"
)

// NewFromConfig builds the storage backend selected by STORAGE_BACKEND.
func NewFromConfig() (StorageService, error) {
	switch config.AppConfig.StorageBackend {
	case "cloudinary":
		return NewCloudinaryStorageService(
			viper.GetString("cloudinary.cloudName"),
			viper.GetString("cloudinary.apiKey"),
			viper.GetString("cloudinary.apiSecret"),
		)
	case "firebase", "":
		sa, err := utils.LoadServiceAccount(config.AppConfig.FirebaseCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
		}
		return NewFirebaseStorageService(
			config.AppConfig.FirebaseCredentialsFile,
			config.AppConfig.FirebaseStorageBucket,
			sa,
		)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
