package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	StorageBackendLocal = "local"
	StorageBackendGCS   = "gcs"
)

type Config struct {
	ServerPort       string
	FirestoreProject string
	CredentialsFile  string
	Environment      string

	StorageBackend string
	StorageBucket  string
	UploadDir      string
	PublicBaseURL  string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsFile:  getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		Environment:      getEnv("ENVIRONMENT", "development"),
		StorageBackend:   getEnv("STORAGE_BACKEND", StorageBackendLocal),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
