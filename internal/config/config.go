package config

import (
	"fmt"
	"os"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Addr        string
	DatabaseURL string

	TranslatorEndpoint string
	TranslatorKey      string
	TranslatorRegion   string

	// S3-compatible object storage. When S3Endpoint is empty the server
	// falls back to local filesystem storage under StorageRoot.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3UseSSL    bool
	StorageRoot string

	SourceContainer     string
	TranslatedContainer string
}

// Load reads configuration from the environment. Only the translator
// credentials are mandatory; everything else has a local-development
// default.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:                getenv("ADDR", ":8080"),
		DatabaseURL:         getenv("DATABASE_URL", "doctrans.db"),
		TranslatorEndpoint:  getenv("TRANSLATOR_ENDPOINT", "https://api.cognitive.microsofttranslator.com"),
		TranslatorKey:       os.Getenv("TRANSLATOR_KEY"),
		TranslatorRegion:    getenv("TRANSLATOR_REGION", "westeurope"),
		S3Endpoint:          os.Getenv("S3_ENDPOINT"),
		S3AccessKey:         os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:         os.Getenv("S3_SECRET_KEY"),
		S3UseSSL:            os.Getenv("S3_USE_SSL") == "true",
		StorageRoot:         getenv("STORAGE_ROOT", "./data"),
		SourceContainer:     getenv("SOURCE_CONTAINER", "source-files"),
		TranslatedContainer: getenv("TRANSLATED_CONTAINER", "translated-files"),
	}

	if cfg.TranslatorKey == "" {
		return nil, fmt.Errorf("TRANSLATOR_KEY is empty")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
