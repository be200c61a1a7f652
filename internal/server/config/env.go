package config

import "os"

// parseEnv overlays environment variables onto the Config. Environment is
// applied last so deployment secrets override values baked into files or
// scripts.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address
//	DATABASE_DSN     PostgreSQL DSN
//	JWT_SECRET       base64-encoded HMAC signing key
//	S3_ROOT_USER     S3 credentials
//	S3_ROOT_PASSWORD S3 credentials
//	S3_BUCKET        S3 bucket for recipe images
//	S3_REGION        S3 region
//	S3_BASE_ENDPOINT S3-compatible endpoint URL
func parseEnv(config *Config) {
	setIfPresent := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setIfPresent(&config.EndpointAddr, "ADDRESS")
	setIfPresent(&config.DatabaseDSN, "DATABASE_DSN")
	setIfPresent(&config.JWTSecret, "JWT_SECRET")
	setIfPresent(&config.S3RootUser, "S3_ROOT_USER")
	setIfPresent(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setIfPresent(&config.S3Bucket, "S3_BUCKET")
	setIfPresent(&config.S3Region, "S3_REGION")
	setIfPresent(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}
