package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL     string `envconfig:"DATABASE_URL"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Login tokens (self-issued, HS256)
	// openssl rand -base64 32
	// to generate a value
	TokenSigningKey string `envconfig:"TOKEN_SIGNING_KEY"`
	TokenTTLSec     uint   `envconfig:"TOKEN_TTL_SEC" default:"86400"` // 24 hours

	// S3 attachment uploads
	AWSRegion     string `envconfig:"AWS_REGION"`
	AWSBucketName string `envconfig:"AWS_BUCKET_NAME"`
}
