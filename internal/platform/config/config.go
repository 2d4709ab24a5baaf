package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Blob store backends.
const (
	BlobBackendLocal = "local"
	BlobBackendGCS   = "gcs"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Owner credential. The hash is bcrypt; the plaintext never reaches config.
	OwnerEmail        string
	OwnerPasswordHash string

	// Location used to decide what "today" means for log dates and report windows.
	Location *time.Location

	CORSAllowedOrigins []string
	LoginRateLimit     string
	RedisURL           string
	RabbitMQURL        string

	BlobBackend        string
	BlobLocalDir       string
	BlobPublicBaseURL  string
	GCSBucket          string
	GCSCredentialsFile string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "factory-ops")
	v.SetDefault("OWNER_EMAIL", "")
	v.SetDefault("OWNER_PASSWORD_HASH", "")
	v.SetDefault("APP_TIMEZONE", "Asia/Karachi")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("BLOB_BACKEND", BlobBackendLocal)
	v.SetDefault("BLOB_LOCAL_DIR", "./data/blobs")
	v.SetDefault("BLOB_PUBLIC_BASE_URL", "http://localhost:8080/blobs")
	v.SetDefault("GCS_BUCKET", "")
	v.SetDefault("GCS_CREDENTIALS_FILE", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		OwnerEmail:         strings.TrimSpace(v.GetString("OWNER_EMAIL")),
		OwnerPasswordHash:  v.GetString("OWNER_PASSWORD_HASH"),
		LoginRateLimit:     v.GetString("LOGIN_RATE_LIMIT"),
		RedisURL:           v.GetString("REDIS_URL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		BlobBackend:        strings.ToLower(v.GetString("BLOB_BACKEND")),
		BlobLocalDir:       v.GetString("BLOB_LOCAL_DIR"),
		BlobPublicBaseURL:  strings.TrimRight(v.GetString("BLOB_PUBLIC_BASE_URL"), "/"),
		GCSBucket:          v.GetString("GCS_BUCKET"),
		GCSCredentialsFile: v.GetString("GCS_CREDENTIALS_FILE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.OwnerEmail == "" || cfg.OwnerPasswordHash == "" {
		log.Println("Warning: OWNER_EMAIL or OWNER_PASSWORD_HASH not set. Owner login is disabled.")
	}

	tz := v.GetString("APP_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Unknown APP_TIMEZONE ('%s'). Defaulting to UTC.\n", tz)
		loc = time.UTC
	}
	cfg.Location = loc

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if cfg.BlobBackend != BlobBackendLocal && cfg.BlobBackend != BlobBackendGCS {
		log.Printf("Warning: Unknown BLOB_BACKEND ('%s'). Defaulting to %s.\n", cfg.BlobBackend, BlobBackendLocal)
		cfg.BlobBackend = BlobBackendLocal
	}
	if cfg.BlobBackend == BlobBackendGCS && cfg.GCSBucket == "" {
		log.Println("Warning: BLOB_BACKEND is gcs but GCS_BUCKET is not set. Worker photos will fail to upload.")
	}

	return cfg, nil
}
