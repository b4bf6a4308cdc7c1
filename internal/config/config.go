package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and startup warnings
	"os"      // os provides access to environment variables
	"strings" // strings checks the database URL scheme
)

// DefaultJWTSecret is the insecure placeholder used when JWT_SECRET is
// not set. Running with it (or with any secret shorter than
// MinSecretLen bytes) is allowed but logged loudly at startup so the
// service stays operable in dev while production misconfiguration is
// visible.
const DefaultJWTSecret = "insecure-dev-secret-change-me"

// MinSecretLen is the minimum number of bytes of signing-key material
// considered acceptable for HS256.
const MinSecretLen = 32

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The types reflect how the values are used
// in the application: strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DatabaseURL  string // mysql:// connection string (required)
	JWTSecret    string // secret used to sign JWTs
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and
// returns a Config. DATABASE_URL is the only hard requirement: a
// missing value or an unrecognized scheme causes the program to exit
// with a fatal log message. Everything else has a workable default.
func Load() Config {
	cfg := Config{
		Env:          envStr("APP_ENV", "dev"),
		Port:         envStr("APP_PORT", "8080"),
		DatabaseURL:  must("DATABASE_URL"),
		JWTSecret:    envStr("JWT_SECRET", DefaultJWTSecret),
		AccessTTLMin: envInt("ACCESS_TOKEN_TTL_MIN", 30),
		BcryptCost:   envInt("BCRYPT_COST", 12),
	}

	if !strings.HasPrefix(cfg.DatabaseURL, "mysql://") {
		// The URL may embed credentials; never echo it back.
		log.Fatalf("DATABASE_URL must be a mysql:// connection string")
	}
	if w := WeakSecretWarning(cfg.JWTSecret); w != "" {
		log.Printf("WARNING: %s", w)
	}
	return cfg
}

// WeakSecretWarning returns a non-empty human-readable warning when the
// given signing secret is the shipped placeholder or carries too little
// entropy. It returns "" for an acceptable secret.
func WeakSecretWarning(secret string) string {
	if secret == DefaultJWTSecret {
		return "JWT_SECRET is the insecure default; set a random secret of at least 32 bytes before exposing this service"
	}
	if len(secret) < MinSecretLen {
		return "JWT_SECRET is shorter than 32 bytes; tokens signed with it are easier to brute-force"
	}
	return ""
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
