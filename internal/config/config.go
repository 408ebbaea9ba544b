package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the runtime configuration owned by Load. Each field
// corresponds to an environment variable; the struct is built once at
// startup and injected. Optional subsystems (Redis, the rate limiter,
// the message broker) read their own variables separately, so a missing
// one never makes startup fatal.
type Config struct {
	Env               string        // application environment (e.g. "dev", "prod")
	Port              string        // HTTP port to listen on
	DBUser            string        // database username
	DBPass            string        // database password (optional)
	DBHost            string        // database host address
	DBPort            string        // database port number
	DBName            string        // database name
	DBMaxOpenConns    int           // connection pool size
	DBMaxIdleConns    int           // idle connections kept in the pool
	DBConnMaxLifetime time.Duration // maximum connection age
	JWTSecret         string        // secret used to sign JWTs
	JWTIssuer         string        // iss claim minted into and required of tokens
	JWTAudience       string        // aud claim minted into and required of tokens
	TokenTTLMin       int           // access token time-to-live in minutes
	BcryptCost        int           // bcrypt cost for password hashing
	CORSOrigins       []string      // allowed CORS origins; "*" allows any
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
// JWT issuer/audience, the token TTL and the pool knobs carry
// development defaults.
func Load() Config {
	return Config{
		Env:               must("APP_ENV"),
		Port:              must("APP_PORT"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"), // empty allowed
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		DBMaxOpenConns:    atoi(getenv("DB_MAX_OPEN_CONNS", "25")),
		DBMaxIdleConns:    atoi(getenv("DB_MAX_IDLE_CONNS", "25")),
		DBConnMaxLifetime: time.Duration(atoi(getenv("DB_CONN_MAX_LIFETIME_MIN", "30"))) * time.Minute,
		JWTSecret:         must("JWT_SECRET"),
		JWTIssuer:         getenv("JWT_ISSUER", "mechanic-review-api"),
		JWTAudience:       getenv("JWT_AUDIENCE", "mechanic-review-users"),
		TokenTTLMin:       atoi(getenv("JWT_TTL_MIN", "600")), // 10 hours
		BcryptCost:        mustInt("BCRYPT_COST"),
		CORSOrigins:       splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}
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

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
