package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr           string
	Environment    string
	JWTSigningKey  string
	AdminToken     string
	DatabaseURL    string
	RedisURL       string
	KafkaBrokers   string
	RankingBaseURL string
	RankingTimeout time.Duration

	// DisclosureThreshold gates owner-contact exposure. Overridable for ops
	// drills only; the production default is 85.
	DisclosureThreshold int
}

// ContactCacheTTL caps retention of cached owner contact records. Contact
// data is sensitive; the cache must not outlive a field interaction.
var ContactCacheTTL = 5 * time.Minute

// DefaultDisclosureThreshold is the minimum top-candidate confidence at which
// owner contact information may be revealed.
const DefaultDisclosureThreshold = 85

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PAWTROL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	environment := os.Getenv("PAWTROL_ENV")
	if environment == "" {
		environment = "development"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	rankingBaseURL := os.Getenv("RANKING_SERVICE_URL")
	if rankingBaseURL == "" {
		rankingBaseURL = "http://localhost:9091"
	}

	rankingTimeout := 15 * time.Second
	if v := os.Getenv("RANKING_TIMEOUT"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			rankingTimeout = duration
		}
	}

	threshold := DefaultDisclosureThreshold
	if v := os.Getenv("DISCLOSURE_THRESHOLD"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			threshold = parsed
		}
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		adminToken = "dev-admin-token-change-in-production"
	}

	return Server{
		Addr:                addr,
		Environment:         environment,
		JWTSigningKey:       jwtSigningKey,
		AdminToken:          adminToken,
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		KafkaBrokers:        os.Getenv("KAFKA_BROKERS"),
		RankingBaseURL:      rankingBaseURL,
		RankingTimeout:      rankingTimeout,
		DisclosureThreshold: threshold,
	}
}
