package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the web client needs from the environment.
// All real business state lives on the backend; this process only needs to
// know where the backend is and how to sign its own cookies.
type Config struct {
	Addr        string `env:"VANTA_ADDR" envDefault:":8080"`
	APIBaseURL  string `env:"VANTA_API_URL" envDefault:"http://localhost:8000"`
	SessionKey  string `env:"VANTA_SESSION_KEY" envDefault:"dev-secret-key-change-in-production"`
	RedisURL    string `env:"VANTA_REDIS_URL"`
	LogLevel    string `env:"VANTA_LOG_LEVEL" envDefault:"info"`
	TokenMaxAge time.Duration `env:"VANTA_TOKEN_MAX_AGE" envDefault:"720h"`
	DraftTTL    time.Duration `env:"VANTA_DRAFT_TTL" envDefault:"24h"`

	// PartyIDs is the set of parties the list screen shows. Only the ids live
	// here; every piece of party metadata (title, host, capacity, location)
	// comes from the backend's party-info endpoint.
	PartyIDs []int64 `env:"VANTA_PARTY_IDS" envDefault:"1"`

	// AdminUserIDs mirrors the backend's hardwired admin accounts; the profile
	// screen only decides whether to show the dashboard link, the backend still
	// authorizes every admin call.
	AdminUserIDs []string `env:"VANTA_ADMIN_USER_IDS" envDefault:"1,2"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsAdmin reports whether the given backend user id is allowed to see the
// admin dashboard entry point.
func (c Config) IsAdmin(userID string) bool {
	for _, id := range c.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
