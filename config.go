package airtablemock

import (
	"math/rand"
)

// DefaultAPIEndpoint is where the real service lives. The mock never dials
// it; it only embeds it in the URLs of emulated request errors.
const DefaultAPIEndpoint = "https://api.airtable.com/v0"

// Config holds the settings of the mock.
type Config struct {
	// APIEndpoint overrides the URL prefix used in emulated errors.
	APIEndpoint string `mapstructure:"api_endpoint"`

	// LogLevel sets the zap level of the package logger ("debug", "info",
	// "warn", "error").
	LogLevel string `mapstructure:"log_level"`

	// If non-zero, record IDs come from a seeded source so everything is
	// predictable for testing.
	RandomSeed int64 `mapstructure:"random_seed"`
}

var globalConfig Config

func init() {
	globalConfig = Config{
		APIEndpoint: DefaultAPIEndpoint,
	}

	idRandom = &seededRandom{}
}

// Configure replaces the active configuration.
func Configure(cfg Config) {
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = DefaultAPIEndpoint
	}
	globalConfig = cfg

	if cfg.RandomSeed != 0 {
		idRandom = newSeededRandom(cfg.RandomSeed)
	} else {
		idRandom = &seededRandom{}
	}
	setLogLevel(cfg.LogLevel)
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return globalConfig
}

// randomSource feeds record ID generation; tests substitute it to force
// collisions.
type randomSource interface {
	Int63n(n int64) int64
}

// seededRandom draws from its own rand.Rand when seeded and falls back to
// the shared global source otherwise.
type seededRandom struct {
	rand *rand.Rand
}

func newSeededRandom(seed int64) *seededRandom {
	return &seededRandom{rand: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) Int63n(n int64) int64 {
	if r.rand == nil {
		return rand.Int63n(n)
	}
	return r.rand.Int63n(n)
}

var idRandom randomSource
