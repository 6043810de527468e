// Package config loads immutable validator/miner configuration from
// environment variables (§6 Environment variables), mirroring the ambient
// shape of the original source's dataclass-based Config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is immutable once Load returns successfully.
type Config struct {
	BTNetuid     int
	BTNetwork    string
	APIHost      string
	APIPort      int
	OddsAPIKey   string
	SportsAPIKey string

	OddsCacheTTL  time.Duration
	LineTolerance float64

	MPCPeerTimeout time.Duration

	RateLimitCapacity int
	RateLimitRate     int

	HTTPTimeout time.Duration

	// Protocol constants, not overridable by environment (§6 "must not
	// be varied per call").
	SharesTotal     int
	SharesThreshold int
	MPCQuorum       float64
}

// Load reads Config from the process environment, applying the same
// defaults as the original source and validating ranges at startup.
func Load() (Config, error) {
	cfg := Config{
		BTNetuid:          103,
		BTNetwork:         envString("BT_NETWORK", "finney"),
		APIHost:           envString("API_HOST", "0.0.0.0"),
		APIPort:           8421,
		OddsAPIKey:        envString("ODDS_API_KEY", ""),
		SportsAPIKey:      envString("SPORTS_API_KEY", ""),
		OddsCacheTTL:      30 * time.Second,
		LineTolerance:     0.5,
		MPCPeerTimeout:    10 * time.Second,
		RateLimitCapacity: 60,
		RateLimitRate:     10,
		HTTPTimeout:       30 * time.Second,
		SharesTotal:       10,
		SharesThreshold:   7,
		MPCQuorum:         2.0 / 3.0,
	}

	var err error
	if cfg.BTNetuid, err = envInt("BT_NETUID", cfg.BTNetuid); err != nil {
		return Config{}, err
	}
	if cfg.APIPort, err = envInt("API_PORT", cfg.APIPort); err != nil {
		return Config{}, err
	}
	if cfg.OddsCacheTTL, err = envSeconds("ODDS_CACHE_TTL", cfg.OddsCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.LineTolerance, err = envFloat("LINE_TOLERANCE", cfg.LineTolerance); err != nil {
		return Config{}, err
	}
	if cfg.MPCPeerTimeout, err = envSeconds("MPC_PEER_TIMEOUT", cfg.MPCPeerTimeout); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitCapacity, err = envInt("RATE_LIMIT_CAPACITY", cfg.RateLimitCapacity); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRate, err = envInt("RATE_LIMIT_RATE", cfg.RateLimitRate); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = envSeconds("HTTP_TIMEOUT", cfg.HTTPTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.BTNetuid < 1 || c.BTNetuid > 65535 {
		return fmt.Errorf("config: BT_NETUID must be 1-65535, got %d", c.BTNetuid)
	}
	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("config: API_PORT must be 1-65535, got %d", c.APIPort)
	}
	isProduction := c.BTNetwork == "finney" || c.BTNetwork == "mainnet"
	if isProduction && c.SportsAPIKey == "" {
		return fmt.Errorf("config: SPORTS_API_KEY must be set in production — outcome resolution requires it")
	}
	if c.HTTPTimeout < time.Second {
		return fmt.Errorf("config: HTTP_TIMEOUT must be >= 1s, got %s", c.HTTPTimeout)
	}
	if c.RateLimitCapacity < 1 {
		return fmt.Errorf("config: RATE_LIMIT_CAPACITY must be >= 1, got %d", c.RateLimitCapacity)
	}
	if c.RateLimitRate < 1 {
		return fmt.Errorf("config: RATE_LIMIT_RATE must be >= 1, got %d", c.RateLimitRate)
	}
	if c.MPCPeerTimeout < time.Second {
		return fmt.Errorf("config: MPC_PEER_TIMEOUT must be >= 1s, got %s", c.MPCPeerTimeout)
	}
	return nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid integer for %s: %q", key, v)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid float for %s: %q", key, v)
	}
	return f, nil
}

// envSeconds reads key as a float number of seconds (matching the source's
// MPC_PEER_TIMEOUT=10.0 convention) and returns a time.Duration.
func envSeconds(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: invalid seconds value for %s: %q", key, v)
	}
	return time.Duration(f * float64(time.Second)), nil
}
