package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/juju/errors"
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

// Config is assembled in three layers: baked-in defaults, an optional
// TOML file and NETINTEL_* environment variables, each overriding the
// previous one.
type Config struct {
	Listen    string `toml:"listen" env:"NETINTEL_LISTEN"`
	Debug     bool   `toml:"debug" env:"NETINTEL_DEBUG"`
	UserAgent string `toml:"user_agent" env:"NETINTEL_USER_AGENT"`

	ProviderTimeout duration `toml:"provider_timeout" env:"NETINTEL_PROVIDER_TIMEOUT"`
	OverallTimeout  duration `toml:"overall_timeout" env:"NETINTEL_OVERALL_TIMEOUT"`
	Concurrency     int      `toml:"concurrency" env:"NETINTEL_CONCURRENCY"`

	RateLimitInterval duration `toml:"rate_limit_interval" env:"NETINTEL_RATE_LIMIT_INTERVAL"`
	RateLimitBurst    int      `toml:"rate_limit_burst" env:"NETINTEL_RATE_LIMIT_BURST"`

	CircuitBreakerOpenThreshold uint32   `toml:"circuit_breaker_open_threshold" env:"NETINTEL_CIRCUIT_BREAKER_OPEN_THRESHOLD"`
	CircuitBreakerHalfOpen      duration `toml:"circuit_breaker_half_open_timeout" env:"NETINTEL_CIRCUIT_BREAKER_HALF_OPEN_TIMEOUT"`
	CircuitBreakerResetFailures duration `toml:"circuit_breaker_reset_failures_timeout" env:"NETINTEL_CIRCUIT_BREAKER_RESET_FAILURES_TIMEOUT"`

	CacheSize uint     `toml:"cache_size" env:"NETINTEL_CACHE_SIZE"`
	CacheTTL  duration `toml:"cache_ttl" env:"NETINTEL_CACHE_TTL"`

	TrustedProxies []string `toml:"trusted_proxies" env:"NETINTEL_TRUSTED_PROXIES" envSeparator:","`

	AuthUser     string `toml:"auth_user" env:"NETINTEL_AUTH_USER"`
	AuthPassword string `toml:"auth_password" env:"NETINTEL_AUTH_PASSWORD"`
}

func Default() *Config {
	return &Config{
		Listen:                      ":8080",
		UserAgent:                   "netintel/0.1",
		ProviderTimeout:             duration{3500 * time.Millisecond},
		OverallTimeout:              duration{8 * time.Second},
		Concurrency:                 5,
		RateLimitInterval:           duration{10 * time.Millisecond},
		RateLimitBurst:              50,
		CircuitBreakerOpenThreshold: 30,
		CircuitBreakerHalfOpen:      duration{30 * time.Second},
		CircuitBreakerResetFailures: duration{time.Minute},
		CacheSize:                   4096,
		CacheTTL:                    duration{10 * time.Minute},
	}
}

// Parse builds the effective configuration. file may be nil when no
// config file was given on the command line.
func Parse(file *os.File) (*Config, error) {
	conf := Default()

	if file != nil {
		buf, err := io.ReadAll(file)
		if err != nil {
			return nil, errors.Annotate(err, "Cannot read config file")
		}

		if _, err := toml.Decode(string(buf), conf); err != nil {
			return nil, errors.Annotate(err, "Cannot parse config file")
		}
	}

	if err := env.Parse(conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse environment")
	}

	if err := validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.Listen == "" {
		return errors.New("listen address is empty")
	}

	if conf.Concurrency <= 0 {
		return errors.Errorf("incorrect concurrency %d", conf.Concurrency)
	}

	if conf.ProviderTimeout.Duration <= 0 {
		return errors.Errorf("incorrect provider timeout %v", conf.ProviderTimeout.Duration)
	}

	if conf.OverallTimeout.Duration <= 0 {
		return errors.Errorf("incorrect overall timeout %v", conf.OverallTimeout.Duration)
	}

	if conf.OverallTimeout.Duration < conf.ProviderTimeout.Duration {
		return errors.Errorf("overall timeout %v is smaller than provider timeout %v",
			conf.OverallTimeout.Duration, conf.ProviderTimeout.Duration)
	}

	return nil
}
