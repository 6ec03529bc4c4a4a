package cookiekit

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds environment-driven defaults for cookie attributes and the
// secret from which secure jar keys are derived.
type Config struct {
	Secret      string `env:"COOKIE_SECRET" envDefault:""`
	Path        string `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge      int64  `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure      bool   `env:"COOKIE_SECURE" envDefault:"false"`
	HTTPOnly    bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    string `env:"COOKIE_SAME_SITE" envDefault:"lax"`
	Partitioned bool   `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns the defaults applied when no environment is set.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HTTPOnly: true,
		SameSite: "lax",
	}
}

// LoadConfig populates a Config from the environment, loading a .env file
// first when one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Key derives the secure jar key from the configured secret. It returns
// ErrNoSecret when the secret is empty.
func (c Config) Key() (Key, error) {
	if c.Secret == "" {
		return Key{}, ErrNoSecret
	}
	return DeriveKey([]byte(c.Secret)), nil
}

// Options translates the configured defaults into cookie options, suitable
// for passing to New. Zero values are skipped so they do not override
// anything.
func (c Config) Options() ([]Option, error) {
	opts := make([]Option, 0, 7)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	if c.HTTPOnly {
		opts = append(opts, WithHTTPOnly(true))
	}
	if c.Partitioned {
		opts = append(opts, WithPartitioned(true))
	}
	if c.SameSite != "" {
		sameSite, err := parseSameSite(c.SameSite)
		if err != nil {
			return nil, err
		}
		if sameSite != SameSiteUnset {
			opts = append(opts, WithSameSite(sameSite))
		}
	}

	return opts, nil
}

func parseSameSite(v string) (SameSite, error) {
	switch strings.ToLower(v) {
	case "strict":
		return SameSiteStrict, nil
	case "lax":
		return SameSiteLax, nil
	case "none":
		return SameSiteNone, nil
	case "unset", "":
		return SameSiteUnset, nil
	default:
		return SameSiteUnset, ErrInvalidSameSite
	}
}
