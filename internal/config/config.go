package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/johnwards/sampledata/internal/sampledata"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Addr          string // SAMPLEDATA_ADDR, default ":8080"
	DBPath        string // SAMPLEDATA_DB, default "sampledata.db"
	AuthToken     string // SAMPLEDATA_AUTH_TOKEN, optional
	SessionSecret string // SAMPLEDATA_SESSION_SECRET, random per process when empty
	NATSURL       string // SAMPLEDATA_NATS_URL, events disabled when empty
	ProfilePath   string // SAMPLEDATA_PROFILE, optional YAML plugin settings
	UserID        int64  // SAMPLEDATA_USER_ID, default 1
	CookieSecure  bool   // SAMPLEDATA_COOKIE_SECURE, default false; set when served over HTTPS
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding the environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Addr:          envOr("SAMPLEDATA_ADDR", ":8080"),
		DBPath:        envOr("SAMPLEDATA_DB", "sampledata.db"),
		AuthToken:     os.Getenv("SAMPLEDATA_AUTH_TOKEN"),
		SessionSecret: os.Getenv("SAMPLEDATA_SESSION_SECRET"),
		NATSURL:       os.Getenv("SAMPLEDATA_NATS_URL"),
		ProfilePath:   os.Getenv("SAMPLEDATA_PROFILE"),
		UserID:        1,
	}

	if v := os.Getenv("SAMPLEDATA_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 1 {
			return cfg, fmt.Errorf("parse SAMPLEDATA_USER_ID %q: must be a positive integer", v)
		}
		cfg.UserID = id
	}

	if v := os.Getenv("SAMPLEDATA_COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse SAMPLEDATA_COOKIE_SECURE %q: %w", v, err)
		}
		cfg.CookieSecure = secure
	}

	return cfg, nil
}

// Settings returns the plugin settings: the defaults overlaid with the YAML
// profile at ProfilePath, if any.
func (c Config) Settings() (sampledata.Settings, error) {
	settings := sampledata.DefaultSettings()
	if c.ProfilePath == "" {
		return settings, nil
	}

	data, err := os.ReadFile(c.ProfilePath)
	if err != nil {
		return settings, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse profile %s: %w", c.ProfilePath, err)
	}
	if err := validate(settings); err != nil {
		return settings, fmt.Errorf("profile %s: %w", c.ProfilePath, err)
	}
	return settings, nil
}

func validate(s sampledata.Settings) error {
	switch {
	case s.Name == "":
		return errors.New("name must not be empty")
	case s.Steps < 1:
		return errors.New("steps must be at least 1")
	case s.ArticlesPerStep < 0:
		return errors.New("articles_per_step must not be negative")
	case s.FieldsPerRun < 0:
		return errors.New("fields_per_run must not be negative")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
