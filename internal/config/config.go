// Package config resolves client configuration from an optional YAML file
// and environment overrides. The API base URL is a single explicit value,
// there is no hostname sniffing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIBaseURL is the local development backend.
	DefaultAPIBaseURL = "http://localhost:8000/api"
	// DefaultLocale matches the language of the original invitation site.
	DefaultLocale = "vi"
	// DefaultAdminCode is the shared dashboard passcode. It ships in the
	// client and is not a security boundary; override it per deployment.
	DefaultAdminCode = "2011202525"
)

// Config is the resolved client configuration.
type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	Locale     string `yaml:"locale"`
	AdminCode  string `yaml:"admin_code"`
}

// Load resolves configuration with precedence: defaults < ~/.thiepmoi/config.yaml < env.
// A missing config file is fine; a malformed one is not.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file path, for tests.
func LoadFrom(path string) (Config, error) {
	cfg := Config{
		APIBaseURL: DefaultAPIBaseURL,
		Locale:     DefaultLocale,
		AdminCode:  DefaultAdminCode,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No file, use defaults plus env.
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("THIEPMOI_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("THIEPMOI_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("THIEPMOI_ADMIN_CODE"); v != "" {
		c.AdminCode = v
	}
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.AdminCode == "" {
		c.AdminCode = DefaultAdminCode
	}
}

// Validate rejects configurations the client cannot start with.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: api_base_url must not be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api_base_url %q is not an absolute URL", c.APIBaseURL)
	}
	return nil
}

// configFilePath returns ~/.thiepmoi/config.yaml.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: get home dir: %w", err)
	}
	return filepath.Join(home, ".thiepmoi", "config.yaml"), nil
}
