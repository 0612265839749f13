package clientcli

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

// DefaultEndpoint is the default server endpoint URL.
const DefaultEndpoint = "http://localhost:3000"

// Profile holds configuration for a single server profile.
type Profile struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
	BasePath string `yaml:"base_path,omitempty"`
	Default  bool   `yaml:"default,omitempty"`
}

// ConfigFile holds the full config file structure with multiple profiles.
type ConfigFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// indexOf returns the position of the named profile, or -1.
func (c *ConfigFile) indexOf(name string) int {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return i
		}
	}
	return -1
}

// GetProfile returns the profile by name.
// If name is empty, returns the default profile.
func (c *ConfigFile) GetProfile(name string) (*Profile, error) {
	if name == "" {
		return c.GetDefaultProfile()
	}
	if len(c.Profiles) == 0 {
		return nil, ErrNoProfiles
	}
	if i := c.indexOf(name); i >= 0 {
		return &c.Profiles[i], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// GetDefaultProfile returns the profile marked as default, falling back to
// the first profile when none is marked.
func (c *ConfigFile) GetDefaultProfile() (*Profile, error) {
	if len(c.Profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return &c.Profiles[c.indexOf(c.DefaultName())], nil
}

// DefaultName returns the name of the effective default profile, or "" when
// there are no profiles.
func (c *ConfigFile) DefaultName() string {
	for i := range c.Profiles {
		if c.Profiles[i].Default {
			return c.Profiles[i].Name
		}
	}
	if len(c.Profiles) > 0 {
		return c.Profiles[0].Name
	}
	return ""
}

// AddProfile appends a new profile. It fails with ErrProfileExists when the
// name is taken; use UpdateProfile or Upsert for existing profiles.
func (c *ConfigFile) AddProfile(p Profile) error {
	if p.Name == "" {
		return ErrProfileName
	}
	if c.indexOf(p.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrProfileExists, p.Name)
	}
	c.Profiles = append(c.Profiles, p)
	return nil
}

// UpdateProfile replaces an existing profile.
func (c *ConfigFile) UpdateProfile(p Profile) error {
	i := c.indexOf(p.Name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, p.Name)
	}
	c.Profiles[i] = p
	return nil
}

// Upsert adds p or replaces the profile with the same name, reporting whether
// it replaced one. The first profile always becomes the default. With
// makeDefault set, p becomes the only default; otherwise a replaced profile
// keeps its previous default flag.
func (c *ConfigFile) Upsert(p Profile, makeDefault bool) (bool, error) {
	if p.Name == "" {
		return false, ErrProfileName
	}

	i := c.indexOf(p.Name)
	switch {
	case makeDefault || len(c.Profiles) == 0:
		p.Default = true
	case i >= 0:
		p.Default = c.Profiles[i].Default
	default:
		p.Default = false
	}

	if p.Default {
		for k := range c.Profiles {
			c.Profiles[k].Default = false
		}
	}

	if i >= 0 {
		c.Profiles[i] = p
		return true, nil
	}
	c.Profiles = append(c.Profiles, p)
	return false, nil
}

// RemoveProfile removes a profile by name. If the removed profile was the
// default, the first remaining profile becomes the default.
func (c *ConfigFile) RemoveProfile(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	wasDefault := c.Profiles[i].Default
	c.Profiles = append(c.Profiles[:i], c.Profiles[i+1:]...)
	if wasDefault && len(c.Profiles) > 0 {
		c.Profiles[0].Default = true
	}
	return nil
}

// SetDefault marks name as the only default profile.
func (c *ConfigFile) SetDefault(name string) error {
	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	for k := range c.Profiles {
		c.Profiles[k].Default = k == i
	}
	return nil
}

// ProfileNames returns a list of all profile names.
func (c *ConfigFile) ProfileNames() []string {
	names := make([]string, len(c.Profiles))
	for i := range c.Profiles {
		names[i] = c.Profiles[i].Name
	}
	return names
}

// Save writes the config to the specified path.
// Creates the parent directory if it doesn't exist.
func (c *ConfigFile) Save(path string) error {
	cleanPath := filepath.Clean(path)

	// Create parent directory if needed
	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadOrCreateConfigFile loads the config file at path, returning an empty
// ConfigFile when it does not exist yet.
func LoadOrCreateConfigFile(path string) (*ConfigFile, error) {
	cfg, err := LoadConfigFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ConfigFile{}, nil
	}
	return cfg, err
}

// LoadConfigFile loads the config file from the specified path.
func LoadConfigFile(path string) (*ConfigFile, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //#nosec G304 -- path is user-provided config file
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (~/.textstore/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".textstore", "config.yaml")
}

// Config holds resolved client configuration for a single server.
// This is what the Client uses after profile resolution.
type Config struct {
	Endpoint string
	BasePath string
}

// Validate checks that the endpoint is an absolute http(s) URL and that the
// base path, when set, starts with a slash.
func (c *Config) Validate() error {
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s", ErrInvalidEndpoint, c.Endpoint)
		}
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidBasePath, c.BasePath)
	}
	return nil
}

// WithDefaults returns a copy of the config with default values applied.
// If Endpoint is empty, it defaults to DefaultEndpoint. BasePath loses any
// trailing slash.
func (c *Config) WithDefaults() *Config {
	cfg := *c
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")
	cfg.BasePath = strings.TrimSuffix(cfg.BasePath, "/")
	return &cfg
}

// ConfigFromProfile creates a Config from a Profile.
func ConfigFromProfile(p *Profile) *Config {
	if p == nil {
		return &Config{}
	}
	return &Config{
		Endpoint: p.Endpoint,
		BasePath: p.BasePath,
	}
}

// ConfigFromEnv loads config from environment variables.
func ConfigFromEnv() *Config {
	return &Config{
		Endpoint: os.Getenv("TEXTSTORE_ENDPOINT"),
		BasePath: os.Getenv("TEXTSTORE_BASE_PATH"),
	}
}

// ProfileFromEnv returns the profile name from TEXTSTORE_PROFILE environment variable.
func ProfileFromEnv() string {
	return os.Getenv("TEXTSTORE_PROFILE")
}

// ConfigPathFromEnv returns the config file path from TEXTSTORE_CONFIG environment variable.
func ConfigPathFromEnv() string {
	return os.Getenv("TEXTSTORE_CONFIG")
}

// MergeConfig merges multiple configs, with later configs taking precedence.
// Empty strings in later configs do not override non-empty values in earlier configs.
func MergeConfig(configs ...*Config) *Config {
	result := &Config{}
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Endpoint != "" {
			result.Endpoint = cfg.Endpoint
		}
		if cfg.BasePath != "" {
			result.BasePath = cfg.BasePath
		}
	}
	return result
}
