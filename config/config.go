package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/textstore"
	textstorehttp "github.com/sagarc03/textstore/http"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "TEXTSTORE"

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for textstore.
type Config struct {
	Env     string                   `mapstructure:"env" validate:"required,oneof=dev development prod production"`
	Server  ServerConfig             `mapstructure:"server"`
	Storage StorageConfig            `mapstructure:"storage"`
	CORS    textstorehttp.CORSConfig `mapstructure:"cors"`
	Log     LogConfig                `mapstructure:"log"`
}

// IsProduction reports whether env is prod or production.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	BasePath        string `mapstructure:"base_path" validate:"omitempty,startswith=/,endsnotwith=/"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=1"`
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ShutdownTimeoutDuration returns the shutdown timeout as a time.Duration.
func (c ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// StorageConfig holds file storage configuration.
type StorageConfig struct {
	Path      string `mapstructure:"path" validate:"required"`
	WriteFile string `mapstructure:"write_file" validate:"required,textfile"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"port":         "server.port",
	"base-path":    "server.base_path",
	"storage-path": "storage.path",
	"write-file":   "storage.write_file",
	"log-level":    "log.level",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.base_path", "")
	v.SetDefault("server.shutdown_timeout", 30) // seconds

	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.write_file", textstore.DefaultWriteFile)

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", textstorehttp.DefaultAllowedMethods)
	v.SetDefault("cors.allowed_headers", []string{"Content-Type"})
	v.SetDefault("cors.max_age", 0)

	v.SetDefault("log.level", "info")
}

// newValidator returns a validator with the textfile tag registered.
func newValidator() (*validator.Validate, error) {
	validate := validator.New()
	err := validate.RegisterValidation("textfile", func(fl validator.FieldLevel) bool {
		return textstore.IsValidFilename(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("register textfile validation: %w", err)
	}
	return validate, nil
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables. PORT is honoured for the listen port.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate, err := newValidator()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
