// Package config provides configuration loading and validation for textstore.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (TEXTSTORE_ prefix, plus PORT)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx = config.WithContext(ctx, cfg)
//
// # Environment Variables
//
// All config keys map to environment variables with TEXTSTORE_ prefix:
//   - server.port → TEXTSTORE_SERVER_PORT (or PORT)
//   - storage.path → TEXTSTORE_STORAGE_PATH
//   - log.level → TEXTSTORE_LOG_LEVEL
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535 (default 3000)
//   - Base path is empty or starts with "/" and has no trailing "/"
//   - storage.write_file must satisfy the textstore filename policy
//   - Log level must be debug, info, warn, or error
package config
