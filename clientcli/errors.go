package clientcli

import "errors"

// Errors for profile operations.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoProfiles      = errors.New("no profiles configured")
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileName     = errors.New("profile name is required")
)

// Errors for configuration validation.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	ErrInvalidBasePath = errors.New("invalid base path")
)

// Errors for input validation.
var (
	ErrEmptyText       = errors.New("text is required")
	ErrEmptyFilename   = errors.New("filename is required")
	ErrInvalidFilename = errors.New("invalid filename")
)
