package clientcli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sagarc03/textstore"
)

// DefaultTimeout is the default HTTP client timeout.
const DefaultTimeout = 30 * time.Second

// Client performs operations against a textstore server.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new Client with the given config and options.
func New(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigRequired
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Append adds text as a new line to the server's write file.
func (c *Client) Append(ctx context.Context, text string) (*AppendResult, error) {
	if text == "" {
		return nil, fmt.Errorf("append: %w", ErrEmptyText)
	}

	target := c.url("/writeFile/") + "?text=" + url.QueryEscape(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseServerError(resp.StatusCode, body)
	}

	return &AppendResult{
		Text:    text,
		Message: strings.TrimSpace(string(body)),
	}, nil
}

// Read fetches a remote file.
// If opts.LocalPath is "-", returns the response body for the caller to consume
// and close. Otherwise writes the content to a local file and returns nil reader.
func (c *Client) Read(ctx context.Context, opts ReadOptions) (*ReadResult, io.ReadCloser, error) {
	filename := strings.TrimSpace(opts.Filename)
	if filename == "" {
		return nil, nil, fmt.Errorf("read: %w", ErrEmptyFilename)
	}
	if !textstore.IsValidFilename(filename) {
		return nil, nil, fmt.Errorf("read: %w: %s", ErrInvalidFilename, filename)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/readFile/"+url.PathEscape(filename)), http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("do request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, nil, parseServerError(resp.StatusCode, body)
	}

	result := &ReadResult{
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
	}

	if opts.LocalPath == "-" {
		result.LocalPath = "-"
		return result, resp.Body, nil
	}

	localPath := opts.LocalPath
	if localPath == "" {
		localPath = filename
	}
	result.LocalPath = localPath

	dir := filepath.Dir(localPath)
	if dir != "" && dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
			_ = resp.Body.Close()
			return nil, nil, fmt.Errorf("create directory: %w", mkdirErr)
		}
	}

	file, createErr := os.Create(localPath) //#nosec G304 -- localPath is user-provided input
	if createErr != nil {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("create file: %w", createErr)
	}

	written, copyErr := io.Copy(file, resp.Body)
	_ = resp.Body.Close()
	if copyErr != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("write file: %w", copyErr)
	}

	if closeErr := file.Close(); closeErr != nil {
		return nil, nil, fmt.Errorf("close file: %w", closeErr)
	}

	result.Size = written
	return result, nil, nil
}

// url joins the endpoint, base path and route.
func (c *Client) url(route string) string {
	return c.config.Endpoint + c.config.BasePath + route
}

func parseServerError(statusCode int, body []byte) error {
	return &APIError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return "server error: " + strconv.Itoa(e.StatusCode)
	}
	return "server error: " + strconv.Itoa(e.StatusCode) + " - " + e.Body
}

// Is reports whether target matches this error.
// It matches an *APIError with the same StatusCode; ErrServerError matches
// any 5xx status.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	if t == ErrServerError {
		return e.StatusCode >= http.StatusInternalServerError
	}
	return t.StatusCode == e.StatusCode
}

// IsNotFound returns true if the error is a 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Sentinel errors for common API error conditions.
// Use errors.Is() to check for these conditions.
var (
	// ErrBadRequest is returned when the server rejects the input (400),
	// e.g. a missing text parameter or a filename outside the policy.
	ErrBadRequest = &APIError{StatusCode: http.StatusBadRequest}

	// ErrNotFound is returned when the requested file does not exist (404).
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound}

	// ErrServerError is returned for any 5xx response.
	ErrServerError = &APIError{StatusCode: http.StatusInternalServerError}
)
