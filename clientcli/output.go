package clientcli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats results for output.
type Formatter interface {
	FormatAppend(w io.Writer, result *AppendResult) error
	FormatRead(w io.Writer, result *ReadResult) error
	FormatError(w io.Writer, err error) error
	FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error
	FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error
}

// NewFormatter returns the appropriate formatter based on flags.
func NewFormatter(jsonOutput, quiet bool) Formatter {
	if jsonOutput {
		return &JSONFormatter{}
	}
	return &HumanFormatter{Quiet: quiet}
}

// HumanFormatter outputs human-readable text.
type HumanFormatter struct {
	Quiet bool
}

// FormatAppend formats an append result as human-readable text.
func (f *HumanFormatter) FormatAppend(w io.Writer, result *AppendResult) error {
	if f.Quiet {
		return nil
	}
	_, _ = fmt.Fprintf(w, "Appended: %q\n", result.Text)
	return nil
}

// FormatRead formats a read result as human-readable text.
func (f *HumanFormatter) FormatRead(w io.Writer, result *ReadResult) error {
	if f.Quiet {
		return nil
	}
	if result.LocalPath == "-" || result.LocalPath == "" {
		_, _ = fmt.Fprintf(w, "Read: %s (%s)\n", result.Filename, formatSize(result.Size))
		return nil
	}
	_, _ = fmt.Fprintf(w, "Read: %s -> %s (%s)\n", result.Filename, result.LocalPath, formatSize(result.Size))
	return nil
}

// FormatError formats an error as human-readable text.
func (f *HumanFormatter) FormatError(w io.Writer, err error) error {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	return nil
}

// FormatProfileList formats a list of profiles as human-readable text.
func (f *HumanFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	maxNameLen := 4     // "NAME"
	maxEndpointLen := 8 // "ENDPOINT"
	for i := range profiles {
		maxNameLen = max(maxNameLen, len(profiles[i].Name))
		maxEndpointLen = max(maxEndpointLen, len(profiles[i].Endpoint))
	}
	maxNameLen = min(maxNameLen, 20)
	maxEndpointLen = min(maxEndpointLen, 50)

	_, _ = fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxNameLen, "NAME", maxEndpointLen, "ENDPOINT", "BASE PATH")
	_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", strings.Repeat("-", maxNameLen), strings.Repeat("-", maxEndpointLen), strings.Repeat("-", 12))

	for i := range profiles {
		p := &profiles[i]
		marker := " "
		if p.Name == defaultName {
			marker = "*"
		}

		_, _ = fmt.Fprintf(w, "%s %-*s  %-*s  %s\n",
			marker,
			maxNameLen, truncate(p.Name, maxNameLen),
			maxEndpointLen, truncate(p.Endpoint, maxEndpointLen),
			basePathOrRoot(p.BasePath),
		)
	}

	return nil
}

// FormatProfileShow formats a single profile as human-readable text.
func (f *HumanFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	_, _ = fmt.Fprintf(w, "Name:      %s", profile.Name)
	if isDefault {
		_, _ = fmt.Fprintf(w, " (default)")
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Endpoint:  %s\n", profile.Endpoint)
	_, _ = fmt.Fprintf(w, "Base Path: %s\n", basePathOrRoot(profile.BasePath))
	return nil
}

// JSONFormatter outputs JSON.
type JSONFormatter struct{}

// FormatAppend formats an append result as JSON.
func (f *JSONFormatter) FormatAppend(w io.Writer, result *AppendResult) error {
	return writeJSON(w, result)
}

// FormatRead formats a read result as JSON.
func (f *JSONFormatter) FormatRead(w io.Writer, result *ReadResult) error {
	return writeJSON(w, result)
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return writeJSON(w, output)
}

// FormatProfileList formats a list of profiles as JSON.
func (f *JSONFormatter) FormatProfileList(w io.Writer, profiles []Profile, defaultName string) error {
	type jsonProfile struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		BasePath string `json:"base_path,omitempty"`
		Default  bool   `json:"default,omitempty"`
	}

	output := struct {
		Profiles []jsonProfile `json:"profiles"`
	}{
		Profiles: make([]jsonProfile, len(profiles)),
	}

	for i := range profiles {
		p := &profiles[i]
		output.Profiles[i] = jsonProfile{
			Name:     p.Name,
			Endpoint: p.Endpoint,
			BasePath: p.BasePath,
			Default:  p.Name == defaultName,
		}
	}

	return writeJSON(w, output)
}

// FormatProfileShow formats a single profile as JSON.
func (f *JSONFormatter) FormatProfileShow(w io.Writer, profile Profile, isDefault bool) error {
	output := struct {
		Name     string `json:"name"`
		Endpoint string `json:"endpoint"`
		BasePath string `json:"base_path"`
		Default  bool   `json:"default"`
	}{
		Name:     profile.Name,
		Endpoint: profile.Endpoint,
		BasePath: profile.BasePath,
		Default:  isDefault,
	}
	return writeJSON(w, output)
}

// writeJSON writes a value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatSize formats bytes as human-readable size.
// Negative sizes (unknown content length) render as "unknown size".
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes < 0:
		return "unknown size"
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func basePathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
