package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sagarc03/textstore/clientcli"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile    string
	profile    string
	endpoint   string
	basePath   string
	jsonOutput bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:     "textstore-cli",
	Version: version,
	Short:   "Client for the textstore server",
	Long: `textstore-cli - Client for the textstore server

Commands:
  - append:    Append a line of text to the server's write file
  - read:      Read a .txt file from the server
  - configure: Manage server profiles

Settings are resolved from the profile file, then environment variables
(TEXTSTORE_ENDPOINT, TEXTSTORE_BASE_PATH), then flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.textstore/config.yaml, env: TEXTSTORE_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "profile name (env: TEXTSTORE_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "server URL (default: http://localhost:3000, env: TEXTSTORE_ENDPOINT)")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "route prefix on the server (env: TEXTSTORE_BASE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			_ = getFormatter().FormatError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportedError marks an error that has already been printed.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// handleError prints err with the active formatter and returns it marked as
// reported so main does not print it twice.
func handleError(w io.Writer, err error) error {
	_ = getFormatter().FormatError(w, err)
	return reportedError{err}
}

// getConfigPath returns the profile file path from --config, TEXTSTORE_CONFIG
// or the default location, in that order.
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p := clientcli.ConfigPathFromEnv(); p != "" {
		return p
	}
	return clientcli.DefaultConfigPath()
}

// buildConfig merges config from the profile file, env vars, and flags (flags take precedence).
func buildConfig() (*clientcli.Config, error) {
	var configs []*clientcli.Config

	explicitPath := cfgFile != "" || clientcli.ConfigPathFromEnv() != ""
	profileName := profile
	if profileName == "" {
		profileName = clientcli.ProfileFromEnv()
	}

	if configPath := getConfigPath(); configPath != "" {
		file, err := clientcli.LoadConfigFile(configPath)
		switch {
		case err == nil:
			p, profileErr := file.GetProfile(profileName)
			switch {
			case profileErr == nil:
				configs = append(configs, clientcli.ConfigFromProfile(p))
			case profileName != "":
				return nil, profileErr
			}
		case explicitPath || profileName != "":
			// Only error if the user pointed at a file or asked for a profile.
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	configs = append(configs, clientcli.ConfigFromEnv(), &clientcli.Config{
		Endpoint: endpoint,
		BasePath: basePath,
	})

	return clientcli.MergeConfig(configs...), nil
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() clientcli.Formatter {
	return clientcli.NewFormatter(jsonOutput, quiet)
}

// getClient creates and returns a configured client.
func getClient() (*clientcli.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	return clientcli.New(cfg)
}
