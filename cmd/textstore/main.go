package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sagarc03/textstore"
	"github.com/sagarc03/textstore/config"
	"github.com/sagarc03/textstore/filesystem"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "textstore",
	Short:   "Append-only text file server",
	Long: `textstore is a minimal HTTP service that appends lines of text to a
file and reads named text files back from a local storage directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var configFiles []string
		if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
			configFiles = append(configFiles, configFile)
		}

		cfg, err := config.Load(configFiles, cmd.Flags())
		if err != nil {
			return err
		}

		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("storage-path", "", "storage directory path (default: ./data, env: TEXTSTORE_STORAGE_PATH)")
	rootCmd.PersistentFlags().String("write-file", "", "file that appends go to (default: file.txt, env: TEXTSTORE_STORAGE_WRITE_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: TEXTSTORE_LOG_LEVEL)")
}

// newService builds the text service and its store from the loaded configuration.
func newService(cfg *config.Config) (*textstore.TextService, *filesystem.Store, error) {
	storage := filesystem.NewFileStorage(cfg.Storage.Path)

	service, err := textstore.NewTextService(storage, cfg.Storage.WriteFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create service: %w", err)
	}

	return service, storage, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
