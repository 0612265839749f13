package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sagarc03/textstore/config"
)

var appendCmd = &cobra.Command{
	Use:   "append <text> [text...]",
	Short: "Append lines to the write file without going through the server",
	Long: `Append one line per argument to the configured write file in the
local storage directory. The storage directory and file are created
if they do not exist.

Examples:
  textstore append "first line"
  textstore append one two three
  textstore append --join "several words become one line"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAppend,
}

var appendJoin bool

func init() {
	appendCmd.Flags().BoolVar(&appendJoin, "join", false, "join all arguments with spaces into a single line")
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	service, storage, err := newService(cfg)
	if err != nil {
		return err
	}

	lines := args
	if appendJoin {
		lines = []string{strings.Join(args, " ")}
	}

	for _, line := range lines {
		res, err := service.Append(cmd.Context(), line)
		if err != nil {
			return fmt.Errorf("append %q: %w", line, err)
		}
		slog.Debug("appended", "file", res.Filename, "bytes", res.BytesWritten)
	}

	slog.Info("append complete", "dir", storage.Dir(), "file", service.WriteFile(), "lines", len(lines))
	return nil
}
