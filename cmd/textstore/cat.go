package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/textstore"
	"github.com/sagarc03/textstore/config"
)

var catCmd = &cobra.Command{
	Use:   "cat [filename]",
	Short: "Print a stored text file",
	Long: `Print a text file from the local storage directory to stdout.

Defaults to the configured write file. The same filename policy as the
HTTP API applies.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	service, _, err := newService(cfg)
	if err != nil {
		return err
	}

	filename := service.WriteFile()
	if len(args) > 0 {
		filename = args[0]
	}

	res, err := service.Read(cmd.Context(), filename)
	if err != nil {
		return fmt.Errorf("read %q: %w", filename, err)
	}

	if !res.Found {
		return fmt.Errorf("read %q: %w", res.Filename, textstore.ErrNotFound)
	}

	_, err = cmd.OutOrStdout().Write(res.Content)
	return err
}
