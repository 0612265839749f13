package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append <text>...",
	Short: "Append a line to the server's write file",
	Long: `Append a line of text to the server's write file.

Multiple arguments are joined with a single space into one line.

Examples:
  textstore-cli append BCIT
  textstore-cli append "hello world"
  textstore-cli --profile prod append deployed v1.2.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAppend,
}

func runAppend(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	result, err := client.Append(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return handleError(os.Stderr, err)
	}

	return getFormatter().FormatAppend(os.Stdout, result)
}
