package main

import (
	"io"
	"os"

	"github.com/sagarc03/textstore/clientcli"
	"github.com/spf13/cobra"
)

var readOutput string

var readCmd = &cobra.Command{
	Use:   "read <filename>",
	Short: "Read a text file from the server",
	Long: `Read a text file from the server.

By default the contents are written to stdout. Use -o to save them to a
local file instead. Filenames must end in .txt and contain only letters,
digits, '_', '-' and '.'.

Examples:
  textstore-cli read file.txt
  textstore-cli read notes.txt -o ./notes-copy.txt
  textstore-cli read --json file.txt -o out.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVarP(&readOutput, "output", "o", "", "write to a local file instead of stdout")
}

func runRead(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	localPath := readOutput
	if localPath == "" {
		localPath = "-"
	}

	result, reader, err := client.Read(cmd.Context(), clientcli.ReadOptions{
		Filename:  args[0],
		LocalPath: localPath,
	})
	if err != nil {
		return handleError(os.Stderr, err)
	}

	if reader != nil {
		defer func() { _ = reader.Close() }()
		if _, err := io.Copy(os.Stdout, reader); err != nil {
			return err
		}
		// Metadata goes to stderr so stdout stays the file contents.
		if jsonOutput {
			return getFormatter().FormatRead(os.Stderr, result)
		}
		return nil
	}

	return getFormatter().FormatRead(os.Stdout, result)
}
