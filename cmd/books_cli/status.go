package main

import (
	"fmt"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Resolve the status badge of a document",
	Example: `  books status --file invoice.json
  cat invoice.json | books status --file - --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringP("file", "f", "-", "Document JSON file, - for stdin")
	statusCmd.Flags().Bool("json", false, "Print the badge as JSON")
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	asJSON, _ := cmd.Flags().GetBool("json")

	doc, err := readSnapshot(cmd, path)
	if err != nil {
		return err
	}

	badge := domain.ResolveStatus(doc).Badge()
	if asJSON {
		return printJSON(cmd, badge)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", badge.Label, badge.Color)
	return err
}
