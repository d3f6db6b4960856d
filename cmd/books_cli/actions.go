package main

import (
	"fmt"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/SscSPs/books_core/internal/core/services"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the actions available on a document, or run one with --run",
	Long: `Lists the actions available on a document.

With --run the action is executed and its draft printed as JSON. Credit and
debit notes drafted here do not account for returns recorded elsewhere.`,
	Example: `  books actions --file invoice.json
  books actions --file invoice.json --run payment`,
	RunE: runActions,
}

func init() {
	rootCmd.AddCommand(actionsCmd)

	actionsCmd.Flags().StringP("file", "f", "-", "Document JSON file, - for stdin")
	actionsCmd.Flags().String("run", "", "Action kind to execute")
}

func runActions(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	kind, _ := cmd.Flags().GetString("run")

	doc, err := readSnapshot(cmd, path)
	if err != nil {
		return err
	}

	svc := services.NewInvoiceActionService(services.NewReturnDocumentService(noReturnsRecorded{}))
	if kind == "" {
		for _, a := range svc.AvailableActions(doc) {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-15s %-6s %s\n", a.Kind, a.Group, a.Label); err != nil {
				return err
			}
		}
		return nil
	}

	result, err := svc.Execute(cmd.Context(), domain.ActionKind(kind), doc)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}
