package main

import (
	"fmt"

	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/SscSPs/books_core/internal/core/services"
	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:     "series SCHEMA",
	Short:   "Print the default number series of a schema",
	Example: `  books series SalesInvoice`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewNumberSeriesService(noSingles{})
		series, found, err := svc.GetNumberSeries(cmd.Context(), domain.SchemaName(args[0]))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s has no number series", args[0])
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), series)
		return err
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
