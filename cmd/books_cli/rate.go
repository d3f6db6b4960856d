package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/books_core/internal/adapters/cache"
	"github.com/SscSPs/books_core/internal/adapters/ratesapi"
	"github.com/SscSPs/books_core/internal/core/domain"
	"github.com/SscSPs/books_core/internal/core/services"
	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate FROM TO",
	Short: "Look up an exchange rate",
	Long: `Looks up the rate converting FROM into TO.

The remote API is configured with EXCHANGE_RATE_API_URL and EXCHANGE_RATE_TIMEOUT.
When the lookup fails the rate falls back to 1 and the source says so.`,
	Example: `  books rate USD INR
  books rate EUR USD --date 2024-03-01
  books rate EUR USD --offline`,
	Args: cobra.ExactArgs(2),
	RunE: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)

	rateCmd.Flags().String("date", "", "Rate date (format: YYYY-MM-DD, default: today)")
	rateCmd.Flags().Bool("offline", false, "Skip the remote API, every rate is 1")
	rateCmd.Flags().Bool("json", false, "Print the rate as JSON")
}

func runRate(cmd *cobra.Command, args []string) error {
	dateStr, _ := cmd.Flags().GetString("date")
	offline, _ := cmd.Flags().GetBool("offline")
	asJSON, _ := cmd.Flags().GetBool("json")

	from, to := strings.ToUpper(args[0]), strings.ToUpper(args[1])

	var date *time.Time
	if dateStr != "" {
		parsed, err := time.Parse(domain.RateDateLayout, dateStr)
		if err != nil {
			return fmt.Errorf("invalid date format. Use YYYY-MM-DD: %w", err)
		}
		date = &parsed
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	options := []services.ExchangeRateOption{services.WithLocation(cfg.Location())}
	if !offline && cfg.ExchangeRateOnline {
		options = append(options, services.WithRateProvider(ratesapi.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateTimeout)))
	}
	svc := services.NewExchangeRateService(cache.NewDefaultMemoryStore(), options...)

	rate := svc.GetExchangeRate(cmd.Context(), from, to, date)
	if asJSON {
		return printJSON(cmd, rate)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s on %s (%s)\n", rate.From, rate.Rate.String(), rate.To, rate.Date, rate.Source)
	return err
}
