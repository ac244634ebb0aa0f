package cmd

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

var reportsCreatedAfter string

var reportsCmd = &cobra.Command{
	Use:   "reports [id]",
	Short: "List available reports, or fetch one by id",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReports,
}

func init() {
	reportsCmd.Flags().StringVar(&reportsCreatedAfter, "created-after", "", "only reports created after this date (most date formats are accepted)")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	var (
		body string
		err  error
	)

	if len(args) == 1 {
		body, err = client.GetReport(cmd.Context(), args[0])
	} else {
		createdAfter, perr := normalizeDate(reportsCreatedAfter)
		if perr != nil {
			return perr
		}
		body, err = client.GetReports(cmd.Context(), createdAfter)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), body)
	return nil
}

// normalizeDate parses a loosely formatted date and renders it the way Monta
// expects: a plain date, or date and time when a time of day was given. An
// empty input stays empty.
func normalizeDate(input string) (string, error) {
	if input == "" {
		return "", nil
	}

	t, err := dateparse.ParseLocal(input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", input, err)
	}

	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly), nil
	}
	return t.Format("2006-01-02T15:04:05"), nil
}
