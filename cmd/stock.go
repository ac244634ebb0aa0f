package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var includeSplitStock bool

var stockCmd = &cobra.Command{
	Use:   "stock <sku>...",
	Short: "Show the stock of one or more products",
	Long: `Show the stock of one or more products. Several SKUs are looked up
concurrently, limited by monta.concurrency.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStock,
}

func init() {
	stockCmd.Flags().BoolVar(&includeSplitStock, "split", false, "include split stock per warehouse")
	rootCmd.AddCommand(stockCmd)
}

func runStock(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		body, err := client.GetProductStock(cmd.Context(), args[0], includeSplitStock)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, body)
		return nil
	}

	stocks, err := client.GetProductStocks(cmd.Context(), args, includeSplitStock)
	if err != nil {
		return err
	}

	for _, sku := range args {
		fmt.Fprintf(out, "== %s ==\n%s\n", sku, stocks[sku])
	}
	return nil
}
