package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/monta/monta"
)

var (
	catalogFilter string
	catalogOutput string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the operations of the endpoint catalog",
	Long: `List the operations of the endpoint catalog. --filter takes the name of a
filter from the config file or an expression, for example:

  monta catalog --filter 'Domain == "order" && isWrite()'
  monta catalog --filter 'hasQuery("sku")' --output yaml

Expressions see Name, Domain, Method, Path, Query, Placeholders, Body and
Description, plus hasQuery, hasPlaceholder, isRead, isWrite, hasText,
hasPrefix, hasSuffix, lower and upper.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: initializeCatalog,
	RunE:              runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFilter, "filter", "f", "", "filter name or expression")
	catalogCmd.Flags().StringVarP(&catalogOutput, "output", "o", "table", "output format: table, yaml or json")
	rootCmd.AddCommand(catalogCmd)
}

// initializeCatalog loads named filters when a configuration is available.
// The catalog itself needs no credentials.
func initializeCatalog(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		if cfgFile != "" {
			return err
		}
		logger.Debug().Err(err).Msg("Listing catalog without configuration")
	}
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	ops := monta.Catalog()

	if catalogFilter != "" {
		var err error
		if ops, err = filters.Apply(catalogFilter, ops); err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	return renderCatalog(cmd.OutOrStdout(), ops, catalogOutput)
}

func renderCatalog(w io.Writer, ops []monta.Operation, format string) error {
	switch strings.ToLower(format) {
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tMETHOD\tPATH\tQUERY\tBODY")
		for _, op := range ops {
			query := "-"
			if len(op.Query) > 0 {
				query = strings.Join(op.Query, ",")
			}
			body := "-"
			if op.Body {
				body = "json"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", op.Name, op.Method, op.Path, query, body)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%d operations\n", len(ops))
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ops); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(ops, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	default:
		return fmt.Errorf("unknown output format %q (must be table, yaml or json)", format)
	}
}
