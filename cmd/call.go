package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/monta/monta"
)

var callBody string

var callCmd = &cobra.Command{
	Use:   "call <operation> [key=value ...]",
	Short: "Run any operation from the endpoint catalog",
	Long: `Run any operation from the endpoint catalog by name. Path placeholders and
query parameters are given as key=value pairs:

  monta call getProductStock sku=SKU1 includeSplitStock=true
  monta call updateProduct sku=SKU1 --body product.json
  echo '{"WebshopOrderId":"1001"}' | monta call createOrder --body -

Use "monta catalog" to list the operations.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().StringVar(&callBody, "body", "", "JSON body file, or - for stdin")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	op, err := monta.LookupOperation(args[0])
	if err != nil {
		return err
	}

	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}

	var body any
	if callBody != "" {
		if !op.Body {
			return fmt.Errorf("%s does not take a body", op.Name)
		}
		if body, err = readBody(callBody, cmd.InOrStdin()); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("operation", op.Name).
		Str("method", op.Method.String()).
		Str("path", op.Path).
		Msg("Calling operation")

	resp, err := client.Invoke(cmd.Context(), op.Name, params, body)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp)
	return nil
}

// parseParams turns key=value arguments into a map. The value may contain
// "=" and may be empty.
func parseParams(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", arg)
		}
		params[key] = value
	}
	return params, nil
}

// readBody loads a JSON document from path, or from stdin when path is "-".
// The document is passed through unchanged.
func readBody(path string, stdin io.Reader) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("body is not valid JSON")
	}
	return json.RawMessage(data), nil
}
