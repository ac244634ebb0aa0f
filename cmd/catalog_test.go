package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/monta/monta"
)

func sampleOperations(t *testing.T) []monta.Operation {
	t.Helper()
	var ops []monta.Operation
	for _, name := range []string{"getProductStock", "createOrder"} {
		op, err := monta.LookupOperation(name)
		require.NoError(t, err)
		ops = append(ops, op)
	}
	return ops
}

func TestRenderCatalogTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderCatalog(&buf, sampleOperations(t), "table"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"NAME", "METHOD", "PATH", "QUERY", "BODY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"getProductStock", "GET", "products/stock", "sku,includeSplitStock", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"createOrder", "POST", "order", "-", "json"}, strings.Fields(lines[2]))
	assert.Equal(t, "2 operations", lines[4])
}

func TestRenderCatalogStructured(t *testing.T) {
	ops := sampleOperations(t)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderCatalog(&buf, ops, "YAML"))

		var decoded []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "getProductStock", decoded[0]["name"])
		assert.Equal(t, "GET", decoded[0]["method"])
		assert.Equal(t, true, decoded[1]["body"])
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderCatalog(&buf, ops, "json"))

		var decoded []monta.Operation
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, ops, decoded)
	})

	t.Run("unknown", func(t *testing.T) {
		err := renderCatalog(&bytes.Buffer{}, ops, "xml")
		assert.ErrorContains(t, err, `unknown output format "xml"`)
	})
}

func TestCatalogFilter(t *testing.T) {
	got, err := filters.Apply(`Domain == "inbound" && hasPlaceholder("sku") && isWrite()`, monta.Catalog())
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, op := range got {
		names[i] = op.Name
	}
	assert.Equal(t, []string{"updateInboundForecastBySkuPath", "deleteInboundForecast"}, names)
}
