package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/monta/monta"
)

var (
	getStock = monta.Operation{
		Name:   "getProductStock",
		Domain: monta.DomainProduct,
		Method: monta.MethodGet,
		Path:   "products/stock",
		Query:  []string{"sku", "includeSplitStock"},
	}
	createOrder = monta.Operation{
		Name:        "createOrder",
		Domain:      monta.DomainOrder,
		Method:      monta.MethodPost,
		Path:        "order",
		Body:        true,
		Description: "Create an order",
	}
	deleteBarcode = monta.Operation{
		Name:   "deleteBarcode",
		Domain: monta.DomainProduct,
		Method: monta.MethodDelete,
		Path:   "product/{sku}/barcode/{barcode}",
	}
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "field comparison",
			expression: `Domain == "order"`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `Domain == "unclosed`,
			wantErr:    true,
		},
		{
			name:       "type mismatch",
			expression: `Body == "yes"`,
			wantErr:    true,
		},
		{
			name:       "not boolean",
			expression: `Path`,
			wantErr:    true,
		},
		{
			name:       "helpers",
			expression: `isRead() and hasQuery("sku") and hasPrefix(Path, "products")`,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, filter.Expression())
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expression string
		op         monta.Operation
		want       bool
	}{
		{`Domain == "order"`, createOrder, true},
		{`Domain == "order"`, getStock, false},
		{`Method == "GET"`, getStock, true},
		{`Body`, createOrder, true},
		{`isWrite() and not Body`, deleteBarcode, true},
		{`hasPlaceholder("BARCODE")`, deleteBarcode, true},
		{`len(Placeholders) == 0`, getStock, true},
		{`hasQuery("includeSplitStock")`, getStock, true},
		{`"sku" in Query`, createOrder, false},
		{`hasText(Description, "ORDER")`, createOrder, true},
		{`hasSuffix(Name, "stock")`, getStock, true},
		{`upper(Method) == "DELETE"`, deleteBarcode, true},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.expression+"/"+tt.op.Name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter.Evaluate(tt.op))
		})
	}
}

func TestEvaluationError(t *testing.T) {
	filter, err := NewExprCompiler().Compile(`Query[3] == "x"`)
	require.NoError(t, err)

	_, err = filter.Match(getStock)
	require.Error(t, err)

	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "getProductStock", evalErr.Operation)
	assert.False(t, filter.Evaluate(getStock))
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isProduct": func(domain string) bool { return domain == monta.DomainProduct },
	}))

	filter, err := compiler.Compile(`isProduct(Domain)`)
	require.NoError(t, err)
	assert.True(t, filter.Evaluate(getStock))
	assert.False(t, filter.Evaluate(createOrder))
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))
	cachingCompiler, ok := compiler.(CachingCompiler)
	require.True(t, ok)

	first, err := compiler.Compile(`Body`)
	require.NoError(t, err)
	second, err := compiler.Compile(`  Body  `)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, cachingCompiler.Size())

	_, err = compiler.Compile(`isRead()`)
	require.NoError(t, err)
	_, err = compiler.Compile(`isWrite()`)
	require.NoError(t, err)
	assert.Equal(t, 2, cachingCompiler.Size())

	// Body was evicted as least recently used
	third, err := compiler.Compile(`Body`)
	require.NoError(t, err)
	assert.NotSame(t, first, third)

	cachingCompiler.Clear()
	assert.Equal(t, 0, cachingCompiler.Size())
}

func TestManager(t *testing.T) {
	manager := NewManager()

	err := manager.RegisterFilters(map[string]string{
		"writes":   `isWrite()`,
		"products": `Domain == "product"`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"products", "writes"}, manager.ListFilters())

	ops := []monta.Operation{getStock, createOrder, deleteBarcode}

	t.Run("named filter", func(t *testing.T) {
		got, err := manager.Apply("writes", ops)
		require.NoError(t, err)
		assert.Equal(t, []monta.Operation{createOrder, deleteBarcode}, got)
	})

	t.Run("inline expression", func(t *testing.T) {
		got, err := manager.Apply(`Name == "getProductStock"`, ops)
		require.NoError(t, err)
		assert.Equal(t, []monta.Operation{getStock}, got)
	})

	t.Run("bad expression", func(t *testing.T) {
		_, err := manager.Apply(`Domain ==`, ops)
		assert.Error(t, err)
	})

	t.Run("register rejects all on failure", func(t *testing.T) {
		err := manager.RegisterFilters(map[string]string{
			"ok":     `Body`,
			"broken": `Body ==`,
		})
		require.Error(t, err)
		_, exists := manager.GetFilter("ok")
		assert.False(t, exists)
	})

	t.Run("unregister", func(t *testing.T) {
		manager.UnregisterFilter("writes")
		_, exists := manager.GetFilter("writes")
		assert.False(t, exists)
	})
}

func TestSelectWholeCatalog(t *testing.T) {
	filter, err := NewExprCompiler().Compile(`Domain == "supplier"`)
	require.NoError(t, err)

	got, err := Select(filter, monta.Catalog())
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, op := range got {
		names[i] = op.Name
	}
	assert.Equal(t, []string{"getSuppliers", "getSupplier", "createSupplier", "updateSupplier"}, names)
}
