package monta

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// GetProductStocks looks up the stock of several products concurrently and
// returns the raw body per SKU. The first failure cancels the remaining
// lookups and is returned.
func (c *Client) GetProductStocks(ctx context.Context, skus []string, includeSplitStock bool) (map[string]string, error) {
	results := make(map[string]string, len(skus))
	if len(skus) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var mu sync.Mutex

	for _, sku := range skus {
		g.Go(func() error {
			body, err := c.GetProductStock(ctx, sku, includeSplitStock)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("sku", sku).
					Msg("Failed to get product stock")
				return fmt.Errorf("stock for %s: %w", sku, err)
			}

			mu.Lock()
			results[sku] = body
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(results)).Msg("Retrieved product stock")
	return results, nil
}
