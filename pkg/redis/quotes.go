package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"everafterpress.ca/stationery/api/pkg/models"
)

// Quote cache. Saved quotes are immutable apart from the status
// transition, which makes them ideal cache candidates: a cached entry is
// only ever refreshed (on order) or dropped (on delete).

const quoteCacheTTL = 24 * time.Hour

// CacheQuote stores a quote snapshot under quote:{id} and tracks it in
// the recent-quotes list.
func CacheQuote(ctx context.Context, quote *models.Quote) error {
	client := RedisClient()
	defer client.Close()

	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote %s: %w", quote.ID.Hex(), err)
	}

	// Use pipeline for atomic operations
	pipe := client.TxPipeline()

	quoteKey := fmt.Sprintf("quote:%s", quote.ID.Hex())
	pipe.Set(ctx, quoteKey, quoteJSON, quoteCacheTTL)

	pipe.LPush(ctx, "quotes:recent", quote.ID.Hex())
	// Keep only the 100 most recent quotes
	pipe.LTrim(ctx, "quotes:recent", 0, 99)
	pipe.Expire(ctx, "quotes:recent", quoteCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute Redis pipeline for quote %s: %w", quote.ID.Hex(), err)
	}
	return nil
}

func GetQuoteFromCache(ctx context.Context, quoteID string) (*models.Quote, error) {
	client := RedisClient()
	defer client.Close()

	quoteKey := fmt.Sprintf("quote:%s", quoteID)
	quoteJSON, err := client.Get(ctx, quoteKey).Result()
	if err != nil {
		return nil, err
	}

	var quote models.Quote
	if err := json.Unmarshal([]byte(quoteJSON), &quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}
	return &quote, nil
}

// RemoveQuoteFromCache drops a quote and its recent-list entry.
func RemoveQuoteFromCache(ctx context.Context, quoteID string) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("quote:%s", quoteID))
	pipe.LRem(ctx, "quotes:recent", 0, quoteID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove quote from Redis cache: %w", err)
	}
	return nil
}
