package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLifecycle(t *testing.T) {
	q := Quote{Status: QuoteStatusSaved}
	assert.True(t, q.CanBeOrdered())
	assert.True(t, q.CanBeDeleted())

	q.Status = QuoteStatusOrdered
	assert.False(t, q.CanBeOrdered())
	assert.False(t, q.CanBeDeleted())
}

func TestSetTimestamps(t *testing.T) {
	q := Quote{}
	q.SetTimestamps()
	assert.False(t, q.CreatedAt.IsZero())
	assert.Equal(t, q.CreatedAt, q.UpdatedAt)

	created := q.CreatedAt
	time.Sleep(time.Millisecond)
	q.SetTimestamps()
	assert.Equal(t, created, q.CreatedAt)
	assert.True(t, q.UpdatedAt.After(created))
}

func TestGenerateQuoteNumber(t *testing.T) {
	n := GenerateQuoteNumber()
	assert.True(t, strings.HasPrefix(n, "QTE-"))

	parts := strings.Split(n, "-")
	assert.Len(t, parts, 4)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Len(t, parts[3], 6)
}

func TestGenerateQuoteNumberUniqueWithinSecond(t *testing.T) {
	// Quote numbers back a unique index, so back-to-back saves in the
	// same second must not collide.
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		n := GenerateQuoteNumber()
		assert.False(t, seen[n], "duplicate quote number %s", n)
		seen[n] = true
	}
}

func TestCartItemIsDeposit(t *testing.T) {
	// The SKU prefix alone decides: lines parsed from older cart hashes
	// may carry no quote id.
	deposit := CartItem{SKU: DepositSKUPrefix + "QTE-20260115-101500-a3f0c1"}
	assert.True(t, deposit.IsDeposit())

	withQuoteID := CartItem{
		SKU:     DepositSKUPrefix + "QTE-20260115-101500-a3f0c1",
		QuoteID: "656a1f2e9d3b4c0012345678",
	}
	assert.True(t, withQuoteID.IsDeposit())

	regular := CartItem{SKU: "SAMPLE-PACK", QuoteID: ""}
	assert.False(t, regular.IsDeposit())
}
