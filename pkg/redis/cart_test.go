package redis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

func cartWithDeposit() *models.Cart {
	cart := createEmptyCart("session-1")
	sku := models.DepositSKUPrefix + "QTE-20260115-101500-a3f0c1"
	cart.Items[sku] = &models.CartItem{
		SKU:      sku,
		Price:    money.Cents(15500),
		Quantity: 1,
		Subtotal: money.Cents(15500),
	}
	return cart
}

func TestRemoveLine(t *testing.T) {
	cart := cartWithDeposit()
	sku := models.DepositSKUPrefix + "QTE-20260115-101500-a3f0c1"

	err := removeLine(cart, "SAMPLE-PACK")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.Len(t, cart.Items, 1)

	require.NoError(t, removeLine(cart, sku))
	assert.Empty(t, cart.Items)

	// A wrapped sentinel still matches at the handler boundary.
	wrapped := fmt.Errorf("removing cart line: %w", ErrItemNotFound)
	assert.ErrorIs(t, wrapped, ErrItemNotFound)
}

func TestCalculateCartTotals(t *testing.T) {
	cart := cartWithDeposit()
	cart.Items["SAMPLE-PACK"] = &models.CartItem{
		SKU:      "SAMPLE-PACK",
		Price:    money.Cents(1200),
		Quantity: 2,
		Subtotal: money.Cents(2400),
	}

	calculateCartTotals(cart)
	assert.Equal(t, money.Cents(17900), cart.Subtotal)
	assert.Equal(t, 3, cart.ItemCount)
	// Taxes and shipping are settled on the final balance invoice.
	assert.Equal(t, cart.Subtotal, cart.Total)
}

func TestParseCartItem(t *testing.T) {
	item := parseCartItem(map[string]string{
		"sku":            models.DepositSKUPrefix + "QTE-20260115-101500-a3f0c1",
		"product_name":   "Custom Invitation Deposit",
		"quote_id":       "656a1f2e9d3b4c0012345678",
		"price":          "15500",
		"quantity":       "1",
		"subtotal":       "15500",
		"customizations": `{"Quantity":"25","Estimated Total":"$155.00"}`,
		"added_at":       "2026-01-15T10:15:00Z",
	})

	assert.True(t, item.IsDeposit())
	assert.Equal(t, money.Cents(15500), item.Price)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "$155.00", item.Customizations["Estimated Total"])
	assert.Equal(t, "2026-01-15T10:15:00Z", item.AddedAt)
}
