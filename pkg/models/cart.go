package models

import (
	"strings"

	"everafterpress.ca/stationery/api/pkg/money"
)

// Cart models for Redis session-based storage. A custom stationery order
// enters checkout as a synthetic deposit line carrying the quote's display
// details in its customizations map; catalog products share the same shape.

const DepositSKUPrefix = "DEPOSIT-"

type CartItem struct {
	SKU            string            `json:"sku" redis:"sku"`
	ProductName    string            `json:"product_name" redis:"product_name"`
	QuoteID        string            `json:"quote_id,omitempty" redis:"quote_id"`
	Price          money.Cents       `json:"price" redis:"price"`
	Quantity       int               `json:"quantity" redis:"quantity"`
	Subtotal       money.Cents       `json:"subtotal" redis:"subtotal"`
	Customizations map[string]string `json:"customizations,omitempty"`
	AddedAt        string            `json:"added_at" redis:"added_at"`
}

// IsDeposit reports whether the line is the synthetic deposit product for
// a custom configuration rather than a catalog item. The SKU prefix is
// the discriminator; QuoteID is informational and may be empty on lines
// parsed from older cart hashes.
func (ci *CartItem) IsDeposit() bool {
	return strings.HasPrefix(ci.SKU, DepositSKUPrefix)
}

type Cart struct {
	SessionID   string               `json:"session_id"`
	Items       map[string]*CartItem `json:"items"` // keyed by SKU
	Subtotal    money.Cents          `json:"subtotal"`
	Total       money.Cents          `json:"total"`
	ItemCount   int                  `json:"item_count"`
	LastUpdated string               `json:"last_updated"`
	ExpiresAt   string               `json:"expires_at"`
}
