package models

import (
	"everafterpress.ca/stationery/api/pkg/money"
)

// PricingMode controls how an option's price combines with the order quantity.
type PricingMode string

const (
	// PricingFlat is added to the total once, regardless of quantity.
	PricingFlat PricingMode = "flat"
	// PricingPerUnit is multiplied by the order quantity.
	PricingPerUnit PricingMode = "per_unit"
)

// TierOverride replaces an option's base price at or above a quantity
// threshold. Overrides need not be stored sorted; the evaluator picks the
// highest threshold not exceeding the order quantity.
type TierOverride struct {
	MinQuantity int         `json:"min_quantity" bson:"min_quantity"`
	Price       money.Cents `json:"price" bson:"price"`
}

// PricingOption is one selectable priced attribute within a catalog
// category (a shape, an envelope color, a service add-on).
// Catalog options are reference data: built once at startup, immutable after.
type PricingOption struct {
	ID          string         `json:"id" bson:"id"`
	Name        string         `json:"name" bson:"name"`
	Price       money.Cents    `json:"price" bson:"price"`
	Mode        PricingMode    `json:"mode" bson:"mode"`
	Tiers       []TierOverride `json:"tiers,omitempty" bson:"tiers,omitempty"`
	Swatch      string         `json:"swatch,omitempty" bson:"swatch,omitempty"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
}
