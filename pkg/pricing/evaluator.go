package pricing

import (
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

// EffectiveUnitPrice resolves the price an option charges at a given
// quantity: the tier override with the highest threshold not exceeding
// the quantity, or the base price when no threshold qualifies. Overrides
// are scanned, not assumed sorted.
func EffectiveUnitPrice(opt models.PricingOption, quantity int) money.Cents {
	price := opt.Price
	best := 0
	for _, tier := range opt.Tiers {
		if tier.MinQuantity <= quantity && tier.MinQuantity > best {
			best = tier.MinQuantity
			price = tier.Price
		}
	}
	return price
}

// Evaluate returns the amount one option contributes to an order of the
// given quantity. Flat options charge once; per-unit options scale with
// quantity. The caller validates the quantity against the tier list
// before evaluation.
func Evaluate(opt models.PricingOption, quantity int) money.Cents {
	price := EffectiveUnitPrice(opt, quantity)
	if opt.Mode == models.PricingFlat {
		return price
	}
	return price.Mul(quantity)
}
