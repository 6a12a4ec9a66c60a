package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

func TestEvaluateFlatIgnoresQuantity(t *testing.T) {
	opt := models.PricingOption{ID: "rush", Price: 7500, Mode: models.PricingFlat}

	for _, qty := range []int{25, 100, 300} {
		assert.Equal(t, money.Cents(7500), Evaluate(opt, qty), "flat option at qty %d", qty)
	}
}

func TestEvaluatePerUnitScalesLinearly(t *testing.T) {
	opt := models.PricingOption{ID: "assembly", Price: 85, Mode: models.PricingPerUnit}

	assert.Equal(t, money.Cents(85*25), Evaluate(opt, 25))
	assert.Equal(t, money.Cents(85*50), Evaluate(opt, 50))
	assert.Equal(t, money.Cents(85*300), Evaluate(opt, 300))
}

func TestEffectiveUnitPriceTierSelection(t *testing.T) {
	// Overrides deliberately stored unsorted; evaluation must pick the
	// highest threshold not exceeding the quantity.
	opt := models.PricingOption{
		ID:    "cotton",
		Price: 110,
		Mode:  models.PricingPerUnit,
		Tiers: []models.TierOverride{
			{MinQuantity: 200, Price: 80},
			{MinQuantity: 50, Price: 100},
			{MinQuantity: 100, Price: 90},
		},
	}

	tests := []struct {
		name     string
		quantity int
		want     money.Cents
	}{
		{"below lowest threshold falls back to base", 25, 110},
		{"exactly at a threshold", 50, 100},
		{"between thresholds uses the lower one", 75, 100},
		{"at the middle threshold", 100, 90},
		{"above the highest threshold", 300, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveUnitPrice(opt, tt.quantity))
		})
	}
}

func TestEvaluateTieredPerUnit(t *testing.T) {
	opt := models.PricingOption{
		ID:    "cotton",
		Price: 110,
		Mode:  models.PricingPerUnit,
		Tiers: []models.TierOverride{{MinQuantity: 100, Price: 90}},
	}

	assert.Equal(t, money.Cents(110*50), Evaluate(opt, 50))
	assert.Equal(t, money.Cents(90*100), Evaluate(opt, 100))
}

// The shipped catalog defines no tier overrides, so every option's
// effective per-unit price must be flat across all permitted quantities.
// If tiers are ever populated they must be discounts, never surcharges.
func TestCatalogTierMonotonicity(t *testing.T) {
	reg := catalog.Default()
	tiers := reg.QuantityTiers()

	checkOption := func(opt models.PricingOption) {
		prev := EffectiveUnitPrice(opt, tiers[0])
		for _, qty := range tiers[1:] {
			current := EffectiveUnitPrice(opt, qty)
			assert.LessOrEqual(t, current, prev,
				"option %s per-unit price increased at qty %d", opt.ID, qty)
			prev = current
		}
		if len(opt.Tiers) == 0 {
			assert.Equal(t, opt.Price, EffectiveUnitPrice(opt, tiers[len(tiers)-1]),
				"untiered option %s must keep its base price at any quantity", opt.ID)
		}
	}

	for _, category := range reg.Categories() {
		opts, err := reg.ListFor(category)
		assert.NoError(t, err)
		for _, opt := range opts {
			checkOption(opt)
		}
	}
	for _, style := range []string{"foldable", "hardcover", "gatefold"} {
		materials, err := reg.MaterialsFor(style)
		assert.NoError(t, err)
		for _, opt := range materials {
			checkOption(opt)
		}
	}
	for _, method := range []models.InsertPrintMethod{models.InsertFoil, models.InsertDigital} {
		inserts, err := reg.InsertsFor(method)
		assert.NoError(t, err)
		for _, opt := range inserts {
			checkOption(opt)
		}
	}
}
