package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"everafterpress.ca/stationery/api/pkg/models"
)

func minimalLists() map[Category][]models.PricingOption {
	lists := make(map[Category][]models.PricingOption, len(categoryOrder))
	for _, c := range categoryOrder {
		lists[c] = []models.PricingOption{
			{ID: "a", Name: "A", Price: 100, Mode: models.PricingPerUnit},
			{ID: "b", Name: "B", Price: 200, Mode: models.PricingFlat},
		}
	}
	return lists
}

func minimalFolioMaterials() map[string][]models.PricingOption {
	return map[string][]models.PricingOption{
		"a": {{ID: "m1", Name: "M1", Price: 50, Mode: models.PricingPerUnit}},
		"b": {{ID: "m2", Name: "M2", Price: 60, Mode: models.PricingPerUnit}},
	}
}

func minimalInsertLists() map[models.InsertPrintMethod][]models.PricingOption {
	return map[models.InsertPrintMethod][]models.PricingOption{
		models.InsertFoil:    {{ID: "i1", Name: "I1", Price: 30, Mode: models.PricingPerUnit}},
		models.InsertDigital: {{ID: "i2", Name: "I2", Price: 20, Mode: models.PricingPerUnit}},
	}
}

func TestNewValidCatalog(t *testing.T) {
	reg, err := New(minimalLists(), minimalFolioMaterials(), minimalInsertLists(), []int{25, 50})
	require.NoError(t, err)
	assert.NotNil(t, reg)
}

func TestNewRejectsInvalidCatalogs(t *testing.T) {
	tiers := []int{25, 50}

	t.Run("empty list", func(t *testing.T) {
		lists := minimalLists()
		lists[CategoryShape] = nil
		_, err := New(lists, minimalFolioMaterials(), minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("duplicate id", func(t *testing.T) {
		lists := minimalLists()
		lists[CategoryService] = []models.PricingOption{
			{ID: "dup", Name: "One", Price: 10, Mode: models.PricingFlat},
			{ID: "dup", Name: "Two", Price: 20, Mode: models.PricingFlat},
		}
		_, err := New(lists, minimalFolioMaterials(), minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "duplicate id")
	})

	t.Run("negative price", func(t *testing.T) {
		lists := minimalLists()
		lists[CategoryPrintColor] = []models.PricingOption{
			{ID: "bad", Name: "Bad", Price: -5, Mode: models.PricingPerUnit},
		}
		_, err := New(lists, minimalFolioMaterials(), minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "negative price")
	})

	t.Run("unknown pricing mode", func(t *testing.T) {
		lists := minimalLists()
		lists[CategoryShape] = []models.PricingOption{
			{ID: "bad", Name: "Bad", Price: 10, Mode: "per_dozen"},
		}
		_, err := New(lists, minimalFolioMaterials(), minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "pricing mode")
	})

	t.Run("invalid tier override", func(t *testing.T) {
		lists := minimalLists()
		lists[CategoryShape] = []models.PricingOption{
			{ID: "bad", Name: "Bad", Price: 10, Mode: models.PricingPerUnit,
				Tiers: []models.TierOverride{{MinQuantity: 0, Price: 5}}},
		}
		_, err := New(lists, minimalFolioMaterials(), minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "tier override")
	})

	t.Run("missing folio material list", func(t *testing.T) {
		materials := minimalFolioMaterials()
		delete(materials, "b")
		_, err := New(minimalLists(), materials, minimalInsertLists(), tiers)
		assert.ErrorContains(t, err, "folio_material[b]")
	})

	t.Run("missing insert list", func(t *testing.T) {
		inserts := minimalInsertLists()
		delete(inserts, models.InsertDigital)
		_, err := New(minimalLists(), minimalFolioMaterials(), inserts, tiers)
		assert.ErrorContains(t, err, "inserts[digital]")
	})

	t.Run("no quantity tiers", func(t *testing.T) {
		_, err := New(minimalLists(), minimalFolioMaterials(), minimalInsertLists(), nil)
		assert.ErrorContains(t, err, "quantity tiers")
	})

	t.Run("unsorted quantity tiers", func(t *testing.T) {
		_, err := New(minimalLists(), minimalFolioMaterials(), minimalInsertLists(), []int{50, 25})
		assert.ErrorContains(t, err, "ascending")
	})
}

func TestLookupErrors(t *testing.T) {
	reg := Default()

	_, err := reg.ListFor(Category("ribbon"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = reg.MaterialsFor("trifold")
	assert.ErrorIs(t, err, ErrUnknownStyle)

	_, err = reg.InsertsFor(models.InsertPrintMethod("letterpress"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = reg.Option(CategoryShape, "starburst")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = reg.FolioMaterial("hardcover", "linen-wrap")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = reg.Insert(models.InsertFoil, "timeline-card-digital")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestDefaultCatalogShape(t *testing.T) {
	reg := Default()

	for _, c := range reg.Categories() {
		opts, err := reg.ListFor(c)
		require.NoError(t, err)
		assert.NotEmpty(t, opts, "category %s", c)
	}

	// Folio styles carry no price of their own; the material list they
	// scope does the pricing.
	styles, err := reg.ListFor(CategoryFolioStyle)
	require.NoError(t, err)
	for _, style := range styles {
		assert.Zero(t, style.Price, "style %s", style.ID)
		materials, err := reg.MaterialsFor(style.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, materials, "materials for %s", style.ID)
	}

	// Insert ids never cross print-method lists.
	foil, err := reg.InsertsFor(models.InsertFoil)
	require.NoError(t, err)
	digital, err := reg.InsertsFor(models.InsertDigital)
	require.NoError(t, err)
	digitalIDs := make(map[string]bool, len(digital))
	for _, opt := range digital {
		digitalIDs[opt.ID] = true
	}
	for _, opt := range foil {
		assert.False(t, digitalIDs[opt.ID], "insert %s appears in both lists", opt.ID)
	}
}

func TestMaterialCategoryFor(t *testing.T) {
	cases := []struct {
		invType models.InvitationType
		want    Category
	}{
		{models.InvitationAcrylic, CategoryAcrylicMaterial},
		{models.InvitationVellum, CategoryVellumMaterial},
		{models.InvitationPaper, CategoryPaperMaterial},
	}
	for _, tc := range cases {
		got, err := MaterialCategoryFor(tc.invType)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := MaterialCategoryFor(models.InvitationType("glass"))
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestQuantityTiers(t *testing.T) {
	reg := Default()

	tiers := reg.QuantityTiers()
	require.NotEmpty(t, tiers)
	assert.Equal(t, 25, tiers[0])
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i], tiers[i-1])
	}

	assert.True(t, reg.ValidQuantity(25))
	assert.True(t, reg.ValidQuantity(300))
	assert.False(t, reg.ValidQuantity(0))
	assert.False(t, reg.ValidQuantity(26))
	assert.False(t, reg.ValidQuantity(-25))

	// Mutating the returned slice must not leak into the registry.
	tiers[0] = 1
	assert.False(t, reg.ValidQuantity(1))
}
