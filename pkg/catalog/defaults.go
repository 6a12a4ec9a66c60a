package catalog

import (
	"everafterpress.ca/stationery/api/pkg/models"
)

// Dependent-defaults rules. Changing a discriminator (invitation type,
// folio style, insert print method) swaps the option list its dependent
// slot draws from, so the dependent selection is reset to the new list's
// first entry. These are engine rules, not UI convenience: a stored
// configuration that skipped them is rejected at quote-build time.

// NewConfiguration returns a configuration with every single-select slot
// defaulted to the first entry of its list, gates off, quantity at the
// lowest tier, and empty multi-select slots.
func (r *Registry) NewConfiguration() models.Configuration {
	cfg := models.Configuration{
		Quantity:          r.quantityTiers[0],
		InvitationType:    models.InvitationAcrylic,
		Shape:             r.first(CategoryShape),
		PrintColor:        r.first(CategoryPrintColor),
		InsertPrintMethod: models.InsertFoil,
		Inserts:           []string{},
		Services:          []string{},
	}
	cfg.BaseMaterial = r.first(CategoryAcrylicMaterial)

	cfg.Envelope = models.EnvelopeGroup{
		Material:       r.first(CategoryEnvelopeMaterial),
		Color:          r.first(CategoryEnvelopeColor),
		Embellishments: []string{},
		Liners:         []string{},
		Seals:          []string{},
		Addressing:     []string{},
	}
	cfg.Pocket = models.PocketGroup{
		Material:       r.first(CategoryPocketMaterial),
		Color:          r.first(CategoryPocketColor),
		Embellishments: []string{},
	}

	style := r.first(CategoryFolioStyle)
	cfg.Folio = models.FolioGroup{
		Style:          style,
		Material:       r.folioMaterials[style][0].ID,
		Color:          r.first(CategoryFolioColor),
		Embellishments: []string{},
	}
	return cfg
}

// SetInvitationType switches the active base-material list and resets the
// base material to the new list's first entry.
func (r *Registry) SetInvitationType(cfg *models.Configuration, t models.InvitationType) error {
	category, err := MaterialCategoryFor(t)
	if err != nil {
		return err
	}
	cfg.InvitationType = t
	cfg.BaseMaterial = r.lists[category][0].ID
	return nil
}

// SetFolioStyle switches the folio style and resets the folio material to
// the first entry of the new style's material list.
func (r *Registry) SetFolioStyle(cfg *models.Configuration, styleID string) error {
	if _, err := r.Option(CategoryFolioStyle, styleID); err != nil {
		return err
	}
	materials, err := r.MaterialsFor(styleID)
	if err != nil {
		return err
	}
	cfg.Folio.Style = styleID
	cfg.Folio.Material = materials[0].ID
	return nil
}

// SetInsertPrintMethod swaps the eligible insert list and clears the
// insert selections, which belong to the previous list.
func (r *Registry) SetInsertPrintMethod(cfg *models.Configuration, method models.InsertPrintMethod) error {
	if _, err := r.InsertsFor(method); err != nil {
		return err
	}
	cfg.InsertPrintMethod = method
	cfg.Inserts = []string{}
	return nil
}

func (r *Registry) first(c Category) string {
	return r.lists[c][0].ID
}
