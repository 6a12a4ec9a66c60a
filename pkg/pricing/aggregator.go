package pricing

import (
	"fmt"

	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

// ComputeTotal walks every active selection slot of a configuration and
// sums each selected option's contribution at the configuration's
// quantity. It is a pure function of (configuration, catalog): no state,
// no side effects, so re-evaluating an unchanged configuration always
// reproduces the same total.
//
// Gated groups (envelope, pocket, folio) contribute nothing while their
// gate is off, whatever their stored selections say. Multi-select slots
// are sets: duplicates count once and order never matters.
func ComputeTotal(cfg models.Configuration, reg *catalog.Registry) (money.Cents, error) {
	if !reg.ValidQuantity(cfg.Quantity) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, cfg.Quantity)
	}

	var total money.Cents

	materialCategory, err := catalog.MaterialCategoryFor(cfg.InvitationType)
	if err != nil {
		return 0, err
	}
	for _, sel := range []struct {
		category catalog.Category
		id       string
	}{
		{materialCategory, cfg.BaseMaterial},
		{catalog.CategoryShape, cfg.Shape},
		{catalog.CategoryPrintColor, cfg.PrintColor},
	} {
		opt, err := reg.Option(sel.category, sel.id)
		if err != nil {
			return 0, err
		}
		total += Evaluate(opt, cfg.Quantity)
	}

	if cfg.Envelope.Included {
		singles := []struct {
			category catalog.Category
			id       string
		}{
			{catalog.CategoryEnvelopeMaterial, cfg.Envelope.Material},
			{catalog.CategoryEnvelopeColor, cfg.Envelope.Color},
		}
		for _, sel := range singles {
			opt, err := reg.Option(sel.category, sel.id)
			if err != nil {
				return 0, err
			}
			total += Evaluate(opt, cfg.Quantity)
		}
		sets := []struct {
			category catalog.Category
			ids      []string
		}{
			{catalog.CategoryEnvelopeEmbellishment, cfg.Envelope.Embellishments},
			{catalog.CategoryEnvelopeLiner, cfg.Envelope.Liners},
			{catalog.CategoryEnvelopeSeal, cfg.Envelope.Seals},
			{catalog.CategoryEnvelopeAddressing, cfg.Envelope.Addressing},
		}
		for _, sel := range sets {
			sum, err := sumSet(reg, sel.category, sel.ids, cfg.Quantity)
			if err != nil {
				return 0, err
			}
			total += sum
		}
	}

	if cfg.Pocket.Included {
		for _, sel := range []struct {
			category catalog.Category
			id       string
		}{
			{catalog.CategoryPocketMaterial, cfg.Pocket.Material},
			{catalog.CategoryPocketColor, cfg.Pocket.Color},
		} {
			opt, err := reg.Option(sel.category, sel.id)
			if err != nil {
				return 0, err
			}
			total += Evaluate(opt, cfg.Quantity)
		}
		sum, err := sumSet(reg, catalog.CategoryPocketEmbellishment, cfg.Pocket.Embellishments, cfg.Quantity)
		if err != nil {
			return 0, err
		}
		total += sum
	}

	if cfg.Folio.Included {
		// Style itself is free; it scopes the material list.
		if _, err := reg.Option(catalog.CategoryFolioStyle, cfg.Folio.Style); err != nil {
			return 0, err
		}
		material, err := reg.FolioMaterial(cfg.Folio.Style, cfg.Folio.Material)
		if err != nil {
			return 0, err
		}
		total += Evaluate(material, cfg.Quantity)

		color, err := reg.Option(catalog.CategoryFolioColor, cfg.Folio.Color)
		if err != nil {
			return 0, err
		}
		total += Evaluate(color, cfg.Quantity)

		sum, err := sumSet(reg, catalog.CategoryFolioEmbellishment, cfg.Folio.Embellishments, cfg.Quantity)
		if err != nil {
			return 0, err
		}
		total += sum
	}

	for _, id := range uniqueIDs(cfg.Inserts) {
		opt, err := reg.Insert(cfg.InsertPrintMethod, id)
		if err != nil {
			return 0, err
		}
		total += Evaluate(opt, cfg.Quantity)
	}

	sum, err := sumSet(reg, catalog.CategoryService, cfg.Services, cfg.Quantity)
	if err != nil {
		return 0, err
	}
	total += sum

	return total, nil
}

func sumSet(reg *catalog.Registry, c catalog.Category, ids []string, quantity int) (money.Cents, error) {
	var sum money.Cents
	for _, id := range uniqueIDs(ids) {
		opt, err := reg.Option(c, id)
		if err != nil {
			return 0, err
		}
		sum += Evaluate(opt, quantity)
	}
	return sum, nil
}

// uniqueIDs collapses a stored multi-select slice into a set, preserving
// first-seen order so summation stays deterministic to observe in logs.
func uniqueIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
