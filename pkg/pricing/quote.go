package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

// Preview is a priced configuration that has not been persisted: the
// grand total plus the human-readable summary lines derived from it.
type Preview struct {
	Total   money.Cents       `json:"total"`
	Details map[string]string `json:"details"`
}

// PreviewConfiguration validates and prices a configuration without
// persisting anything. Both the live configurator and BuildQuote go
// through here, so a stored quote redisplays with exactly the strings and
// total the user saw when saving.
func PreviewConfiguration(cfg models.Configuration, reg *catalog.Registry) (*Preview, error) {
	if err := ValidateDependentSlots(cfg, reg); err != nil {
		return nil, err
	}
	total, err := ComputeTotal(cfg, reg)
	if err != nil {
		return nil, err
	}
	details, err := displayDetails(cfg, reg, total)
	if err != nil {
		return nil, err
	}
	return &Preview{Total: total, Details: details}, nil
}

// BuildQuote converts a configuration into a persistable quote snapshot
// for the given user. The returned quote's total equals what ComputeTotal
// yields for the same configuration and catalog.
func BuildQuote(cfg models.Configuration, reg *catalog.Registry, userID string) (*models.Quote, error) {
	preview, err := PreviewConfiguration(cfg, reg)
	if err != nil {
		return nil, err
	}
	quote := &models.Quote{
		ID:             bson.NewObjectID(),
		QuoteNumber:    models.GenerateQuoteNumber(),
		UserID:         userID,
		Status:         models.QuoteStatusSaved,
		TotalPrice:     preview.Total,
		Configuration:  cfg,
		DisplayDetails: preview.Details,
	}
	quote.SetTimestamps()
	return quote, nil
}

// ValidateDependentSlots rejects configurations whose dependent slots are
// stale relative to their discriminator: a folio material outside the
// selected style's list, or an insert outside the selected print method's
// list. The UI resets these slots proactively on discriminator change, but
// stored or transmitted configurations may not have gone through that
// path, so the check is enforced here regardless of group gates.
func ValidateDependentSlots(cfg models.Configuration, reg *catalog.Registry) error {
	if _, err := reg.FolioMaterial(cfg.Folio.Style, cfg.Folio.Material); err != nil {
		return fmt.Errorf("%w: folio material %q for style %q: %v",
			ErrInvalidConfiguration, cfg.Folio.Material, cfg.Folio.Style, err)
	}
	for _, id := range cfg.Inserts {
		if _, err := reg.Insert(cfg.InsertPrintMethod, id); err != nil {
			return fmt.Errorf("%w: insert %q for print method %q: %v",
				ErrInvalidConfiguration, id, cfg.InsertPrintMethod, err)
		}
	}
	return nil
}

// Notification builds the payload handed to the email collaborator when a
// quote is saved.
func Notification(q *models.Quote) models.QuoteNotification {
	return models.QuoteNotification{
		InvitationType: q.Configuration.InvitationType,
		Quantity:       q.Configuration.Quantity,
		Material:       q.DisplayDetails["Base Material"],
		Shape:          q.DisplayDetails["Shape"],
		EstimatedTotal: q.TotalPrice.Format(),
	}
}

// displayDetails denormalizes a configuration into label -> value strings
// for summary rendering. Values are derived solely from the configuration
// and the catalog; no hidden state leaks into the stored quote.
func displayDetails(cfg models.Configuration, reg *catalog.Registry, total money.Cents) (map[string]string, error) {
	details := map[string]string{
		"Invitation Type": titleCase(string(cfg.InvitationType)),
		"Quantity":        strconv.Itoa(cfg.Quantity),
		"Print Method":    titleCase(string(cfg.InsertPrintMethod)),
		"Estimated Total": total.Format(),
	}

	materialCategory, err := catalog.MaterialCategoryFor(cfg.InvitationType)
	if err != nil {
		return nil, err
	}
	singles := []struct {
		label    string
		category catalog.Category
		id       string
	}{
		{"Base Material", materialCategory, cfg.BaseMaterial},
		{"Shape", catalog.CategoryShape, cfg.Shape},
		{"Print Color", catalog.CategoryPrintColor, cfg.PrintColor},
	}
	for _, s := range singles {
		opt, err := reg.Option(s.category, s.id)
		if err != nil {
			return nil, err
		}
		details[s.label] = opt.Name
	}

	details["Envelopes"] = includedLabel(cfg.Envelope.Included)
	if cfg.Envelope.Included {
		if err := addSingle(details, reg, "Envelope Material", catalog.CategoryEnvelopeMaterial, cfg.Envelope.Material); err != nil {
			return nil, err
		}
		if err := addSingle(details, reg, "Envelope Color", catalog.CategoryEnvelopeColor, cfg.Envelope.Color); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Envelope Embellishments", catalog.CategoryEnvelopeEmbellishment, cfg.Envelope.Embellishments); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Envelope Liner", catalog.CategoryEnvelopeLiner, cfg.Envelope.Liners); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Envelope Seals", catalog.CategoryEnvelopeSeal, cfg.Envelope.Seals); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Envelope Addressing", catalog.CategoryEnvelopeAddressing, cfg.Envelope.Addressing); err != nil {
			return nil, err
		}
	}

	details["Pocket"] = includedLabel(cfg.Pocket.Included)
	if cfg.Pocket.Included {
		if err := addSingle(details, reg, "Pocket Material", catalog.CategoryPocketMaterial, cfg.Pocket.Material); err != nil {
			return nil, err
		}
		if err := addSingle(details, reg, "Pocket Color", catalog.CategoryPocketColor, cfg.Pocket.Color); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Pocket Embellishments", catalog.CategoryPocketEmbellishment, cfg.Pocket.Embellishments); err != nil {
			return nil, err
		}
	}

	details["Folio"] = includedLabel(cfg.Folio.Included)
	if cfg.Folio.Included {
		if err := addSingle(details, reg, "Folio Style", catalog.CategoryFolioStyle, cfg.Folio.Style); err != nil {
			return nil, err
		}
		material, err := reg.FolioMaterial(cfg.Folio.Style, cfg.Folio.Material)
		if err != nil {
			return nil, err
		}
		details["Folio Material"] = material.Name
		if err := addSingle(details, reg, "Folio Color", catalog.CategoryFolioColor, cfg.Folio.Color); err != nil {
			return nil, err
		}
		if err := addSet(details, reg, "Folio Embellishments", catalog.CategoryFolioEmbellishment, cfg.Folio.Embellishments); err != nil {
			return nil, err
		}
	}

	if names, err := insertNames(reg, cfg.InsertPrintMethod, cfg.Inserts); err != nil {
		return nil, err
	} else if names != "" {
		details["Inserts"] = names
	}
	if err := addSet(details, reg, "Services", catalog.CategoryService, cfg.Services); err != nil {
		return nil, err
	}

	if cfg.DesignNotes != "" {
		details["Design Notes"] = cfg.DesignNotes
	}
	return details, nil
}

func addSingle(details map[string]string, reg *catalog.Registry, label string, c catalog.Category, id string) error {
	opt, err := reg.Option(c, id)
	if err != nil {
		return err
	}
	details[label] = opt.Name
	return nil
}

func addSet(details map[string]string, reg *catalog.Registry, label string, c catalog.Category, ids []string) error {
	names := make([]string, 0, len(ids))
	for _, id := range uniqueIDs(ids) {
		opt, err := reg.Option(c, id)
		if err != nil {
			return err
		}
		names = append(names, opt.Name)
	}
	if len(names) > 0 {
		details[label] = strings.Join(names, ", ")
	}
	return nil
}

func insertNames(reg *catalog.Registry, method models.InsertPrintMethod, ids []string) (string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range uniqueIDs(ids) {
		opt, err := reg.Insert(method, id)
		if err != nil {
			return "", err
		}
		names = append(names, opt.Name)
	}
	return strings.Join(names, ", "), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func includedLabel(included bool) string {
	if included {
		return "Included"
	}
	return "Not included"
}
