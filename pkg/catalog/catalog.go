package catalog

import (
	"errors"
	"fmt"
	"sort"

	"everafterpress.ca/stationery/api/pkg/models"
)

var (
	ErrUnknownCategory = errors.New("unknown catalog category")
	ErrUnknownStyle    = errors.New("unknown folio style")
	ErrUnknownOption   = errors.New("option not in catalog list")
)

// Category names one option list in the registry.
type Category string

const (
	CategoryShape                 Category = "shape"
	CategoryAcrylicMaterial       Category = "acrylic_material"
	CategoryVellumMaterial        Category = "vellum_material"
	CategoryPaperMaterial         Category = "paper_material"
	CategoryPrintColor            Category = "print_color"
	CategoryEnvelopeMaterial      Category = "envelope_material"
	CategoryEnvelopeColor         Category = "envelope_color"
	CategoryEnvelopeEmbellishment Category = "envelope_embellishment"
	CategoryEnvelopeLiner         Category = "envelope_liner"
	CategoryEnvelopeSeal          Category = "envelope_seal"
	CategoryEnvelopeAddressing    Category = "envelope_addressing"
	CategoryPocketMaterial        Category = "pocket_material"
	CategoryPocketColor           Category = "pocket_color"
	CategoryPocketEmbellishment   Category = "pocket_embellishment"
	CategoryFolioStyle            Category = "folio_style"
	CategoryFolioColor            Category = "folio_color"
	CategoryFolioEmbellishment    Category = "folio_embellishment"
	CategoryService               Category = "service"
)

// Categories in display order. Order matters because "first entry" of each
// list is the default for its selection slot.
var categoryOrder = []Category{
	CategoryShape,
	CategoryAcrylicMaterial,
	CategoryVellumMaterial,
	CategoryPaperMaterial,
	CategoryPrintColor,
	CategoryEnvelopeMaterial,
	CategoryEnvelopeColor,
	CategoryEnvelopeEmbellishment,
	CategoryEnvelopeLiner,
	CategoryEnvelopeSeal,
	CategoryEnvelopeAddressing,
	CategoryPocketMaterial,
	CategoryPocketColor,
	CategoryPocketEmbellishment,
	CategoryFolioStyle,
	CategoryFolioColor,
	CategoryFolioEmbellishment,
	CategoryService,
}

// Registry holds the full option catalog. It is read-only after
// construction; catalog changes are a deploy-time data update.
type Registry struct {
	lists          map[Category][]models.PricingOption
	folioMaterials map[string][]models.PricingOption
	insertLists    map[models.InsertPrintMethod][]models.PricingOption
	quantityTiers  []int
}

// New builds a registry and validates the catalog invariants: every list
// non-empty, ids unique within their list, prices and tier overrides
// non-negative, quantity tiers positive and ascending.
func New(
	lists map[Category][]models.PricingOption,
	folioMaterials map[string][]models.PricingOption,
	insertLists map[models.InsertPrintMethod][]models.PricingOption,
	quantityTiers []int,
) (*Registry, error) {
	for _, c := range categoryOrder {
		if err := validateList(string(c), lists[c]); err != nil {
			return nil, err
		}
	}
	for _, style := range listIDs(lists[CategoryFolioStyle]) {
		if err := validateList("folio_material["+style+"]", folioMaterials[style]); err != nil {
			return nil, err
		}
	}
	for _, m := range []models.InsertPrintMethod{models.InsertFoil, models.InsertDigital} {
		if err := validateList("inserts["+string(m)+"]", insertLists[m]); err != nil {
			return nil, err
		}
	}
	if len(quantityTiers) == 0 {
		return nil, fmt.Errorf("quantity tiers are required")
	}
	if !sort.IntsAreSorted(quantityTiers) || quantityTiers[0] <= 0 {
		return nil, fmt.Errorf("quantity tiers must be positive and ascending")
	}

	return &Registry{
		lists:          lists,
		folioMaterials: folioMaterials,
		insertLists:    insertLists,
		quantityTiers:  quantityTiers,
	}, nil
}

func validateList(name string, opts []models.PricingOption) error {
	if len(opts) == 0 {
		return fmt.Errorf("catalog list %s is empty", name)
	}
	seen := make(map[string]bool, len(opts))
	for _, opt := range opts {
		if opt.ID == "" {
			return fmt.Errorf("catalog list %s has an option without an id", name)
		}
		if seen[opt.ID] {
			return fmt.Errorf("catalog list %s has duplicate id %q", name, opt.ID)
		}
		seen[opt.ID] = true
		if opt.Price < 0 {
			return fmt.Errorf("catalog option %s/%s has a negative price", name, opt.ID)
		}
		if opt.Mode != models.PricingFlat && opt.Mode != models.PricingPerUnit {
			return fmt.Errorf("catalog option %s/%s has pricing mode %q", name, opt.ID, opt.Mode)
		}
		for _, tier := range opt.Tiers {
			if tier.MinQuantity <= 0 || tier.Price < 0 {
				return fmt.Errorf("catalog option %s/%s has an invalid tier override", name, opt.ID)
			}
		}
	}
	return nil
}

func listIDs(opts []models.PricingOption) []string {
	ids := make([]string, len(opts))
	for i, opt := range opts {
		ids[i] = opt.ID
	}
	return ids
}

// Categories returns every registered category in display order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ListFor returns the ordered option list for a category.
func (r *Registry) ListFor(c Category) ([]models.PricingOption, error) {
	opts, ok := r.lists[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return opts, nil
}

// MaterialsFor returns the folio material list scoped to a folio style.
func (r *Registry) MaterialsFor(folioStyleID string) ([]models.PricingOption, error) {
	opts, ok := r.folioMaterials[folioStyleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, folioStyleID)
	}
	return opts, nil
}

// InsertsFor returns the insert list for a print method.
func (r *Registry) InsertsFor(method models.InsertPrintMethod) ([]models.PricingOption, error) {
	opts, ok := r.insertLists[method]
	if !ok {
		return nil, fmt.Errorf("%w: insert method %s", ErrUnknownCategory, method)
	}
	return opts, nil
}

// Option resolves an id within a category list.
func (r *Registry) Option(c Category, id string) (models.PricingOption, error) {
	opts, err := r.ListFor(c)
	if err != nil {
		return models.PricingOption{}, err
	}
	return findOption(opts, string(c), id)
}

// FolioMaterial resolves a material id within the list scoped to a style.
func (r *Registry) FolioMaterial(folioStyleID, id string) (models.PricingOption, error) {
	opts, err := r.MaterialsFor(folioStyleID)
	if err != nil {
		return models.PricingOption{}, err
	}
	return findOption(opts, "folio_material["+folioStyleID+"]", id)
}

// Insert resolves an insert id within the list for a print method.
func (r *Registry) Insert(method models.InsertPrintMethod, id string) (models.PricingOption, error) {
	opts, err := r.InsertsFor(method)
	if err != nil {
		return models.PricingOption{}, err
	}
	return findOption(opts, "inserts["+string(method)+"]", id)
}

func findOption(opts []models.PricingOption, listName, id string) (models.PricingOption, error) {
	for _, opt := range opts {
		if opt.ID == id {
			return opt, nil
		}
	}
	return models.PricingOption{}, fmt.Errorf("%w: %s in %s", ErrUnknownOption, id, listName)
}

// MaterialCategoryFor maps an invitation type to its base-material list.
func MaterialCategoryFor(t models.InvitationType) (Category, error) {
	switch t {
	case models.InvitationAcrylic:
		return CategoryAcrylicMaterial, nil
	case models.InvitationVellum:
		return CategoryVellumMaterial, nil
	case models.InvitationPaper:
		return CategoryPaperMaterial, nil
	default:
		return "", fmt.Errorf("%w: invitation type %s", ErrUnknownOption, t)
	}
}

// QuantityTiers returns the permitted order quantities, ascending.
func (r *Registry) QuantityTiers() []int {
	out := make([]int, len(r.quantityTiers))
	copy(out, r.quantityTiers)
	return out
}

// ValidQuantity reports whether q is one of the permitted order quantities.
func (r *Registry) ValidQuantity(q int) bool {
	for _, tier := range r.quantityTiers {
		if tier == q {
			return true
		}
	}
	return false
}
