package catalog

import (
	"log"
	"sync"

	"everafterpress.ca/stationery/api/pkg/models"
)

// Static catalog for the Ever After Press wedding collection. Prices are
// CAD cents. List order is significant: the first entry of each list is
// the default selection for its slot. None of the shipped options carry
// tier overrides yet; the Tiers field exists for seasonal volume pricing.

var quantityTiers = []int{25, 50, 75, 100, 125, 150, 175, 200, 250, 300}

var optionLists = map[Category][]models.PricingOption{
	CategoryShape: {
		{ID: "rectangle", Name: "Rectangle", Price: 0, Mode: models.PricingPerUnit},
		{ID: "arch", Name: "Arch", Price: 45, Mode: models.PricingPerUnit},
		{ID: "hexagon", Name: "Hexagon", Price: 60, Mode: models.PricingPerUnit},
		{ID: "scalloped", Name: "Scalloped Edge", Price: 75, Mode: models.PricingPerUnit},
		{ID: "custom", Name: "Custom Die-Cut", Price: 17500, Mode: models.PricingFlat,
			Description: "One-off cutting die made to your artwork"},
	},
	CategoryAcrylicMaterial: {
		{ID: "0.5mm", Name: "0.5mm Clear Acrylic", Price: 135, Mode: models.PricingPerUnit},
		{ID: "0.7mm", Name: "0.7mm Clear Acrylic", Price: 185, Mode: models.PricingPerUnit},
		{ID: "1mm", Name: "1mm Clear Acrylic", Price: 240, Mode: models.PricingPerUnit},
		{ID: "frosted", Name: "Frosted Acrylic", Price: 165, Mode: models.PricingPerUnit},
	},
	CategoryVellumMaterial: {
		{ID: "translucent", Name: "Translucent Vellum", Price: 95, Mode: models.PricingPerUnit},
		{ID: "heavyweight", Name: "Heavyweight Vellum", Price: 120, Mode: models.PricingPerUnit},
	},
	CategoryPaperMaterial: {
		{ID: "matte", Name: "Matte Cardstock", Price: 65, Mode: models.PricingPerUnit},
		{ID: "cotton", Name: "100% Cotton", Price: 110, Mode: models.PricingPerUnit},
		{ID: "recycled", Name: "Recycled Cardstock", Price: 75, Mode: models.PricingPerUnit},
		{ID: "pearlescent", Name: "Pearlescent Shimmer", Price: 90, Mode: models.PricingPerUnit},
	},
	CategoryPrintColor: {
		{ID: "gold", Name: "Gold Foil", Price: 485, Mode: models.PricingPerUnit, Swatch: "#c9a227"},
		{ID: "silver", Name: "Silver Foil", Price: 485, Mode: models.PricingPerUnit, Swatch: "#c0c0c0"},
		{ID: "rose-gold", Name: "Rose Gold Foil", Price: 510, Mode: models.PricingPerUnit, Swatch: "#b76e79"},
		{ID: "copper", Name: "Copper Foil", Price: 495, Mode: models.PricingPerUnit, Swatch: "#b87333"},
		{ID: "white-ink", Name: "White Ink", Price: 310, Mode: models.PricingPerUnit, Swatch: "#ffffff"},
		{ID: "full-color", Name: "Full Color Digital", Price: 150, Mode: models.PricingPerUnit},
	},
	CategoryEnvelopeMaterial: {
		{ID: "euro-flap", Name: "Euro Flap", Price: 120, Mode: models.PricingPerUnit},
		{ID: "straight-flap", Name: "Straight Flap", Price: 95, Mode: models.PricingPerUnit},
		{ID: "vellum-wrap", Name: "Vellum Wrap", Price: 160, Mode: models.PricingPerUnit},
	},
	CategoryEnvelopeColor: {
		{ID: "ivory", Name: "Ivory", Price: 0, Mode: models.PricingPerUnit, Swatch: "#fffff0"},
		{ID: "blush", Name: "Blush", Price: 25, Mode: models.PricingPerUnit, Swatch: "#f4c2c2"},
		{ID: "sage", Name: "Sage", Price: 25, Mode: models.PricingPerUnit, Swatch: "#9caf88"},
		{ID: "navy", Name: "Navy", Price: 30, Mode: models.PricingPerUnit, Swatch: "#202a44"},
		{ID: "black", Name: "Black", Price: 30, Mode: models.PricingPerUnit, Swatch: "#1a1a1a"},
	},
	CategoryEnvelopeEmbellishment: {
		{ID: "silk-ribbon", Name: "Silk Ribbon Wrap", Price: 180, Mode: models.PricingPerUnit},
		{ID: "twine", Name: "Natural Twine", Price: 60, Mode: models.PricingPerUnit},
		{ID: "deckled-edge", Name: "Deckled Edge", Price: 140, Mode: models.PricingPerUnit},
	},
	CategoryEnvelopeLiner: {
		{ID: "gold-foil-liner", Name: "Gold Foil Liner", Price: 210, Mode: models.PricingPerUnit},
		{ID: "floral-liner", Name: "Floral Print Liner", Price: 150, Mode: models.PricingPerUnit},
		{ID: "marble-liner", Name: "Marble Print Liner", Price: 165, Mode: models.PricingPerUnit},
	},
	CategoryEnvelopeSeal: {
		{ID: "wax-seal-gold", Name: "Gold Wax Seal", Price: 175, Mode: models.PricingPerUnit},
		{ID: "wax-seal-ivory", Name: "Ivory Wax Seal", Price: 175, Mode: models.PricingPerUnit},
		{ID: "monogram-sticker", Name: "Monogram Sticker", Price: 45, Mode: models.PricingPerUnit},
	},
	CategoryEnvelopeAddressing: {
		{ID: "guest-addressing", Name: "Guest Addressing", Price: 220, Mode: models.PricingPerUnit},
		{ID: "return-addressing", Name: "Return Addressing", Price: 95, Mode: models.PricingPerUnit},
		{ID: "calligraphy-addressing", Name: "Hand Calligraphy Addressing", Price: 350, Mode: models.PricingPerUnit},
	},
	CategoryPocketMaterial: {
		{ID: "matte-pocket", Name: "Matte Pocket", Price: 210, Mode: models.PricingPerUnit},
		{ID: "shimmer-pocket", Name: "Shimmer Pocket", Price: 260, Mode: models.PricingPerUnit},
		{ID: "suede-pocket", Name: "Suede Pocket", Price: 340, Mode: models.PricingPerUnit},
	},
	CategoryPocketColor: {
		{ID: "champagne", Name: "Champagne", Price: 0, Mode: models.PricingPerUnit, Swatch: "#f7e7ce"},
		{ID: "dusty-blue", Name: "Dusty Blue", Price: 20, Mode: models.PricingPerUnit, Swatch: "#8ca9c3"},
		{ID: "forest", Name: "Forest", Price: 20, Mode: models.PricingPerUnit, Swatch: "#1f4a2e"},
		{ID: "burgundy", Name: "Burgundy", Price: 25, Mode: models.PricingPerUnit, Swatch: "#6d1a36"},
	},
	CategoryPocketEmbellishment: {
		{ID: "foil-border", Name: "Foil Border", Price: 120, Mode: models.PricingPerUnit},
		{ID: "monogram-emboss", Name: "Monogram Emboss", Price: 160, Mode: models.PricingPerUnit},
		{ID: "ribbon-closure", Name: "Ribbon Closure", Price: 145, Mode: models.PricingPerUnit},
	},
	// Folio styles are free; the style only decides which material list
	// applies.
	CategoryFolioStyle: {
		{ID: "foldable", Name: "Foldable Folio", Price: 0, Mode: models.PricingPerUnit},
		{ID: "hardcover", Name: "Hardcover Folio", Price: 0, Mode: models.PricingPerUnit},
		{ID: "gatefold", Name: "Gatefold Folio", Price: 0, Mode: models.PricingPerUnit},
	},
	CategoryFolioColor: {
		{ID: "natural", Name: "Natural", Price: 0, Mode: models.PricingPerUnit, Swatch: "#e8e0d5"},
		{ID: "stone", Name: "Stone", Price: 15, Mode: models.PricingPerUnit, Swatch: "#b8b2a7"},
		{ID: "terracotta", Name: "Terracotta", Price: 20, Mode: models.PricingPerUnit, Swatch: "#c66b3d"},
		{ID: "midnight", Name: "Midnight", Price: 25, Mode: models.PricingPerUnit, Swatch: "#191970"},
	},
	CategoryFolioEmbellishment: {
		{ID: "foil-monogram", Name: "Foil Monogram", Price: 210, Mode: models.PricingPerUnit},
		{ID: "ribbon-tie", Name: "Ribbon Tie", Price: 130, Mode: models.PricingPerUnit},
		{ID: "vellum-band", Name: "Vellum Belly Band", Price: 95, Mode: models.PricingPerUnit},
	},
	CategoryService: {
		{ID: "assembly", Name: "Full Assembly", Price: 85, Mode: models.PricingPerUnit},
		{ID: "envelope-stuffing", Name: "Envelope Stuffing", Price: 45, Mode: models.PricingPerUnit},
		{ID: "rush-production", Name: "Rush Production", Price: 7500, Mode: models.PricingFlat},
		{ID: "design-proof", Name: "Printed Design Proof", Price: 2500, Mode: models.PricingFlat},
		{ID: "postage-coordination", Name: "Postage Coordination", Price: 5000, Mode: models.PricingFlat},
	},
}

var folioMaterialsByStyle = map[string][]models.PricingOption{
	"foldable": {
		{ID: "linen-wrap", Name: "Linen Wrap", Price: 320, Mode: models.PricingPerUnit},
		{ID: "cotton-wrap", Name: "Cotton Wrap", Price: 280, Mode: models.PricingPerUnit},
		{ID: "kraft-wrap", Name: "Kraft Wrap", Price: 190, Mode: models.PricingPerUnit},
	},
	"hardcover": {
		{ID: "buckram", Name: "Buckram Cloth", Price: 540, Mode: models.PricingPerUnit},
		{ID: "velvet", Name: "Velvet", Price: 690, Mode: models.PricingPerUnit},
		{ID: "leatherette", Name: "Leatherette", Price: 620, Mode: models.PricingPerUnit},
	},
	"gatefold": {
		{ID: "heavy-cotton", Name: "Heavy Cotton", Price: 360, Mode: models.PricingPerUnit},
		{ID: "translucent-vellum", Name: "Translucent Vellum Overlay", Price: 300, Mode: models.PricingPerUnit},
	},
}

var insertListsByMethod = map[models.InsertPrintMethod][]models.PricingOption{
	models.InsertFoil: {
		{ID: "details-card-foil", Name: "Details Card (Foil)", Price: 290, Mode: models.PricingPerUnit},
		{ID: "rsvp-card-foil", Name: "RSVP Card (Foil)", Price: 260, Mode: models.PricingPerUnit},
		{ID: "map-card-foil", Name: "Map Card (Foil)", Price: 310, Mode: models.PricingPerUnit},
	},
	models.InsertDigital: {
		{ID: "details-card-digital", Name: "Details Card (Digital)", Price: 140, Mode: models.PricingPerUnit},
		{ID: "rsvp-card-digital", Name: "RSVP Card (Digital)", Price: 120, Mode: models.PricingPerUnit},
		{ID: "map-card-digital", Name: "Map Card (Digital)", Price: 160, Mode: models.PricingPerUnit},
		{ID: "timeline-card-digital", Name: "Timeline Card (Digital)", Price: 150, Mode: models.PricingPerUnit},
	},
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry built from the shipped catalog tables.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(optionLists, folioMaterialsByStyle, insertListsByMethod, quantityTiers)
		if err != nil {
			log.Fatalf("invalid shipped catalog: %v", err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
