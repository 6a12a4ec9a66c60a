package models

// InvitationType selects which base-material list is active for a
// configuration.
type InvitationType string

const (
	InvitationAcrylic InvitationType = "acrylic"
	InvitationVellum  InvitationType = "vellum"
	InvitationPaper   InvitationType = "paper"
)

// InsertPrintMethod swaps the eligible insert list between foil-pressed
// and digitally printed cards.
type InsertPrintMethod string

const (
	InsertFoil    InsertPrintMethod = "foil"
	InsertDigital InsertPrintMethod = "digital"
)

// EnvelopeGroup holds the envelope slots. When Included is false every
// slot in the group is suppressed from pricing, independent of what the
// stored selections say.
type EnvelopeGroup struct {
	Included       bool     `json:"included" bson:"included"`
	Material       string   `json:"material" bson:"material"`
	Color          string   `json:"color" bson:"color"`
	Embellishments []string `json:"embellishments" bson:"embellishments"`
	Liners         []string `json:"liners" bson:"liners"`
	Seals          []string `json:"seals" bson:"seals"`
	Addressing     []string `json:"addressing" bson:"addressing"`
}

// PocketGroup holds the pocket enclosure slots, gated like EnvelopeGroup.
type PocketGroup struct {
	Included       bool     `json:"included" bson:"included"`
	Material       string   `json:"material" bson:"material"`
	Color          string   `json:"color" bson:"color"`
	Embellishments []string `json:"embellishments" bson:"embellishments"`
}

// FolioGroup holds the folio slots. Style carries no price of its own; it
// constrains which material list is valid. A material id outside the
// selected style's list makes the whole configuration invalid.
type FolioGroup struct {
	Included       bool     `json:"included" bson:"included"`
	Style          string   `json:"style" bson:"style"`
	Material       string   `json:"material" bson:"material"`
	Color          string   `json:"color" bson:"color"`
	Embellishments []string `json:"embellishments" bson:"embellishments"`
}

// Configuration is the full in-progress set of selections for one design
// session: quantity, discriminators, every selection slot, and free-text
// notes. It is ephemeral until saved as a Quote.
type Configuration struct {
	Quantity          int               `json:"quantity" bson:"quantity"`
	InvitationType    InvitationType    `json:"invitation_type" bson:"invitation_type"`
	BaseMaterial      string            `json:"base_material" bson:"base_material"`
	Shape             string            `json:"shape" bson:"shape"`
	PrintColor        string            `json:"print_color" bson:"print_color"`
	Envelope          EnvelopeGroup     `json:"envelope" bson:"envelope"`
	Pocket            PocketGroup       `json:"pocket" bson:"pocket"`
	Folio             FolioGroup        `json:"folio" bson:"folio"`
	InsertPrintMethod InsertPrintMethod `json:"insert_print_method" bson:"insert_print_method"`
	Inserts           []string          `json:"inserts" bson:"inserts"`
	Services          []string          `json:"services" bson:"services"`
	DesignNotes       string            `json:"design_notes" bson:"design_notes,omitempty"`
}
