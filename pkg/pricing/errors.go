package pricing

import "errors"

var (
	// ErrInvalidQuantity means the quantity is not one of the permitted
	// order tiers. Quantities are never silently clamped.
	ErrInvalidQuantity = errors.New("quantity not in permitted tier list")

	// ErrInvalidConfiguration means a dependent slot holds an id that is
	// inconsistent with its parent discriminator (a folio material outside
	// the selected style's list, an insert outside the selected print
	// method's list). Recover by re-deriving defaults via
	// Registry.SetFolioStyle / Registry.SetInsertPrintMethod.
	ErrInvalidConfiguration = errors.New("configuration inconsistent with catalog")
)
