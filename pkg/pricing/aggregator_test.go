package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"everafterpress.ca/stationery/api/pkg/catalog"
	"everafterpress.ca/stationery/api/pkg/models"
	"everafterpress.ca/stationery/api/pkg/money"
)

// baseConfig is the documented reference order: 25 acrylic invitations on
// 0.5mm stock, rectangle cut, gold foil, nothing else selected.
func baseConfig(t *testing.T) models.Configuration {
	t.Helper()
	reg := catalog.Default()
	cfg := reg.NewConfiguration()
	require.Equal(t, 25, cfg.Quantity)
	require.Equal(t, models.InvitationAcrylic, cfg.InvitationType)
	require.Equal(t, "0.5mm", cfg.BaseMaterial)
	require.Equal(t, "rectangle", cfg.Shape)
	require.Equal(t, "gold", cfg.PrintColor)
	return cfg
}

func TestComputeTotalScenarioA(t *testing.T) {
	cfg := baseConfig(t)

	total, err := ComputeTotal(cfg, catalog.Default())
	require.NoError(t, err)
	// 25 * (1.35 + 0.00 + 4.85) = 155.00
	assert.Equal(t, money.Cents(15500), total)
	assert.Equal(t, "$155.00", total.Format())
}

func TestComputeTotalScenarioBCustomShape(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Shape = "custom"

	total, err := ComputeTotal(cfg, catalog.Default())
	require.NoError(t, err)
	// Per-unit shape term removed, 175.00 flat added: 155.00 + 175.00
	assert.Equal(t, money.Cents(33000), total)
}

func TestComputeTotalScenarioCGateSuppression(t *testing.T) {
	reg := catalog.Default()

	withDefaults := baseConfig(t)
	withSelections := baseConfig(t)
	withSelections.Envelope.Material = "vellum-wrap"
	withSelections.Envelope.Color = "navy"
	withSelections.Envelope.Embellishments = []string{"silk-ribbon", "deckled-edge"}
	withSelections.Envelope.Seals = []string{"wax-seal-gold"}

	totalDefaults, err := ComputeTotal(withDefaults, reg)
	require.NoError(t, err)
	totalSelections, err := ComputeTotal(withSelections, reg)
	require.NoError(t, err)

	assert.Equal(t, totalDefaults, totalSelections,
		"gated-off envelope selections must not contribute")
}

func TestComputeTotalGateToggleAddsChildSum(t *testing.T) {
	reg := catalog.Default()

	cfg := baseConfig(t)
	cfg.Envelope.Material = "euro-flap"     // 1.20/unit
	cfg.Envelope.Color = "blush"            // 0.25/unit
	cfg.Envelope.Seals = []string{"monogram-sticker"} // 0.45/unit

	gatedOff, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)

	cfg.Envelope.Included = true
	gatedOn, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)

	// 25 * (1.20 + 0.25 + 0.45) = 47.50
	assert.Equal(t, money.Cents(4750), gatedOn-gatedOff)
}

func TestComputeTotalDeterminism(t *testing.T) {
	reg := catalog.Default()
	cfg := baseConfig(t)
	cfg.Envelope.Included = true
	cfg.Envelope.Embellishments = []string{"twine", "silk-ribbon"}
	cfg.Inserts = []string{"rsvp-card-foil", "details-card-foil"}
	cfg.Services = []string{"rush-production", "assembly"}

	first, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)
	second, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeTotalOrderIndependence(t *testing.T) {
	reg := catalog.Default()

	forward := baseConfig(t)
	forward.Services = []string{"assembly", "rush-production", "design-proof"}
	reversed := baseConfig(t)
	reversed.Services = []string{"design-proof", "rush-production", "assembly"}

	totalForward, err := ComputeTotal(forward, reg)
	require.NoError(t, err)
	totalReversed, err := ComputeTotal(reversed, reg)
	require.NoError(t, err)
	assert.Equal(t, totalForward, totalReversed)
}

func TestComputeTotalDuplicatesCountOnce(t *testing.T) {
	reg := catalog.Default()

	once := baseConfig(t)
	once.Services = []string{"assembly"}
	twice := baseConfig(t)
	twice.Services = []string{"assembly", "assembly"}

	totalOnce, err := ComputeTotal(once, reg)
	require.NoError(t, err)
	totalTwice, err := ComputeTotal(twice, reg)
	require.NoError(t, err)
	assert.Equal(t, totalOnce, totalTwice)
}

func TestComputeTotalFolioGroup(t *testing.T) {
	reg := catalog.Default()

	cfg := baseConfig(t)
	cfg.Folio.Included = true
	require.NoError(t, reg.SetFolioStyle(&cfg, "hardcover"))
	cfg.Folio.Material = "velvet" // 6.90/unit
	cfg.Folio.Color = "midnight"  // 0.25/unit
	cfg.Folio.Embellishments = []string{"ribbon-tie"} // 1.30/unit

	total, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)
	// Style is free; 15500 + 25*(6.90+0.25+1.30)
	assert.Equal(t, money.Cents(15500+25*845), total)
}

func TestComputeTotalInsertsFollowPrintMethod(t *testing.T) {
	reg := catalog.Default()

	cfg := baseConfig(t)
	cfg.Inserts = []string{"rsvp-card-foil"} // 2.60/unit under foil

	total, err := ComputeTotal(cfg, reg)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(15500+25*260), total)

	// The same id is not valid under the digital list.
	cfg.InsertPrintMethod = models.InsertDigital
	_, err = ComputeTotal(cfg, reg)
	assert.ErrorIs(t, err, catalog.ErrUnknownOption)
}

func TestComputeTotalInvalidQuantity(t *testing.T) {
	reg := catalog.Default()

	for _, qty := range []int{0, -25, 26, 1000} {
		cfg := baseConfig(t)
		cfg.Quantity = qty
		_, err := ComputeTotal(cfg, reg)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}
}

func TestComputeTotalUnknownSelections(t *testing.T) {
	reg := catalog.Default()

	t.Run("unknown shape", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.Shape = "dodecahedron"
		_, err := ComputeTotal(cfg, reg)
		assert.ErrorIs(t, err, catalog.ErrUnknownOption)
	})

	t.Run("unknown invitation type", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.InvitationType = "granite"
		_, err := ComputeTotal(cfg, reg)
		assert.ErrorIs(t, err, catalog.ErrUnknownOption)
	})

	t.Run("unknown folio style when gated on", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.Folio.Included = true
		cfg.Folio.Style = "trifold"
		_, err := ComputeTotal(cfg, reg)
		assert.ErrorIs(t, err, catalog.ErrUnknownOption)
	})

	t.Run("material from another invitation type", func(t *testing.T) {
		cfg := baseConfig(t)
		cfg.BaseMaterial = "matte" // paper list, not acrylic
		_, err := ComputeTotal(cfg, reg)
		assert.ErrorIs(t, err, catalog.ErrUnknownOption)
	})
}
