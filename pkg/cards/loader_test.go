package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "axis-atlas.json", `{
		"common_terms": {"surcharge_fees": {"fuel": {"rate": "1%"}}},
		"cards": [{"id": "axis-atlas", "name": "Axis Bank Atlas Credit Card"}]
	}`)
	writeFile(t, dir, "icici-epm.json", `{
		"cards": [{"name": "ICICI Bank Emeralde Private Metal Credit Card"}]
	}`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{
		"Axis Bank Atlas Credit Card",
		"ICICI Bank Emeralde Private Metal Credit Card",
	}, reg.CardNames())

	atlas := reg.Card("Axis Bank Atlas Credit Card")
	require.NotNil(t, atlas)
	assert.Equal(t, models.CardIDAxisAtlas, atlas.CardID)
	assert.Equal(t, "axis-atlas", atlas.Bank)

	// CardID resolved from the display name when no id field is present.
	epm := reg.Card("ICICI Bank Emeralde Private Metal Credit Card")
	require.NotNil(t, epm)
	assert.Equal(t, models.CardIDICICIEPM, epm.CardID)
}

func TestLoadYAMLDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "axis-atlas.yaml", `
cards:
  - id: axis-atlas
    name: Axis Bank Atlas Credit Card
    rewards:
      rate_general: 2 EDGE Miles per Rs 100
`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)
	card := reg.Card("Axis Bank Atlas Credit Card")
	require.NotNil(t, card)
	require.NotNil(t, card.Rewards)
	assert.Equal(t, "2 EDGE Miles per Rs 100", card.Rewards.RateGeneral)
}

func TestLoadCollisionLaterFileWins(t *testing.T) {
	dir := t.TempDir()
	// Files load in sorted order, so b.json overwrites a.json for the
	// same card name while keeping the earlier position.
	writeFile(t, dir, "a.json", `{"cards": [
		{"name": "Axis Bank Atlas Credit Card", "fees": {"annual_fee": "old"}},
		{"name": "Some Other Card"}
	]}`)
	writeFile(t, dir, "b.json", `{"cards": [
		{"name": "Axis Bank Atlas Credit Card", "fees": {"annual_fee": "new"}}
	]}`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"Axis Bank Atlas Credit Card", "Some Other Card"}, reg.CardNames())

	card := reg.Card("Axis Bank Atlas Credit Card")
	require.NotNil(t, card)
	assert.Equal(t, "b", card.Bank)
	assert.Contains(t, string(card.Field("fees")), "new")
}

func TestLoadSkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{not json`)
	writeFile(t, dir, "good.json", `{"cards": [{"name": "Axis Bank Atlas Credit Card"}]}`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestLoadEmptyDirIsError(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestRegistryCards(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cards.json", `{"cards": [
		{"name": "Axis Bank Atlas Credit Card"},
		{"name": "ICICI Bank Emeralde Private Metal Credit Card"}
	]}`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	// Empty name set means every card is in scope.
	assert.Len(t, reg.Cards(nil), 2)
	// Unknown names are skipped, not errors.
	got := reg.Cards([]string{"Axis Bank Atlas Credit Card", "No Such Card"})
	require.Len(t, got, 1)
	assert.Equal(t, "Axis Bank Atlas Credit Card", got[0].Name)
}

func TestSurchargeEntry(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "axis-atlas.json", `{
		"common_terms": {"surcharge_fees": {"fuel": {"rate": "1%"}, "rent": {"rate": "1%"}}},
		"cards": [{"name": "Axis Bank Atlas Credit Card"}]
	}`)

	reg, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	fuel := reg.SurchargeEntry(models.CategoryFuel)
	assert.Contains(t, fuel, "axis-atlas")
	assert.Empty(t, reg.SurchargeEntry(models.CategoryDining))
}
