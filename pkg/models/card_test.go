package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCardID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		dispNm string
		want   CardID
	}{
		{"explicit epm id", "icici-epm", "whatever", CardIDICICIEPM},
		{"explicit atlas id", "axis-atlas", "whatever", CardIDAxisAtlas},
		{"id wins over name", "axis-atlas", "ICICI Bank Emeralde Private Metal", CardIDAxisAtlas},
		{"id case insensitive", "ICICI-EPM", "x", CardIDICICIEPM},
		{"name fallback epm", "", "ICICI Bank Emeralde Private Metal Credit Card", CardIDICICIEPM},
		{"name fallback atlas", "", "Axis Bank Atlas Credit Card", CardIDAxisAtlas},
		{"partial name does not match", "", "ICICI Bank Coral Credit Card", CardIDUnknown},
		{"unknown", "", "HDFC Infinia", CardIDUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCardID(tt.id, tt.dispNm))
		})
	}
}

func TestCardRecordUnmarshalKeepsRawFields(t *testing.T) {
	raw := []byte(`{
		"id": "axis-atlas",
		"name": "Axis Bank Atlas Credit Card",
		"fees": {"annual_fee": "₹5,000 + GST"},
		"lounge_access": {"domestic": "8 visits"},
		"rewards": {
			"rate_general": "2 EDGE Miles per ₹100",
			"accrual_exclusions": ["rent payments", "fuel spends"],
			"capping_per_statement_cycle": {"travel": "5x up to ₹2,00,000 per month"}
		}
	}`)

	var card CardRecord
	require.NoError(t, json.Unmarshal(raw, &card))

	assert.Equal(t, "axis-atlas", card.ID)
	assert.Equal(t, "Axis Bank Atlas Credit Card", card.Name)
	require.NotNil(t, card.Rewards)
	assert.Equal(t, "2 EDGE Miles per ₹100", card.Rewards.RateGeneral)
	assert.Equal(t, []string{"rent payments", "fuel spends"}, card.Rewards.AccrualExclusions)
	assert.Equal(t, "5x up to ₹2,00,000 per month", card.Rewards.CappingPerStatementCycle["travel"])

	// Unmodeled sections stay reachable through the raw field map.
	assert.NotNil(t, card.Field("lounge_access"))
	assert.NotNil(t, card.Field("fees"))
	assert.Nil(t, card.Field("no_such_section"))
}

func TestRewardsUnmarshalToleratesSingleStringExclusion(t *testing.T) {
	raw := []byte(`{"accrual_exclusions": "fuel and rent"}`)

	var rw Rewards
	require.NoError(t, json.Unmarshal(raw, &rw))
	assert.Equal(t, []string{"fuel and rent"}, rw.AccrualExclusions)
}

func TestCommonTermsUnmarshal(t *testing.T) {
	raw := []byte(`{
		"surcharge_fees": {"fuel": {"rate": "1%"}},
		"interest_rate": {"monthly": "3.6%"}
	}`)

	var ct CommonTerms
	require.NoError(t, json.Unmarshal(raw, &ct))
	assert.Contains(t, ct.SurchargeFees, "fuel")
	assert.Contains(t, ct.Fields, "interest_rate")
}
