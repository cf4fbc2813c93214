package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrecedenceOrder pins the classification order. The order is
// load-bearing: reordering changes how ambiguous queries resolve, so
// any change must be deliberate.
func TestPrecedenceOrder(t *testing.T) {
	want := []Intent{
		IntentAnnualFeeReversalSpendThreshold,
		IntentLoungeAccess,
		IntentRewardComparison,
		IntentRewardCalculation,
		IntentWelcomeBenefits,
		IntentMilestones,
		IntentMilesTransfer,
		IntentExclusions,
		IntentFees,
		IntentTravelInsurance,
		IntentUtilities,
		IntentFuel,
		IntentRent,
		IntentEducation,
		IntentGaming,
		IntentWallet,
		IntentInsurance,
		IntentGovernment,
		IntentGold,
		IntentGrocery,
		IntentDining,
		IntentHotel,
		IntentTelecom,
		IntentTierStructure,
		IntentEligibility,
		IntentRedemption,
		IntentAirportBenefits,
		IntentForex,
		IntentCashWithdrawal,
		IntentEMI,
		IntentInterestRate,
		IntentLatePayment,
	}
	assert.Equal(t, want, Precedence())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"fee waiver", "what spend is needed for annual fee waiver", IntentAnnualFeeReversalSpendThreshold},
		{"fee reversal phrasing", "is the joining fee waived on spends", IntentAnnualFeeReversalSpendThreshold},
		{"lounge", "how many lounge visits do I get", IntentLoungeAccess},
		{"comparison", "compare rewards on both cards", IntentRewardComparison},
		{"which is better", "which card is better for me", IntentRewardComparison},
		{"calculation", "how many miles for ₹200000 spend on hotels", IntentRewardCalculation},
		{"calculation spend phrasing", "if I spend 2L how many points do I earn", IntentRewardCalculation},
		{"welcome", "what is the welcome bonus", IntentWelcomeBenefits},
		{"milestones", "what milestone benefits are there", IntentMilestones},
		{"miles transfer", "can I transfer miles to Singapore Airlines", IntentMilesTransfer},
		{"exclusions", "which categories are excluded from rewards", IntentExclusions},
		{"fees", "what is the annual fee", IntentFees},
		{"utilities category", "do utility payments earn points", IntentUtilities},
		{"how much earn is calculation", "how much will I earn on a 2L spend", IntentRewardCalculation},
		{"fuel category", "is there a fuel surcharge", IntentFuel},
		{"rent category", "points on rent payment", IntentRent},
		{"tier structure", "how do the tiers work", IntentTierStructure},
		{"redemption", "how do I redeem my points", IntentRedemption},
		{"forex", "what is the forex markup", IntentForex},
		{"emi", "can I convert this to emi", IntentEMI},
		{"none", "tell me about this card", IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

// Ambiguous queries resolve by table order, earlier group wins.
func TestClassifyPrecedenceTieBreaks(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"fee waiver beats lounge", "do I keep lounge access after the fee waiver", IntentAnnualFeeReversalSpendThreshold},
		{"lounge beats comparison", "compare lounge access on both cards", IntentLoungeAccess},
		{"comparison beats category", "which card is better for hotels", IntentRewardComparison},
		{"calculation beats category", "how many miles for a hotel spend", IntentRewardCalculation},
		{"travel insurance is not the insurance category", "does the card have travel insurance", IntentTravelInsurance},
		{"exclusions beat category", "I don't earn points on rent, why", IntentExclusions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestFieldKey(t *testing.T) {
	assert.Equal(t, "fees", IntentAnnualFeeReversalSpendThreshold.FieldKey())
	assert.Equal(t, "lounge_access", IntentLoungeAccess.FieldKey())
	assert.Equal(t, "rewards", IntentExclusions.FieldKey())
	assert.Equal(t, "", IntentRedemption.FieldKey())
	assert.Equal(t, "", IntentNone.FieldKey())
}

func TestIsSpendCategory(t *testing.T) {
	assert.True(t, IntentFuel.IsSpendCategory())
	assert.True(t, IntentTelecom.IsSpendCategory())
	assert.False(t, IntentFees.IsSpendCategory())
	assert.False(t, IntentNone.IsSpendCategory())
}
