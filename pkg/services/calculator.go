package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mandys/cardqa/pkg/models"
)

// RewardCalculator implements the published earning formulas for the
// two cards the service has first-class support for. Everything is
// encoded as literal constants from the issuers' terms; the card data
// only refines exclusions and cap values where it carries them.
type RewardCalculator struct{}

// NewRewardCalculator creates a calculator.
func NewRewardCalculator() *RewardCalculator {
	return &RewardCalculator{}
}

// Per-card program constants.
const (
	epmSpendUnit = 200 // ₹200 per earn unit
	epmRate      = 6   // points per unit

	atlasSpendUnit        = 100     // ₹100 per earn unit
	atlasBaseRate         = 2       // EDGE Miles per unit
	atlasTravelRate       = 5       // EDGE Miles per unit on travel/hotel
	atlasTravelMonthlyCap = 200_000 // ₹ cap for the 5x travel rate per month
)

var epmExclusions = map[models.Category]bool{
	models.CategoryGovernment: true,
	models.CategoryRent:       true,
	models.CategoryFuel:       true,
}

// Default per-statement-cycle point caps for ICICI EPM, used when the
// card document carries no parseable cap string.
var epmCategoryCaps = map[models.Category]int64{
	models.CategoryUtilities: 1000,
	models.CategoryGrocery:   1000,
	models.CategoryInsurance: 5000,
	models.CategoryEducation: 1000,
}

var atlasExclusions = map[models.Category]bool{
	models.CategoryGold:       true,
	models.CategoryRent:       true,
	models.CategoryWallet:     true,
	models.CategoryInsurance:  true,
	models.CategoryFuel:       true,
	models.CategoryGovernment: true,
	models.CategoryUtilities:  true,
	models.CategoryTelecom:    true,
}

var capNumberPattern = regexp.MustCompile(`(\d[\d,]*)`)

// Calculate produces the exact reward earning for a spend on one card.
// Cards outside the two supported identities get a structured
// unsupported result rather than an error return, leaving presentation
// to the caller.
func (rc *RewardCalculator) Calculate(card *models.CardRecord, spend int64, category models.Category) *models.RewardCalculationResult {
	result := &models.RewardCalculationResult{
		CardName:    card.Name,
		SpendAmount: spend,
		Category:    category,
	}

	switch card.CardID {
	case models.CardIDICICIEPM:
		rc.calculateEPM(card, spend, category, result)
	case models.CardIDAxisAtlas:
		rc.calculateAtlas(card, spend, category, result)
	default:
		result.Reason = fmt.Sprintf("reward calculation is not supported for %q", card.Name)
		return result
	}

	result.Supported = true
	return result
}

func (rc *RewardCalculator) calculateEPM(card *models.CardRecord, spend int64, category models.Category, result *models.RewardCalculationResult) {
	result.Unit = "points"
	result.RateDescription = fmt.Sprintf("%d points per ₹%d", epmRate, epmSpendUnit)
	result.Milestones = epmMilestones(spend)

	if isExcluded(card, category, epmExclusions) {
		result.Excluded = true
		result.Trace = fmt.Sprintf("%s is excluded from reward accrual; 0 points earned", category)
		return
	}

	points := spend / epmSpendUnit * epmRate
	result.Points = points
	result.Trace = fmt.Sprintf("₹%d ÷ %d × %d = %d points", spend, epmSpendUnit, epmRate, points)

	if limit, ok := categoryCap(card, category, epmCategoryCaps); ok && points > limit {
		result.Points = limit
		result.CapApplied = true
		result.Trace = fmt.Sprintf("%s, capped at %d points per statement cycle", result.Trace, limit)
	}
}

func (rc *RewardCalculator) calculateAtlas(card *models.CardRecord, spend int64, category models.Category, result *models.RewardCalculationResult) {
	result.Unit = "miles"

	if isExcluded(card, category, atlasExclusions) {
		result.Excluded = true
		result.RateDescription = fmt.Sprintf("%d EDGE Miles per ₹%d", atlasBaseRate, atlasSpendUnit)
		result.Trace = fmt.Sprintf("%s is excluded from reward accrual; 0 miles earned", category)
		result.Milestones = atlasMilestones(spend)
		return
	}

	travel := category == models.CategoryTravel || category == models.CategoryHotel
	if travel {
		result.RateDescription = fmt.Sprintf(
			"%d EDGE Miles per ₹%d on travel up to ₹%d/month, %d per ₹%d beyond",
			atlasTravelRate, atlasSpendUnit, int64(atlasTravelMonthlyCap), atlasBaseRate, atlasSpendUnit)

		if spend <= atlasTravelMonthlyCap {
			miles := spend / atlasSpendUnit * atlasTravelRate
			result.Points = miles
			result.Trace = fmt.Sprintf("₹%d ÷ %d × %d = %d miles", spend, atlasSpendUnit, atlasTravelRate, miles)
		} else {
			capped := int64(atlasTravelMonthlyCap) / atlasSpendUnit * atlasTravelRate
			excess := (spend - atlasTravelMonthlyCap) / atlasSpendUnit * atlasBaseRate
			result.Points = capped + excess
			result.CapApplied = true
			result.Trace = fmt.Sprintf(
				"₹%d ÷ %d × %d = %d miles; ₹%d ÷ %d × %d = %d miles; %d + %d = %d miles",
				int64(atlasTravelMonthlyCap), atlasSpendUnit, atlasTravelRate, capped,
				spend-atlasTravelMonthlyCap, atlasSpendUnit, atlasBaseRate, excess,
				capped, excess, result.Points)
		}
	} else {
		result.RateDescription = fmt.Sprintf("%d EDGE Miles per ₹%d", atlasBaseRate, atlasSpendUnit)
		miles := spend / atlasSpendUnit * atlasBaseRate
		result.Points = miles
		result.Trace = fmt.Sprintf("₹%d ÷ %d × %d = %d miles", spend, atlasSpendUnit, atlasBaseRate, miles)
	}

	result.Milestones = atlasMilestones(spend)
}

// epmMilestones reports the EaseMyTrip voucher milestones crossed by a
// cumulative spend: ₹3,000 at ₹4L and another ₹3,000 at ₹8L.
func epmMilestones(spend int64) []models.MilestoneBenefit {
	var out []models.MilestoneBenefit
	if spend >= 400_000 {
		out = append(out, models.MilestoneBenefit{
			ThresholdRupees: 400_000,
			Description:     "₹3,000 EaseMyTrip voucher at ₹4,00,000 annual spend",
		})
	}
	if spend >= 800_000 {
		out = append(out, models.MilestoneBenefit{
			ThresholdRupees: 800_000,
			Description:     "₹3,000 EaseMyTrip voucher at ₹8,00,000 annual spend",
		})
	}
	return out
}

// atlasMilestones reports the EDGE Miles milestone tiers crossed.
func atlasMilestones(spend int64) []models.MilestoneBenefit {
	var out []models.MilestoneBenefit
	if spend >= 300_000 {
		out = append(out, models.MilestoneBenefit{
			ThresholdRupees: 300_000,
			Description:     "2,500 EDGE Miles at ₹3,00,000 annual spend",
		})
	}
	if spend >= 750_000 {
		out = append(out, models.MilestoneBenefit{
			ThresholdRupees: 750_000,
			Description:     "additional 2,500 EDGE Miles at ₹7,50,000 annual spend",
		})
	}
	if spend >= 1_500_000 {
		out = append(out, models.MilestoneBenefit{
			ThresholdRupees: 1_500_000,
			Description:     "additional 5,000 EDGE Miles at ₹15,00,000 annual spend",
		})
	}
	return out
}

// isExcluded checks the card document's accrual_exclusions list first,
// falling back to the program's built-in exclusion set.
func isExcluded(card *models.CardRecord, category models.Category, program map[models.Category]bool) bool {
	if category == models.CategoryNone {
		return false
	}
	if card.Rewards != nil {
		for _, excl := range card.Rewards.AccrualExclusions {
			if strings.Contains(strings.ToLower(excl), string(category)) {
				return true
			}
		}
	}
	return program[category]
}

// categoryCap resolves the per-statement-cycle point cap for a
// category: a number parsed out of the card document's free-text cap
// string when present, otherwise the program default.
func categoryCap(card *models.CardRecord, category models.Category, defaults map[models.Category]int64) (int64, bool) {
	if category == models.CategoryNone {
		return 0, false
	}
	// Cap keys in the documents vary between singular and plural forms
	// ("utility" vs "utilities"), so compare singularized stems.
	catStem := inflection.Singular(string(category))
	if card.Rewards != nil {
		for key, capStr := range card.Rewards.CappingPerStatementCycle {
			keyStem := inflection.Singular(strings.ToLower(key))
			if !strings.Contains(keyStem, catStem) && !strings.Contains(catStem, keyStem) {
				continue
			}
			if m := capNumberPattern.FindString(capStr); m != "" {
				var limit int64
				if _, err := fmt.Sscanf(strings.ReplaceAll(m, ",", ""), "%d", &limit); err == nil && limit > 0 {
					return limit, true
				}
			}
		}
	}
	limit, ok := defaults[category]
	return limit, ok
}
