// Package intent classifies free-text card queries into a closed set of
// symbolic intents via an ordered table of regex pattern groups.
package intent

import "regexp"

// Intent is a symbolic label for what the user is asking about. The set
// is closed; callers switch over it or use it to key prompt templates
// and context-assembly policies.
type Intent string

const (
	IntentNone Intent = ""

	IntentAnnualFeeReversalSpendThreshold Intent = "annual_fee_reversal_spend_threshold"
	IntentLoungeAccess                    Intent = "lounge_access"
	IntentRewardComparison                Intent = "reward_comparison"
	IntentRewardCalculation               Intent = "reward_calculation"
	IntentWelcomeBenefits                 Intent = "welcome_benefits"
	IntentMilestones                      Intent = "milestones"
	IntentMilesTransfer                   Intent = "miles_transfer"
	IntentExclusions                      Intent = "exclusions"
	IntentFees                            Intent = "fees"

	IntentUtilities  Intent = "utilities"
	IntentFuel       Intent = "fuel"
	IntentRent       Intent = "rent"
	IntentEducation  Intent = "education"
	IntentGaming     Intent = "gaming"
	IntentWallet     Intent = "wallet"
	IntentInsurance  Intent = "insurance"
	IntentGovernment Intent = "government"
	IntentGold       Intent = "gold"
	IntentGrocery    Intent = "grocery"
	IntentDining     Intent = "dining"
	IntentHotel      Intent = "hotel"
	IntentTelecom    Intent = "telecom"

	IntentTierStructure   Intent = "tier_structure"
	IntentEligibility     Intent = "eligibility"
	IntentRedemption      Intent = "redemption"
	IntentTravelInsurance Intent = "travel_insurance"
	IntentAirportBenefits Intent = "airport_benefits"
	IntentForex           Intent = "forex"
	IntentCashWithdrawal  Intent = "cash_withdrawal"
	IntentEMI             Intent = "emi"
	IntentInterestRate    Intent = "interest_rate"
	IntentLatePayment     Intent = "late_payment"
)

// patternGroup binds one intent to the patterns that select it. Groups
// are evaluated strictly in table order; the first group with any
// matching pattern wins.
type patternGroup struct {
	intent   Intent
	patterns []*regexp.Regexp
}

func group(in Intent, exprs ...string) patternGroup {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + e)
	}
	return patternGroup{intent: in, patterns: compiled}
}

// precedence is the single source of truth for classification order.
// The order is hand-tuned and load-bearing: fee-waiver questions often
// also mention spends and lounges, comparison questions mention single
// categories, and so on. Tests pin the order; do not reorder without
// updating them.
var precedence = []patternGroup{
	group(IntentAnnualFeeReversalSpendThreshold,
		`fee\s+(waiver|reversal|waived)`,
		`waive.*(annual|joining)\s+fee`,
		`(annual|joining)\s+fee.*(waiv|revers)`,
		`spend.*fee\s+(waiver|reversal)`,
		`how much.*spend.*fee`,
	),
	group(IntentLoungeAccess,
		`lounge`,
		`airport.*(access|visit)`,
	),
	group(IntentRewardComparison,
		`(compare|comparison|versus|\bvs\b|\bor\b.*better)`,
		`which\s+(card\s+)?(is\s+)?better`,
		`(more|better)\s+(points|miles|rewards)`,
	),
	group(IntentRewardCalculation,
		`how many\s+(points|miles|rewards)`,
		`(points|miles|rewards).*(for|on|if)\s+.*spend`,
		`spend.*(earn|get|receive).*(points|miles|rewards)`,
		`how much.*(earn|get)`,
	),
	group(IntentWelcomeBenefits,
		`(welcome|joining|renewal)\s+(benefit|bonus|gift|voucher)`,
		`what.*get.*(when|on)\s+joining`,
	),
	group(IntentMilestones,
		`milestone`,
		`spend\s+threshold.*(bonus|voucher)`,
	),
	group(IntentMilesTransfer,
		`(transfer|convert).*(miles|points)`,
		`(miles|points).*transfer`,
		`transfer\s+partner`,
	),
	group(IntentExclusions,
		`exclu(ded|sion)`,
		`(no|not|don.?t)\s+(earn|get).*(points|miles|rewards)`,
		`\bmcc\b`,
	),
	group(IntentFees,
		`(annual|joining|renewal)\s+(fee|charge)`,
		`\b(fee|fees|charges)\b`,
		`how much.*cost`,
	),

	// Checked before the insurance category so "travel insurance" does
	// not resolve to the insurance spending category.
	group(IntentTravelInsurance, `travel\s+insurance`),

	// Single spending-category groups. A query that names a category and
	// a comparison resolves to comparison above, by table order.
	group(IntentUtilities, `utilit(y|ies)`, `electricity`, `(water|power)\s+bill`),
	group(IntentFuel, `\bfuel\b`, `petrol`, `diesel`, `gas\s+station`),
	group(IntentRent, `\brent\b`, `rent\s+payment`),
	group(IntentEducation, `education`, `school\s+fee`, `college`, `tuition`),
	group(IntentGaming, `gaming`, `\bgames?\b`),
	group(IntentWallet, `wallet`, `\bupi\b`, `paytm`),
	group(IntentInsurance, `insurance\s+(payment|premium)`, `\binsurance\b`),
	group(IntentGovernment, `government`, `\btax(es)?\b`),
	group(IntentGold, `\bgold\b`, `jewell?ery`),
	group(IntentGrocery, `grocer(y|ies)`, `supermarket`),
	group(IntentDining, `dining`, `restaurant`, `eating\s+out`),
	group(IntentHotel, `hotels?\b`, `hotel\s+booking`),
	group(IntentTelecom, `telecom`, `mobile\s+recharge`),

	// Generic fallbacks keyed off known top-level document fields.
	group(IntentTierStructure, `\btiers?\b`, `tier\s+structure`),
	group(IntentEligibility, `eligib`, `who can apply`, `income\s+requirement`),
	group(IntentRedemption, `redeem`, `redemption`),
	group(IntentAirportBenefits, `airport.*(meet|greet|transfer)`),
	group(IntentForex, `forex`, `foreign\s+(currency|transaction)`, `international\s+spend`),
	group(IntentCashWithdrawal, `cash\s+(withdrawal|advance)`, `\batm\b`),
	group(IntentEMI, `\bemi\b`, `installment`),
	group(IntentInterestRate, `interest\s+rate`, `\bapr\b`, `finance\s+charge`),
	group(IntentLatePayment, `late\s+payment`, `missed\s+payment`),
}

// Classify returns the first intent whose pattern group matches, or
// IntentNone when nothing matches. Callers must treat IntentNone as a
// general, unscoped query.
func Classify(query string) Intent {
	for _, g := range precedence {
		for _, p := range g.patterns {
			if p.MatchString(query) {
				return g.intent
			}
		}
	}
	return IntentNone
}

// Precedence returns the classification order as a literal list of
// intents. Exposed so tests can pin the order.
func Precedence() []Intent {
	out := make([]Intent, len(precedence))
	for i, g := range precedence {
		out[i] = g.intent
	}
	return out
}

// FieldKey maps an intent to the top-level document section that
// answers it, or "" when no single section applies.
func (i Intent) FieldKey() string {
	switch i {
	case IntentAnnualFeeReversalSpendThreshold, IntentFees:
		return "fees"
	case IntentLoungeAccess:
		return "lounge_access"
	case IntentRewardComparison, IntentRewardCalculation, IntentExclusions:
		return "rewards"
	case IntentWelcomeBenefits:
		return "welcome_benefits"
	case IntentMilestones:
		return "milestones"
	case IntentMilesTransfer:
		return "miles_transfer"
	case IntentTierStructure:
		return "tier_structure"
	case IntentEligibility:
		return "eligibility"
	default:
		return ""
	}
}

// IsSpendCategory reports whether the intent is a single
// spending-category question (surcharges plus accrual treatment).
func (i Intent) IsSpendCategory() bool {
	switch i {
	case IntentUtilities, IntentFuel, IntentRent, IntentEducation,
		IntentGaming, IntentWallet, IntentInsurance, IntentGovernment,
		IntentGold, IntentGrocery, IntentDining, IntentHotel, IntentTelecom:
		return true
	}
	return false
}
