package models

import "github.com/google/uuid"

// Category is a spending category drawn from a fixed set. Categories
// drive surcharge lookups, accrual exclusions and reward caps.
type Category string

const (
	CategoryNone       Category = ""
	CategoryHotel      Category = "hotel"
	CategoryTravel     Category = "travel"
	CategoryUtilities  Category = "utilities"
	CategoryFuel       Category = "fuel"
	CategoryRent       Category = "rent"
	CategoryEducation  Category = "education"
	CategoryGaming     Category = "gaming"
	CategoryWallet     Category = "wallet"
	CategoryInsurance  Category = "insurance"
	CategoryGovernment Category = "government"
	CategoryGold       Category = "gold"
	CategoryGrocery    Category = "grocery"
	CategoryDining     Category = "dining"
	CategoryTelecom    Category = "telecom"
)

// ExtractedEntities is the per-query record of what the extractors
// found. Zero values mean "not present in the query".
type ExtractedEntities struct {
	// CardNames holds keys into the card registry. Empty means every
	// loaded card is in scope.
	CardNames []string
	// SpendAmount is in whole rupees. 0 means no amount was found.
	SpendAmount int64
	Category    Category
}

// MilestoneBenefit is a bonus unlocked by cumulative spend crossing a
// threshold, e.g. an EaseMyTrip voucher or bonus EDGE Miles.
type MilestoneBenefit struct {
	ThresholdRupees int64  `json:"threshold_rupees"`
	Description     string `json:"description"`
}

// RewardCalculationResult is the outcome of one deterministic reward
// calculation. Supported=false is the structured "this card has no
// calculator" error; nothing here is ever persisted.
type RewardCalculationResult struct {
	CardName        string             `json:"card_name"`
	SpendAmount     int64              `json:"spend_amount"`
	Points          int64              `json:"points"`
	Unit            string             `json:"unit"` // "points" or "miles"
	RateDescription string             `json:"rate_description"`
	Trace           string             `json:"trace"`
	Category        Category           `json:"category,omitempty"`
	Excluded        bool               `json:"excluded"`
	CapApplied      bool               `json:"cap_applied"`
	Milestones      []MilestoneBenefit `json:"milestones,omitempty"`

	Supported bool   `json:"supported"`
	Reason    string `json:"reason,omitempty"`
}

// ChatExchange is one past query/answer pair, folded into the prompt
// for conversational context.
type ChatExchange struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}

// AnswerResult is what the query pipeline hands back to callers.
type AnswerResult struct {
	QueryID     uuid.UUID                  `json:"query_id"`
	Answer      string                     `json:"answer"`
	Intent      string                     `json:"intent,omitempty"`
	CardNames   []string                   `json:"cards,omitempty"`
	SpendAmount int64                      `json:"spend_amount,omitempty"`
	Category    Category                   `json:"category,omitempty"`
	Calculation []*RewardCalculationResult `json:"calculation,omitempty"`
	Followups   []string                   `json:"followups,omitempty"`
	Provider    string                     `json:"provider,omitempty"`
}
