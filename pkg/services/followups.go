package services

import (
	"github.com/mandys/cardqa/pkg/intent"
	"github.com/mandys/cardqa/pkg/models"
)

// maxFollowups bounds how many suggestions ride along with one answer.
const maxFollowups = 3

// Intent-keyed follow-up question templates. The first entries are the
// strongest suggestions; selection is deterministic so responses are
// reproducible.
var followupTemplates = map[intent.Intent][]string{
	intent.IntentRewardCalculation: {
		"Would you like to compare this with the other card's rewards?",
		"Would you like to know about any spending caps for this category?",
		"Should I calculate the annual rewards for your typical spending pattern?",
	},
	intent.IntentRewardComparison: {
		"Which specific feature matters most to you?",
		"Are you interested in the joining and annual fees comparison?",
		"Would you like a side-by-side benefits comparison?",
	},
	intent.IntentLoungeAccess: {
		"Would you like to know about international lounge access?",
		"Are you interested in guest access policies?",
		"Do you want to compare lounge networks between cards?",
	},
	intent.IntentMilesTransfer: {
		"Would you like to know about transfer ratios to specific airlines?",
		"Are you interested in transfer time and fees?",
	},
	intent.IntentFees: {
		"Would you like to know about fee waiver conditions?",
		"Are you interested in ways to offset the annual fee?",
	},
	intent.IntentAnnualFeeReversalSpendThreshold: {
		"Would you like to compare the fee against the benefits value?",
		"Do you want to know about first-year fee offers?",
	},
	intent.IntentRedemption: {
		"Would you like to know the best redemption options for maximum value?",
		"Are you interested in transfer partners for better redemption rates?",
	},
}

var genericFollowups = []string{
	"Would you like more details about any specific aspect?",
	"Are you comparing this with another card?",
	"Should I help you with a spending scenario calculation?",
}

// FollowupGenerator suggests next questions based on the detected
// intent and the entities found in the current query.
type FollowupGenerator struct{}

// NewFollowupGenerator creates a generator.
func NewFollowupGenerator() *FollowupGenerator {
	return &FollowupGenerator{}
}

// Generate returns at most maxFollowups suggestions, deduplicated, in a
// deterministic order: intent templates first, then context-specific
// additions, then generic fallbacks.
func (g *FollowupGenerator) Generate(in intent.Intent, ents models.ExtractedEntities) []string {
	var candidates []string

	if templates, ok := followupTemplates[in]; ok {
		candidates = append(candidates, templates...)
	}

	if ents.SpendAmount > 0 && len(ents.CardNames) == 0 {
		candidates = append(candidates, "Which card would you like me to calculate this spend for?")
	}
	if len(ents.CardNames) == 1 {
		candidates = append(candidates, "Would you like to see how the other card handles this?")
	}
	if ents.Category != models.CategoryNone {
		candidates = append(candidates, "Do you want to know about reward caps or surcharges for this category?")
	}

	candidates = append(candidates, genericFollowups...)

	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == maxFollowups {
			break
		}
	}
	return out
}
