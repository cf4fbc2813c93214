// Package services wires the query-understanding pipeline: context
// assembly, deterministic reward calculation, follow-up suggestions and
// answer orchestration.
package services

import (
	"encoding/json"

	"github.com/mandys/cardqa/pkg/cards"
	"github.com/mandys/cardqa/pkg/intent"
	"github.com/mandys/cardqa/pkg/models"
)

// ContextAssembler selects the subset of loaded card data relevant to
// one query, so the prompt stays bounded regardless of document size.
type ContextAssembler struct {
	registry *cards.Registry
}

// NewContextAssembler creates an assembler over the loaded registry.
func NewContextAssembler(registry *cards.Registry) *ContextAssembler {
	return &ContextAssembler{registry: registry}
}

// intentCategory maps a spending-category intent to its category so a
// query like "fuel surcharge?" works without an explicit category
// entity.
func intentCategory(in intent.Intent) models.Category {
	switch in {
	case intent.IntentUtilities:
		return models.CategoryUtilities
	case intent.IntentFuel:
		return models.CategoryFuel
	case intent.IntentRent:
		return models.CategoryRent
	case intent.IntentEducation:
		return models.CategoryEducation
	case intent.IntentGaming:
		return models.CategoryGaming
	case intent.IntentWallet:
		return models.CategoryWallet
	case intent.IntentInsurance:
		return models.CategoryInsurance
	case intent.IntentGovernment:
		return models.CategoryGovernment
	case intent.IntentGold:
		return models.CategoryGold
	case intent.IntentGrocery:
		return models.CategoryGrocery
	case intent.IntentDining:
		return models.CategoryDining
	case intent.IntentHotel:
		return models.CategoryHotel
	case intent.IntentTelecom:
		return models.CategoryTelecom
	default:
		return models.CategoryNone
	}
}

// Assemble returns the JSON-serializable context subset for the query.
// The subset never contains card fields outside the policy for the
// detected intent.
func (a *ContextAssembler) Assemble(in intent.Intent, ents models.ExtractedEntities) map[string]any {
	inScope := a.registry.Cards(ents.CardNames)

	switch {
	case in == intent.IntentRewardComparison || in == intent.IntentRewardCalculation:
		// Comparison and calculation questions need only the rewards
		// section of each card in scope.
		return map[string]any{
			"cards": cardFields(inScope, "rewards"),
		}

	case in.IsSpendCategory():
		category := ents.Category
		if category == models.CategoryNone {
			category = intentCategory(in)
		}
		// Category questions answer both "do I pay a fee" and "do I
		// earn rewards": bank surcharge terms plus the cards' exclusion
		// and capping fields.
		subset := map[string]any{
			"cards": rewardAccrualFields(inScope),
		}
		if surcharges := a.registry.SurchargeEntry(category); len(surcharges) > 0 {
			subset["surcharge_fees"] = surcharges
		}
		return subset

	case in == intent.IntentNone && len(ents.CardNames) == 0:
		// Nothing recognized: shallow listing so the model can at least
		// tell the user what it knows about.
		return map[string]any{
			"available_cards": a.registry.CardNames(),
		}

	case in == intent.IntentNone:
		// Card named but topic unclear: card-only context.
		return map[string]any{
			"cards": fullCards(inScope),
		}

	default:
		key := in.FieldKey()
		if key == "" {
			key = string(in)
		}
		return map[string]any{
			"cards": cardFields(inScope, key),
		}
	}
}

// AssembleJSON runs Assemble and serializes the subset for embedding in
// a prompt.
func (a *ContextAssembler) AssembleJSON(in intent.Intent, ents models.ExtractedEntities) (string, error) {
	data, err := json.MarshalIndent(a.Assemble(in, ents), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cardFields(records []*models.CardRecord, key string) map[string]any {
	out := make(map[string]any, len(records))
	for _, c := range records {
		fields := map[string]any{}
		if raw := c.Field(key); raw != nil {
			fields[key] = raw
		}
		out[c.Name] = fields
	}
	return out
}

func rewardAccrualFields(records []*models.CardRecord) map[string]any {
	out := make(map[string]any, len(records))
	for _, c := range records {
		fields := map[string]any{}
		if c.Rewards != nil {
			rewards := map[string]any{}
			if raw, ok := c.Rewards.Fields["accrual_exclusions"]; ok {
				rewards["accrual_exclusions"] = raw
			}
			if raw, ok := c.Rewards.Fields["capping_per_statement_cycle"]; ok {
				rewards["capping_per_statement_cycle"] = raw
			}
			fields["rewards"] = rewards
		}
		out[c.Name] = fields
	}
	return out
}

func fullCards(records []*models.CardRecord) map[string]any {
	out := make(map[string]any, len(records))
	for _, c := range records {
		fields := make(map[string]any, len(c.Fields))
		for k, raw := range c.Fields {
			fields[k] = raw
		}
		out[c.Name] = fields
	}
	return out
}
