package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mandys/cardqa/pkg/intent"
	"github.com/mandys/cardqa/pkg/models"
)

func TestGenerateBoundedAndDeterministic(t *testing.T) {
	g := NewFollowupGenerator()
	ents := models.ExtractedEntities{
		CardNames:   []string{"Axis Bank Atlas Credit Card"},
		SpendAmount: 200000,
		Category:    models.CategoryHotel,
	}

	first := g.Generate(intent.IntentRewardCalculation, ents)
	assert.Len(t, first, maxFollowups)

	// Same inputs, same suggestions, same order.
	second := g.Generate(intent.IntentRewardCalculation, ents)
	assert.Equal(t, first, second)
}

func TestGenerateIntentTemplatesFirst(t *testing.T) {
	g := NewFollowupGenerator()

	out := g.Generate(intent.IntentLoungeAccess, models.ExtractedEntities{})
	assert.Equal(t, followupTemplates[intent.IntentLoungeAccess][:maxFollowups], out)
}

func TestGenerateFallsBackToGenerics(t *testing.T) {
	g := NewFollowupGenerator()

	// An intent with no templates and no entities yields the generics.
	out := g.Generate(intent.IntentForex, models.ExtractedEntities{})
	assert.Equal(t, genericFollowups[:maxFollowups], out)
}

func TestGenerateContextualSuggestions(t *testing.T) {
	g := NewFollowupGenerator()

	// Amount but no card: ask which card to calculate for.
	out := g.Generate(intent.IntentForex, models.ExtractedEntities{SpendAmount: 50000})
	assert.Contains(t, out, "Which card would you like me to calculate this spend for?")

	// Single card in scope: offer the cross-card view.
	out = g.Generate(intent.IntentForex, models.ExtractedEntities{
		CardNames: []string{"Axis Bank Atlas Credit Card"},
	})
	assert.Contains(t, out, "Would you like to see how the other card handles this?")
}
