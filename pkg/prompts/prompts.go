// Package prompts builds the system and user prompts handed to the
// completion providers. Templates are keyed by intent so the model gets
// instructions scoped to the question type.
package prompts

import (
	"fmt"
	"strings"

	"github.com/mandys/cardqa/pkg/intent"
	"github.com/mandys/cardqa/pkg/models"
)

const basePersona = `You are an expert credit card advisor specializing in Indian credit cards.

IMPORTANT RULES:
- ALWAYS base answers on the provided card data only
- If data is missing, clearly state what information is not available
- Use Indian currency notation (₹, lakh, crore) naturally
- Be precise with numbers and calculations
- Give concise, direct answers; simple questions get 1-2 sentence answers`

const calculationRules = `
CALCULATION GUIDELINES:
- Check earning rates for the specific category (travel, dining, etc.)
- Apply spending caps where the data mentions them
- ALWAYS check accrual_exclusions before computing rewards; excluded categories earn nothing
- Show the step-by-step calculation: Spend Amount ÷ Spend Unit × Rate = Total
- For milestone questions, report BOTH the regular earning AND the milestone bonus`

const comparisonRules = `
COMPARISON GUIDELINES:
- Analyze every card in the provided data, then give a clear recommendation
- Check exclusions first: a category excluded on one card may earn on the other
- For multi-category spending, give a category-by-category breakdown with totals`

const feeVsBenefitRules = `
CRITICAL: DISTINGUISH BETWEEN FEES AND BENEFITS:
- "joining fee" = cost to get the card (fees section)
- "joining benefits" = rewards received on joining (welcome_benefits section)
- "For paying the joining fee, how many miles?" asks about WELCOME BENEFITS, not the fee amount`

const categoryRules = `
CATEGORY PAYMENT GUIDELINES — always cover both sides:
1. Whether rewards are earned (check accrual_exclusions)
2. Any surcharge or fee (check the surcharge terms in the context)
3. Any caps on rewards for this category (check capping fields)`

// SystemPrompt returns the intent-scoped system prompt.
func SystemPrompt(in intent.Intent) string {
	var b strings.Builder
	b.WriteString(basePersona)

	switch {
	case in == intent.IntentRewardCalculation || in == intent.IntentMilestones:
		b.WriteString(calculationRules)
	case in == intent.IntentRewardComparison:
		b.WriteString(calculationRules)
		b.WriteString(comparisonRules)
	case in == intent.IntentWelcomeBenefits || in == intent.IntentFees ||
		in == intent.IntentAnnualFeeReversalSpendThreshold:
		b.WriteString(feeVsBenefitRules)
	case in == intent.IntentExclusions:
		b.WriteString("\nEXCLUSIONS: answer strictly from the accrual_exclusions and spend_exclusion_policy fields. A category not listed there earns the general rate.")
	case in == intent.IntentLoungeAccess:
		b.WriteString("\nLOUNGE ACCESS: state domestic and international entitlements separately, including guest policies and tier conditions where present.")
	case in == intent.IntentMilesTransfer:
		b.WriteString("\nMILES TRANSFER: cover transfer partners, ratios and any transfer caps present in the data.")
	case in.IsSpendCategory():
		b.WriteString(categoryRules)
	}

	return b.String()
}

// UserPrompt assembles the user message: the (currency-normalized)
// question, recent conversation context, and the JSON context subset
// selected for this intent.
func UserPrompt(query string, contextJSON string, history []models.ChatExchange) string {
	var b strings.Builder

	fmt.Fprintf(&b, "USER QUESTION: %s\n", query)

	if len(history) > 0 {
		// Last 3 exchanges only; older context stops helping.
		start := len(history) - 3
		if start < 0 {
			start = 0
		}
		b.WriteString("\nCONVERSATION CONTEXT:\n")
		for _, ex := range history[start:] {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", ex.Query, ex.Response)
		}
	}

	b.WriteString("\nRELEVANT CREDIT CARD DATA:\n")
	b.WriteString(contextJSON)
	b.WriteString("\n\nProvide a clear answer based on the credit card data above. Do not just repeat the JSON; explain it like an expert.")

	return b.String()
}
