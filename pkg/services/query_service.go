package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mandys/cardqa/pkg/cards"
	"github.com/mandys/cardqa/pkg/extract"
	"github.com/mandys/cardqa/pkg/intent"
	"github.com/mandys/cardqa/pkg/llm"
	"github.com/mandys/cardqa/pkg/models"
	"github.com/mandys/cardqa/pkg/prompts"
)

// Completer is the slice of the llm.Chain the query service needs.
// Satisfied by *llm.Chain; narrowed for mocking in tests.
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, string, error)
}

// QueryService runs the full pipeline for one query: classify, extract,
// assemble context, then either compute a deterministic reward answer
// or delegate prose synthesis to the completion chain. It never returns
// an error to callers; every failure degrades to a textual answer.
type QueryService struct {
	registry   *cards.Registry
	matcher    *extract.CardMatcher
	assembler  *ContextAssembler
	calculator *RewardCalculator
	followups  *FollowupGenerator
	completer  Completer
	logger     *zap.Logger
}

// NewQueryService wires the pipeline over a loaded registry.
func NewQueryService(registry *cards.Registry, completer Completer, logger *zap.Logger) *QueryService {
	return &QueryService{
		registry:   registry,
		matcher:    extract.NewCardMatcher(registry.CardNames()),
		assembler:  NewContextAssembler(registry),
		calculator: NewRewardCalculator(),
		followups:  NewFollowupGenerator(),
		completer:  completer,
		logger:     logger.Named("query"),
	}
}

// Answer processes one user query with optional conversation history.
func (s *QueryService) Answer(ctx context.Context, query string, history []models.ChatExchange) *models.AnswerResult {
	normalized := extract.NormalizeCurrency(query)

	detected := intent.Classify(normalized)
	ents := models.ExtractedEntities{
		CardNames: s.matcher.Match(normalized),
		Category:  extract.Category(normalized),
	}
	if amount, ok := extract.Amount(query); ok {
		ents.SpendAmount = amount
	}

	result := &models.AnswerResult{
		QueryID:     uuid.New(),
		Intent:      string(detected),
		CardNames:   ents.CardNames,
		SpendAmount: ents.SpendAmount,
		Category:    ents.Category,
	}

	s.logger.Info("query understood",
		zap.String("query_id", result.QueryID.String()),
		zap.String("intent", string(detected)),
		zap.Strings("cards", ents.CardNames),
		zap.Int64("amount", ents.SpendAmount),
		zap.String("category", string(ents.Category)))

	// Numeric reward questions get an exact, auditable answer without
	// touching the hosted model.
	if detected == intent.IntentRewardCalculation && ents.SpendAmount > 0 {
		result.Calculation = s.calculateAll(ents)
		result.Answer = renderCalculations(result.Calculation)
		result.Followups = s.followups.Generate(detected, ents)
		return result
	}

	contextJSON, err := s.assembler.AssembleJSON(detected, ents)
	if err != nil {
		s.logger.Error("context assembly failed", zap.Error(err))
		result.Answer = apology(err)
		return result
	}

	answer, provider, err := s.completer.Complete(ctx, llm.CompletionRequest{
		System:      prompts.SystemPrompt(detected),
		Prompt:      prompts.UserPrompt(normalized, contextJSON, history),
		Temperature: 0.1,
		MaxTokens:   1000,
	})
	if err != nil {
		s.logger.Error("completion failed",
			zap.String("query_id", result.QueryID.String()),
			zap.Error(err))
		result.Answer = apology(err)
		return result
	}

	result.Answer = answer
	result.Provider = provider
	result.Followups = s.followups.Generate(detected, ents)
	return result
}

// calculateAll runs the calculator for every card in scope.
func (s *QueryService) calculateAll(ents models.ExtractedEntities) []*models.RewardCalculationResult {
	records := s.registry.Cards(ents.CardNames)
	out := make([]*models.RewardCalculationResult, 0, len(records))
	for _, card := range records {
		out = append(out, s.calculator.Calculate(card, ents.SpendAmount, ents.Category))
	}
	return out
}

// renderCalculations turns calculator results into the answer text,
// one card per block, preserving the auditable trace.
func renderCalculations(results []*models.RewardCalculationResult) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if !r.Supported {
			fmt.Fprintf(&b, "%s: %s.", r.CardName, r.Reason)
			continue
		}
		fmt.Fprintf(&b, "%s: %s", r.CardName, r.Trace)
		for _, m := range r.Milestones {
			fmt.Fprintf(&b, "\nMilestone: %s", m.Description)
		}
	}
	if b.Len() == 0 {
		return "I couldn't find a card to calculate rewards for."
	}
	return b.String()
}

// apology is the user-facing degradation for any internal failure. The
// raw error rides along so the user can report it.
func apology(err error) string {
	return fmt.Sprintf("I apologize, but I'm having trouble processing your request right now. Please try again. Error: %v", err)
}
