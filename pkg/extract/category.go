package extract

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mandys/cardqa/pkg/models"
)

// categoryEntry binds lookup keywords to one category. Entries are
// checked in order and the first match wins; multi-category queries are
// not combined.
type categoryEntry struct {
	category models.Category
	phrases  []string // matched as substrings, before tokenization
	keywords []string // matched against singularized tokens
}

var categoryTable = []categoryEntry{
	{models.CategoryHotel, nil, []string{"hotel"}},
	{models.CategoryTravel, []string{"air ticket"}, []string{"travel", "flight", "airfare", "airline"}},
	{models.CategoryUtilities, []string{"electricity bill", "water bill"}, []string{"utility", "electricity"}},
	{models.CategoryFuel, []string{"gas station"}, []string{"fuel", "petrol", "diesel"}},
	{models.CategoryRent, nil, []string{"rent"}},
	{models.CategoryEducation, []string{"school fee", "college fee"}, []string{"education", "tuition"}},
	{models.CategoryGaming, nil, []string{"gaming", "game"}},
	{models.CategoryWallet, nil, []string{"wallet", "upi", "paytm"}},
	{models.CategoryInsurance, nil, []string{"insurance", "premium"}},
	{models.CategoryGovernment, nil, []string{"government", "tax"}},
	{models.CategoryGold, nil, []string{"gold", "jewellery", "jewelry"}},
	{models.CategoryGrocery, nil, []string{"grocery", "supermarket"}},
	{models.CategoryDining, []string{"eating out"}, []string{"dining", "restaurant", "food"}},
	{models.CategoryTelecom, []string{"mobile recharge"}, []string{"telecom"}},
}

// Category returns the spending category mentioned in the query, or
// CategoryNone. Tokens are singularized before lookup so "hotels" and
// "groceries" hit the same entries as their singular forms.
func Category(query string) models.Category {
	lower := strings.ToLower(query)

	tokens := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	singulars := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		singulars[inflection.Singular(t)] = true
	}

	for _, entry := range categoryTable {
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				return entry.category
			}
		}
		for _, kw := range entry.keywords {
			if singulars[kw] {
				return entry.category
			}
		}
	}
	return models.CategoryNone
}
