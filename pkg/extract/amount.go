// Package extract pulls card names, spend amounts and spending
// categories out of free-text queries. All extractors are pure
// functions over fixed tables.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Indian currency shorthand: "20k", "2L", "1.5 Cr", "3 lakh". Longer
// alternatives come first so "lakh" is not consumed as a bare "l".
var shorthandPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(lakhs?|crores?|thousand|cr|k|l)\b`)

// Grouped digits like 2,00,000 or 100,000.
var groupedDigitsPattern = regexp.MustCompile(`(\d),(\d)`)

var integerPattern = regexp.MustCompile(`\d+`)

func shorthandMultiplier(suffix string) int64 {
	switch strings.ToLower(suffix) {
	case "k", "thousand":
		return 1_000
	case "l", "lakh", "lakhs":
		return 100_000
	case "cr", "crore", "crores":
		return 10_000_000
	}
	return 1
}

// NormalizeCurrency rewrites Indian currency shorthand into absolute
// rupee values: "2.5L" becomes "₹250000". Decimal quantities are
// resolved exactly, so "1.5 Cr" is 15000000 and never a float artifact.
// The rewritten query is what gets embedded in downstream prompts.
func NormalizeCurrency(query string) string {
	return shorthandPattern.ReplaceAllStringFunc(query, func(match string) string {
		sub := shorthandPattern.FindStringSubmatch(match)
		num, err := decimal.NewFromString(sub[1])
		if err != nil {
			return match
		}
		value := num.Mul(decimal.NewFromInt(shorthandMultiplier(sub[2])))
		if !value.IsInteger() {
			value = value.Floor()
		}
		return "₹" + value.String()
	})
}

// Amount returns the spend amount in rupees mentioned in the query.
// Shorthand is normalized first, digit grouping is stripped, then the
// maximum integer literal wins. Taking the maximum is a deliberate
// simplification: it misfires on queries carrying two independent
// quantities, which callers accept as a known limitation.
func Amount(query string) (int64, bool) {
	normalized := NormalizeCurrency(query)
	for groupedDigitsPattern.MatchString(normalized) {
		normalized = groupedDigitsPattern.ReplaceAllString(normalized, "$1$2")
	}

	var best int64
	found := false
	for _, lit := range integerPattern.FindAllString(normalized, -1) {
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}
