package extract

import "strings"

// Fixed abbreviations users actually type, mapped to a substring of the
// card's display name. Checked before the derived keyword sets.
var cardAbbreviations = map[string]string{
	"epm":   "emeralde",
	"atlas": "atlas",
}

// Words that appear in every card name and carry no signal.
var cardNameStopwords = map[string]bool{
	"bank":   true,
	"card":   true,
	"credit": true,
}

// CardMatcher matches free-text queries against the set of loaded card
// names. Built once after data load; safe for concurrent use.
type CardMatcher struct {
	names    []string            // registry order, for deterministic output
	keywords map[string][]string // card name -> lowercase keywords
}

// NewCardMatcher derives per-card keyword lists from display names:
// words longer than three characters, minus bank/card/credit.
func NewCardMatcher(names []string) *CardMatcher {
	m := &CardMatcher{
		names:    append([]string(nil), names...),
		keywords: make(map[string][]string, len(names)),
	}
	for _, name := range names {
		var kws []string
		for _, w := range strings.Fields(strings.ToLower(name)) {
			if len(w) > 3 && !cardNameStopwords[w] {
				kws = append(kws, w)
			}
		}
		m.keywords[name] = kws
	}
	return m
}

// Match returns the card names mentioned in the query, in registry
// order. An empty result means no card was recognized and the caller
// should treat every loaded card as in scope.
func (m *CardMatcher) Match(query string) []string {
	lower := strings.ToLower(query)
	matched := make(map[string]bool)

	for abbrev, nameFragment := range cardAbbreviations {
		if !strings.Contains(lower, abbrev) {
			continue
		}
		for _, name := range m.names {
			if strings.Contains(strings.ToLower(name), nameFragment) {
				matched[name] = true
			}
		}
	}

	for _, name := range m.names {
		if matched[name] {
			continue
		}
		for _, kw := range m.keywords[name] {
			if strings.Contains(lower, kw) {
				matched[name] = true
				break
			}
		}
	}

	var out []string
	for _, name := range m.names {
		if matched[name] {
			out = append(out, name)
		}
	}
	return out
}
