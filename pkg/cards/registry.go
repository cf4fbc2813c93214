// Package cards loads credit-card terms documents and serves them as an
// immutable in-memory registry for the query pipeline.
package cards

import (
	"encoding/json"

	"github.com/mandys/cardqa/pkg/models"
)

// Registry is the read-only view over all loaded card documents. It is
// built once at startup and shared across queries without locking; no
// mutation happens after Load returns.
type Registry struct {
	names       []string // insertion order of surviving cards
	cardsByName map[string]*models.CardRecord
	termsByBank map[string]*models.CommonTerms
	bankOrder   []string
}

func newRegistry() *Registry {
	return &Registry{
		cardsByName: make(map[string]*models.CardRecord),
		termsByBank: make(map[string]*models.CommonTerms),
	}
}

// add registers one card. A name collision overwrites the earlier
// record, keeping the earlier position; the caller logs it.
func (r *Registry) add(card *models.CardRecord) (collision bool) {
	if _, exists := r.cardsByName[card.Name]; exists {
		r.cardsByName[card.Name] = card
		return true
	}
	r.names = append(r.names, card.Name)
	r.cardsByName[card.Name] = card
	return false
}

func (r *Registry) addTerms(bank string, terms *models.CommonTerms) {
	if _, exists := r.termsByBank[bank]; !exists {
		r.bankOrder = append(r.bankOrder, bank)
	}
	r.termsByBank[bank] = terms
}

// CardNames returns all loaded card names in load order.
func (r *Registry) CardNames() []string {
	return append([]string(nil), r.names...)
}

// Card returns the record for a card name, nil if unknown.
func (r *Registry) Card(name string) *models.CardRecord {
	return r.cardsByName[name]
}

// Cards resolves a set of names to records, skipping unknown names.
// An empty input means "all cards in scope" and returns everything.
func (r *Registry) Cards(names []string) []*models.CardRecord {
	if len(names) == 0 {
		names = r.names
	}
	out := make([]*models.CardRecord, 0, len(names))
	for _, n := range names {
		if c := r.cardsByName[n]; c != nil {
			out = append(out, c)
		}
	}
	return out
}

// CommonTerms returns the common-terms block for a bank, nil if absent.
func (r *Registry) CommonTerms(bank string) *models.CommonTerms {
	return r.termsByBank[bank]
}

// SurchargeEntry looks up the bank-wide surcharge terms for a category
// across all banks. Returns bank → raw terms for banks that define one.
func (r *Registry) SurchargeEntry(category models.Category) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage)
	for _, bank := range r.bankOrder {
		terms := r.termsByBank[bank]
		if terms == nil || terms.SurchargeFees == nil {
			continue
		}
		if raw, ok := terms.SurchargeFees[string(category)]; ok {
			out[bank] = raw
		}
	}
	return out
}

// Len reports how many cards survived loading.
func (r *Registry) Len() int {
	return len(r.names)
}
