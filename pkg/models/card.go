package models

import (
	"encoding/json"
	"strings"
)

// CardID identifies a card with first-class support in the reward
// calculator. Resolved once at load time so downstream dispatch is an
// exhaustive switch instead of repeated name matching.
type CardID string

const (
	CardIDUnknown   CardID = ""
	CardIDICICIEPM  CardID = "icici-epm"
	CardIDAxisAtlas CardID = "axis-atlas"
)

// ResolveCardID maps a document-supplied id or display name to a CardID.
// An explicit id field in the source document wins; otherwise we fall
// back to substring matching on the display name, which is how the
// upstream terms documents have historically been keyed.
func ResolveCardID(id, name string) CardID {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case string(CardIDICICIEPM):
		return CardIDICICIEPM
	case string(CardIDAxisAtlas):
		return CardIDAxisAtlas
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "icici") && strings.Contains(lower, "emeralde") {
		return CardIDICICIEPM
	}
	if strings.Contains(lower, "axis") && strings.Contains(lower, "atlas") {
		return CardIDAxisAtlas
	}
	return CardIDUnknown
}

// CardDocument is the root of one loaded terms file: one bank's common
// terms plus its cards.
type CardDocument struct {
	Bank        string          `json:"-"` // derived from file name
	CommonTerms CommonTerms     `json:"common_terms"`
	Cards       []*CardRecord   `json:"cards"`
	Raw         json.RawMessage `json:"-"`
}

// CommonTerms holds bank-wide fee and surcharge tables. Only the
// surcharge table has structure we rely on; everything else is kept raw
// for the context assembler.
type CommonTerms struct {
	SurchargeFees map[string]json.RawMessage `json:"surcharge_fees"`
	Fields        map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON keeps both the typed surcharge table and the full raw
// field map, so the assembler can serve fields we never modeled.
func (ct *CommonTerms) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	ct.Fields = fields

	if raw, ok := fields["surcharge_fees"]; ok {
		if err := json.Unmarshal(raw, &ct.SurchargeFees); err != nil {
			// Surcharge table may be free text in older documents.
			ct.SurchargeFees = nil
		}
	}
	return nil
}

// CardRecord is one credit card's full terms. Known sections are typed;
// the Fields map retains every top-level section by its source key so
// the assembler's generic field fallback can reach unmodeled data.
type CardRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bank string `json:"-"` // denormalized at load time

	CardID  CardID   `json:"-"` // resolved at load time
	Rewards *Rewards `json:"-"`

	Fields map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON populates the typed fields and the raw field map in one
// pass. Missing sections stay nil; the schema is tolerant by contract.
func (c *CardRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	c.Fields = fields

	if raw, ok := fields["id"]; ok {
		_ = json.Unmarshal(raw, &c.ID)
	}
	if raw, ok := fields["name"]; ok {
		_ = json.Unmarshal(raw, &c.Name)
	}
	if raw, ok := fields["rewards"]; ok {
		var rw Rewards
		if err := json.Unmarshal(raw, &rw); err == nil {
			c.Rewards = &rw
		}
	}
	return nil
}

// Field returns a top-level section by key, nil if absent.
func (c *CardRecord) Field(key string) json.RawMessage {
	if c.Fields == nil {
		return nil
	}
	return c.Fields[key]
}

// Rewards is the one card section the calculator reads directly.
type Rewards struct {
	RateGeneral              string                     `json:"rate_general"`
	AccrualExclusions        []string                   `json:"accrual_exclusions"`
	CappingPerStatementCycle map[string]string          `json:"capping_per_statement_cycle"`
	Fields                   map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON tolerates the loosely typed rewards section: exclusions
// may be a list or a single string, caps may be numbers or free text.
func (r *Rewards) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.Fields = fields

	if raw, ok := fields["rate_general"]; ok {
		_ = json.Unmarshal(raw, &r.RateGeneral)
	}
	if raw, ok := fields["accrual_exclusions"]; ok {
		if err := json.Unmarshal(raw, &r.AccrualExclusions); err != nil {
			var single string
			if json.Unmarshal(raw, &single) == nil && single != "" {
				r.AccrualExclusions = []string{single}
			}
		}
	}
	if raw, ok := fields["capping_per_statement_cycle"]; ok {
		var caps map[string]json.RawMessage
		if json.Unmarshal(raw, &caps) == nil {
			r.CappingPerStatementCycle = make(map[string]string, len(caps))
			for k, v := range caps {
				var s string
				if json.Unmarshal(v, &s) == nil {
					r.CappingPerStatementCycle[k] = s
				} else {
					r.CappingPerStatementCycle[k] = string(v)
				}
			}
		}
	}
	return nil
}
