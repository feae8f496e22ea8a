package view

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Constraint is a sealed interface over the typed funnel filter constraints.
// Only TextConstraint, NumberConstraint, and DateConstraint implement it.
type Constraint interface {
	constraint() // Sealed - only these types implement it

	// Match reports whether the raw field value satisfies the constraint.
	// The raw value is the accessor-resolved candidate value (nil when the
	// field is absent from the record).
	Match(raw any, present bool) bool
}

// TextConstraint matches records whose field contains the value as a
// case-insensitive substring. An empty value matches everything - this is
// how "filter present but cleared" stays distinct from "filter absent"
// without special-casing deletion.
type TextConstraint struct {
	Value string
}

func (TextConstraint) constraint() {}

// Match implements Constraint.
func (c TextConstraint) Match(raw any, present bool) bool {
	if c.Value == "" {
		return true
	}
	if !present {
		return false
	}
	return strings.Contains(fold(record.AsString(raw)), fold(c.Value))
}

// NumberConstraint matches records whose field parses as a number inside the
// inclusive [From, To] range. A field that fails to parse fails the filter
// (fails closed). Nil bounds are open.
type NumberConstraint struct {
	From *float64
	To   *float64
}

func (NumberConstraint) constraint() {}

// Match implements Constraint.
func (c NumberConstraint) Match(raw any, present bool) bool {
	if !present {
		return false
	}
	n, ok := record.AsNumber(raw)
	if !ok {
		return false
	}
	if c.From != nil && n < *c.From {
		return false
	}
	if c.To != nil && n > *c.To {
		return false
	}
	return true
}

// DateConstraint matches records whose field parses as a timestamp inside the
// inclusive [From, To] range. A missing or unparseable field fails the filter
// (fails closed). Nil bounds are open.
type DateConstraint struct {
	From *time.Time
	To   *time.Time
}

func (DateConstraint) constraint() {}

// Match implements Constraint.
func (c DateConstraint) Match(raw any, present bool) bool {
	if !present {
		return false
	}
	t, ok := record.AsTime(raw)
	if !ok {
		return false
	}
	if c.From != nil && t.Before(*c.From) {
		return false
	}
	if c.To != nil && t.After(*c.To) {
		return false
	}
	return true
}

// Funnel is a per-field typed constraint set. A record must satisfy every
// entry (logical AND across fields); absence of an entry for a field always
// passes.
type Funnel map[string]Constraint

// Clone returns a shallow copy. Constraints are value types, so a shallow
// copy is enough for the editor's draft semantics.
func (f Funnel) Clone() Funnel {
	if f == nil {
		return nil
	}
	out := make(Funnel, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// funnelDate is the wire format for date bounds in persisted funnels.
const funnelDate = "2006-01-02"

// funnelEntry is the persisted JSON shape of one constraint.
type funnelEntry struct {
	Type  string   `json:"type"`
	Value string   `json:"value,omitempty"`
	From  *string  `json:"from,omitempty"`
	To    *string  `json:"to,omitempty"`
	NFrom *float64 `json:"num_from,omitempty"`
	NTo   *float64 `json:"num_to,omitempty"`
}

// MarshalJSON implements json.Marshaler for Funnel.
func (f Funnel) MarshalJSON() ([]byte, error) {
	entries := make(map[string]funnelEntry, len(f))
	for key, c := range f {
		switch v := c.(type) {
		case TextConstraint:
			entries[key] = funnelEntry{Type: "text", Value: v.Value}
		case NumberConstraint:
			entries[key] = funnelEntry{Type: "number", NFrom: v.From, NTo: v.To}
		case DateConstraint:
			e := funnelEntry{Type: "date"}
			if v.From != nil {
				s := v.From.Format(funnelDate)
				e.From = &s
			}
			if v.To != nil {
				s := v.To.Format(funnelDate)
				e.To = &s
			}
			entries[key] = e
		default:
			return nil, fmt.Errorf("unknown constraint type %T for %q", c, key)
		}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON implements json.Unmarshaler for Funnel. Entries with an
// unknown type are dropped rather than failing the whole set, so a funnel
// persisted by a newer build degrades instead of wedging the screen.
func (f *Funnel) UnmarshalJSON(data []byte) error {
	var entries map[string]funnelEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	*f = make(Funnel, len(entries))
	for key, e := range entries {
		switch e.Type {
		case "text":
			(*f)[key] = TextConstraint{Value: e.Value}
		case "number":
			(*f)[key] = NumberConstraint{From: e.NFrom, To: e.NTo}
		case "date":
			c := DateConstraint{}
			if e.From != nil {
				t, err := time.Parse(funnelDate, *e.From)
				if err != nil {
					return fmt.Errorf("funnel %q: bad from date: %w", key, err)
				}
				c.From = &t
			}
			if e.To != nil {
				t, err := time.Parse(funnelDate, *e.To)
				if err != nil {
					return fmt.Errorf("funnel %q: bad to date: %w", key, err)
				}
				c.To = &t
			}
			(*f)[key] = c
		}
	}
	return nil
}
