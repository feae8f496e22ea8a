package record

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind selects the normalization applied to a resolved field value.
type Kind string

const (
	// KindText renders the raw value as-is.
	KindText Kind = "text"
	// KindNumber renders a numeric value, falling back to the raw string
	// when the value does not parse.
	KindNumber Kind = "number"
	// KindCurrency renders a peso amount with thousands separators and
	// two decimals.
	KindCurrency Kind = "currency"
	// KindDate renders a parsed timestamp as a locale-style date.
	KindDate Kind = "date"
	// KindBool renders booleans (and 0/1) as Yes/No.
	KindBool Kind = "bool"
	// KindBillingDay renders a billing day-of-month, mapping a stored 0 to
	// the last calendar day of the current month.
	KindBillingDay Kind = "billing_day"
)

// ValidKinds defines the allowed accessor kinds.
var ValidKinds = map[Kind]bool{
	KindText:       true,
	KindNumber:     true,
	KindCurrency:   true,
	KindDate:       true,
	KindBool:       true,
	KindBillingDay: true,
}

// Accessor maps one logical column key onto the raw record fields that may
// hold its value. Candidates are tried in order; the first present, non-nil,
// non-empty value wins. The candidate list exists because the upstream API is
// inconsistent about field casing across endpoints and historical rows
// ("first_name" vs "First_Name" vs "FirstName").
type Accessor struct {
	Candidates []string
	Kind       Kind
}

// SortKey is the typed sort value an accessor produces for one record.
// Exactly one of Num/Time/Str is meaningful, selected by IsNum/IsTime.
// Missing records sort after present ones regardless of direction phase
// handled by the comparator.
type SortKey struct {
	Missing bool
	IsNum   bool
	IsTime  bool
	Num     float64
	Time    time.Time
	Str     string
}

// Registry resolves logical column keys against raw records for one screen.
// Resolution is pure: repeated calls with the same record and key yield the
// same value, so the same registry serves both display and sort-key
// extraction.
type Registry struct {
	accessors map[string]Accessor

	// Now is injectable for deterministic billing-day rendering in tests.
	Now func() time.Time
}

// currency prints peso amounts with en-style grouping ("₱1,234.56").
var currency = message.NewPrinter(language.English)

// NewRegistry builds a registry from a column-key → accessor map.
func NewRegistry(accessors map[string]Accessor) *Registry {
	return &Registry{accessors: accessors, Now: time.Now}
}

// Has reports whether a column key is registered.
func (g *Registry) Has(key string) bool {
	_, ok := g.accessors[key]
	return ok
}

// Raw returns the first present, non-nil, non-empty candidate value for the
// column key, or (nil, false) when every candidate is absent.
func (g *Registry) Raw(rec R, key string) (any, bool) {
	acc, ok := g.accessors[key]
	if !ok {
		// Unregistered keys fall back to a direct field lookup so ad-hoc
		// screens can reference raw fields without declaring accessors.
		v, present := rec[key]
		if !present || v == nil || AsString(v) == "" {
			return nil, false
		}
		return v, true
	}
	for _, field := range acc.Candidates {
		v, present := rec[field]
		if !present || v == nil {
			continue
		}
		if AsString(v) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// Resolve returns the normalized display value for a column key, or Missing
// when no candidate field carries a value.
func (g *Registry) Resolve(rec R, key string) string {
	v, ok := g.Raw(rec, key)
	if !ok {
		return Missing
	}
	return g.format(v, g.kind(key))
}

// ResolveSort returns the typed sort key for a column. Numbers and dates
// sort by underlying value; everything else sorts by its display string.
func (g *Registry) ResolveSort(rec R, key string) SortKey {
	v, ok := g.Raw(rec, key)
	if !ok {
		return SortKey{Missing: true}
	}
	switch g.kind(key) {
	case KindNumber, KindCurrency, KindBillingDay:
		if n, ok := AsNumber(v); ok {
			return SortKey{IsNum: true, Num: n}
		}
	case KindDate:
		if t, ok := AsTime(v); ok {
			return SortKey{IsTime: true, Time: t}
		}
	}
	return SortKey{Str: g.format(v, g.kind(key))}
}

func (g *Registry) kind(key string) Kind {
	if acc, ok := g.accessors[key]; ok && acc.Kind != "" {
		return acc.Kind
	}
	return KindText
}

func (g *Registry) format(v any, kind Kind) string {
	switch kind {
	case KindCurrency:
		n, ok := AsNumber(v)
		if !ok {
			return AsString(v)
		}
		return currency.Sprintf("₱%.2f", n)
	case KindDate:
		t, ok := AsTime(v)
		if !ok {
			return AsString(v)
		}
		return t.Format("Jan 2, 2006")
	case KindBool:
		n, ok := AsNumber(v)
		if !ok {
			return AsString(v)
		}
		if n != 0 {
			return "Yes"
		}
		return "No"
	case KindNumber:
		n, ok := AsNumber(v)
		if !ok {
			return AsString(v)
		}
		return AsString(n)
	case KindBillingDay:
		return g.formatBillingDay(v)
	default:
		return AsString(v)
	}
}

// formatBillingDay renders a stored billing day-of-month. A stored 0 means
// "bill on the last calendar day of the month", which varies by month, so it
// is resolved against the current date at render time.
func (g *Registry) formatBillingDay(v any) string {
	n, ok := AsNumber(v)
	if !ok {
		return AsString(v)
	}
	day := int(n)
	if day == 0 {
		now := g.Now()
		day = lastDayOfMonth(now.Year(), now.Month())
	}
	return fmt.Sprintf("%d", day)
}

func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
