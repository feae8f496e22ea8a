package view

import (
	"slices"
	"strconv"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Direction is a sort direction.
type Direction string

const (
	// Asc sorts ascending.
	Asc Direction = "asc"
	// Desc sorts descending.
	Desc Direction = "desc"
)

// SortState holds the user-selected sort. An empty Column means no user sort
// is active and only the base ordering applies.
type SortState struct {
	Column    string    `json:"column"`
	Direction Direction `json:"direction"`
}

// Active reports whether a user sort is selected.
func (s SortState) Active() bool {
	return s.Column != ""
}

// Click advances the state for a click on a column header. Clicking the same
// header cycles asc -> desc -> no sort; clicking a different header resets to
// asc on that column. The three-state cycle (not a two-state toggle) is a
// user-facing contract.
func (s *SortState) Click(column string) {
	if s.Column != column {
		s.Column = column
		s.Direction = Asc
		return
	}
	switch s.Direction {
	case Asc:
		s.Direction = Desc
	default:
		s.Column = ""
		s.Direction = Asc
	}
}

// Sorter orders records in two stable phases: the base ordering (numeric id
// descending, always applied) and the user-selected column sort on top of it.
type Sorter struct {
	reg  *record.Registry
	coll *collate.Collator
}

// NewSorter builds a sorter over the screen's accessor registry. String
// columns compare case-insensitively via Unicode collation.
func NewSorter(reg *record.Registry) *Sorter {
	return &Sorter{
		reg:  reg,
		coll: collate.New(language.Und, collate.IgnoreCase),
	}
}

// Sort returns the records in their final display order. The input slice is
// not mutated. Both phases use a stable sort: the base phase fixes a
// deterministic, recency-biased order even with no user sort, and the user
// phase preserves that order for equal keys.
func (s *Sorter) Sort(records []record.R, st SortState) []record.R {
	out := make([]record.R, len(records))
	copy(out, records)

	// Base phase: parseInt(id) || 0, descending. Non-numeric ids collapse
	// to 0 and stay in input order relative to each other.
	slices.SortStableFunc(out, func(a, b record.R) int {
		na, nb := a.NumericID(), b.NumericID()
		switch {
		case na > nb:
			return -1
		case na < nb:
			return 1
		default:
			return 0
		}
	})

	if !st.Active() {
		return out
	}

	slices.SortStableFunc(out, func(a, b record.R) int {
		c := s.compare(s.reg.ResolveSort(a, st.Column), s.reg.ResolveSort(b, st.Column))
		if st.Direction == Desc {
			return -c
		}
		return c
	})

	return out
}

// compare orders two sort keys ascending. Missing values sort after present
// ones; records with the same key keep their base-phase order (stability).
func (s *Sorter) compare(a, b record.SortKey) int {
	switch {
	case a.Missing && b.Missing:
		return 0
	case a.Missing:
		return 1
	case b.Missing:
		return -1
	}

	if a.IsNum && b.IsNum {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		default:
			return 0
		}
	}

	if a.IsTime && b.IsTime {
		return a.Time.Compare(b.Time)
	}

	// Mixed or string keys fall back to collated string comparison.
	return s.coll.CompareString(keyString(a), keyString(b))
}

func keyString(k record.SortKey) string {
	switch {
	case k.IsNum:
		return strconv.FormatFloat(k.Num, 'f', -1, 64)
	case k.IsTime:
		return k.Time.Format(time.RFC3339)
	default:
		return k.Str
	}
}
