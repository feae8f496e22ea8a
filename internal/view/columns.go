package view

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Layout tracks which columns are visible and in what order they render.
// Visibility and order are independently mutable: the order is a permutation
// of all declared column keys, and rendering filters it down to the visible
// subset - the authoritative rendering sequence is the order, never the
// visible set's own insertion order.
//
// Every mutation persists immediately through the KV store (fire-and-forget;
// a failed write is logged and the in-memory state stands). On construction
// a persisted layout, if present and well-formed, replaces the default of
// "all columns visible, declaration order". Persisted keys that no longer
// exist in the screen are carried as dead state and simply never match when
// filtering the order.
type Layout struct {
	declared []string
	visible  map[string]bool
	order    []string

	kv       KV
	visKey   string
	orderKey string
	log      zerolog.Logger
}

// NewLayout builds the column layout for a screen, loading any persisted
// state. Malformed persisted values are discarded silently in favor of the
// default.
func NewLayout(screenName string, keys []string, kv KV, log zerolog.Logger) *Layout {
	l := &Layout{
		declared: append([]string(nil), keys...),
		visible:  make(map[string]bool, len(keys)),
		order:    append([]string(nil), keys...),
		kv:       kv,
		visKey:   "columns:" + screenName + ":visible",
		orderKey: "columns:" + screenName + ":order",
		log:      log.With().Str("screen", screenName).Logger(),
	}
	for _, k := range keys {
		l.visible[k] = true
	}
	l.load()
	return l
}

func (l *Layout) load() {
	if raw, ok := l.kv.Get(l.visKey); ok {
		var keys []string
		if err := json.Unmarshal([]byte(raw), &keys); err == nil {
			l.visible = make(map[string]bool, len(keys))
			for _, k := range keys {
				l.visible[k] = true
			}
		} else {
			l.log.Debug().Err(err).Msg("discarding malformed persisted column visibility")
		}
	}

	if raw, ok := l.kv.Get(l.orderKey); ok {
		var order []string
		if err := json.Unmarshal([]byte(raw), &order); err == nil && len(order) > 0 {
			// Columns declared after the layout was persisted are appended
			// so they stay renderable.
			seen := make(map[string]bool, len(order))
			for _, k := range order {
				seen[k] = true
			}
			for _, k := range l.declared {
				if !seen[k] {
					order = append(order, k)
				}
			}
			l.order = order
		} else if err != nil {
			l.log.Debug().Err(err).Msg("discarding malformed persisted column order")
		}
	}
}

// Toggle flips the visibility of one column key and persists.
func (l *Layout) Toggle(key string) {
	if l.visible[key] {
		delete(l.visible, key)
	} else {
		l.visible[key] = true
	}
	l.persistVisible()
}

// SelectAll makes every declared column visible and persists.
func (l *Layout) SelectAll() {
	l.visible = make(map[string]bool, len(l.declared))
	for _, k := range l.declared {
		l.visible[k] = true
	}
	l.persistVisible()
}

// DeselectAll hides every column and persists.
func (l *Layout) DeselectAll() {
	l.visible = make(map[string]bool)
	l.persistVisible()
}

// Reorder removes dragged from the order and reinserts it immediately before
// target's current position. No-op when dragged == target or either key is
// absent from the order.
func (l *Layout) Reorder(dragged, target string) {
	if dragged == target {
		return
	}
	di, ti := -1, -1
	for i, k := range l.order {
		if k == dragged {
			di = i
		}
		if k == target {
			ti = i
		}
	}
	if di < 0 || ti < 0 {
		return
	}

	order := make([]string, 0, len(l.order))
	order = append(order, l.order[:di]...)
	order = append(order, l.order[di+1:]...)

	// Recompute target position after removal.
	ti = -1
	for i, k := range order {
		if k == target {
			ti = i
			break
		}
	}
	order = append(order[:ti], append([]string{dragged}, order[ti:]...)...)
	l.order = order
	l.persistOrder()
}

// IsVisible reports whether a column key is in the visible set.
func (l *Layout) IsVisible(key string) bool {
	return l.visible[key]
}

// VisibleKeys returns the visible set in declaration order. This is for
// inspection only; rendering must use VisibleColumnsInOrder.
func (l *Layout) VisibleKeys() []string {
	out := make([]string, 0, len(l.visible))
	for _, k := range l.declared {
		if l.visible[k] {
			out = append(out, k)
		}
	}
	return out
}

// Order returns the full display order, including hidden columns.
func (l *Layout) Order() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// VisibleColumnsInOrder returns the subset of the order that is visible,
// preserving the order's sequence. This is the authoritative rendering
// sequence.
func (l *Layout) VisibleColumnsInOrder() []string {
	out := make([]string, 0, len(l.order))
	for _, k := range l.order {
		if l.visible[k] {
			out = append(out, k)
		}
	}
	return out
}

func (l *Layout) persistVisible() {
	keys := make([]string, 0, len(l.visible))
	for _, k := range l.order {
		if l.visible[k] {
			keys = append(keys, k)
		}
	}
	data, err := json.Marshal(keys)
	if err != nil {
		l.log.Warn().Err(err).Msg("encode column visibility")
		return
	}
	if err := l.kv.Set(l.visKey, string(data)); err != nil {
		l.log.Warn().Err(err).Msg("persist column visibility")
	}
}

func (l *Layout) persistOrder() {
	data, err := json.Marshal(l.order)
	if err != nil {
		l.log.Warn().Err(err).Msg("encode column order")
		return
	}
	if err := l.kv.Set(l.orderKey, string(data)); err != nil {
		l.log.Warn().Err(err).Msg("persist column order")
	}
}
