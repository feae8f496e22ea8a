// Package view implements the record view engine behind every list screen of
// the operations console: the filter pipeline, the two-phase sort, the column
// configuration model, the paginator, and the funnel filter editor.
//
// One Engine serves one screen, parametrized by the screen's declarative
// column/accessor table (package screen). Every screen of the console is an
// instance of the same engine rather than its own implementation.
//
// # Derivation
//
// Raw records arrive once from a fetch, then flow through the fixed pipeline
// whenever any input changes:
//
//	records -> category filter -> search filter -> funnel -> sort -> page
//
// The derivation is synchronous and pure; the engine memoizes the last
// snapshot and recomputes only when an input changed.
//
// # Persistence
//
// Column layout and applied funnel filters persist through a narrow
// key/value interface. Writes are fire-and-forget: a failed write is logged
// and the in-memory state stands, so the UI always reflects the user's most
// recent action even when durability fails. Malformed persisted state is
// discarded silently in favor of defaults.
package view
