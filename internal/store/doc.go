// Package store provides SQLite-backed key/value storage for per-screen view
// state: column visibility, column order, and applied funnel filters.
//
// The store is deliberately dumb - a single kv table keyed by
// "<concern>:<screen>:<facet>" strings - because view state is best-effort:
// the engine treats every write as fire-and-forget and every read as
// optional, falling back to defaults when a key is missing or malformed.
// Nothing in here is load-bearing for the view derivation.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package store
