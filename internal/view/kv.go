package view

// KV is the external key/value store view state persists to. Both operations
// are best-effort and non-transactional: Get returns (value, true) on a hit,
// and Set errors are logged by callers and never roll back in-memory state.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// NopKV discards writes and misses every read. Used when no store is
// configured (one-shot CLI listings).
type NopKV struct{}

// Get implements KV.
func (NopKV) Get(string) (string, bool) { return "", false }

// Set implements KV.
func (NopKV) Set(string, string) error { return nil }
