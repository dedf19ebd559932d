// Package storage is the local device storage of the client: a flat,
// string-keyed, string-valued map that survives restarts.
//
// The application keeps three keys in it: the JSON blob with all record
// collections, the login token and the email pending verification.
//
// Two implementations are provided. SQLiteStorage persists to a single-file
// SQLite database whose schema is applied by goose migrations (see
// InitDatabase). MemoryStorage keeps everything in a map and is used for
// throwaway sessions and tests. Both enforce an optional byte quota over the
// total size of keys and values, and report ErrQuotaExceeded (from
// internal/common) when a write would go over it.
package storage
