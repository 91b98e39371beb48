// Package registry maps opaque integer handles to live interpolators.
//
// Handles start at 1, grow by one per successful registration and are never
// reused, so a stale handle can only ever miss (ErrNotFound), never alias
// another table. Lookups take a read lock and may run concurrently; handle
// issuance and insertion take the write lock, a single-writer discipline that
// keeps the counter consistent.
//
// Optional Prometheus metrics (see NewMetrics) count registrations, build
// failures and queries, and track the number of live entries.
package registry
