// Package history persists finished search runs in a SQLite file so that
// repeated runs over the same data can be compared (best distance so far,
// recent runs, seeds that produced them).
//
// The schema is versioned with golang-migrate; migrations are embedded in the
// binary and applied by Open. The database is opened through database/sql with
// the pure-Go modernc.org/sqlite driver.
package history
