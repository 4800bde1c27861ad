// Package preset persists named profiles in a local SQLite database.
//
// Bodies are stored as opaque bytes, so a preset can hold either profile
// format; the device tag of JSON bodies is peeked for listings without a
// full decode. All operations go through database/sql with the sqlite3
// driver, one row per preset keyed by name.
package preset
