// Package store provides the persistence backends for the trip list.
//
// Two implementations of the planner's Store boundary live here: a JSONL
// file (the default) and a SQLite database. Both persist the same canonical
// JSON documents; the engine does not care which medium backs it.
package store

import "github.com/bluez/tripwise"

// interface check for both backends
var (
	_ tripwise.Store = (*FileStore)(nil)
	_ tripwise.Store = (*SQLiteStore)(nil)
)
