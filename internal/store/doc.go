// Package store is the persistent, named-collection storage used as the system
// of record for users and batches.
//
// # Contract
//
// A collection is an ordered list of JSON records. Load returns the whole list
// (empty when the collection was never saved) and Save replaces the whole list
// in one step. There is no query support; callers filter after a full Load.
//
// # Single writer
//
// UpdateByID is a read-modify-write over Load and Save with no locking. It is
// only correct while a single writer owns the store, which is the only mode the
// scanner runs in. Two processes sharing a data directory will lose updates
// (last writer wins).
//
// # Errors
//
// Drivers wrap failures with ErrStorageCorrupt (stored bytes are not a record
// list) or ErrStorageWriteFailed (the medium rejected a write). Match them with
// errors.Is.
//
// Drivers
//
//   - sqlitestore: SQLite database, one row per collection.
//   - filestore: one JSON file per collection.
package store
