// Package batches provides persistence for scan batches stored in the
// "batches" collection.
//
// Filtering by owner happens here, after a full load of the collection, since
// the store has no query support. ReplaceScans is the write used by the scan
// engine: a read-modify-write of the whole collection that silently leaves the
// collection unchanged when the batch no longer exists.
package batches
