// Package models defines the records persisted by the scanner: operators
// (User), numbered scan groups (Batch) and the barcode reads embedded in a
// batch (ScanItem).
//
// # Persistence
//
// Records are stored as JSON inside the "users" and "batches" collections
// (see internal/store). JSON keys are camelCase and must stay stable, there is
// no schema version field.
//
// # Invariants
//
//   - User.ID and Batch.ID are unique within their collection.
//   - Batch.UserID points at the User that created the batch and never changes.
//   - Codes are unique within a single Batch.Scans. The same code may appear in
//     any number of other batches.
//   - ScanItem.ScannedAt and Batch.CreatedAt are set once.
package models
