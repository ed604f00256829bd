package models

import (
	"errors"
	"strings"
	"time"
)

// ScanItem is one decoded barcode and the moment it was captured.
type ScanItem struct {
	Code      string    `json:"code"`
	ScannedAt time.Time `json:"scannedAt"`
}

// Batch groups scans captured for one user under a request reference.
type Batch struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	UserID          string     `json:"userId"`
	UserRequestFrom string     `json:"userRequestFrom"`
	CreatedAt       time.Time  `json:"createdAt"`
	Scans           []ScanItem `json:"scans"`
}

// Validate checks the fields required to create or edit a batch.
func (b Batch) Validate() error {
	if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.UserRequestFrom) == "" {
		return errors.Join(ErrValidation, errors.New("batch name and request reference are required"))
	}
	if b.UserID == "" {
		return errors.Join(ErrValidation, errors.New("batch must belong to a user"))
	}
	return nil
}

// HasCode reports whether code was already scanned into the batch.
func (b Batch) HasCode(code string) bool {
	return IndexOfCode(b.Scans, code) >= 0
}

// IndexOfCode returns the position of code in scans or -1.
func IndexOfCode(scans []ScanItem, code string) int {
	for i, s := range scans {
		if s.Code == code {
			return i
		}
	}
	return -1
}

// WithoutCode returns a copy of scans with the first item carrying code
// removed. Order of the remaining items is preserved.
func WithoutCode(scans []ScanItem, code string) []ScanItem {
	i := IndexOfCode(scans, code)
	if i < 0 {
		return CloneScans(scans)
	}
	out := make([]ScanItem, 0, len(scans)-1)
	out = append(out, scans[:i]...)
	return append(out, scans[i+1:]...)
}

// CloneScans returns an independent copy of scans; never nil.
func CloneScans(scans []ScanItem) []ScanItem {
	out := make([]ScanItem, len(scans))
	copy(out, scans)
	return out
}

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	b.Scans = CloneScans(b.Scans)
	return b
}
