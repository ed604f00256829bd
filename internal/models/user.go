package models

import (
	"errors"
	"strings"
	"time"
)

var ErrValidation = errors.New("validation error")

// User is a field operator that owns batches.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Date        *time.Time `json:"date,omitempty"`
	RequestFrom string     `json:"requestFrom,omitempty"`
}

// Validate checks the fields the operator must fill in.
func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" || strings.TrimSpace(u.Phone) == "" {
		return errors.Join(ErrValidation, errors.New("name and phone are required"))
	}
	return nil
}

// UserStats summarizes the work recorded for one user.
type UserStats struct {
	BatchCount int
	ScanCount  int
}
