package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseEntry is one spending record. Entries live only in the
// session-scoped store; nothing is ever written to disk.
type ExpenseEntry struct {
	ID          uuid.UUID `json:"expense_id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	AddedAt     time.Time `json:"added_at"`
}
