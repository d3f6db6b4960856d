package models

import "time"

// Timestamps holds the bookkeeping columns shared by persisted rows.
type Timestamps struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
