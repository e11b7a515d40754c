package model

import "time"

// Timestamps is embedded by every persisted entity. The columns are
// bookkeeping only and never cross the API boundary.
type Timestamps struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}
