package model

import "time"

// StudioDocument is the persisted form of a Studio: the full nested tree
// serialized into a single JSON payload, keyed by studio id. Writes always
// replace the whole payload (last writer wins).
type StudioDocument struct {
	ID        string     `gorm:"primaryKey;size:64"`
	Position  int        `gorm:"not null"` // seed order, used for display
	Data      []byte     `gorm:"type:jsonb;not null"`
	SyncedAt  *time.Time // last catalog re-sync, nil until first sync
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}
