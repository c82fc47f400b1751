package model

import "time"

// Personnel is a staff member who can check and repair equipment. Managed
// as a flat name set; CreatedAt only drives default display order.
type Personnel struct {
	Name      string    `gorm:"primaryKey;size:128"`
	CreatedAt time.Time `gorm:"not null"`
}
