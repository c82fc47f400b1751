package model

import "time"

// HistoryRecord is an append-only log entry created when a unit transitions
// from a non-normal status back to normal. Names and icons are denormalized
// at creation time so the log survives catalog changes.
type HistoryRecord struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	EquipmentID    string    `gorm:"size:64;index" json:"equipmentId"`
	UnitIndex      int       `gorm:"not null" json:"unitIndex"`
	UnitLabel      string    `gorm:"size:64" json:"unitLabel,omitempty"`
	EquipmentName  string    `gorm:"size:256;not null" json:"equipmentName"`
	StudioName     string    `gorm:"size:128;not null" json:"studioName"`
	StudioIcon     string    `gorm:"size:16" json:"studioIcon,omitempty"`
	FixedAt        time.Time `gorm:"not null;index" json:"fixedAt"`
	FixedBy        string    `gorm:"size:128;not null" json:"fixedBy"`
	PreviousStatus Status    `gorm:"size:32;not null" json:"previousStatus"`
	Remark         string    `json:"remark"`
}
