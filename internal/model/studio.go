package model

import "time"

// Studio is one physical room (or the shared pool) and everything it owns.
// It is the unit of persistence: the whole tree is written as a single
// document, so a studio is also the write-granularity boundary.
type Studio struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	ThemeColor  string      `json:"themeColor,omitempty"`
	Equipment   []Equipment `json:"equipment"`
}

// Equipment is a named kind of gear owning several individually tracked units.
type Equipment struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit,omitempty"`
	Units    []EquipmentUnit `json:"units"`
}

// EquipmentUnit is one physical instance of an Equipment kind. UnitIndex is
// the stable join key for updates; array position may change when the
// catalog is re-synced.
type EquipmentUnit struct {
	UnitIndex     int         `json:"unitIndex"`
	UnitLabel     string      `json:"unitLabel,omitempty"`
	Status        Status      `json:"status"`
	LabelStatus   LabelStatus `json:"labelStatus"`
	Remark        string      `json:"remark,omitempty"`
	Location      string      `json:"location,omitempty"`
	LastChecked   *time.Time  `json:"lastChecked,omitempty"`
	LastCheckedBy string      `json:"lastCheckedBy,omitempty"`
}

// UnitUpdate is a partial update against a single unit. Nil fields are
// left untouched.
type UnitUpdate struct {
	Status      *Status      `json:"status,omitempty"`
	LabelStatus *LabelStatus `json:"labelStatus,omitempty"`
	Remark      *string      `json:"remark,omitempty"`
	Location    *string      `json:"location,omitempty"`
}
