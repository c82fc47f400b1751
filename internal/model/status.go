package model

// Status is the current condition of a single equipment unit.
type Status string

const (
	StatusNormal           Status = "normal"
	StatusDamaged          Status = "damaged"
	StatusMissing          Status = "missing"
	StatusOutForShooting   Status = "out_for_shooting"
	StatusLabelReplacement Status = "label_replacement"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusDamaged, StatusMissing, StatusOutForShooting, StatusLabelReplacement:
		return true
	}
	return false
}

// NeedsAttention reports whether a unit in this status should show up in
// the defective-items view.
func (s Status) NeedsAttention() bool {
	return s.Valid() && s != StatusNormal
}

// LabelStatus tracks whether a unit's physical asset tag has been applied.
type LabelStatus string

const (
	Labeled   LabelStatus = "labeled"
	Unlabeled LabelStatus = "unlabeled"
)

// Valid reports whether l is a member of the closed label-status set.
func (l LabelStatus) Valid() bool {
	return l == Labeled || l == Unlabeled
}

// Category is the fixed set of equipment groupings used by the catalog.
type Category string

const (
	CategoryCamera       Category = "camera"
	CategoryTripod       Category = "tripod"
	CategoryMonitor      Category = "monitor"
	CategoryLighting     Category = "lighting"
	CategoryAudio        Category = "audio"
	CategoryCableBattery Category = "cable_battery"
	CategoryMemoryCard   Category = "memory_card"
)

// Placeholder values recorded when a repair is logged without an actor or
// an explanatory remark.
const (
	UnknownPerson = "unknown"
	NoRemark      = "no remark"
)
