// Package inventory implements the two pieces of real logic in the system:
// applying a partial update to a single unit (deciding whether the change
// is a repair that must be logged) and reconciling a regenerated catalog
// against previously persisted state. Both are pure functions over
// in-memory snapshots; persistence is the caller's job.
package inventory

import (
	"time"

	"github.com/google/uuid"

	"studio-inventory-backend/internal/model"
)

// ApplyUnitUpdate locates the unit addressed by (equipmentID, unitIndex)
// inside studio and applies upd to it, returning the resulting studio and,
// when the update repairs a defective unit (status lands on normal from
// anything else), the history record to append.
//
// An update addressed at a unit that does not exist is a silent no-op: the
// studio comes back unchanged with no record. The input studio is never
// mutated; the touched equipment and unit slices are copied.
func ApplyUnitUpdate(studio model.Studio, equipmentID string, unitIndex int, upd model.UnitUpdate, actor string, now time.Time) (model.Studio, *model.HistoryRecord) {
	for ei := range studio.Equipment {
		if studio.Equipment[ei].ID != equipmentID {
			continue
		}
		for ui := range studio.Equipment[ei].Units {
			if studio.Equipment[ei].Units[ui].UnitIndex != unitIndex {
				continue
			}

			eq := studio.Equipment[ei]
			unit := eq.Units[ui]

			var rec *model.HistoryRecord
			if upd.Status != nil && *upd.Status == model.StatusNormal && unit.Status != model.StatusNormal {
				rec = repairRecord(studio, eq, unit, upd, actor, now)
			}

			if upd.Status != nil {
				unit.Status = *upd.Status
			}
			if upd.LabelStatus != nil {
				unit.LabelStatus = *upd.LabelStatus
			}
			if upd.Remark != nil {
				unit.Remark = *upd.Remark
			}
			if upd.Location != nil {
				unit.Location = *upd.Location
			}
			// Location only means something while a unit is checked out.
			// Any update that moves the status elsewhere clears it, even
			// when the caller supplied one.
			if upd.Status != nil && *upd.Status != model.StatusOutForShooting {
				unit.Location = ""
			}

			stamped := now
			unit.LastChecked = &stamped
			if actor != "" {
				unit.LastCheckedBy = actor
			}

			units := make([]model.EquipmentUnit, len(eq.Units))
			copy(units, eq.Units)
			units[ui] = unit
			eq.Units = units

			equipment := make([]model.Equipment, len(studio.Equipment))
			copy(equipment, studio.Equipment)
			equipment[ei] = eq
			studio.Equipment = equipment

			return studio, rec
		}
	}
	return studio, nil
}

// repairRecord captures the unit's pre-update state. The remark prefers the
// incoming one, falls back to whatever was already recorded on the unit,
// and finally to the placeholder.
func repairRecord(studio model.Studio, eq model.Equipment, unit model.EquipmentUnit, upd model.UnitUpdate, actor string, now time.Time) *model.HistoryRecord {
	remark := unit.Remark
	if upd.Remark != nil && *upd.Remark != "" {
		remark = *upd.Remark
	}
	if remark == "" {
		remark = model.NoRemark
	}

	fixedBy := actor
	if fixedBy == "" {
		fixedBy = model.UnknownPerson
	}

	return &model.HistoryRecord{
		ID:             uuid.NewString(),
		EquipmentID:    eq.ID,
		UnitIndex:      unit.UnitIndex,
		UnitLabel:      unit.UnitLabel,
		EquipmentName:  eq.Name,
		StudioName:     studio.Name,
		StudioIcon:     studio.Icon,
		FixedAt:        now,
		FixedBy:        fixedBy,
		PreviousStatus: unit.Status,
		Remark:         remark,
	}
}
