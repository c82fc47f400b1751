package inventory

import "studio-inventory-backend/internal/model"

// Reconcile merges a freshly generated catalog with a studio's previously
// persisted equipment list. Catalog structure (ids, names, quantities, unit
// labels) always comes from fresh; operational state recorded by staff
// (status, remark, check metadata, location) is inherited from the old list.
//
// Matching is by equipment id first, then by exact name (the name fallback
// exists only to survive id-scheme changes). Units are merged positionally:
// the fresh unit at index i inherits from the old unit at index i when one
// exists. Equipment with no match is adopted as generated. The operation is
// idempotent: reconciling an already reconciled list changes nothing.
//
// The public pool is deliberately never passed through here; its fresh
// catalog fully replaces the stored document on every sync.
func Reconcile(fresh, existing []model.Equipment) []model.Equipment {
	byID := make(map[string]model.Equipment, len(existing))
	byName := make(map[string]model.Equipment, len(existing))
	for _, e := range existing {
		byID[e.ID] = e
		byName[e.Name] = e
	}

	out := make([]model.Equipment, 0, len(fresh))
	for _, f := range fresh {
		old, matched := byID[f.ID]
		if !matched {
			old, matched = byName[f.Name]
		}

		merged := f
		merged.Units = make([]model.EquipmentUnit, len(f.Units))
		copy(merged.Units, f.Units)

		if matched {
			for i := range merged.Units {
				if i >= len(old.Units) {
					break
				}
				mergeUnit(&merged.Units[i], old.Units[i])
			}
		}
		out = append(out, merged)
	}
	return out
}

// mergeUnit carries operational state from an old unit onto the fresh one.
// Identity fields (unitIndex, unitLabel) stay as generated.
func mergeUnit(fresh *model.EquipmentUnit, old model.EquipmentUnit) {
	if old.Status.Valid() {
		fresh.Status = old.Status
	} else {
		fresh.Status = model.StatusNormal
	}
	fresh.Remark = old.Remark
	fresh.Location = old.Location
	fresh.LastChecked = old.LastChecked
	fresh.LastCheckedBy = old.LastCheckedBy

	switch {
	case fresh.UnitLabel != "":
		fresh.LabelStatus = model.Labeled
	case old.LabelStatus.Valid():
		fresh.LabelStatus = old.LabelStatus
	default:
		fresh.LabelStatus = model.Unlabeled
	}
}
