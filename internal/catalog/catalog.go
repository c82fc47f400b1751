// Package catalog holds the canonical equipment definitions for every
// studio and the shared pool. Generation is deterministic: the same inputs
// always yield identical ids, ordering and labels, which the sync
// reconciler relies on.
package catalog

import (
	"fmt"

	"studio-inventory-backend/internal/model"
)

// PublicPoolNumber is the sentinel studio number for the shared pool.
const PublicPoolNumber = 0

// itemDef is one row of the static catalog tables.
type itemDef struct {
	code     string // id suffix, stable across deployments (e.g. "cam-1")
	name     string
	category model.Category
	quantity int
	uom      string
	studios  []int  // nil = present in every numbered studio
	labelTag string // "" = units ship without an asset tag
}

func (d itemDef) includes(number int) bool {
	if d.studios == nil {
		return true
	}
	for _, n := range d.studios {
		if n == number {
			return true
		}
	}
	return false
}

// standardItems is the per-studio equipment list. Order here is display
// order everywhere downstream.
var standardItems = []itemDef{
	{code: "cam-1", name: "Sony A7S III body", category: model.CategoryCamera, quantity: 2, uom: "pc", labelTag: "A7S3"},
	{code: "cam-2", name: "Tamron 28-75mm f/2.8 lens", category: model.CategoryCamera, quantity: 1, uom: "pc", labelTag: "T2875"},
	{code: "cam-3", name: "Tamron 70-180mm f/2.8 lens", category: model.CategoryCamera, quantity: 1, uom: "pc", labelTag: "T70180"},
	{code: "cam-4", name: "Camera top handle", category: model.CategoryCamera, quantity: 2, uom: "pc"},
	{code: "cam-5", name: "Magic arm", category: model.CategoryCamera, quantity: 2, uom: "pc"},
	{code: "cam-6", name: "Camera base plate", category: model.CategoryCamera, quantity: 2, uom: "pc"},

	{code: "tri-1", name: "Apple box", category: model.CategoryTripod, quantity: 1, uom: "pc"},
	{code: "tri-2", name: "Fluid-head tripod", category: model.CategoryTripod, quantity: 1, uom: "pc", labelTag: "TRH"},

	{code: "mon-1", name: "VAXIS ATOM A5 wireless monitor", category: model.CategoryMonitor, quantity: 2, uom: "pc", labelTag: "VAXA5"},
	{code: "mon-2", name: "SmallHD field monitor", category: model.CategoryMonitor, quantity: 1, uom: "pc", labelTag: "SMHD"},
	{code: "mon-3", name: "Desview T22 teleprompter", category: model.CategoryMonitor, quantity: 1, uom: "pc"},

	{code: "lite-1", name: "ARRI SkyPanel S60-C", category: model.CategoryLighting, quantity: 1, uom: "pc", labelTag: "SKP60"},
	{code: "lite-2", name: "C-Stand", category: model.CategoryLighting, quantity: 2, uom: "pc"},
	// Tube lights were only purchased for the first three studios.
	{code: "lite-3", name: "Astera Titan tube", category: model.CategoryLighting, quantity: 2, uom: "pc", studios: []int{1, 2, 3}, labelTag: "ASTT"},

	{code: "aud-1", name: "Sennheiser EW 112P G4 wireless kit", category: model.CategoryAudio, quantity: 1, uom: "set", labelTag: "EWG4"},
	{code: "aud-2", name: "Sony MDR-7506 headphones", category: model.CategoryAudio, quantity: 1, uom: "pc"},

	{code: "cab-1", name: "Stinger power cable", category: model.CategoryCableBattery, quantity: 2, uom: "pc"},
	{code: "cab-2", name: "Extension cord", category: model.CategoryCableBattery, quantity: 2, uom: "pc"},
	{code: "cab-3", name: "HDMI cable", category: model.CategoryCableBattery, quantity: 4, uom: "pc"},
	{code: "cab-4", name: "Sony NP-FZ100 battery", category: model.CategoryCableBattery, quantity: 4, uom: "pc"},

	{code: "mem-1", name: "CFexpress Type A 160GB card", category: model.CategoryMemoryCard, quantity: 2, uom: "pc"},
	{code: "mem-2", name: "SDXC V90 128GB card", category: model.CategoryMemoryCard, quantity: 4, uom: "pc"},
}

// poolItems is the shared-pool list: one unit per item, never labeled,
// never merged on sync.
var poolItems = []itemDef{
	{code: "gim-1", name: "DJI RS 3 Pro gimbal", category: model.CategoryCamera, quantity: 1, uom: "pc"},
	{code: "sld-1", name: "Camera slider 120cm", category: model.CategoryTripod, quantity: 1, uom: "pc"},
	{code: "mon-1", name: "Atomos Ninja V recorder monitor", category: model.CategoryMonitor, quantity: 1, uom: "pc"},
	{code: "lite-1", name: "Aputure LS 600d", category: model.CategoryLighting, quantity: 1, uom: "pc"},
	{code: "lite-2", name: "5-in-1 reflector", category: model.CategoryLighting, quantity: 1, uom: "pc"},
	{code: "aud-1", name: "Boom pole with shockmount", category: model.CategoryAudio, quantity: 1, uom: "set"},
	{code: "cab-1", name: "V-mount battery kit", category: model.CategoryCableBattery, quantity: 1, uom: "set"},
	{code: "mem-1", name: "CFexpress card reader", category: model.CategoryMemoryCard, quantity: 1, uom: "pc"},
}

// labelPrefixes maps a studio number to the asset-tag prefix printed on its
// labels. A unit label is <prefix>-<tag>-<index>, e.g. "1A-A7S3-01".
var labelPrefixes = map[int]string{
	1: "1A",
	2: "2B",
	3: "3C",
	4: "4D",
	5: "5E",
	6: "6F",
}

// Generate produces the canonical equipment list for one studio.
// number 0 selects the shared-pool list instead of the per-studio rule.
func Generate(prefix string, number int) []model.Equipment {
	defs := standardItems
	if number == PublicPoolNumber {
		defs = poolItems
	}

	out := make([]model.Equipment, 0, len(defs))
	for _, d := range defs {
		if number != PublicPoolNumber && !d.includes(number) {
			continue
		}

		eq := model.Equipment{
			ID:       prefix + "-" + d.code,
			Name:     d.name,
			Category: d.category,
			Quantity: d.quantity,
			Unit:     d.uom,
			Units:    make([]model.EquipmentUnit, 0, d.quantity),
		}
		for i := 1; i <= d.quantity; i++ {
			u := model.EquipmentUnit{
				UnitIndex:   i,
				Status:      model.StatusNormal,
				LabelStatus: model.Unlabeled,
			}
			if d.labelTag != "" {
				if lp, ok := labelPrefixes[number]; ok {
					u.UnitLabel = fmt.Sprintf("%s-%s-%02d", lp, d.labelTag, i)
					u.LabelStatus = model.Labeled
				}
			}
			eq.Units = append(eq.Units, u)
		}
		out = append(out, eq)
	}
	return out
}
