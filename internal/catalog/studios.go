package catalog

import "studio-inventory-backend/internal/model"

// Seed identifies one studio in the static deployment: its document id,
// the id prefix its equipment uses, and the studio number fed to Generate.
type Seed struct {
	ID          string
	Prefix      string
	Number      int
	Name        string
	Description string
	Icon        string
	ThemeColor  string
}

// IsPool reports whether this seed is the shared public pool.
func (s Seed) IsPool() bool {
	return s.Number == PublicPoolNumber
}

// Studio materializes the seed with a freshly generated catalog.
func (s Seed) Studio() model.Studio {
	return model.Studio{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		ThemeColor:  s.ThemeColor,
		Equipment:   Generate(s.Prefix, s.Number),
	}
}

var seeds = []Seed{
	{ID: "studio-1", Prefix: "s1", Number: 1, Name: "Studio 1", Description: "Standard equipped studio", Icon: "📸", ThemeColor: "#0A84FF"},
	{ID: "studio-2", Prefix: "s2", Number: 2, Name: "Studio 2", Description: "Standard equipped studio", Icon: "🎬", ThemeColor: "#FF9F0A"},
	{ID: "studio-3", Prefix: "s3", Number: 3, Name: "Studio 3", Description: "Standard equipped studio", Icon: "🏠", ThemeColor: "#30D158"},
	{ID: "studio-4", Prefix: "s4", Number: 4, Name: "Studio 4", Description: "Standard equipped studio", Icon: "🌑", ThemeColor: "#5E5CE6"},
	{ID: "studio-5", Prefix: "s5", Number: 5, Name: "Studio 5", Description: "Standard equipped studio", Icon: "🎙️", ThemeColor: "#FF375F"},
	{ID: "studio-6", Prefix: "s6", Number: 6, Name: "Studio 6", Description: "Standard equipped studio", Icon: "🖥️", ThemeColor: "#64D2FF"},
	{ID: "studio-pool", Prefix: "pool", Number: PublicPoolNumber, Name: "Shared Pool", Description: "Equipment shared across studios", Icon: "🧰", ThemeColor: "#8E8E93"},
}

// Seeds returns the static studio deployment in display order.
func Seeds() []Seed {
	out := make([]Seed, len(seeds))
	copy(out, seeds)
	return out
}

// Studios returns the full seed set with generated equipment, ready for
// first-run persistence.
func Studios() []model.Studio {
	out := make([]model.Studio, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, s.Studio())
	}
	return out
}
