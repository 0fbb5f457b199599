package config

// DifficultyPreset represents a named maze size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyHuge   DifficultyPreset = "huge"
	DifficultyCustom DifficultyPreset = "custom"
)

var presetSizes = map[DifficultyPreset]GridConfig{
	DifficultyEasy:   {Columns: 12, Rows: 6},
	DifficultyNormal: {Columns: 24, Rows: 10},
	DifficultyHard:   {Columns: 36, Rows: 14},
	DifficultyHuge:   {Columns: 60, Rows: 22},
}

// Presets lists the sized presets from smallest to largest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyHuge}
}

// Known reports whether p is a recognised preset. The empty preset counts
// as custom.
func (p DifficultyPreset) Known() bool {
	if p == "" || p == DifficultyCustom {
		return true
	}
	_, ok := presetSizes[p]
	return ok
}

// GridForPreset returns the grid size of a preset.
// ok is false for custom or unknown presets.
func GridForPreset(p DifficultyPreset) (grid GridConfig, ok bool) {
	grid, ok = presetSizes[p]
	return grid, ok
}

// ApplyPreset overwrites the grid size with the preset's size and records
// the preset. Custom and unknown presets leave the grid unchanged.
func ApplyPreset(cfg *MazeConfig, p DifficultyPreset) {
	cfg.Difficulty.Preset = p
	if grid, ok := GridForPreset(p); ok {
		cfg.Grid = grid
	}
}
