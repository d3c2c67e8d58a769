package config

import "math"

// DifficultyManager derives random level parameters from the number of
// puzzles solved so far.
type DifficultyManager struct {
	cfg          DifficultyConfig
	random       RandomConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, random RandomConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		random:       random,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(solved int) float64 {
	if !d.cfg.Enabled {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(solved)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Marks returns how many cells a generated puzzle may require marking.
func (d *DifficultyManager) Marks(solved int) int {
	return lerp(d.random.MinMarks, d.random.MaxMarks, d.Level(solved))
}

// Lines returns how many matching lines a generated puzzle may use.
func (d *DifficultyManager) Lines(solved int) int {
	return lerp(d.random.MinLines, d.random.MaxLines, d.Level(solved))
}

func lerp(lo, hi int, level float64) int {
	if hi < lo {
		hi = lo
	}
	return lo + int(math.Round(level*float64(hi-lo)))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
