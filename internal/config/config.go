// Package config provides YAML-based configuration loading and difficulty
// management for TileShift.
package config

// TileshiftConfig contains all tunables of the game.
type TileshiftConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Particles  ParticleConfig   `yaml:"particles"`
	Levels     LevelsConfig     `yaml:"levels"`
	Campaign   CampaignConfig   `yaml:"campaign"`
	Random     RandomConfig     `yaml:"random"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines delays measured in simulation ticks.
type TimingConfig struct {
	SettleTicks int `yaml:"settle_ticks"` // input pause after a resolve
	HintTicks   int `yaml:"hint_ticks"`   // how long a hint stays highlighted
}

// ParticleConfig defines the cosmetic particle system.
type ParticleConfig struct {
	MinLife   int     `yaml:"min_life"`   // ticks
	MaxLife   int     `yaml:"max_life"`   // ticks
	Speed     float64 `yaml:"speed"`      // cells per tick
	PerEffect int     `yaml:"per_effect"` // particles spawned per effect
}

// LevelsConfig points at an optional external level directory.
// Empty means the built-in campaign.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// CampaignConfig defines campaign scoring.
type CampaignConfig struct {
	StartLevel   int `yaml:"start_level"`   // 1-based
	BaseScore    int `yaml:"base_score"`    // points for a first-try clear
	RetryPenalty int `yaml:"retry_penalty"` // points lost per retry
	MinScore     int `yaml:"min_score"`     // floor per cleared level
}

// LevelScore returns the points for clearing a level after the given
// number of retries.
func (c CampaignConfig) LevelScore(retries int) int {
	return max(c.MinScore, c.BaseScore-c.RetryPenalty*retries)
}

// RandomConfig bounds the random level generator. The difficulty level
// interpolates each pair from its Min to its Max.
type RandomConfig struct {
	MinMarks   int     `yaml:"min_marks"`
	MaxMarks   int     `yaml:"max_marks"`
	MinLines   int     `yaml:"min_lines"`
	MaxLines   int     `yaml:"max_lines"`
	WrongMarks float64 `yaml:"wrong_marks"` // chance a starting mark points the wrong way
	SpareMoves int     `yaml:"spare_moves"`
}

// DifficultyConfig defines the difficulty progression of random mode.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAt        int     `yaml:"max_at"`        // solved puzzles at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
