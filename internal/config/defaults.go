package config

import (
	_ "embed"
)

//go:embed defaults/tileshift.yaml
var defaultTileshiftYAML []byte

// DefaultTileshiftConfig returns the hardcoded configuration used when even
// the embedded YAML cannot be parsed.
func DefaultTileshiftConfig() TileshiftConfig {
	return TileshiftConfig{
		Timing: TimingConfig{
			SettleTicks: 30,
			HintTicks:   90,
		},
		Particles: ParticleConfig{
			MinLife:   8,
			MaxLife:   20,
			Speed:     0.5,
			PerEffect: 3,
		},
		Campaign: CampaignConfig{
			StartLevel:   1,
			BaseScore:    100,
			RetryPenalty: 10,
			MinScore:     10,
		},
		Random: RandomConfig{
			MinMarks:   1,
			MaxMarks:   4,
			MinLines:   1,
			MaxLines:   3,
			WrongMarks: 0.2,
			SpareMoves: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAt:        20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tileshift", "tileshift_random":
		return defaultTileshiftYAML
	default:
		return nil
	}
}
