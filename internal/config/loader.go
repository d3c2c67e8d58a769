package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTileshift loads the game configuration.
// Search order: customPath -> ~/.tileshift/configs/tileshift.yaml -> ./configs/tileshift.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func LoadTileshift(customPath string) (TileshiftConfig, error) {
	cfg := embeddedTileshift()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tileshift.yaml"); userCfgPath != "" {
		if next, ok := overlay(cfg, userCfgPath); ok {
			return next.normalized(), nil
		}
	}

	// Try local configs directory
	if next, ok := overlay(cfg, filepath.Join("configs", "tileshift.yaml")); ok {
		return next.normalized(), nil
	}

	return cfg, nil
}

// embeddedTileshift decodes the embedded default YAML.
func embeddedTileshift() TileshiftConfig {
	cfg := DefaultTileshiftConfig()
	if err := yaml.Unmarshal(defaultTileshiftYAML, &cfg); err != nil {
		return DefaultTileshiftConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// overlay decodes path over base. Unreadable or broken optional files are
// skipped.
func overlay(base TileshiftConfig, path string) (TileshiftConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, false
	}
	return base, true
}

// normalized repairs values that would break the game loop.
func (c TileshiftConfig) normalized() TileshiftConfig {
	c.Timing.SettleTicks = max(c.Timing.SettleTicks, 0)
	c.Timing.HintTicks = max(c.Timing.HintTicks, 0)
	c.Particles.MinLife = max(c.Particles.MinLife, 1)
	c.Particles.MaxLife = max(c.Particles.MaxLife, c.Particles.MinLife)
	c.Particles.PerEffect = max(c.Particles.PerEffect, 0)
	c.Campaign.StartLevel = max(c.Campaign.StartLevel, 1)
	c.Random.MinMarks = max(c.Random.MinMarks, 1)
	c.Random.MaxMarks = max(c.Random.MaxMarks, c.Random.MinMarks)
	c.Random.MinLines = max(c.Random.MinLines, 1)
	c.Random.MaxLines = max(c.Random.MaxLines, c.Random.MinLines)
	c.Random.SpareMoves = max(c.Random.SpareMoves, 0)
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0.0, 1.0)
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tileshift", "configs", filename)
}

// ApplyTileshiftPreset modifies the config based on a difficulty preset.
func ApplyTileshiftPreset(cfg *TileshiftConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Starting marks that point the wrong way make puzzles harder to read.
	switch preset {
	case DifficultyEasy:
		cfg.Random.WrongMarks = 0
		cfg.Random.SpareMoves = 1
	case DifficultyHard:
		cfg.Random.WrongMarks = 0.4
		cfg.Random.SpareMoves = 0
	}
}
