package tileshift

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/levels"
)

// Settings select the config file, the level source and the starting point.
// The CLI and menus set them before the registry creates a game.
type Settings struct {
	ConfigPath string
	LevelsDir  string // overrides levels.dir from the config file
	StartLevel int    // 1-based; 0 keeps the config value
	Difficulty config.DifficultyPreset
}

var (
	settingsMu sync.Mutex
	settings   Settings
)

// Configure replaces the package settings.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// SetStartLevel changes only the starting level.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings.StartLevel = level
}

// CurrentSettings returns a copy of the package settings.
func CurrentSettings() Settings {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return settings
}

// loadConfig resolves the configuration for the given settings.
func loadConfig(s Settings) (config.TileshiftConfig, error) {
	cfg, err := config.LoadTileshift(s.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if s.LevelsDir != "" {
		cfg.Levels.Dir = s.LevelsDir
	}
	if s.StartLevel > 0 {
		cfg.Campaign.StartLevel = s.StartLevel
	}
	if s.Difficulty != "" {
		config.ApplyTileshiftPreset(&cfg, s.Difficulty)
	}
	return cfg, nil
}

// LoaderFor returns the level loader for a level directory; empty means the
// built-in campaign.
func LoaderFor(dir string) *levels.Loader {
	if dir == "" {
		return levels.Embedded()
	}
	return levels.NewLoader(dir)
}

// CampaignLevels loads the campaign the current settings point at.
// Any invalid level file is an error.
func CampaignLevels() ([]levels.Level, error) {
	cfg, err := loadConfig(CurrentSettings())
	if err != nil {
		return nil, err
	}
	return loadCampaign(cfg.Levels.Dir)
}

func loadCampaign(dir string) ([]levels.Level, error) {
	lvls, err := LoaderFor(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("levels: no level files in %s", LoaderFor(dir).Root)
	}
	return lvls, nil
}
