package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/levels"
	"github.com/vovakirdan/tileshift/internal/storage"
)

var (
	clearedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// CampaignSelection holds the player's choice from the campaign menu.
type CampaignSelection struct {
	Level int // 1-based level number to start from
}

// CampaignModel lets players continue the campaign or pick a level.
type CampaignModel struct {
	levels        []levels.Level
	progress      int // highest cleared level number
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     CampaignSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewCampaignModel creates a campaign menu over lvls. progress is the
// highest cleared level number.
func NewCampaignModel(lvls []levels.Level, progress, width, height int) CampaignModel {
	return CampaignModel{
		levels:    lvls,
		progress:  progress,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m CampaignModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m CampaignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

// continueLevel is the level after the last cleared one.
func (m CampaignModel) continueLevel() int {
	return core.Clamp(m.progress+1, 1, max(len(m.levels), 1))
}

func (m CampaignModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // Continue, From the start, Select level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = CampaignSelection{Level: m.continueLevel()}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = CampaignSelection{Level: 1}
			return m, tea.Quit
		case 2:
			m.inLevelSelect = true
			m.levelCursor = m.continueLevel() - 1
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m CampaignModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = CampaignSelection{Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode or level selection.
func (m CampaignModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m CampaignModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("C A M P A I G N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Cleared %d of %d puzzles", min(m.progress, len(m.levels)), len(m.levels)), m.width))
	b.WriteString("\n\n")

	options := []string{
		fmt.Sprintf("Continue (level %d)", m.continueLevel()),
		"Start from level 1",
		"Select Level...",
	}
	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m CampaignModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		status := lockedStyle.Render("·")
		if lvl.Number <= m.progress {
			status = clearedStyle.Render("✓")
		}
		line := fmt.Sprintf("%s%s %2d. %-16s marks %d", cursor, status, lvl.Number, lvl.Name, lvl.MoveBudget+lvl.InitialMarks())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m CampaignModel) Selected() *CampaignSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m CampaignModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CampaignModel) WantsBack() bool {
	return m.back
}

// RunCampaignSelector loads the campaign and lets the player choose where
// to start. A nil selection means back or quit.
func RunCampaignSelector(store *storage.Store, cfg core.RuntimeConfig) (*CampaignSelection, error) {
	lvls, err := tileshift.CampaignLevels()
	if err != nil {
		return nil, err
	}

	progress := 0
	if store != nil {
		if p, perr := store.Progress(tileshift.IDCampaign); perr == nil {
			progress = p
		}
	}

	p := tea.NewProgram(
		NewCampaignModel(lvls, progress, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(CampaignModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}

// DifficultyModel lets players choose a difficulty preset for random mode.
type DifficultyModel struct {
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a difficulty selector. current is preselected.
func NewDifficultyModel(current config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		presets:   config.Presets(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.presets {
		if p == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			p := m.presets[m.cursor]
			m.selected = &p
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

var presetNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "one spare mark, no misleading marks",
	config.DifficultyNormal: "grows harder as you solve",
	config.DifficultyHard:   "starts hard, misleading marks",
	config.DifficultyFixed:  "never changes",
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("R A N D O M"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, p, menuHintStyle.Render(presetNotes[p]))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// RunDifficultySelector asks for a random-mode preset. A nil result means
// back or quit.
func RunDifficultySelector(current config.DifficultyPreset, cfg core.RuntimeConfig) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewDifficultyModel(current, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.quitting || m.back {
		return nil, nil
	}
	return m.Selected(), nil
}
