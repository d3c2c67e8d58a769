// Package tileshift is the playable TileShift game: a campaign of
// hand-made 3x3 puzzles and an endless random mode, driven by the board
// engine and rendered into a core.Screen.
package tileshift

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/levels"
	"github.com/vovakirdan/tileshift/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeRandom   Mode = "random"
)

// Game IDs as registered.
const (
	IDCampaign = "tileshift"
	IDRandom   = "tileshift_random"
)

type phase int

const (
	phasePlaying  phase = iota // marks accepted
	phaseSettling              // resolve done, effects playing out
	phaseWon                   // waiting for confirm to continue
	phaseLost                  // waiting for retry
	phaseFinished              // campaign complete
)

// Game implements registry.Game.
type Game struct {
	mode     Mode
	settings Settings
	cfg      config.TileshiftConfig
	rng      *rand.Rand
	tick     uint64

	campaign []levels.Level
	gen      *levels.Generator
	diff     *config.DifficultyManager

	levelIndex int
	level      board.LevelState
	board      *board.Board

	phase   phase
	settle  int // ticks left in phaseSettling
	elapsed int // ticks since the last resolve
	pending []pendingEffect
	last    board.Resolution

	cursor    int
	hint      int // cell index, -1 when no hint is shown
	hintMark  board.Mark
	hintTicks int
	hints     int // hints asked for on the current level
	message   string

	score   int
	retries int // failed attempts at the current level
	solved  int

	particles *Particles
	outcomes  []core.LevelOutcome

	screenW  int
	screenH  int
	layout   layout
	paused   bool
	tooSmall bool
	loadErr  error
}

// pendingEffect is an effect waiting for its round to be shown.
type pendingEffect struct {
	at int
	fx board.Effect
}

// New creates a campaign game using the current package settings.
func New() *Game {
	return &Game{mode: ModeCampaign, settings: CurrentSettings(), hint: -1}
}

// NewRandom creates an endless random-puzzle game.
func NewRandom() *Game {
	return &Game{mode: ModeRandom, settings: CurrentSettings(), hint: -1}
}

// NewWithSettings creates a game with explicit settings instead of the
// package-level ones.
func NewWithSettings(mode Mode, s Settings) *Game {
	return &Game{mode: mode, settings: s, hint: -1}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDRandom, func() registry.Game {
		return NewRandom()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRandom {
		return IDRandom
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "TileShift (Random)"
	}
	return "TileShift"
}

// Reset loads configuration and levels and starts from the first level of
// the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.solved = 0
	g.retries = 0
	g.hints = 0
	g.paused = false
	g.loadErr = nil
	g.outcomes = nil
	g.message = ""

	cfg, err := loadConfig(g.settings)
	if err != nil {
		g.loadErr = err
		cfg = config.DefaultTileshiftConfig()
	}
	g.cfg = cfg
	g.particles = NewParticles(g.rng, cfg.Particles)
	g.diff = config.NewDifficultyManager(cfg.Difficulty, cfg.Random)

	g.Resize(rc.ScreenW, rc.ScreenH)
	if g.loadErr != nil {
		return
	}

	switch g.mode {
	case ModeRandom:
		g.gen = levels.NewGenerator(rc.Seed, g.genParams())
		g.levelIndex = 0
	default:
		lvls, err := loadCampaign(cfg.Levels.Dir)
		if err != nil {
			g.loadErr = err
			return
		}
		g.campaign = lvls
		g.levelIndex = core.Clamp(cfg.Campaign.StartLevel-1, 0, len(lvls)-1)
	}

	g.enterLevel()
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = computeLayout(width, height)
	g.tooSmall = !g.layout.ok
}

// genParams maps the current difficulty onto generator parameters.
func (g *Game) genParams() levels.GenParams {
	p := levels.DefaultGenParams()
	p.MaxMarks = g.diff.Marks(g.solved)
	p.MaxLines = g.diff.Lines(g.solved)
	p.WrongMarks = g.cfg.Random.WrongMarks
	p.SpareMoves = g.cfg.Random.SpareMoves
	return p
}

// enterLevel loads the level at levelIndex (or generates the next random
// one) and starts a fresh attempt.
func (g *Game) enterLevel() {
	switch g.mode {
	case ModeRandom:
		g.gen.SetParams(g.genParams())
		lvl, err := g.gen.Generate(g.solved + 1)
		if err != nil {
			g.loadErr = err
			return
		}
		g.level = lvl.LevelState
	default:
		g.level = g.campaign[g.levelIndex].LevelState
	}

	g.retries = 0
	g.hints = 0
	g.startAttempt()
}

// startAttempt resets the board to the current level.
func (g *Game) startAttempt() {
	if g.board == nil {
		g.board = &board.Board{}
	}
	if err := g.board.Reset(g.level); err != nil {
		g.loadErr = err
		return
	}
	g.phase = phasePlaying
	g.settle = 0
	g.elapsed = 0
	g.pending = nil
	g.last = board.Resolution{}
	g.clearHint()
	g.message = ""
	g.particles.Clear()
	g.cursor = firstMarkable(g.board)
}

func firstMarkable(b *board.Board) int {
	for i := range board.Size {
		if b.Cell(i).Markable() {
			return i
		}
	}
	return board.Index(1, 1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.outcomes = nil

	if g.loadErr != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.particles.Update()
	g.elapsed++
	g.flushPending()
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.clearHint()
		}
	}

	switch g.phase {
	case phasePlaying:
		g.stepPlaying(in)
	case phaseSettling:
		g.stepSettling()
	case phaseWon:
		if in.Has(core.ActionConfirm) || leftClick(in) {
			g.advance()
		}
	case phaseLost:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || leftClick(in) {
			g.retries++
			g.startAttempt()
		}
	}

	return core.StepResult{State: g.State(), Outcomes: g.outcomes}
}

func leftClick(in core.InputFrame) bool {
	for _, c := range in.Clicks {
		if c.Button == core.MouseLeft {
			return true
		}
	}
	return false
}

// stepPlaying handles cursor movement, marks, hints and the resolve request.
func (g *Game) stepPlaying(in core.InputFrame) {
	row, col := board.Position(g.cursor)
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	g.cursor = board.Index(core.Clamp(row, 0, board.Side-1), core.Clamp(col, 0, board.Side-1))

	switch {
	case in.Has(core.ActionMarkPlus):
		g.mark(g.cursor, board.MarkPlus)
	case in.Has(core.ActionMarkMinus):
		g.mark(g.cursor, board.MarkMinus)
	}

	for _, c := range in.Clicks {
		i := core.HitTest(g.layout.tiles, c.X, c.Y)
		if i < 0 {
			continue
		}
		g.cursor = i
		switch c.Button {
		case core.MouseLeft:
			g.mark(i, board.MarkPlus)
		case core.MouseRight:
			g.mark(i, board.MarkMinus)
		}
	}

	if in.Has(core.ActionRestart) {
		g.startAttempt()
		return
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionConfirm) {
		g.resolve()
	}
}

// mark forwards a mark request to the board. Rejected requests leave a
// short explanation.
func (g *Game) mark(i int, kind board.Mark) {
	if g.board.RequestMark(i, kind) {
		g.message = ""
		if i == g.hint {
			g.clearHint()
		}
		return
	}

	c := g.board.Cell(i)
	switch {
	case !c.Enabled:
		g.message = "That tile is locked"
	case c.Value == 0:
		g.message = "Nothing to shift there"
	default:
		g.message = "No marks left"
	}
}

// CanResolve reports whether the resolve control is offered: the unused
// budget must be within the level's par.
func (g *Game) CanResolve() bool {
	return g.phase == phasePlaying && g.board != nil && g.board.Remaining() <= g.level.Par
}

// resolve runs the board resolution and schedules its effects.
func (g *Game) resolve() {
	if !g.CanResolve() {
		g.message = fmt.Sprintf("Use %d more mark(s) first", g.board.Remaining()-g.level.Par)
		return
	}

	used := g.board.MarkedCount()
	res := g.board.Resolve()
	g.last = res
	g.clearHint()
	g.message = ""

	g.outcomes = append(g.outcomes, core.LevelOutcome{
		LevelID:   g.level.ID,
		Number:    g.level.Number,
		Won:       res.Verdict == board.Win,
		MarksUsed: used,
	})

	// Apply effects show at once; each cascade round follows after a beat.
	beat := max(g.cfg.Timing.SettleTicks/(board.CascadeRounds+1), 1)
	g.elapsed = 0
	g.pending = g.pending[:0]
	for _, fx := range res.Effects {
		at := 0
		if fx.Phase == board.PhaseCascade {
			at = (fx.Round + 1) * beat
		}
		g.pending = append(g.pending, pendingEffect{at: at, fx: fx})
	}
	g.flushPending()

	g.phase = phaseSettling
	g.settle = g.cfg.Timing.SettleTicks
	if g.settle == 0 {
		g.finishSettling()
	}
}

// flushPending turns due effects into particles.
func (g *Game) flushPending() {
	keep := g.pending[:0]
	for _, p := range g.pending {
		if p.at > g.elapsed {
			keep = append(keep, p)
			continue
		}
		if len(g.layout.tiles) == board.Size {
			cx, cy := g.layout.tiles[p.fx.Cell].Center()
			g.particles.Burst(float64(cx), float64(cy), p.fx.Direction, valueColor(p.fx.Value))
		}
	}
	g.pending = keep
}

func (g *Game) stepSettling() {
	g.settle--
	if g.settle <= 0 {
		g.finishSettling()
	}
}

// finishSettling applies the verdict of the last resolve.
func (g *Game) finishSettling() {
	g.settle = 0
	if g.last.Verdict != board.Win {
		g.phase = phaseLost
		return
	}

	g.score += g.cfg.Campaign.LevelScore(g.retries)
	g.solved++
	g.phase = phaseWon

	if g.mode == ModeCampaign && g.levelIndex >= len(g.campaign)-1 {
		g.phase = phaseFinished
	}
}

// advance moves to the next level after a win.
func (g *Game) advance() {
	if g.mode == ModeCampaign {
		if g.levelIndex >= len(g.campaign)-1 {
			g.phase = phaseFinished
			return
		}
		g.levelIndex++
	}
	g.enterLevel()
}

// showHint asks the solver for the next mark from the current position.
func (g *Game) showHint() {
	g.hints++
	sol, ok := board.Solve(g.board.Snapshot().AsLevel(g.level.Par))
	switch {
	case !ok:
		g.clearHint()
		g.message = "No winning layout from here"
	case len(sol.Steps) == 0:
		g.clearHint()
		g.message = "Resolve now!"
	default:
		step := sol.Steps[0]
		g.hint = step.Cell
		g.hintMark = step.Mark
		g.hintTicks = g.cfg.Timing.HintTicks
		row, col := board.Position(step.Cell)
		g.message = fmt.Sprintf("Hint: %s on row %d, column %d", markWord(step.Mark), row+1, col+1)
	}
}

func (g *Game) clearHint() {
	g.hint = -1
	g.hintTicks = 0
}

func markWord(m board.Mark) string {
	if m == board.MarkMinus {
		return "minus"
	}
	return "plus"
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == phaseFinished || g.loadErr != nil,
		Paused:   g.paused || g.tooSmall,
	}
}

// Err returns the level or config loading error, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Level returns the level currently being played.
func (g *Game) Level() board.LevelState {
	return g.level
}

// Board returns a snapshot of the board.
func (g *Game) Board() board.Snapshot {
	if g.board == nil {
		return board.Snapshot{}
	}
	return g.board.Snapshot()
}

// Cursor returns the index of the selected cell.
func (g *Game) Cursor() int {
	return g.cursor
}
