package tileshift

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

const (
	minTileW  = 7
	minTileH  = 3
	maxTileW  = 13
	maxTileH  = 5
	tileGap   = 1
	hudHeight = 3
	helpLines = 2
)

// layout holds the screen rectangles of the board.
type layout struct {
	ok    bool
	grid  core.Rect
	tiles []core.Rect
}

// computeLayout centers the largest grid that fits between the HUD and the
// help lines.
func computeLayout(w, h int) layout {
	availW := w - 2
	availH := h - hudHeight - helpLines - 1

	tw := min((availW-tileGap*(board.Side-1))/board.Side, maxTileW)
	th := min((availH-tileGap*(board.Side-1))/board.Side, maxTileH)
	if tw < minTileW || th < minTileH {
		return layout{}
	}

	gw := tw*board.Side + tileGap*(board.Side-1)
	gh := th*board.Side + tileGap*(board.Side-1)
	grid := core.NewRect((w-gw)/2, hudHeight+(availH-gh)/2, gw, gh)

	return layout{ok: true, grid: grid, tiles: grid.Grid(board.Side, board.Side, tileGap)}
}

// valueColor maps a cell value to its tile color.
func valueColor(v int) core.Color {
	switch v {
	case 1:
		return core.ColorCyan
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorYellow
	case 4:
		return core.ColorMagenta
	default:
		return core.ColorDim
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	g.renderHUD(dst)
	for i, r := range g.layout.tiles {
		g.renderTile(dst, i, r)
	}
	g.particles.Draw(dst)
	g.renderHelp(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH/2 - 1
	dst.DrawTextCenteredColor(y, "Cannot start TileShift", core.ColorRed)
	msg := g.loadErr.Error()
	if w := dst.Width() - 2; w > 0 && len(msg) > w {
		msg = msg[:w]
	}
	dst.DrawTextCentered(y+1, msg)
	dst.DrawTextCentered(y+3, "Press Q to quit")
}

// renderHUD draws the title, level, score and budget lines.
func (g *Game) renderHUD(dst *core.Screen) {
	left := g.layout.grid.X
	right := g.layout.grid.Right()

	var title string
	switch g.mode {
	case ModeRandom:
		title = fmt.Sprintf("TILESHIFT  %s", g.level.Name)
	default:
		title = fmt.Sprintf("TILESHIFT  Level %d/%d: %s", g.levelIndex+1, len(g.campaign), g.level.Name)
	}
	dst.DrawTextColor(left, 0, title, core.ColorWhite)

	scoreStr := "Score: " + strconv.Itoa(g.score)
	dst.DrawTextColor(max(right-len(scoreStr), left), 1, scoreStr, core.ColorYellow)

	budget := fmt.Sprintf("Marks left: %d", g.board.Remaining())
	if g.level.Par > 0 {
		budget += fmt.Sprintf("  Spare: %d", g.level.Par)
	}
	if g.retries > 0 {
		budget += fmt.Sprintf("  Retries: %d", g.retries)
	}
	if g.hints > 0 {
		budget += fmt.Sprintf("  Hints: %d", g.hints)
	}
	dst.DrawText(left, 1, budget)

	if g.message != "" {
		dst.DrawTextColor(left, 2, g.message, core.ColorOrange)
	}
}

// renderTile draws one cell: frame, value and pending mark.
func (g *Game) renderTile(dst *core.Screen, i int, r core.Rect) {
	c := g.board.Cell(i)

	color := valueColor(c.Value)
	if !c.Enabled {
		color = core.ColorGray
	}

	style := core.BoxLight
	frame := color
	switch {
	case i == g.hint:
		style = core.BoxDouble
		frame = core.ColorBlue
	case i == g.cursor && g.phase == phasePlaying:
		style = core.BoxHeavy
		frame = core.ColorWhite
	}
	dst.DrawBox(r, style, frame)

	cx, cy := r.Center()
	label := "·"
	if c.Value > 0 {
		label = strconv.Itoa(c.Value)
	}
	if c.Marked() {
		label = fmt.Sprintf("%d→%d", c.Value, shifted(c.Value, c.Mark))
	}
	x := cx - len([]rune(label))/2
	for k, ch := range []rune(label) {
		dst.SetCell(x+k, cy, core.Cell{Rune: ch, Color: color, Bold: c.Value > 0})
	}

	if !c.Enabled && r.W > 2 {
		dst.SetCell(r.X+1, r.Y+1, core.Cell{Rune: '▪', Color: core.ColorGray})
	}
	switch c.Mark {
	case board.MarkPlus:
		dst.SetCell(r.Right()-2, r.Y+1, core.Cell{Rune: '+', Color: core.ColorGreen, Bold: true})
	case board.MarkMinus:
		dst.SetCell(r.Right()-2, r.Y+1, core.Cell{Rune: '-', Color: core.ColorRed, Bold: true})
	}
	if i == g.hint && r.W > 4 {
		glyph := '+'
		if g.hintMark == board.MarkMinus {
			glyph = '-'
		}
		dst.SetCell(r.X+1, r.Bottom()-2, core.Cell{Rune: glyph, Color: core.ColorBlue, Bold: true})
	}
}

// shifted previews the value a mark will produce.
func shifted(v int, m board.Mark) int {
	switch m {
	case board.MarkPlus:
		if v >= board.MaxValue {
			return 1
		}
		return v + 1
	case board.MarkMinus:
		if v <= 1 {
			return board.MaxValue
		}
		return v - 1
	}
	return v
}

// renderHelp draws the key help under the grid. The resolve key only
// appears while resolving is allowed.
func (g *Game) renderHelp(dst *core.Screen) {
	y := dst.Height() - helpLines
	dst.DrawTextCenteredColor(y, "Arrows/WASD move  +/x plus  -/z minus  click L/R  ? hint  R reset", core.ColorGray)

	if g.CanResolve() {
		dst.DrawTextCenteredColor(y+1, "[Enter] Resolve", core.ColorGreen)
	}
}

// renderOverlays draws pause and end-of-attempt boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawOverlay(dst, core.ColorWhite, "PAUSED", "Press P to resume")
	case g.phase == phaseWon:
		g.drawOverlay(dst, core.ColorGreen, "Cleared!", "Enter: next puzzle")
	case g.phase == phaseLost:
		g.drawOverlay(dst, core.ColorRed, "Not quite", "Enter/R: try again")
	case g.phase == phaseFinished:
		g.drawOverlay(dst, core.ColorYellow, "Campaign complete!", fmt.Sprintf("Score %d  R: play again", g.score))
	}
}

// drawOverlay draws a boxed two-line message in the middle of the grid.
func (g *Game) drawOverlay(dst *core.Screen, color core.Color, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	cx, cy := g.layout.grid.Center()
	box := core.NewRect(cx-w/2, cy-2, w, 5)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.BoxDouble, color)
	dst.DrawTextColor(box.X+(w-len([]rune(line1)))/2, box.Y+1, line1, color)
	dst.DrawText(box.X+(w-len([]rune(line2)))/2, box.Y+3, line2)
}
