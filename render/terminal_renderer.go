// Package render draws game snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/constant"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
)

// Screen layout
const (
	hudRows   = 1
	panelRows = 3 // Separator and two text rows
	minCols   = 40
	minRows   = hudRows + panelRows + 6

	bombBarWidth = 10
)

var coinGlyphs = [...]rune{'●', '◐', '│', '◑'}

var emotionFaces = [component.EmotionCount]string{
	":)", ":(", ">:", ":O", "B)", "XD", "-_", "}:", "<3", "[]", "@@", "o)",
}

var accessoryGlyphs = [component.AccessoryCount]rune{
	' ', '▲', '∞', '♛', '○', '▣', 'Ω', '≋', '§', '▮', '†', '◆',
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	view   Viewport

	ui     *UIState
	banner *RewardBanner

	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, ui *UIState, banner *RewardBanner) *TerminalRenderer {
	width, height := screen.Size()
	return &TerminalRenderer{
		screen:       screen,
		width:        width,
		height:       height,
		ui:           ui,
		banner:       banner,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbHudText.Tcell()),
	}
}

// Resize updates the terminal dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// layout places the canvas inside a one-cell border between the HUD and the panel
func (r *TerminalRenderer) layout(canvasW, canvasH float64) Viewport {
	return Viewport{
		X:      1,
		Y:      hudRows + 1,
		Cols:   r.width - 2,
		Rows:   r.height - hudRows - panelRows - 2,
		Width:  canvasW,
		Height: canvasH,
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	r.screen.Fill(' ', r.defaultStyle)

	if r.width < minCols || r.height < minRows {
		r.drawCentered(r.height/2, "Terminal too small", r.fg(RgbCooldown))
		r.screen.Show()
		return
	}

	r.view = r.layout(snap.Width, snap.Height)

	r.drawBorder()
	r.drawHUD(snap)
	r.drawMagnet(snap)
	r.drawCoins(snap)
	r.drawFX(snap)
	r.drawBomb(snap)
	r.drawPlayer(snap)
	r.drawPanel(snap)
	r.drawBanner()

	if r.ui.Paused() {
		r.drawCentered(r.view.Y+r.view.Rows/2, " PAUSED ", r.fg(RgbBackground).Background(RgbHudText.Tcell()))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fg(c RGB) tcell.Style {
	return r.defaultStyle.Foreground(c.Tcell())
}

// drawText writes s from x honoring wide runes; returns the next free column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on row y, truncated to the screen width
func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	if runewidth.StringWidth(s) > r.width {
		s = runewidth.Truncate(s, r.width, "…")
	}
	x := (r.width - runewidth.StringWidth(s)) / 2
	r.drawText(x, y, s, style)
}

// segment is one styled run of panel or HUD text
type segment struct {
	text  string
	style tcell.Style
}

func (r *TerminalRenderer) drawSegments(x, y int, segs []segment) int {
	for i, s := range segs {
		if i > 0 {
			x = r.drawText(x, y, "  ", r.defaultStyle)
		}
		x = r.drawText(x, y, s.text, s.style)
	}
	return x
}

func (r *TerminalRenderer) drawBorder() {
	style := r.fg(RgbBorder)
	left, top := r.view.X-1, r.view.Y-1
	right, bottom := r.view.X+r.view.Cols, r.view.Y+r.view.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// drawHUD draws the status line: balance, level, speed and bomb readiness
func (r *TerminalRenderer) drawHUD(snap *engine.Snapshot) {
	sum := &snap.Ledger
	x := r.drawSegments(0, 0, []segment{
		{fmt.Sprintf("Coins: %d", sum.Coins), r.fg(RgbCoinGold)},
		{fmt.Sprintf("Level: %d", sum.Level), r.defaultStyle},
		{fmt.Sprintf("Speed: x%.1f", sum.SpeedMultiplier), r.defaultStyle},
		{"Bomb:", r.defaultStyle},
	})
	x++

	bomb := &snap.Bomb
	switch {
	case !bomb.Owned:
		r.drawText(x, 0, "-", r.fg(RgbHudDim))
	case bomb.Ready():
		r.drawText(x, 0, "Ready", r.fg(RgbReady))
	default:
		x = r.drawText(x, 0, fmt.Sprintf("%ds ", bomb.SecondsRemaining()), r.fg(RgbCooldown))
		filled := int(bomb.Progress() * bombBarWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", bombBarWidth-filled)
		r.drawText(x, 0, bar, r.fg(RgbCooldown))
	}
}

// drawRing plots a circle of canvas radius around a canvas point
func (r *TerminalRenderer) drawRing(cx, cy, radius float64, ch rune, style tcell.Style) {
	steps := r.view.ellipseSteps(radius)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		if x, y, ok := r.view.Cell(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius); ok {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawMagnet(snap *engine.Snapshot) {
	if snap.MagnetRadius <= 0 {
		return
	}
	center := snap.Player.Center()
	r.drawRing(center.X, center.Y, snap.MagnetRadius, '·', r.fg(RgbMagnetRing))
}

func (r *TerminalRenderer) drawCoins(snap *engine.Snapshot) {
	for i := range snap.Coins {
		c := &snap.Coins[i]
		if c.Collected {
			continue
		}
		center := c.Center()
		x, y, ok := r.view.Cell(center.X, center.Y)
		if !ok {
			continue
		}

		// Spin through the glyph set with rotation
		turn := math.Mod(c.Rotation, 2*math.Pi) / (2 * math.Pi)
		glyph := coinGlyphs[int(turn*float64(len(coinGlyphs)))%len(coinGlyphs)]

		color := RgbCoinGold
		if c.Scale < 1 {
			color = RgbCoinShade
		}
		r.screen.SetContent(x, y, glyph, nil, r.fg(color))
	}
}

func (r *TerminalRenderer) drawFX(snap *engine.Snapshot) {
	half := constant.CoinSize / 2.0
	for i := range snap.FX {
		fx := &snap.FX[i]
		pos := fx.Position()
		x, y, ok := r.view.Cell(pos.X+half*fx.Scale, pos.Y+half*fx.Scale)
		if !ok {
			continue
		}
		r.screen.SetContent(x, y, '•', nil, r.fg(FadeRGB(RgbCoinGold, fx.Life)))
	}
}

// drawBomb draws the three shockwave rings and the particle burst
func (r *TerminalRenderer) drawBomb(snap *engine.Snapshot) {
	fx := &snap.BombFX
	if !fx.Active {
		return
	}

	for k := 0; k < 3; k++ {
		radius := fx.Radius - float64(k)*50
		if radius <= 0 {
			continue
		}
		style := r.fg(FadeRGB(RgbShockwave, 1-float64(k)*0.3))
		r.drawRing(fx.CenterX, fx.CenterY, radius, '○', style)
	}

	for i := range fx.Particles {
		p := &fx.Particles[i]
		if x, y, ok := r.view.Cell(p.X, p.Y); ok {
			r.screen.SetContent(x, y, '*', nil, r.fg(ParticleRGB(p.Hue, p.Life)))
		}
	}
}

// drawPlayer fills the hitbox with the body color, then face and accessories
func (r *TerminalRenderer) drawPlayer(snap *engine.Snapshot) {
	p := &snap.Player
	look := &p.Appearance
	body := BodyRGB(look)
	bodyStyle := r.fg(body)

	x0, y0, x1, y1 := r.view.CellRect(p.Bounds())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if r.view.Contains(x, y) {
				r.screen.SetContent(x, y, '█', nil, bodyStyle)
			}
		}
	}

	// Face on the middle row
	if look.Emotion < component.EmotionCount {
		face := emotionFaces[look.Emotion]
		faceStyle := r.defaultStyle.Foreground(tcell.ColorBlack).Background(body.Tcell())
		fy := (y0 + y1) / 2
		fx := (x0+x1+1)/2 - runewidth.StringWidth(face)/2
		for _, ch := range face {
			if r.view.Contains(fx, fy) {
				r.screen.SetContent(fx, fy, ch, nil, faceStyle)
			}
			fx += runewidth.RuneWidth(ch)
		}
	}

	// Accessories on the row above
	ax, ay := x0, y0-1
	for _, acc := range look.Accessories {
		if acc >= component.AccessoryCount || !r.view.Contains(ax, ay) {
			continue
		}
		r.screen.SetContent(ax, ay, accessoryGlyphs[acc], nil, r.fg(RgbHudText))
		ax++
	}
}

func (r *TerminalRenderer) drawPanel(snap *engine.Snapshot) {
	top := r.height - panelRows
	sepStyle := r.fg(RgbBorder)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, top, '─', nil, sepStyle)
	}

	panel := r.ui.Panel()
	r.drawText(1, top, " "+panel.String()+" ", r.fg(RgbPanelCursor))

	switch panel {
	case PanelEditor:
		r.drawEditor(snap, top+1)
	default:
		r.drawShop(snap, top+1)
	}
}

// trackLabel formats one shop entry: level progress and cost, or MAX
func trackLabel(key, name string, ts ledger.TrackSummary) string {
	if ts.Track.Leveled() {
		if ts.Maxed {
			return fmt.Sprintf("[%s] %s %d/%d MAX", key, name, ts.Level, ts.MaxLevel)
		}
		return fmt.Sprintf("[%s] %s %d/%d $%d", key, name, ts.Level, ts.MaxLevel, ts.Cost)
	}
	if ts.Owned {
		return fmt.Sprintf("[%s] %s OWNED", key, name)
	}
	return fmt.Sprintf("[%s] %s $%d", key, name, ts.Cost)
}

func (r *TerminalRenderer) trackStyle(ts ledger.TrackSummary) tcell.Style {
	switch {
	case ts.Maxed:
		return r.fg(RgbHudDim)
	case ts.Affordable:
		return r.fg(RgbReady)
	default:
		return r.fg(RgbLocked)
	}
}

func (r *TerminalRenderer) drawShop(snap *engine.Snapshot, y int) {
	tracks := &snap.Ledger.Tracks
	entries := []struct {
		key, name string
		track     ledger.Track
	}{
		{"1", "Speed", ledger.TrackSpeed},
		{"2", "Magnet", ledger.TrackMagnet},
		{"3", "Coins", ledger.TrackMoreCoins},
		{"4", "Bomb", ledger.TrackBomb},
	}

	segs := make([]segment, 0, len(entries))
	for _, e := range entries {
		ts := tracks[e.track]
		segs = append(segs, segment{trackLabel(e.key, e.name, ts), r.trackStyle(ts)})
	}
	r.drawSegments(1, y, segs)

	r.drawSegments(1, y+1, []segment{
		{"[Tab] Editor", r.fg(RgbHudDim)},
		{"[Space] Bomb", r.fg(RgbHudDim)},
		{"[p] Pause", r.fg(RgbHudDim)},
		{"[Esc] Quit", r.fg(RgbHudDim)},
	})
}

func (r *TerminalRenderer) drawEditor(snap *engine.Snapshot, y int) {
	tracks := &snap.Ledger.Tracks
	look := &snap.Player.Appearance

	colorLabel := func(key, name string, t ledger.Track, color component.BodyColor) segment {
		ts := tracks[t]
		switch {
		case look.Color == color:
			return segment{fmt.Sprintf("[%s] %s *", key, name), r.fg(RgbPanelCursor)}
		case ts.Owned:
			return segment{fmt.Sprintf("[%s] %s", key, name), r.fg(RgbHudText)}
		default:
			return segment{fmt.Sprintf("[%s] %s $%d", key, name, ts.Cost), r.trackStyle(ts)}
		}
	}

	r.drawSegments(1, y, []segment{
		{fmt.Sprintf("Color: %s [c]", look.Color), r.fg(BodyRGB(look))},
		colorLabel("5", "Rainbow", ledger.TrackRainbow, component.ColorRainbow),
		colorLabel("6", "Dark Matter", ledger.TrackDarkMatter, component.ColorDarkMatter),
		{fmt.Sprintf("Emotion: %s [e]", look.Emotion), r.defaultStyle},
	})

	worn := "none"
	if len(look.Accessories) > 0 {
		names := make([]string, len(look.Accessories))
		for i, acc := range look.Accessories {
			names[i] = acc.String()
		}
		worn = strings.Join(names, ", ")
	}

	cursor := r.ui.AccessoryCursor()
	mark := " "
	if look.HasAccessory(cursor) {
		mark = "*"
	}
	r.drawSegments(1, y+1, []segment{
		{fmt.Sprintf("Wearing (%d/%d): %s", len(look.Accessories), component.MaxAccessories, worn), r.defaultStyle},
		{fmt.Sprintf("<%s>%s", cursor, mark), r.fg(RgbPanelCursor)},
		{"[z] next [x] toggle [n] clear", r.fg(RgbHudDim)},
	})
}

func (r *TerminalRenderer) drawBanner() {
	if r.banner == nil {
		return
	}
	text, ok := r.banner.Text()
	if !ok {
		return
	}
	style := r.defaultStyle.Foreground(RgbBannerText.Tcell()).Background(RgbBannerBack.Tcell()).Bold(true)
	r.drawCentered(r.view.Y+r.view.Rows/4, " "+text+" ", style)
}
