package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DoumaAbi/Doumas-Coin-Game/component"
	"github.com/DoumaAbi/Doumas-Coin-Game/engine"
	"github.com/DoumaAbi/Doumas-Coin-Game/ledger"
	"github.com/DoumaAbi/Doumas-Coin-Game/render"
)

var emotionFaces = [component.EmotionCount]string{
	":)", ":(", ">:(", ":O", "B)", "XD", "-_-", "}:)", "<3", "[:]", "@_@", "o)",
}

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func rgbaAlpha(c render.RGB, alpha float64) color.RGBA {
	a := uint8(math.Max(0, math.Min(1, alpha)) * 255)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Draw renders the latest snapshot; the canvas is offset below the HUD
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.deps.Runner.Snapshot()
	screen.Fill(rgba(render.RgbBackground))

	a.drawHUD(screen, &snap)

	oy := float32(hudHeight)
	vector.StrokeRect(screen, 0, oy, float32(snap.Width), float32(snap.Height), 1, rgba(render.RgbBorder), false)

	if snap.MagnetRadius > 0 {
		c := snap.Player.Center()
		vector.StrokeCircle(screen, float32(c.X), oy+float32(c.Y), float32(snap.MagnetRadius), 1, rgbaAlpha(render.RgbMagnetRing, 0.4), true)
	}

	a.drawCoins(screen, &snap, oy)
	a.drawBomb(screen, &snap, oy)
	a.drawPlayer(screen, &snap, oy)
	a.drawPanel(screen, &snap, oy+float32(snap.Height))

	if msg, ok := a.banner.Text(); ok {
		w := len(msg) * 7
		x := (a.width - w) / 2
		y := hudHeight + a.height/4
		vector.DrawFilledRect(screen, float32(x-8), float32(y-16), float32(w+16), 24, rgba(render.RgbBannerBack), false)
		text.Draw(screen, msg, a.face, x, y, rgba(render.RgbBannerText))
	}

	if a.ui.Paused() {
		text.Draw(screen, "PAUSED", a.face, a.width/2-21, hudHeight+a.height/2, rgba(render.RgbHudText))
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  steps %d", ebiten.ActualTPS(), snap.Steps), a.width-150, a.height+hudHeight+panelHeight-16)
}

func (a *App) drawHUD(screen *ebiten.Image, snap *engine.Snapshot) {
	sum := &snap.Ledger
	line := fmt.Sprintf("Coins: %d   Level: %d   Speed: x%.1f   Bomb: ", sum.Coins, sum.Level, sum.SpeedMultiplier)
	text.Draw(screen, line, a.face, 8, 18, rgba(render.RgbHudText))

	x := 8 + len(line)*7
	bomb := &snap.Bomb
	switch {
	case !bomb.Owned:
		text.Draw(screen, "-", a.face, x, 18, rgba(render.RgbHudDim))
	case bomb.Ready():
		text.Draw(screen, "Ready", a.face, x, 18, rgba(render.RgbReady))
	default:
		label := fmt.Sprintf("%ds", bomb.SecondsRemaining())
		text.Draw(screen, label, a.face, x, 18, rgba(render.RgbCooldown))
		bx := float32(x + len(label)*7 + 6)
		vector.DrawFilledRect(screen, bx, 8, 80, 12, rgba(render.RgbLocked), false)
		vector.DrawFilledRect(screen, bx, 8, float32(80*bomb.Progress()), 12, rgba(render.RgbCooldown), false)
	}
}

func (a *App) drawCoins(screen *ebiten.Image, snap *engine.Snapshot, oy float32) {
	for i := range snap.Coins {
		c := &snap.Coins[i]
		if c.Collected {
			continue
		}
		center := c.Center()
		r := float32(c.Size / 2 * c.Scale)
		cx, cy := float32(center.X), oy+float32(center.Y)
		vector.DrawFilledCircle(screen, cx, cy, r, rgba(render.RgbCoinGold), true)

		// Spin highlight sweeps across the face
		hx := cx + r*0.5*float32(math.Cos(c.Rotation))
		vector.DrawFilledCircle(screen, hx, cy, r*0.35, rgba(render.RgbCoinShade), true)
	}

	for i := range snap.FX {
		fx := &snap.FX[i]
		pos := fx.Position()
		r := float32(fx.Scale * 6)
		vector.DrawFilledCircle(screen, float32(pos.X), oy+float32(pos.Y), r, rgbaAlpha(render.RgbCoinGold, fx.Life), true)
	}
}

// drawBomb draws the three shockwave rings and the particle burst
func (a *App) drawBomb(screen *ebiten.Image, snap *engine.Snapshot, oy float32) {
	fx := &snap.BombFX
	if !fx.Active {
		return
	}
	for k := 0; k < 3; k++ {
		radius := fx.Radius - float64(k)*50
		if radius <= 0 {
			continue
		}
		alpha := (1 - fx.Radius/fx.MaxRadius) * (1 - float64(k)*0.3)
		vector.StrokeCircle(screen, float32(fx.CenterX), oy+float32(fx.CenterY), float32(radius), 3, rgbaAlpha(render.RgbShockwave, alpha+0.2), true)
	}
	for i := range fx.Particles {
		p := &fx.Particles[i]
		vector.DrawFilledCircle(screen, float32(p.X), oy+float32(p.Y), float32(p.Size*p.Life), rgbaAlpha(render.RainbowRGB(p.Hue), p.Life), true)
	}
}

func (a *App) drawPlayer(screen *ebiten.Image, snap *engine.Snapshot, oy float32) {
	p := &snap.Player
	look := &p.Appearance
	x, y := float32(p.X), oy+float32(p.Y)
	w, h := float32(p.Width), float32(p.Height)

	vector.DrawFilledRect(screen, x, y, w, h, rgba(render.BodyRGB(look)), true)

	if look.Emotion < component.EmotionCount {
		face := emotionFaces[look.Emotion]
		text.Draw(screen, face, a.face, int(x+w/2)-len(face)*7/2, int(y+h/2)+4, color.Black)
	}

	// Accessory initials stacked above the head
	for i, acc := range look.Accessories {
		label := strings.ToUpper(acc.String()[:1])
		text.Draw(screen, label, a.face, int(x)+i*10, int(y)-4, rgba(render.RgbHudText))
	}
}

func (a *App) drawPanel(screen *ebiten.Image, snap *engine.Snapshot, top float32) {
	y := int(top) + 18
	tracks := &snap.Ledger.Tracks
	look := &snap.Player.Appearance

	var line string
	if a.ui.Panel() == render.PanelEditor {
		line = fmt.Sprintf("Color: %s [c]  Rainbow %s [5]  Dark Matter %s [6]  Emotion: %s [e]  Cursor: %s [z/x/n]",
			look.Color, lockLabel(tracks[ledger.TrackRainbow]), lockLabel(tracks[ledger.TrackDarkMatter]), look.Emotion, a.ui.AccessoryCursor())
	} else {
		parts := make([]string, 0, 4)
		for i, t := range []ledger.Track{ledger.TrackSpeed, ledger.TrackMagnet, ledger.TrackMoreCoins, ledger.TrackBomb} {
			parts = append(parts, fmt.Sprintf("[%d] %s %s", i+1, t, costLabel(tracks[t])))
		}
		line = strings.Join(parts, "   ")
	}
	text.Draw(screen, line, a.face, 8, y, rgba(render.RgbHudText))
	text.Draw(screen, "[Tab] panel  [Space] bomb  [p] pause  [Esc] quit", a.face, 8, y+18, rgba(render.RgbHudDim))
}

func costLabel(ts ledger.TrackSummary) string {
	switch {
	case ts.Maxed:
		return "MAX"
	case !ts.Track.Leveled() && ts.Owned:
		return "OWNED"
	case ts.Track.Leveled():
		return fmt.Sprintf("%d/%d $%d", ts.Level, ts.MaxLevel, ts.Cost)
	default:
		return fmt.Sprintf("$%d", ts.Cost)
	}
}

func lockLabel(ts ledger.TrackSummary) string {
	if ts.Owned {
		return "unlocked"
	}
	return fmt.Sprintf("$%d", ts.Cost)
}
