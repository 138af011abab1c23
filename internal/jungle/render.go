package jungle

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/jungle-quest/internal/core"
)

// Glyphs for rendering.
const (
	PlayerGlyph     = '█'
	BananaGlyph     = ')'
	KeyGlyph        = 'k'
	QuantumGlyph    = '◆'
	HoloGlyph       = '◇'
	HighlightGlyph  = '*'
	BanditGlyph     = 'B'
	DroneGlyph      = '¤'
	BossGlyph       = '█'
	ProjectileGlyph = '•'
	SolidGlyph      = '▀'
	QuantumPlatform = '≈'
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot scaled from world units to dst's cells.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if s.State.Screen == ScreenMenu {
		dst.DrawTextCentered(dst.Height()/2, "JUNGLE QUEST")
		return
	}

	v := newViewport(dst, s.WorldW, s.WorldH)
	v.background(s.State.Timeline)

	for _, p := range s.Platforms {
		v.platform(p)
	}
	for _, c := range s.Collectibles {
		if !c.Collected {
			v.collectible(c)
		}
	}
	for _, e := range s.Enemies {
		v.enemy(e)
	}
	v.player(s.State.Player)

	renderHUD(dst, s)
	renderOverlay(dst, s)
}

// viewport maps world coordinates onto the playfield rows of a screen.
type viewport struct {
	dst    *core.Screen
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	rows := max(1, dst.Height()-hudRows)
	return viewport{
		dst:  dst,
		sx:   float64(dst.Width()) / worldW,
		sy:   float64(rows) / worldH,
		rows: rows,
	}
}

// cells converts a world rect to a cell rect at least one cell in size.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y*v.sy)) + hudRows
	w = max(1, int(math.Ceil(r.Right()*v.sx))-x)
	h = max(1, int(math.Ceil(r.Bottom()*v.sy))+hudRows-y)
	return x, y, w, h
}

func (v viewport) fill(r core.Rect, glyph rune, c core.Color) {
	x, y, w, h := v.cells(r)
	// keep entities off the HUD row
	if y < hudRows {
		h -= hudRows - y
		y = hudRows
	}
	if h <= 0 {
		return
	}
	v.dst.SetPen(c)
	v.dst.FillRect(x, y, w, h, glyph)
}

func (v viewport) background(t Timeline) {
	var (
		glyph rune
		color core.Color
		stepX int
		stepY int
	)
	switch t {
	case TimelinePast:
		glyph, color, stepX, stepY = '"', core.ColorDarkGreen, 7, 3
	case TimelineFuture:
		glyph, color, stepX, stepY = '+', core.ColorDimGray, 8, 4
	default:
		glyph, color, stepX, stepY = '·', core.ColorDeepBlue, 6, 3
	}

	v.dst.SetPen(color)
	for y := hudRows; y < v.dst.Height(); y += stepY {
		for x := (y / stepY) % 2 * (stepX / 2); x < v.dst.Width(); x += stepX {
			v.dst.Set(x, y, glyph)
		}
	}
}

func (v viewport) platform(p Platform) {
	switch pv := p.Variant.(type) {
	case Quantum:
		v.fill(p.Rect, QuantumPlatform, core.ColorMagenta)
	case Holographic:
		if pv.Alpha >= 0.6 {
			v.fill(p.Rect, '▒', core.ColorBrightCyan)
		} else {
			v.fill(p.Rect, '░', core.ColorCyan)
		}
	default:
		v.fill(p.Rect, SolidGlyph, core.ColorOrange)
	}
}

func (v viewport) collectible(c Collectible) {
	if c.Highlighted {
		v.fill(c.Rect, HighlightGlyph, core.ColorBrightWhite)
		return
	}
	switch c.Kind {
	case KindBanana:
		v.fill(c.Rect, BananaGlyph, core.ColorYellow)
	case KindKey:
		v.fill(c.Rect, KeyGlyph, core.ColorBrightYellow)
	case KindQuantum:
		color := core.ColorMagenta
		if math.Sin(c.Phase) > 0 {
			color = core.ColorBrightMagenta
		}
		v.fill(c.Rect, QuantumGlyph, color)
	case KindHolo:
		color := core.ColorCyan
		if math.Sin(c.Phase) > 0 {
			color = core.ColorBrightCyan
		}
		v.fill(c.Rect, HoloGlyph, color)
	}
}

func (v viewport) enemy(e Enemy) {
	switch b := e.Brain.(type) {
	case Bandit:
		v.fill(e.Rect, BanditGlyph, core.ColorRed)
	case Glitch:
		if b.Alpha > 0.5 {
			v.fill(e.Rect, '▓', core.ColorBrightMagenta)
		} else {
			v.fill(e.Rect, '░', core.ColorMagenta)
		}
	case Drone:
		v.fill(e.Rect, DroneGlyph, core.ColorBrightRed)
	case Boss:
		color := core.ColorRed
		switch {
		case b.Health <= 0:
			color = core.ColorGray
		case b.Phase >= 3:
			color = core.ColorBrightMagenta
		case b.Phase >= 2:
			color = core.ColorOrange
		}
		v.fill(e.Rect, BossGlyph, color)
	case Projectile:
		v.fill(e.Rect, ProjectileGlyph, core.ColorBrightRed)
	}
}

func (v viewport) player(p Player) {
	v.fill(p.Rect(), PlayerGlyph, core.ColorBrightGreen)

	// eyes on the top row show the facing
	x, y, w, _ := v.cells(p.Rect())
	if y < hudRows {
		return
	}
	eye, ex := '>', x+w-1
	if p.Facing == FacingLeft {
		eye, ex = '<', x
	}
	v.dst.SetPen(core.ColorBrightWhite)
	v.dst.Set(ex, y, eye)
}

// renderHUD draws score and resources on the top row.
func renderHUD(dst *core.Screen, s Snapshot) {
	st := s.State
	dst.SetPen(core.ColorWhite)
	dst.FillRect(0, 0, dst.Width(), hudRows, ' ')

	left := fmt.Sprintf(" Score %d  Lives %d  Bananas %d  Keys %d", st.Score, st.Lives, st.Bananas, st.Keys)
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf("L%d %s  %s %d ", st.Level, s.LevelName, energyBar(st.Energy, s.EnergyMax, 10), int(st.Timeline))
	if s.BossMax > 0 {
		right = fmt.Sprintf("Boss %d/%d  %s", max(0, s.BossHealth), s.BossMax, right)
	}
	dst.SetPen(core.ColorBrightCyan)
	dst.DrawText(dst.Width()-len([]rune(right)), 0, right)
}

// energyBar renders energy as a fixed-width gauge.
func energyBar(energy, maxEnergy float64, width int) string {
	if maxEnergy <= 0 {
		maxEnergy = 100
	}
	filled := core.Clamp(int(energy/maxEnergy*float64(width)), 0, width)
	return "E[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// renderOverlay draws pause and end-of-run messages.
func renderOverlay(dst *core.Screen, s Snapshot) {
	switch {
	case s.State.Screen == ScreenGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  Esc menu", s.State.Score))
	case s.State.Screen == ScreenWon:
		drawCenteredBox(dst, "THE JUNGLE IS SAVED!", fmt.Sprintf("Final Score: %d  |  R restart  Esc menu", s.State.Score))
	case s.State.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.SetPen(core.ColorBrightWhite)
	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.SetPen(core.ColorWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
