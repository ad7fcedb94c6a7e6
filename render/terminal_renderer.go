package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/linebounce/core"
	"github.com/lixenwraith/linebounce/engine"
	"github.com/lixenwraith/linebounce/physics"
	"github.com/lixenwraith/linebounce/vmath"
)

// Glyphs
const (
	runeDisc      = '█'
	runeSmallDisc = '●'
	runeHoriz     = '─'
	runeVert      = '│'
	runeSlash     = '/'
	runeBackslash = '\\'
)

var (
	// White canvas, black ink
	styleCanvas = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleCircle = styleCanvas.Foreground(tcell.ColorBlack)
	styleLine   = styleCanvas.Foreground(tcell.ColorDimGray).Bold(true)
	styleStatus = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	stylePaused = styleStatus.Foreground(tcell.ColorYellow).Bold(true)
)

// TerminalRenderer draws the world onto a tcell screen
// The field is scaled to the whole screen minus the bottom status line
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer over an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Render clears the screen, draws every shape and the status line, then shows the frame
func (r *TerminalRenderer) Render(w *engine.World, info engine.FrameInfo) {
	cols, rows := r.screen.Size()
	r.screen.Fill(' ', styleCanvas)

	fieldRows := rows
	if rows > 1 {
		fieldRows = rows - 1
	}
	vp := NewViewport(cols, fieldRows, w.Width, w.Height)

	for _, shape := range w.Shapes() {
		switch s := shape.(type) {
		case *core.Segment:
			r.drawSegment(vp, s)
		case *core.Circle:
			r.drawCircle(vp, s)
		}
	}

	if rows > 1 {
		r.drawStatus(w, info, cols, rows-1)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawSegment(vp Viewport, s *core.Segment) {
	end1, end2 := physics.LineEndpoints(s)
	a, b := vp.ToCell(end1), vp.ToCell(end2)
	glyph := lineRune(vmath.VectorBetween(a, b))

	vmath.Traverse(a, b, func(x, y int) bool {
		if vp.Contains(x, y) {
			r.screen.SetContent(x, y, glyph, nil, styleLine)
		}
		return true
	})
}

// drawCircle fills cells whose centers fall inside the disc
// Circles smaller than a cell still get one glyph
func (r *TerminalRenderer) drawCircle(vp Viewport, c *core.Circle) {
	lo := vp.ToCell(vmath.Sub(c.Center, vmath.V2(c.Radius, c.Radius)))
	hi := vp.ToCell(vmath.Add(c.Center, vmath.V2(c.Radius, c.Radius)))

	filled := false
	for y := int(math.Floor(lo.Y)); y <= int(math.Floor(hi.Y)); y++ {
		for x := int(math.Floor(lo.X)); x <= int(math.Floor(hi.X)); x++ {
			if !vp.Contains(x, y) {
				continue
			}
			if vmath.Distance(vp.FromCell(x, y), c.Center) <= c.Radius {
				r.screen.SetContent(x, y, runeDisc, nil, styleCircle)
				filled = true
			}
		}
	}

	if !filled {
		p := vp.ToCell(c.Center)
		x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
		if vp.Contains(x, y) {
			r.screen.SetContent(x, y, runeSmallDisc, nil, styleCircle)
		}
	}
}

func (r *TerminalRenderer) drawStatus(w *engine.World, info engine.FrameInfo, cols, row int) {
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, row, ' ', nil, styleStatus)
	}

	last := w.LastTick()
	text := fmt.Sprintf(" circles %d  segments %d  tick %d  bounces %d  faults %d  %s ",
		len(w.Circles), len(w.Segments), w.TickCount(), last.Bounces, w.TotalFaults(),
		info.Uptime.Truncate(100*time.Millisecond))
	x := drawText(r.screen, 0, row, cols, text, styleStatus)

	if info.Paused {
		x = drawText(r.screen, x, row, cols, " PAUSED ", stylePaused)
	}

	help := " p pause  n step  s spawn  r reset  q quit "
	if start := cols - len(help); start > x {
		drawText(r.screen, start, row, cols, help, styleStatus)
	}
}

// drawText writes s from x, clipped at maxX, returns the column after the last rune
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// lineRune picks a box glyph for a line with the given cell-space direction
func lineRune(d vmath.Vec2) rune {
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	// Y grows downward, so a positive slope runs top-left to bottom-right
	switch {
	case deg < 22.5 || deg >= 157.5:
		return runeHoriz
	case deg < 67.5:
		return runeBackslash
	case deg < 112.5:
		return runeVert
	default:
		return runeSlash
	}
}
