package surface

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"spinWheelServer/game"
)

const (
	upperHalfBlock = '▀'
	maxLabelRunes  = 12
)

type textPlacement struct {
	text  string
	col   int
	row   int
	color tcell.Color
}

// sectorPath is the only path shape the wheel draws: a pie slice.
type sectorPath struct {
	cx, cy     float64
	radius     float64
	start, end float64
	ok         bool
}

// Terminal rasterises the wheel onto a tcell screen. Each cell holds two
// vertically stacked pixels drawn with the upper half block, so the pixel
// grid is cols wide and rows*2 tall and circles stay round.
type Terminal struct {
	screen tcell.Screen

	bufW, bufH int
	pixels     []tcell.Color
	texts      []textPlacement

	path        sectorPath
	lastRadius  float64
	strokeColor tcell.Color
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:      screen,
		strokeColor: tcell.ColorBlack,
	}
}

func (t *Terminal) Size() (float64, float64) {
	cols, rows := t.screen.Size()
	return float64(cols), float64(rows * 2)
}

func (t *Terminal) BufferSize() (int, int) { return t.bufW, t.bufH }

func (t *Terminal) SetBufferSize(width, height int) {
	t.bufW, t.bufH = width, height
	t.pixels = make([]tcell.Color, width*height)
	t.texts = nil
}

func (t *Terminal) Clear() {
	for i := range t.pixels {
		t.pixels[i] = tcell.ColorDefault
	}
	t.texts = t.texts[:0]
}

func (t *Terminal) BeginPath() { t.path = sectorPath{} }

func (t *Terminal) MoveTo(x, y float64) {}

func (t *Terminal) Arc(cx, cy, radius, startAngle, endAngle float64) {
	t.path = sectorPath{cx: cx, cy: cy, radius: radius, start: startAngle, end: endAngle, ok: true}
	t.lastRadius = radius
}

func (t *Terminal) ClosePath() {}

func (t *Terminal) Fill(color string) {
	c := parseColor(color)
	t.eachPathPixel(func(i int, _, _ float64) {
		t.pixels[i] = c
	})
}

// Stroke outlines the rim and both radial edges of the current slice.
func (t *Terminal) Stroke() {
	span := t.path.end - t.path.start
	t.eachPathPixel(func(i int, dist, offset float64) {
		rim := t.path.radius-dist < 1
		edge := dist*math.Sin(offset) < 0.5 || dist*math.Sin(span-offset) < 0.5
		if rim || edge {
			t.pixels[i] = t.strokeColor
		}
	})
}

// FillText places the label along the rotated baseline. Terminal glyphs
// cannot rotate, so only the anchor point follows the rotation; labels that
// would sit too close to the hub are pushed outward.
func (t *Terminal) FillText(text string, style game.TextStyle) {
	dist := style.X
	if dist < t.lastRadius/2 {
		dist = t.lastRadius * 0.7
	}
	px := style.OriginX + dist*math.Cos(style.Rotation)
	py := style.OriginY + dist*math.Sin(style.Rotation)

	runes := []rune(strings.TrimSpace(text))
	if len(runes) > maxLabelRunes {
		runes = append(runes[:maxLabelRunes-1], '…')
	}

	col := int(math.Round(px))
	switch style.Align {
	case game.AlignRight:
		// the label runs from the anchor back toward the hub
		if math.Cos(style.Rotation) >= 0 {
			col -= len(runes)
		}
	case game.AlignCenter:
		col -= len(runes) / 2
	}

	t.texts = append(t.texts, textPlacement{
		text:  string(runes),
		col:   col,
		row:   int(py) / 2,
		color: parseColor(style.Color),
	})
}

// PixelAt returns the colour of one buffer pixel, ColorDefault when empty or
// out of range.
func (t *Terminal) PixelAt(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= t.bufW || y >= t.bufH {
		return tcell.ColorDefault
	}
	return t.pixels[y*t.bufW+x]
}

// Present copies the pixel buffer and labels to the screen. The caller
// decides when to Show.
func (t *Terminal) Present() {
	cols, rows := t.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := t.PixelAt(col, row*2)
			bottom := t.PixelAt(col, row*2+1)
			if top == tcell.ColorDefault && bottom == tcell.ColorDefault {
				t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			t.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}

	for _, label := range t.texts {
		for i, r := range []rune(label.text) {
			col := label.col + i
			if col < 0 || col >= cols || label.row < 0 || label.row >= rows {
				continue
			}
			bg := t.PixelAt(col, label.row*2)
			t.screen.SetContent(col, label.row, r, nil, tcell.StyleDefault.Foreground(label.color).Background(bg).Bold(true))
		}
	}
}

// eachPathPixel visits every buffer pixel inside the current slice with its
// distance from the centre and its angular offset from the slice start.
func (t *Terminal) eachPathPixel(fn func(i int, dist, offset float64)) {
	p := t.path
	if !p.ok || p.radius <= 0 {
		return
	}
	span := p.end - p.start
	full := span >= 2*math.Pi

	minX := max(0, int(p.cx-p.radius))
	maxX := min(t.bufW-1, int(p.cx+p.radius))
	minY := max(0, int(p.cy-p.radius))
	maxY := min(t.bufH-1, int(p.cy+p.radius))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - p.cx
			dy := float64(y) + 0.5 - p.cy
			dist := math.Hypot(dx, dy)
			if dist > p.radius {
				continue
			}
			angle := math.Atan2(dy, dx)
			offset := math.Mod(math.Mod(angle-p.start, 2*math.Pi)+2*math.Pi, 2*math.Pi)
			if !full && offset >= span {
				continue
			}
			fn(y*t.bufW+x, dist, offset)
		}
	}
}

// parseColor accepts canvas-style colours, including 3-digit hex.
func parseColor(s string) tcell.Color {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return tcell.GetColor(s)
}
