package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	MinSectors     = 2
	MaxSectors     = 8
	DefaultSectors = 6

	SpinDuration    = 4000 * time.Millisecond
	MaxSpinDuration = 4200 * time.Millisecond // longest configurable spin
	MinSpinDegrees  = 1800                    // five full turns

	RadiusRatio   = 0.9
	LabelMargin   = 20 // distance of the label end from the rim
	LabelBaseline = 10
	LabelFont     = "Arial"
	LabelColor    = "#fff"
)

// DefaultPalette is cycled over the sectors by index.
var DefaultPalette = []string{
	"#FF9999", "#FFCC66", "#99CCFF", "#99FF99",
	"#FF9966", "#CC99FF", "#66CCCC", "#FF6666",
}

// Engine owns the wheel state, paints it and runs spin animations.
//
// An Engine is not safe for concurrent use: its methods and the frame
// callbacks it schedules must all run on the same goroutine.
type Engine struct {
	surface Surface
	frames  Scheduler

	state State
	spin  *spinAnimation

	palette  []string
	duration time.Duration
	random   func() float64
	now      func() time.Time
	onWinner func(Result)
}

type Option func(*Engine)

// WithPalette replaces the sector colours. An empty palette is ignored.
func WithPalette(colors []string) Option {
	return func(e *Engine) {
		if len(colors) > 0 {
			e.palette = append([]string(nil), colors...)
		}
	}
}

func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.duration = d
		}
	}
}

// WithRandom sets the source of the uniform [0,1) fraction used to pick the
// spin distance.
func WithRandom(fn func() float64) Option {
	return func(e *Engine) {
		if fn != nil {
			e.random = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(e *Engine) {
		if fn != nil {
			e.now = fn
		}
	}
}

// WithSectorCount sets the initial number of sectors, clamped to the legal range.
func WithSectorCount(n int) Option {
	return func(e *Engine) {
		e.resetSectors(n)
	}
}

// OnWinner registers the callback fired once per completed spin.
func OnWinner(fn func(Result)) Option {
	return func(e *Engine) {
		e.onWinner = fn
	}
}

func NewEngine(surface Surface, frames Scheduler, opts ...Option) *Engine {
	e := &Engine{
		surface:  surface,
		frames:   frames,
		palette:  DefaultPalette,
		duration: SpinDuration,
		random:   rand.Float64,
		now:      time.Now,
	}
	e.resetSectors(DefaultSectors)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a copy of the current wheel state.
func (e *Engine) State() State {
	s := e.state
	s.Labels = append([]string(nil), e.state.Labels...)
	return s
}

// Duration is the length of a spin animation.
func (e *Engine) Duration() time.Duration {
	return e.duration
}

func (e *Engine) Spinning() bool {
	return e.spin != nil
}

// SetSectorCount moves the sector count by delta, clamped to
// [MinSectors, MaxSectors]. Labels are reset to blanks and the wheel redrawn.
func (e *Engine) SetSectorCount(delta int) {
	e.resetSectors(e.state.SectorCount + delta)
	e.Draw()
}

// SetLabel overwrites one sector label and redraws. The index must be in
// [0, SectorCount); anything else is a caller bug.
func (e *Engine) SetLabel(index int, text string) {
	if index < 0 || index >= e.state.SectorCount {
		panic(fmt.Sprintf("game: label index %d out of range [0,%d)", index, e.state.SectorCount))
	}
	e.state.Labels[index] = text
	e.Draw()
}

func (e *Engine) resetSectors(n int) {
	n = max(MinSectors, min(MaxSectors, n))
	e.state.SectorCount = n
	e.state.Labels = make([]string, n)
}

// Draw paints the wheel. A surface with zero displayed width is left alone so
// that its buffer survives while hidden.
func (e *Engine) Draw() {
	if e.surface == nil {
		return
	}
	width, height := e.surface.Size()
	if width == 0 {
		return
	}

	side := int(math.Floor(width))
	if bw, bh := e.surface.BufferSize(); bw != side || bh != side {
		e.surface.SetBufferSize(side, side)
	}

	radius := math.Min(width, height) / 2 * RadiusRatio
	cx, cy := width/2, height/2
	arcSpan := fullTurn / float64(e.state.SectorCount)
	fontSize := int(math.Floor(radius / 10))

	e.surface.Clear()
	for i := 0; i < e.state.SectorCount; i++ {
		start := e.state.Rotation + float64(i)*arcSpan

		e.surface.BeginPath()
		e.surface.MoveTo(cx, cy)
		e.surface.Arc(cx, cy, radius, start, start+arcSpan)
		e.surface.ClosePath()
		e.surface.Fill(e.palette[i%len(e.palette)])
		e.surface.Stroke()

		e.surface.FillText(LabelAt(e.state.Labels, i), TextStyle{
			OriginX:  cx,
			OriginY:  cy,
			Rotation: start + arcSpan/2,
			X:        radius - LabelMargin,
			Y:        LabelBaseline,
			Align:    AlignRight,
			FontSize: fontSize,
			Font:     LabelFont,
			Color:    LabelColor,
		})
	}
}

// Spin starts a spin animation and reports whether one was started. A call
// made while a spin is running is dropped.
func (e *Engine) Spin() bool {
	if e.spin != nil {
		return false
	}
	e.spin = &spinAnimation{
		start:        e.now(),
		totalDegrees: SpinDegrees(e.random()),
		duration:     e.duration,
	}
	e.state.Spinning = true
	e.frames.RequestFrame(e.advance)
	return true
}

func (e *Engine) advance(now time.Time) {
	anim := e.spin
	if anim == nil {
		return
	}

	elapsed := now.Sub(anim.start)
	if elapsed < anim.duration {
		// frame timestamps may predate the spin request by a fraction of a frame
		progress := math.Max(0, float64(elapsed)/float64(anim.duration))
		e.state.Rotation = ToRadians(anim.totalDegrees * EaseOutCubic(progress))
		e.Draw()
		e.frames.RequestFrame(e.advance)
		return
	}

	e.spin = nil
	e.state.Spinning = false
	e.state.Rotation = FinalRotation(anim.totalDegrees)
	e.Draw()

	result := e.Winner()
	result.TotalDegrees = anim.totalDegrees
	if e.onWinner != nil {
		e.onWinner(result)
	}
}

// Winner computes the sector currently under the pointer.
func (e *Engine) Winner() Result {
	index := WinningIndex(e.state.Rotation, e.state.SectorCount)
	if n := len(e.state.Labels); index >= n && n > 0 {
		index = n - 1
	}
	return Result{
		Index:    index,
		Label:    LabelAt(e.state.Labels, index),
		Rotation: e.state.Rotation,
	}
}
