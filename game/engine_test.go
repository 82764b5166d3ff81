package game

import (
	"math"
	"testing"
	"time"
)

// fakeSurface records the calls the engine makes.
type fakeSurface struct {
	width, height float64
	bufW, bufH    int

	clears int
	arcs   []float64 // radius of every arc
	fills  []string
	texts  []string
	styles []TextStyle
}

func (f *fakeSurface) Size() (float64, float64) { return f.width, f.height }
func (f *fakeSurface) BufferSize() (int, int) { return f.bufW, f.bufH }
func (f *fakeSurface) SetBufferSize(w, h int) { f.bufW, f.bufH = w, h }
func (f *fakeSurface) Clear() { f.clears++; f.arcs, f.fills, f.texts, f.styles = nil, nil, nil, nil }
func (f *fakeSurface) BeginPath() {}
func (f *fakeSurface) MoveTo(x, y float64) {}
func (f *fakeSurface) Arc(cx, cy, r, s, e float64) { f.arcs = append(f.arcs, r) }
func (f *fakeSurface) ClosePath() {}
func (f *fakeSurface) Fill(color string) { f.fills = append(f.fills, color) }
func (f *fakeSurface) Stroke() {}
func (f *fakeSurface) FillText(text string, style TextStyle) {
	f.texts = append(f.texts, text)
	f.styles = append(f.styles, style)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestEngine(opts ...Option) (*Engine, *fakeSurface, *FrameQueue) {
	surface := &fakeSurface{width: 400, height: 400, bufW: 300, bufH: 150}
	frames := &FrameQueue{}
	return NewEngine(surface, frames, opts...), surface, frames
}

func TestSetSectorCount(t *testing.T) {
	t.Run("StaysInRange", func(t *testing.T) {
		e, _, _ := newTestEngine()
		deltas := []int{1, 1, 1, 1, 1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 3, 10, -20, 1}
		for _, d := range deltas {
			e.SetSectorCount(d)
			s := e.State()
			if s.SectorCount < MinSectors || s.SectorCount > MaxSectors {
				t.Fatalf("sector count %d out of range after delta %d", s.SectorCount, d)
			}
			if len(s.Labels) != s.SectorCount {
				t.Fatalf("labels length %d != sector count %d", len(s.Labels), s.SectorCount)
			}
		}
	})

	t.Run("ClampsSilently", func(t *testing.T) {
		e, _, _ := newTestEngine(WithSectorCount(8))
		e.SetSectorCount(1)
		if got := e.State().SectorCount; got != 8 {
			t.Errorf("Expected 8, got %d", got)
		}
		e.SetSectorCount(-100)
		if got := e.State().SectorCount; got != 2 {
			t.Errorf("Expected 2, got %d", got)
		}
	})

	t.Run("ResetsLabels", func(t *testing.T) {
		e, _, _ := newTestEngine()
		e.SetLabel(0, "Pizza")
		e.SetSectorCount(1)
		for i, l := range e.State().Labels {
			if l != "" {
				t.Errorf("label %d = %q, expected blank", i, l)
			}
		}
	})

	t.Run("Redraws", func(t *testing.T) {
		e, surface, _ := newTestEngine()
		e.SetSectorCount(-1)
		if surface.clears != 1 {
			t.Errorf("Expected one redraw, got %d", surface.clears)
		}
		if len(surface.fills) != 5 {
			t.Errorf("Expected 5 sectors drawn, got %d", len(surface.fills))
		}
	})
}

func TestSetLabel(t *testing.T) {
	e, surface, _ := newTestEngine(WithSectorCount(3))
	e.SetLabel(2, "Tacos")

	if got := e.State().Labels[2]; got != "Tacos" {
		t.Errorf("Expected Tacos, got %q", got)
	}
	if surface.texts[2] != "Tacos" {
		t.Errorf("Expected redraw with Tacos, got %q", surface.texts[2])
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range label index")
		}
	}()
	e.SetLabel(3, "nope")
}

func TestDraw(t *testing.T) {
	t.Run("ZeroWidthIsNoop", func(t *testing.T) {
		e, surface, _ := newTestEngine()
		surface.width, surface.height = 0, 0
		e.Draw()
		if surface.bufW != 300 || surface.bufH != 150 {
			t.Errorf("buffer resized to %dx%d", surface.bufW, surface.bufH)
		}
		if surface.clears != 0 {
			t.Error("Expected no drawing on hidden surface")
		}
	})

	t.Run("SquareBuffer", func(t *testing.T) {
		e, surface, _ := newTestEngine()
		surface.width, surface.height = 301.7, 250
		e.Draw()
		if surface.bufW != 301 || surface.bufH != 301 {
			t.Errorf("Expected 301x301 buffer, got %dx%d", surface.bufW, surface.bufH)
		}
		if want := 250.0 / 2 * RadiusRatio; surface.arcs[0] != want {
			t.Errorf("Expected radius %f, got %f", want, surface.arcs[0])
		}
	})

	t.Run("Sectors", func(t *testing.T) {
		e, surface, _ := newTestEngine(WithSectorCount(4))
		e.SetLabel(1, "Burgers")
		e.Draw()

		if len(surface.fills) != 4 {
			t.Fatalf("Expected 4 sectors, got %d", len(surface.fills))
		}
		for i, c := range surface.fills {
			if c != DefaultPalette[i] {
				t.Errorf("sector %d colour %s, expected %s", i, c, DefaultPalette[i])
			}
		}

		wantTexts := []string{"Option 1", "Burgers", "Option 3", "Option 4"}
		for i, want := range wantTexts {
			if surface.texts[i] != want {
				t.Errorf("sector %d text %q, expected %q", i, surface.texts[i], want)
			}
		}

		style := surface.styles[0]
		if style.FontSize != 18 {
			t.Errorf("Expected font size 18, got %d", style.FontSize)
		}
		if style.X != 160 || style.Align != AlignRight {
			t.Errorf("unexpected label placement %+v", style)
		}
		if math.Abs(style.Rotation-math.Pi/4) > 1e-12 {
			t.Errorf("Expected mid-angle π/4, got %f", style.Rotation)
		}
	})

	t.Run("PaletteWraps", func(t *testing.T) {
		e, surface, _ := newTestEngine(WithPalette([]string{"#000", "#111", "#222"}), WithSectorCount(5))
		e.Draw()
		want := []string{"#000", "#111", "#222", "#000", "#111"}
		for i := range want {
			if surface.fills[i] != want[i] {
				t.Errorf("sector %d colour %s, expected %s", i, surface.fills[i], want[i])
			}
		}
	})
}

func TestWinningIndex(t *testing.T) {
	if got := WinningIndex(0, 4); got != 3 {
		t.Errorf("4 sectors at rotation 0: expected 3, got %d", got)
	}

	if rel := PointerRelativeAngle(math.Pi); math.Abs(rel-math.Pi/2) > 1e-12 {
		t.Errorf("Expected pointer angle π/2, got %f", rel)
	}
	if got := WinningIndex(math.Pi, 6); got != 1 {
		t.Errorf("6 sectors at rotation π: expected 1, got %d", got)
	}

	// negative and multi-turn rotations land in range
	for _, rot := range []float64{-7.5, -math.Pi, 25, 1e4} {
		for n := MinSectors; n <= MaxSectors; n++ {
			if got := WinningIndex(rot, n); got < 0 || got >= n {
				t.Errorf("rotation %f, %d sectors: index %d out of range", rot, n, got)
			}
		}
	}
}

func TestLabelAt(t *testing.T) {
	labels := []string{"", "Sushi", "   "}
	if got := LabelAt(labels, 0); got != "Option 1" {
		t.Errorf("Expected Option 1, got %q", got)
	}
	if got := LabelAt(labels, 1); got != "Sushi" {
		t.Errorf("Expected Sushi, got %q", got)
	}
	if got := LabelAt(labels, 2); got != "Option 3" {
		t.Errorf("Expected Option 3 for blank label, got %q", got)
	}
}

func TestEaseOutCubic(t *testing.T) {
	prev := EaseOutCubic(0)
	if prev != 0 {
		t.Fatalf("Expected 0 at start, got %f", prev)
	}
	for i := 1; i <= 1000; i++ {
		cur := EaseOutCubic(float64(i) / 1000)
		if cur < prev {
			t.Fatalf("ease-out decreased at step %d: %f < %f", i, cur, prev)
		}
		prev = cur
	}
	if EaseOutCubic(1) != 1 {
		t.Errorf("Expected 1 at end, got %f", EaseOutCubic(1))
	}
}

func TestSpin(t *testing.T) {
	start := time.Date(2025, 1, 1, 17, 0, 0, 0, time.UTC)

	t.Run("FullAnimation", func(t *testing.T) {
		clock := &fakeClock{t: start}
		var results []Result
		e, _, frames := newTestEngine(
			WithClock(clock.Now),
			WithRandom(func() float64 { return 0.5 }),
			OnWinner(func(r Result) { results = append(results, r) }),
		)
		e.SetLabel(1, "Pizza")

		if !e.Spin() {
			t.Fatal("Expected spin to start")
		}
		if !e.State().Spinning {
			t.Fatal("Expected spinning state")
		}

		// frame slightly before the recorded start
		frames.Flush(start.Add(-5 * time.Millisecond))
		if rot := e.State().Rotation; rot != 0 {
			t.Errorf("Expected rotation 0 before start, got %f", rot)
		}

		var last float64
		for ms := 16; ms < 4000; ms += 16 {
			frames.Flush(start.Add(time.Duration(ms) * time.Millisecond))
			rot := e.State().Rotation
			if rot < last {
				t.Fatalf("rotation went backwards at %dms", ms)
			}
			last = rot
		}
		if len(results) != 0 {
			t.Fatal("winner reported before the animation finished")
		}

		frames.Flush(start.Add(4 * time.Second))
		if e.State().Spinning {
			t.Error("Expected idle after duration")
		}
		if want := FinalRotation(1980); e.State().Rotation != want {
			t.Errorf("Expected final rotation %f, got %f", want, e.State().Rotation)
		}
		if len(results) != 1 {
			t.Fatalf("Expected one winner, got %d", len(results))
		}
		if results[0].Index != 1 || results[0].Label != "Pizza" {
			t.Errorf("Expected Pizza at index 1, got %+v", results[0])
		}
		if results[0].TotalDegrees != 1980 {
			t.Errorf("Expected 1980 degrees, got %f", results[0].TotalDegrees)
		}

		if n := frames.Flush(start.Add(5 * time.Second)); n != 0 {
			t.Errorf("Expected no frames after completion, got %d", n)
		}
		if len(results) != 1 {
			t.Errorf("winner reported %d times", len(results))
		}
	})

	t.Run("ReentrantSpinIgnored", func(t *testing.T) {
		clock := &fakeClock{t: start}
		calls := 0
		e, _, frames := newTestEngine(WithClock(clock.Now), WithRandom(func() float64 {
			calls++
			return 0.25
		}))

		e.Spin()
		frames.Flush(start.Add(time.Second))
		before := e.State()

		clock.t = start.Add(2 * time.Second)
		if e.Spin() {
			t.Fatal("Expected second spin to be ignored")
		}
		if calls != 1 {
			t.Errorf("Expected random drawn once, got %d", calls)
		}
		if frames.Pending() != 1 {
			t.Errorf("Expected one pending frame, got %d", frames.Pending())
		}
		if after := e.State(); after.Rotation != before.Rotation || !after.Spinning {
			t.Error("state changed by ignored spin")
		}
	})

	t.Run("CountChangeDuringSpin", func(t *testing.T) {
		clock := &fakeClock{t: start}
		var got *Result
		e, _, frames := newTestEngine(
			WithClock(clock.Now),
			WithRandom(func() float64 { return 0 }),
			OnWinner(func(r Result) { got = &r }),
		)
		e.Spin()
		frames.Flush(start.Add(time.Second))
		e.SetSectorCount(-4)

		if !e.State().Spinning {
			t.Fatal("count change interrupted the spin")
		}
		frames.Flush(start.Add(5 * time.Second))
		if got == nil {
			t.Fatal("Expected a winner")
		}
		// 1800° is five whole turns: rotation 0, two sectors
		if got.Index != WinningIndex(0, 2) {
			t.Errorf("Expected index %d, got %d", WinningIndex(0, 2), got.Index)
		}
	})
}
