// Package surface provides game.Surface implementations.
package surface

import "spinWheelServer/game"

// Default canvas element size before anything resizes it.
const (
	DefaultBufferWidth  = 300
	DefaultBufferHeight = 150
)

// Op is one recorded draw command, replayed by the browser onto its canvas.
type Op struct {
	Op    string          `json:"op"`
	Args  []float64       `json:"args,omitempty"`
	Color string          `json:"color,omitempty"`
	Text  string          `json:"text,omitempty"`
	Style *game.TextStyle `json:"style,omitempty"`
}

// Recorder is a Surface that records draw commands instead of rasterising
// them. The displayed size is whatever the remote canvas last reported.
type Recorder struct {
	width, height float64
	bufW, bufH    int
	ops           []Op
}

func NewRecorder() *Recorder {
	return &Recorder{bufW: DefaultBufferWidth, bufH: DefaultBufferHeight}
}

// Resize records a new displayed size; zero means the canvas is hidden.
func (r *Recorder) Resize(width, height float64) {
	r.width, r.height = width, height
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) BufferSize() (int, int) { return r.bufW, r.bufH }

func (r *Recorder) SetBufferSize(width, height int) {
	r.bufW, r.bufH = width, height
	r.record(Op{Op: "resize", Args: []float64{float64(width), float64(height)}})
}

func (r *Recorder) Clear() {
	r.record(Op{Op: "clearRect", Args: []float64{0, 0, float64(r.bufW), float64(r.bufH)}})
}

func (r *Recorder) BeginPath() { r.record(Op{Op: "beginPath"}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Op{Op: "moveTo", Args: []float64{x, y}})
}

func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64) {
	r.record(Op{Op: "arc", Args: []float64{cx, cy, radius, startAngle, endAngle}})
}

func (r *Recorder) ClosePath() { r.record(Op{Op: "closePath"}) }

func (r *Recorder) Fill(color string) { r.record(Op{Op: "fill", Color: color}) }

func (r *Recorder) Stroke() { r.record(Op{Op: "stroke"}) }

func (r *Recorder) FillText(text string, style game.TextStyle) {
	r.record(Op{Op: "fillText", Text: text, Style: &style})
}

func (r *Recorder) record(op Op) {
	r.ops = append(r.ops, op)
}

// Pending reports how many ops are waiting to be flushed.
func (r *Recorder) Pending() int {
	return len(r.ops)
}

// Flush hands over the recorded ops and starts a new batch.
func (r *Recorder) Flush() []Op {
	ops := r.ops
	r.ops = nil
	return ops
}
