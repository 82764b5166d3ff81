package game

// TextAlign mirrors the canvas textAlign property.
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextStyle describes a single text draw. The text is positioned at (X, Y)
// in a frame translated to (OriginX, OriginY) and rotated by Rotation radians.
type TextStyle struct {
	OriginX  float64   `json:"originX"`
	OriginY  float64   `json:"originY"`
	Rotation float64   `json:"rotation"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Align    TextAlign `json:"align"`
	FontSize int       `json:"fontSize"`
	Font     string    `json:"font"`
	Color    string    `json:"color"`
}

// Surface is the 2D drawing target the engine paints into.
//
// Size reports the displayed size and may be zero while the surface is hidden.
// BufferSize/SetBufferSize address the underlying pixel buffer, which is
// distinct from the displayed size.
type Surface interface {
	Size() (width, height float64)
	BufferSize() (width, height int)
	SetBufferSize(width, height int)

	Clear()
	BeginPath()
	MoveTo(x, y float64)
	Arc(cx, cy, radius, startAngle, endAngle float64)
	ClosePath()
	Fill(color string)
	Stroke()
	FillText(text string, style TextStyle)
}
