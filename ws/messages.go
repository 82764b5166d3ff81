package ws

import (
	"encoding/json"

	"spinWheelServer/surface"
)

// Client -> server message types
const (
	TypeResize   = "resize"
	TypeSetCount = "set_count"
	TypeSetLabel = "set_label"
	TypeSpin     = "spin"
	TypeState    = "state"

	// produced locally for frames that fail to parse
	typeInvalid = "invalid"
)

// Server -> client message types
const (
	TypeSession   = "session"
	TypeFrame     = "frame"
	TypeSpinStart = "spin_start"
	TypeWinner    = "winner"
	TypeError     = "error"
)

// ClientMessage is an inbound message; Data is decoded per Type.
type ClientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type ServerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type ResizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type SetCountRequest struct {
	Delta int `json:"delta"`
}

type SetLabelRequest struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type SessionPayload struct {
	SessionID string `json:"sessionId"`
}

// FramePayload carries the draw commands of one redraw and the canvas
// buffer size they target.
type FramePayload struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Ops    []surface.Op `json:"ops"`
}

type SpinStartPayload struct {
	SpinID         string `json:"spinId"`
	ServerSeedHash string `json:"serverSeedHash"`
	DurationMs     int64  `json:"durationMs"`
}

type WinnerPayload struct {
	SpinID         string  `json:"spinId,omitempty"`
	Index          int     `json:"index"`
	Label          string  `json:"label"`
	Text           string  `json:"text"`
	TotalDegrees   float64 `json:"totalDegrees"`
	ServerSeed     string  `json:"serverSeed,omitempty"`
	ServerSeedHash string  `json:"serverSeedHash,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
