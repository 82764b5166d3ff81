package game

import "time"

// State is a snapshot of the wheel as seen by the outside world.
type State struct {
	SectorCount int      `json:"sectorCount"`
	Labels      []string `json:"labels"`
	Rotation    float64  `json:"rotation"`
	Spinning    bool     `json:"spinning"`
}

// Result is the outcome of one completed spin.
type Result struct {
	Index        int     `json:"index"`
	Label        string  `json:"label"`
	Rotation     float64 `json:"rotation"`
	TotalDegrees float64 `json:"totalDegrees"`
}

// spinAnimation only exists while the wheel is spinning.
type spinAnimation struct {
	start        time.Time
	totalDegrees float64
	duration     time.Duration
}
