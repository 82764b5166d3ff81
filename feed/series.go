package feed

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"spinWheelServer/config"
)

// Window is the slice of the series currently visible on the chart.
type Window struct {
	Start   int               `json:"start"`
	Total   int               `json:"total"`
	Labels  []string          `json:"labels"`
	Prices  []decimal.Decimal `json:"prices"`
	HasPrev bool              `json:"hasPrev"`
	HasNext bool              `json:"hasNext"`
}

// Series is the price history shared between the poller and HTTP handlers.
type Series struct {
	mu         sync.RWMutex
	loaded     bool
	timestamps []string
	prices     []decimal.Decimal
	marketOpen bool
	updatedAt  time.Time
}

// NewSeries starts with the single seed point shown before the first poll.
func NewSeries() *Series {
	return &Series{
		timestamps: []string{config.SeedPriceLabel},
		prices:     []decimal.Decimal{decimal.NewFromInt(config.SeedPrice)},
		marketOpen: true,
	}
}

// Apply merges a snapshot. The first snapshot is appended after the seed
// point; later ones replace the series, except for absent fields.
func (s *Series) Apply(snap Snapshot, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		s.timestamps = append([]string{config.SeedPriceLabel}, snap.Timestamps...)
		s.prices = append([]decimal.Decimal{decimal.NewFromInt(config.SeedPrice)}, snap.Prices...)
	} else {
		if snap.Timestamps != nil {
			s.timestamps = append([]string(nil), snap.Timestamps...)
		}
		if snap.Prices != nil {
			s.prices = append([]decimal.Decimal(nil), snap.Prices...)
		}
	}
	s.marketOpen = snap.MarketOpen
	s.updatedAt = at
}

func (s *Series) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.timestamps)
}

func (s *Series) MarketOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.marketOpen
}

func (s *Series) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// LatestPrice is the last price in the series, or the seed price when empty.
func (s *Series) LatestPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.prices) == 0 {
		return decimal.NewFromInt(config.SeedPrice)
	}
	return s.prices[len(s.prices)-1]
}

// Lowest returns the minimum price, false when there are no prices.
func (s *Series) Lowest() (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.prices) == 0 {
		return decimal.Zero, false
	}
	low := s.prices[0]
	for _, p := range s.prices[1:] {
		if p.LessThan(low) {
			low = p
		}
	}
	return low, true
}

// Window returns the visible points starting at start, after clamping start
// to the scrollable range.
func (s *Series) Window(start int) Window {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.timestamps)
	start = ClampStart(start, total)
	end := min(start+config.VisiblePoints, total)

	w := Window{
		Start:   start,
		Total:   total,
		Labels:  append([]string{}, s.timestamps[start:end]...),
		Prices:  []decimal.Decimal{},
		HasPrev: start > 0,
		HasNext: start+config.VisiblePoints < total,
	}
	if start < len(s.prices) {
		w.Prices = append(w.Prices, s.prices[start:min(end, len(s.prices))]...)
	}
	return w
}

// ClampStart keeps a window start within [0, max(0, total-VisiblePoints)].
func ClampStart(start, total int) int {
	return max(0, min(start, LatestStart(total)))
}

func PrevStart(start int) int {
	return max(0, start-config.ScrollStep)
}

func NextStart(start, total int) int {
	return min(LatestStart(total), start+config.ScrollStep)
}

// LatestStart is the start of the window that ends on the newest point.
func LatestStart(total int) int {
	return max(0, total-config.VisiblePoints)
}
