package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"spinWheelServer/feed"
)

/* =========================
   RESPONSE TYPES
========================= */

// PriceResponse is the chart header: current price, market status, lowest
type PriceResponse struct {
	Success      bool             `json:"success"`
	CurrentPrice decimal.Decimal  `json:"currentPrice"`
	MarketOpen   bool             `json:"marketOpen"`
	Lowest       *decimal.Decimal `json:"lowest,omitempty"`
	Points       int              `json:"points"`
	UpdatedAt    *time.Time       `json:"updatedAt,omitempty"`
}

// WindowResponse wraps the visible chart window
type WindowResponse struct {
	Success bool `json:"success"`
	feed.Window
}

/* =========================
   HTTP ENDPOINTS
========================= */

type PriceHandler struct {
	series *feed.Series
}

func NewPriceHandler(series *feed.Series) *PriceHandler {
	return &PriceHandler{series: series}
}

// Current handles GET /api/price
func (h *PriceHandler) Current(w http.ResponseWriter, r *http.Request) {
	resp := PriceResponse{
		Success:      true,
		CurrentPrice: h.series.LatestPrice(),
		MarketOpen:   h.series.MarketOpen(),
		Points:       h.series.Len(),
	}
	if low, ok := h.series.Lowest(); ok {
		resp.Lowest = &low
	}
	if updated := h.series.UpdatedAt(); !updated.IsZero() {
		resp.UpdatedAt = &updated
	}
	sendJSON(w, http.StatusOK, resp)
}

// Window handles GET /api/price/window
// Query params: start (optional, default latest), jump (optional: prev, next, latest)
func (h *PriceHandler) Window(w http.ResponseWriter, r *http.Request) {
	total := h.series.Len()
	query := r.URL.Query()

	start := feed.LatestStart(total)
	if raw := query.Get("start"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			sendError(w, http.StatusBadRequest, "start must be an integer")
			return
		}
		start = n
	}

	switch query.Get("jump") {
	case "":
	case "prev":
		start = feed.PrevStart(start)
	case "next":
		start = feed.NextStart(start, total)
	case "latest":
		start = feed.LatestStart(total)
	default:
		sendError(w, http.StatusBadRequest, "jump must be one of prev, next, latest")
		return
	}

	sendJSON(w, http.StatusOK, WindowResponse{
		Success: true,
		Window:  h.series.Window(start),
	})
}
