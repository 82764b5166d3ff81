package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"spinWheelServer/crypto"
	"spinWheelServer/game"
)

type VerifyRequest struct {
	ServerSeed     string   `json:"serverSeed"`
	ServerSeedHash string   `json:"serverSeedHash"`
	SpinID         string   `json:"spinId"`
	SectorCount    int      `json:"sectorCount"`
	Labels         []string `json:"labels,omitempty"`
}

type VerifyResponse struct {
	Valid        bool    `json:"valid"`
	Index        int     `json:"index"`
	Label        string  `json:"label,omitempty"`
	Rotation     float64 `json:"rotation"`
	TotalDegrees float64 `json:"totalDegrees,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// HandleVerifySpin replays a revealed spin from its server seed and spin id
// and reports where it must have landed.
// POST /api/wheel/verify
func HandleVerifySpin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(VerifyResponse{
			Valid: false,
			Error: "Invalid request body",
		})
		return
	}

	// Validate required fields
	if req.ServerSeed == "" || req.ServerSeedHash == "" || req.SpinID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(VerifyResponse{
			Valid: false,
			Error: "Missing required fields: serverSeed, serverSeedHash, spinId",
		})
		return
	}

	if req.SectorCount < game.MinSectors || req.SectorCount > game.MaxSectors {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(VerifyResponse{
			Valid: false,
			Error: "sectorCount must be between 2 and 8",
		})
		return
	}

	// Verify the server seed hash
	if !crypto.VerifySeed(req.ServerSeed, req.ServerSeedHash) {
		json.NewEncoder(w).Encode(VerifyResponse{
			Valid: false,
			Error: "Server seed hash does not match",
		})
		return
	}

	result := game.VerifySpin(req.ServerSeed, req.SpinID, req.SectorCount)
	if len(req.Labels) == req.SectorCount {
		result.Label = game.LabelAt(req.Labels, result.Index)
	}

	log.Printf("✅ Spin verified - SpinID: %s, sector %d (%s)", req.SpinID, result.Index, result.Label)

	json.NewEncoder(w).Encode(VerifyResponse{
		Valid:        true,
		Index:        result.Index,
		Label:        result.Label,
		Rotation:     result.Rotation,
		TotalDegrees: result.TotalDegrees,
	})
}
