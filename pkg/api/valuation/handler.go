// Package valuation exposes the calculator session API consumed by the web
// UI: create a session, edit fields, apply presets, read snapshots and chart
// projections.
package valuation

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fold_valuation/pkg/core/projection"
	"fold_valuation/pkg/core/session"
)

// Handler holds dependencies for the session endpoints.
type Handler struct {
	Sessions *session.Manager
}

// NewHandler creates a session API handler backed by the given registry.
func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{Sessions: sessions}
}

// StateResponse is returned by every mutating call: the new input state and a
// freshly recomputed snapshot, so the UI never renders stale numbers.
type StateResponse struct {
	SessionID    string                  `json:"session_id"`
	State        session.InputState      `json:"state"`
	ActivePreset string                  `json:"active_preset"`
	Snapshot     session.ResultsSnapshot `json:"snapshot"`
}

type fieldRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Value     any    `json:"value"`
}

type presetRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}

// cors writes the CORS preamble shared by every endpoint and swallows
// preflight requests. Returns true when the request is already handled.
func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) stateResponse(s *session.Session) StateResponse {
	state := s.State()
	return StateResponse{
		SessionID:    s.ID,
		State:        state,
		ActivePreset: state.ActivePreset(),
		Snapshot:     session.Recompute(state),
	}
}

// HandleCreateSession starts a fresh session seeded with the defaults and
// returns its first snapshot.
func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	s := h.Sessions.Create()
	fmt.Printf("[SESSION] Created %s (%d live)\n", s.ID, h.Sessions.Count())
	writeJSON(w, h.stateResponse(s))
}

// HandleSetField writes one input field and returns the recomputed results.
func (h *Handler) HandleSetField(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s, ok := h.Sessions.Get(req.SessionID)
	if !ok {
		http.Error(w, fmt.Sprintf("Session not found: %s", req.SessionID), http.StatusNotFound)
		return
	}

	if _, err := s.SetField(req.Name, req.Value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, h.stateResponse(s))
}

// HandleApplyPreset applies a scenario preset to the session. Custom is a
// valid no-op, matching the UI's preset selector.
func (h *Handler) HandleApplyPreset(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s, ok := h.Sessions.Get(req.SessionID)
	if !ok {
		http.Error(w, fmt.Sprintf("Session not found: %s", req.SessionID), http.StatusNotFound)
		return
	}

	if _, applied := s.ApplyPreset(req.Name); applied {
		fmt.Printf("[SESSION] %s applied preset %q\n", s.ID, req.Name)
	}
	writeJSON(w, h.stateResponse(s))
}

// HandleSnapshot recomputes and returns the full results for a session.
func (h *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	s, ok := h.Sessions.Get(r.URL.Query().Get("session_id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, s.Snapshot())
}

// HandleProjections returns both chart series for a session's current state.
func (h *Handler) HandleProjections(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	s, ok := h.Sessions.Get(r.URL.Query().Get("session_id"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, projection.FromState(s.State()))
}
