// Package network exposes the game over HTTP. Handlers translate
// requests to engine and bridge calls; game rules live elsewhere.
package network

import (
	"encoding/json"
	"net/http"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/chat"
	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/platform/logger"
	"github.com/mrjones-game/life-server/internal/platform/metrics"
)

// usernameHeader identifies the player on every request.
const usernameHeader = "X-Username"

// API holds the HTTP handlers for the game server.
type API struct {
	engine  *engine.Engine
	bridge  *chat.Bridge
	journal *events.Journal
	logger  *logger.Logger
}

// NewAPI wires the HTTP surface.
func NewAPI(eng *engine.Engine, bridge *chat.Bridge, journal *events.Journal, log *logger.Logger) *API {
	return &API{engine: eng, bridge: bridge, journal: journal, logger: log}
}

// Register attaches all routes to mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/game_state", a.withCORS(a.handleGameState))
	mux.HandleFunc("/api/locations", a.withCORS(a.handleLocations))
	mux.HandleFunc("/api/action", a.withCORS(a.handleAction))
	mux.HandleFunc("/api/pass_time", a.withCORS(a.handlePassTime))
	mux.HandleFunc("/api/chat", a.withCORS(a.handleChat))
	mux.HandleFunc("/api/journal", a.withCORS(a.handleJournal))
	mux.HandleFunc("/api/metrics", a.withCORS(metrics.Handler()))
}

// withCORS allows the browser front end to call from any origin.
func (a *API) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+usernameHeader)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// username extracts the player identity, writing a 400 when absent.
func (a *API) username(w http.ResponseWriter, r *http.Request) (string, bool) {
	u := r.Header.Get(usernameHeader)
	if u == "" {
		http.Error(w, "missing "+usernameHeader+" header", http.StatusBadRequest)
		return "", false
	}
	return u, true
}

func (a *API) handleGameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	view, err := a.engine.State(r.Context(), username)
	if err != nil {
		a.logger.Error("game_state failed: " + err.Error())
		http.Error(w, "failed to load state", http.StatusInternalServerError)
		return
	}
	writeJSON(w, view)
}

// locationView is one entry of the locations listing: where the player
// can go right now and what they could do there.
type locationView struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	OpenNow     bool     `json:"open_now"`
	Actions     []string `json:"actions"`
}

func (a *API) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	view, err := a.engine.State(r.Context(), username)
	if err != nil {
		http.Error(w, "failed to load state", http.StatusInternalServerError)
		return
	}
	hour := clockHour(view.Minutes)

	catalog := a.engine.Catalog()
	var out []locationView
	for _, loc := range catalog.Locations() {
		lv := locationView{
			ID:          loc.ID,
			DisplayName: loc.DisplayName,
			OpenNow:     loc.Open(hour),
			Actions:     []string{},
		}
		for _, d := range catalog.List(loc.ID, hour) {
			lv.Actions = append(lv.Actions, d.Key)
		}
		out = append(out, lv)
	}
	writeJSON(w, out)
}

func (a *API) handleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	var req struct {
		Location string         `json:"location"`
		Action   string         `json:"action"`
		Params   actions.Params `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	result, err := a.engine.PerformAction(r.Context(), username, req.Location, req.Action, req.Params)
	if err != nil {
		a.logger.Error("action failed: " + err.Error())
		http.Error(w, "action failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (a *API) handlePassTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	var req struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	result, err := a.engine.PassTime(r.Context(), username, req.Minutes)
	if err != nil {
		a.logger.Error("pass_time failed: " + err.Error())
		http.Error(w, "pass_time failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func (a *API) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	var req struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "empty message", http.StatusBadRequest)
		return
	}

	reply, err := a.bridge.HandleChat(r.Context(), username, req.Location, req.Message)
	if err != nil {
		a.logger.Error("chat failed: " + err.Error())
		http.Error(w, "chat failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, reply)
}

func (a *API) handleJournal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	username, ok := a.username(w, r)
	if !ok {
		return
	}

	entries := a.journal.ByUsername(username)
	if entries == nil {
		entries = []events.Entry{}
	}
	writeJSON(w, entries)
}

func clockHour(minutes int) int {
	return (player.DayStartHour + minutes/60) % 24
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
