package network

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/chat"
	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/infra/ai"
	"github.com/mrjones-game/life-server/internal/infra/storage"
	"github.com/mrjones-game/life-server/internal/platform/logger"
)

// echoProvider answers every completion with fixed text, no tools.
type echoProvider struct{}

func (echoProvider) Complete(context.Context, ai.CompletionRequest) (*ai.CompletionResponse, error) {
	return &ai.CompletionResponse{Content: "Welcome in!"}, nil
}
func (echoProvider) GetUsageStats() ai.UsageStats { return ai.UsageStats{} }
func (echoProvider) ResetUsage()                  {}
func (echoProvider) Name() string                 { return "echo" }
func (echoProvider) IsAvailable() bool            { return true }

func newTestServer() *httptest.Server {
	log := logger.NewLogger()
	eng := engine.New(storage.NewMemoryStore(), actions.NewCatalog(), events.NewJournal(nil), log)
	bridge := chat.NewBridge(eng, echoProvider{}, log)

	mux := http.NewServeMux()
	NewAPI(eng, bridge, events.NewJournal(nil), log).Register(mux)
	return httptest.NewServer(mux)
}

func get(t *testing.T, server *httptest.Server, path, username string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest("GET", server.URL+path, nil)
	if username != "" {
		req.Header.Set("X-Username", username)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

func post(t *testing.T, server *httptest.Server, path, username string, body interface{}) *http.Response {
	t.Helper()
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", server.URL+path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set("X-Username", username)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

func TestGameStateRequiresUsername(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := get(t, server, "/api/game_state", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 without username header, got %d", resp.StatusCode)
	}
}

func TestGameStateReturnsFreshPlayer(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := get(t, server, "/api/game_state", "alice")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var view player.View
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if view.Money != 100 || view.CurrentTime != "06:00" {
		t.Errorf("Unexpected fresh state: %+v", view)
	}
	if view.TirednessLabel != "Well rested" {
		t.Errorf("Expected labels in the payload, got %q", view.TirednessLabel)
	}
}

func TestActionEndpoint(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := post(t, server, "/api/action", "bob", map[string]interface{}{
		"location": "job_office",
		"action":   "get_job",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var result engine.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !result.Success {
		t.Errorf("Expected the hire to succeed: %q", result.Message)
	}
	if result.State.CurrentJob == player.JobUnemployed {
		t.Error("Expected a job on the returned state")
	}
}

func TestActionEndpointReportsRejections(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	// Working while unemployed: HTTP 200, Success false
	resp := post(t, server, "/api/action", "carol", map[string]interface{}{
		"location": "workplace",
		"action":   "work",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for a game-rule rejection, got %d", resp.StatusCode)
	}

	var result engine.Result
	json.NewDecoder(resp.Body).Decode(&result)
	if result.Success {
		t.Error("Expected rejection")
	}

	// An unknown action is a hard error
	resp2 := post(t, server, "/api/action", "carol", map[string]interface{}{
		"location": "home",
		"action":   "levitate",
	})
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500 for an unknown action, got %d", resp2.StatusCode)
	}
}

func TestPassTimeEndpoint(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := post(t, server, "/api/pass_time", "dave", map[string]interface{}{"minutes": 90})
	defer resp.Body.Close()

	var result engine.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if result.State.CurrentTime != "07:30" {
		t.Errorf("Expected 07:30 after 90 minutes, got %s", result.State.CurrentTime)
	}
}

func TestChatEndpoint(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := post(t, server, "/api/chat", "erin", map[string]interface{}{
		"location": "university",
		"message":  "Hello professor",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var reply chat.Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if reply.Response != "Welcome in!" {
		t.Errorf("Unexpected NPC reply: %q", reply.Response)
	}
	if !reply.Success {
		t.Error("Expected a successful exchange")
	}

	// Empty messages are rejected before touching the provider
	resp2 := post(t, server, "/api/chat", "erin", map[string]interface{}{
		"location": "university",
		"message":  "",
	})
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for an empty message, got %d", resp2.StatusCode)
	}
}

func TestLocationsEndpoint(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp := get(t, server, "/api/locations", "frank")
	defer resp.Body.Close()

	var locations []locationView
	if err := json.NewDecoder(resp.Body).Decode(&locations); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(locations) != 7 {
		t.Fatalf("Expected 7 locations, got %d", len(locations))
	}
	// At 06:00 everything is open, so every location lists actions
	for _, loc := range locations {
		if !loc.OpenNow {
			t.Errorf("Expected %s open at 06:00", loc.ID)
		}
		if len(loc.Actions) == 0 {
			t.Errorf("Expected actions for %s", loc.ID)
		}
	}
}
