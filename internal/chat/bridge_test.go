package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/infra/ai"
	"github.com/mrjones-game/life-server/internal/infra/storage"
	"github.com/mrjones-game/life-server/internal/platform/logger"
)

// scriptedProvider replays canned completions in order.
type scriptedProvider struct {
	responses []*ai.CompletionResponse
	err       error
	requests  []ai.CompletionRequest
}

func (p *scriptedProvider) Complete(_ context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	if len(p.responses) == 0 {
		return &ai.CompletionResponse{Content: "..."}, nil
	}
	resp := p.responses[0]
	p.responses = p.responses[1:]
	return resp, nil
}

func (p *scriptedProvider) GetUsageStats() ai.UsageStats { return ai.UsageStats{} }
func (p *scriptedProvider) ResetUsage()                  {}
func (p *scriptedProvider) Name() string                 { return "scripted" }
func (p *scriptedProvider) IsAvailable() bool            { return true }

func newTestBridge(provider ai.LLMProvider) (*Bridge, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	log := logger.NewLogger()
	eng := engine.New(store, actions.NewCatalog(), events.NewJournal(nil), log)
	return NewBridge(eng, provider, log), store
}

func TestChatWithoutToolCalls(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{Content: "Hard work pays off, keep at it!"},
	}}
	bridge, _ := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "alice", "university", "Is studying worth it?")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}
	if reply.Response != "Hard work pays off, keep at it!" {
		t.Errorf("Unexpected reply: %q", reply.Response)
	}
	if len(reply.ToolOutcomes) != 0 {
		t.Errorf("Expected no tool outcomes, got %v", reply.ToolOutcomes)
	}
	if reply.State.Money != 100 {
		t.Errorf("Chat alone must not mutate state, money=%d", reply.State.Money)
	}

	// The NPC saw its persona plus the player context and the tools
	first := provider.requests[0]
	if first.Messages[0].Role != "system" ||
		!strings.Contains(first.Messages[0].Content, "Current player status") {
		t.Error("Expected system prompt with player status block")
	}
	if len(first.Tools) == 0 {
		t.Error("Expected the university manifest to be offered")
	}
}

func TestChatToolCallExecutesAction(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			Content: "Let me see what we have for you.",
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "get_job", Arguments: map[string]interface{}{}},
			},
		},
		{Content: "Congratulations on the new position!"},
	}}
	bridge, store := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "bob", "job_office", "Find me a job please")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	if reply.Response != "Congratulations on the new position!" {
		t.Errorf("Expected the follow-up reply, got %q", reply.Response)
	}
	if len(reply.ToolOutcomes) != 1 || !reply.ToolOutcomes[0].Success {
		t.Fatalf("Expected one successful tool outcome, got %v", reply.ToolOutcomes)
	}
	if reply.State.CurrentJob != "Warehouse Picker" {
		t.Errorf("Expected the hire to land, got job %q", reply.State.CurrentJob)
	}

	// Mutation went through the engine and was persisted
	s, _ := store.Load(context.Background(), "bob")
	if s.CurrentJob != "Warehouse Picker" {
		t.Errorf("Persisted state missing the job: %q", s.CurrentJob)
	}

	// The follow-up completion carried the tool result back
	second := provider.requests[1]
	last := second.Messages[len(second.Messages)-1]
	if last.Role != "tool" || last.ToolCallID != "call_1" {
		t.Errorf("Expected tool-role result message, got %+v", last)
	}
}

func TestChatUnknownToolIsSkipped(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "rob_the_till", Arguments: map[string]interface{}{}},
				{ID: "call_2", Name: "buy_food", Arguments: map[string]interface{}{}},
			},
		},
		{Content: "Here you go."},
	}}
	bridge, _ := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "carol", "shop", "Give me everything")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	if len(reply.ToolOutcomes) != 2 {
		t.Fatalf("Expected two outcomes, got %v", reply.ToolOutcomes)
	}
	if reply.ToolOutcomes[0].Success {
		t.Error("Expected the unknown tool to fail")
	}
	if !reply.ToolOutcomes[1].Success {
		t.Errorf("Expected the later valid call to still run, got %v", reply.ToolOutcomes[1])
	}
	if reply.State.Money >= 100 {
		t.Errorf("Expected the food purchase to cost money, got %d", reply.State.Money)
	}
}

func TestChatProviderFailureDegradesGracefully(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("rate limited")}
	bridge, store := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "dave", "workplace", "Hello boss")
	if err != nil {
		t.Fatalf("HandleChat should degrade, not fail: %v", err)
	}
	if reply.Response != apologyReply {
		t.Errorf("Expected the apology, got %q", reply.Response)
	}
	if len(reply.ToolOutcomes) != 0 {
		t.Error("Expected no tool outcomes on provider failure")
	}

	s, _ := store.Load(context.Background(), "dave")
	if s.Money != 100 || s.MinutesElapsed != 0 {
		t.Errorf("Provider failure must not mutate state: %+v", s)
	}
}

func TestChatFollowUpFailureFallsBackToToolMessages(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "rest", Arguments: map[string]interface{}{}},
			},
		},
		// Second completion comes back empty; the bridge falls back
		{Content: ""},
	}}
	bridge, _ := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "erin", "home", "I need a nap")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}
	if len(reply.ToolOutcomes) != 1 {
		t.Fatalf("Expected one outcome, got %v", reply.ToolOutcomes)
	}
	if reply.Response != reply.ToolOutcomes[0].Message {
		t.Errorf("Expected fallback to the tool message, got %q", reply.Response)
	}
}

func TestChatUnknownLocation(t *testing.T) {
	bridge, _ := newTestBridge(&scriptedProvider{})

	if _, err := bridge.HandleChat(context.Background(), "frank", "casino", "Deal me in"); err == nil {
		t.Fatal("Expected an error for an unknown location")
	}
}

func TestManifestScopedToLocationAndHours(t *testing.T) {
	catalog := actions.NewCatalog()

	tools := Manifest(catalog, "university", 10)
	names := map[string]bool{}
	for _, tool := range tools {
		names[tool.Name] = true
	}
	if !names["enroll_course"] || !names["attend_lecture"] {
		t.Errorf("Expected the university tools, got %v", names)
	}
	if names["rent_flat"] {
		t.Error("Manifest leaked a tool from another location")
	}

	if got := Manifest(catalog, "university", 22); got != nil {
		t.Error("Closed location must offer no tools")
	}

	// Declared parameter constraints survive into the schema
	tools = Manifest(catalog, "estate_agent", 10)
	for _, tool := range tools {
		if tool.Name != "rent_flat" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		tier := props["tier"].(map[string]interface{})
		if tier["minimum"] != 0 || tier["maximum"] != 5 {
			t.Errorf("Expected tier bounds 0-5, got %v", tier)
		}
		required := tool.InputSchema["required"].([]string)
		if len(required) != 1 || required[0] != "tier" {
			t.Errorf("Expected tier required, got %v", required)
		}
	}
}

func TestChatApplyForJobWithArguments(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			Content: "The Janitor opening is yours if you want it.",
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "apply_for_job", Arguments: map[string]interface{}{
					"job_title": "Janitor",
				}},
			},
		},
		{Content: "Welcome aboard, you start tomorrow."},
	}}
	bridge, store := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "ivy", "job_office", "I'd like to apply for the janitor job")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	if len(reply.ToolOutcomes) != 1 {
		t.Fatalf("Expected one tool outcome, got %v", reply.ToolOutcomes)
	}
	out := reply.ToolOutcomes[0]
	if out.Tool != "apply_for_job" || !out.Success {
		t.Errorf("Expected a successful apply_for_job outcome, got %+v", out)
	}
	if reply.State.CurrentJob != "Janitor" {
		t.Errorf("Expected the application to land, got job %q", reply.State.CurrentJob)
	}

	s, _ := store.Load(context.Background(), "ivy")
	if s.CurrentJob != "Janitor" || s.JobWage != 20 {
		t.Errorf("Persisted job wrong: %q at £%d", s.CurrentJob, s.JobWage)
	}
}

func TestChatApplyForJobRejectedByQualification(t *testing.T) {
	// A fresh player holds no qualification, so an Office Worker
	// application fails; the failure still reaches the follow-up turn.
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "apply_for_job", Arguments: map[string]interface{}{
					"job_title": "Office Worker",
				}},
			},
		},
		{Content: "I'm afraid they want a degree for that one."},
	}}
	bridge, store := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "jack", "job_office", "Get me the office worker position")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	if len(reply.ToolOutcomes) != 1 || reply.ToolOutcomes[0].Success {
		t.Fatalf("Expected a failed tool outcome, got %v", reply.ToolOutcomes)
	}
	if reply.State.CurrentJob != "Unemployed" {
		t.Errorf("Rejected application must not change the job, got %q", reply.State.CurrentJob)
	}

	s, _ := store.Load(context.Background(), "jack")
	if s.MinutesElapsed != 0 {
		t.Errorf("Rejected application must not burn time, elapsed=%d", s.MinutesElapsed)
	}
}

func TestChatApplyForOfficeWorkerWhenQualified(t *testing.T) {
	// A Bachelor graduate who dresses the part lands the Office
	// Worker position through the clerk.
	s := player.New("karen")
	s.AdvanceQualification(player.QualificationBachelor)
	s.AddItem("Formal Suit")

	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "apply_for_job", Arguments: map[string]interface{}{
					"job_title": "Office Worker",
				}},
			},
		},
		{Content: "The office job is yours, well done."},
	}}
	bridge, store := newTestBridge(provider)
	if err := store.Save(context.Background(), "karen", s); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	reply, err := bridge.HandleChat(context.Background(), "karen", "job_office", "I want the Office Worker job")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	if !reply.Success {
		t.Error("Expected a successful chat exchange")
	}
	if len(reply.ToolOutcomes) != 1 || !reply.ToolOutcomes[0].Success {
		t.Fatalf("Expected a successful tool outcome, got %v", reply.ToolOutcomes)
	}
	if reply.State.CurrentJob != "Office Worker" {
		t.Errorf("Expected Office Worker, got %q", reply.State.CurrentJob)
	}

	saved, _ := store.Load(context.Background(), "karen")
	if saved.CurrentJob != "Office Worker" || saved.JobWage != 60 {
		t.Errorf("Persisted job wrong: %q at £%d", saved.CurrentJob, saved.JobWage)
	}
}

func TestChatReplyWireFormat(t *testing.T) {
	provider := &scriptedProvider{responses: []*ai.CompletionResponse{
		{
			Content: "Let me sort that out.",
			ToolCalls: []ai.ToolCall{
				{ID: "call_1", Name: "get_job", Arguments: map[string]interface{}{}},
			},
		},
		{Content: "Done."},
	}}
	bridge, _ := newTestBridge(provider)

	reply, err := bridge.HandleChat(context.Background(), "leo", "job_office", "Find me work")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}

	raw, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if success, ok := payload["success"].(bool); !ok || !success {
		t.Errorf("Expected top-level success true, got %v", payload["success"])
	}
	if _, stale := payload["tool_outcomes"]; stale {
		t.Error("Tool results must serialize under tool_calls")
	}
	calls, ok := payload["tool_calls"].([]interface{})
	if !ok || len(calls) != 1 {
		t.Fatalf("Expected one entry under tool_calls, got %v", payload["tool_calls"])
	}
	entry := calls[0].(map[string]interface{})
	if entry["success"] != true {
		t.Errorf("Expected per-call success, got %v", entry["success"])
	}
	state, ok := entry["updated_state"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected updated_state on each tool call entry")
	}
	if state["current_job"] != "Warehouse Picker" {
		t.Errorf("Expected the post-call snapshot, got %v", state["current_job"])
	}

	// The apology path reports failure
	down := &scriptedProvider{err: errors.New("provider down")}
	bridge, _ = newTestBridge(down)
	reply, err = bridge.HandleChat(context.Background(), "mia", "shop", "Hello?")
	if err != nil {
		t.Fatalf("HandleChat failed: %v", err)
	}
	if reply.Success {
		t.Error("Expected success false on the apology path")
	}
}
