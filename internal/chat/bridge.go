package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/engine"
	"github.com/mrjones-game/life-server/internal/infra/ai"
	"github.com/mrjones-game/life-server/internal/platform/logger"
	"github.com/mrjones-game/life-server/internal/platform/metrics"
)

// DefaultLLMTimeout bounds a single provider round trip.
const DefaultLLMTimeout = 30 * time.Second

const apologyReply = "Sorry, I got distracted for a moment. Could you say that again?"

// ToolOutcome reports one executed (or refused) tool call, in the
// order the model asked for them. UpdatedState is the player view
// right after that call, so the UI can animate each step.
type ToolOutcome struct {
	Tool         string      `json:"tool"`
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	UpdatedState player.View `json:"updated_state"`
}

// Reply is the full result of one chat exchange. Success is false only
// when the provider failed and the NPC fell back to an apology.
type Reply struct {
	Success      bool          `json:"success"`
	Response     string        `json:"response"`
	ToolOutcomes []ToolOutcome `json:"tool_calls,omitempty"`
	State        player.View   `json:"state"`
}

// Bridge connects chat messages to an NPC backed by an LLM provider.
// The provider call happens outside any player lock; each tool call it
// produces goes through the engine, which does its own locking.
type Bridge struct {
	engine   *engine.Engine
	provider ai.LLMProvider
	logger   *logger.Logger
	metrics  *metrics.Collector
	timeout  time.Duration
}

// NewBridge wires a chat bridge.
func NewBridge(eng *engine.Engine, provider ai.LLMProvider, log *logger.Logger) *Bridge {
	return &Bridge{
		engine:   eng,
		provider: provider,
		logger:   log,
		metrics:  metrics.Get(),
		timeout:  DefaultLLMTimeout,
	}
}

// HandleChat runs one exchange with the NPC at location. A provider
// failure degrades to an in-character apology with no state change.
func (b *Bridge) HandleChat(ctx context.Context, username, location, message string) (*Reply, error) {
	if _, known := b.engine.Catalog().Location(location); !known {
		return nil, fmt.Errorf("chat: unknown location %q", location)
	}

	view, err := b.engine.State(ctx, username)
	if err != nil {
		return nil, err
	}

	hour := (player.DayStartHour + view.Minutes/60) % 24
	tools := Manifest(b.engine.Catalog(), location, hour)

	messages := []ai.Message{
		{Role: "system", Content: SystemPrompt(location, view)},
		{Role: "user", Content: message},
	}

	resp, err := b.complete(ctx, ai.CompletionRequest{
		Messages:    messages,
		Tools:       tools,
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		b.logger.Error(fmt.Sprintf("LLM call failed for %s at %s: %v", username, location, err))
		return &Reply{Success: false, Response: apologyReply, State: view}, nil
	}

	if len(resp.ToolCalls) == 0 {
		return &Reply{Success: true, Response: strings.TrimSpace(resp.Content), State: view}, nil
	}

	outcomes, finalView := b.executeToolCalls(ctx, username, location, resp.ToolCalls, view)

	reply := b.followUp(ctx, messages, resp, outcomes)
	return &Reply{Success: true, Response: reply, ToolOutcomes: outcomes, State: finalView}, nil
}

// executeToolCalls runs the model's tool calls strictly in order. A
// name outside the location's manifest becomes a failed outcome and is
// skipped; later calls still run.
func (b *Bridge) executeToolCalls(ctx context.Context, username, location string, calls []ai.ToolCall, view player.View) ([]ToolOutcome, player.View) {
	outcomes := make([]ToolOutcome, 0, len(calls))

	for _, tc := range calls {
		if _, known := b.engine.Catalog().Get(location, tc.Name); !known {
			b.logger.Warn(fmt.Sprintf("Model asked for unknown tool %q at %s", tc.Name, location))
			outcomes = append(outcomes, ToolOutcome{
				Tool:         tc.Name,
				Success:      false,
				Message:      "That is not something you can do here.",
				UpdatedState: view,
			})
			continue
		}

		res, err := b.engine.PerformAction(ctx, username, location, tc.Name, actions.Params(tc.Arguments))
		if err != nil {
			b.logger.Error(fmt.Sprintf("Tool %s failed for %s: %v", tc.Name, username, err))
			outcomes = append(outcomes, ToolOutcome{
				Tool:         tc.Name,
				Success:      false,
				Message:      "Something went wrong, nothing happened.",
				UpdatedState: view,
			})
			continue
		}

		msg := res.Message
		switch {
		case res.Burnout:
			msg += " You collapse from exhaustion and hunger. Everything is lost; a new life begins."
		case res.Bankruptcy:
			msg += " Your money has run out. Everything is lost; a new life begins."
		}
		view = res.State
		outcomes = append(outcomes, ToolOutcome{
			Tool:         tc.Name,
			Success:      res.Success,
			Message:      msg,
			UpdatedState: view,
		})
	}
	return outcomes, view
}

// followUp asks the model for a final in-character reply that weaves
// in the tool results. If that call fails, the raw result messages
// become the reply, so the player always learns what happened.
func (b *Bridge) followUp(ctx context.Context, messages []ai.Message, first *ai.CompletionResponse, outcomes []ToolOutcome) string {
	followMessages := append(messages, ai.Message{
		Role:      "assistant",
		Content:   first.Content,
		ToolCalls: first.ToolCalls,
	})
	for i, tc := range first.ToolCalls {
		followMessages = append(followMessages, ai.Message{
			Role:       "tool",
			ToolCallID: tc.ID,
			Content:    outcomes[i].Message,
		})
	}

	resp, err := b.complete(ctx, ai.CompletionRequest{
		Messages:    followMessages,
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil || strings.TrimSpace(resp.Content) == "" {
		if err != nil {
			b.logger.Warn(fmt.Sprintf("Follow-up LLM call failed: %v", err))
		}
		parts := make([]string, 0, len(outcomes))
		for _, o := range outcomes {
			parts = append(parts, o.Message)
		}
		return strings.Join(parts, " ")
	}
	return strings.TrimSpace(resp.Content)
}

// complete wraps the provider call with the bridge timeout and metrics.
func (b *Bridge) complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	resp, err := b.provider.Complete(callCtx, req)
	if err != nil {
		b.metrics.RecordLLMCall(0, 0, err)
		return nil, err
	}
	b.metrics.RecordLLMCall(resp.TotalTokens, resp.Latency, nil)
	return resp, nil
}
