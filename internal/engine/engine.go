package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/domain/player"
	"github.com/mrjones-game/life-server/internal/events"
	"github.com/mrjones-game/life-server/internal/infra/storage"
	"github.com/mrjones-game/life-server/internal/platform/locks"
	"github.com/mrjones-game/life-server/internal/platform/logger"
	"github.com/mrjones-game/life-server/internal/platform/metrics"
)

// Result is what the engine reports after processing one action or
// explicit wait. Rejected actions carry Success=false with the reason
// in Message; State is the post-call snapshot either way.
type Result struct {
	State       player.View  `json:"state"`
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	TurnSummary *TurnSummary `json:"turn_summary,omitempty"`
	Burnout     bool         `json:"burnout,omitempty"`
	Bankruptcy  bool         `json:"bankruptcy,omitempty"`
}

// Engine runs the turn lifecycle: validate, mutate, advance the clock,
// check terminal conditions, persist. It owns the per-player critical
// section; callers never touch player.State directly.
type Engine struct {
	store   storage.PlayerStore
	catalog *actions.Catalog
	journal *events.Journal
	logger  *logger.Logger
	metrics *metrics.Collector
	locks   *locks.Keyed
}

// New wires an engine from its dependencies.
func New(store storage.PlayerStore, catalog *actions.Catalog, journal *events.Journal, log *logger.Logger) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		journal: journal,
		logger:  log,
		metrics: metrics.Get(),
		locks:   locks.NewKeyed(),
	}
}

// Catalog exposes the action registry, read-only.
func (e *Engine) Catalog() *actions.Catalog {
	return e.catalog
}

// State returns the current snapshot for a player, creating and
// persisting a fresh state on first sight of the username.
func (e *Engine) State(ctx context.Context, username string) (player.View, error) {
	e.locks.Lock(username)
	defer e.locks.Unlock(username)

	s, err := e.loadOrCreate(ctx, username)
	if err != nil {
		return player.View{}, err
	}
	return s.Snapshot(), nil
}

// PerformAction runs one catalogue action for username end to end.
// A rejection (closed location, not enough time, failed prerequisite)
// leaves state untouched and returns Success=false with the reason.
// A returned error means nothing was committed.
func (e *Engine) PerformAction(ctx context.Context, username, location, actionKey string, params actions.Params) (*Result, error) {
	def, ok := e.catalog.Get(location, actionKey)
	if !ok {
		return nil, fmt.Errorf("engine: unknown action %s/%s", location, actionKey)
	}

	e.locks.Lock(username)
	defer e.locks.Unlock(username)

	s, err := e.loadOrCreate(ctx, username)
	if err != nil {
		return nil, err
	}

	if reason := e.catalog.Validate(def, s, params); reason != "" {
		return e.reject(s, location, actionKey, reason), nil
	}

	outcome := def.Execute(s, params)
	if !outcome.Success {
		// Execute refused on a rule only it evaluates (bad argument,
		// nothing affordable). State is unchanged by contract.
		return e.reject(s, location, actionKey, outcome.Message), nil
	}

	summary := Advance(s, def.TotalTime())
	burnout, bankruptcy := e.finishTurn(s, summary)

	if err := e.save(ctx, username, s); err != nil {
		return nil, err
	}

	e.metrics.RecordAction(false)
	e.journal.Record(events.Entry{
		Type:     events.EntryAction,
		Username: username,
		Turn:     s.Turn,
		Location: location,
		Action:   actionKey,
		Success:  true,
		Message:  outcome.Message,
	})
	e.logger.Event("ACTION", username, fmt.Sprintf("%s/%s | %s", location, actionKey, outcome.Message))

	return &Result{
		State:       s.Snapshot(),
		Success:     true,
		Message:     outcome.Message,
		TurnSummary: summary,
		Burnout:     burnout,
		Bankruptcy:  bankruptcy,
	}, nil
}

// PassTime advances the clock without performing an action. minutes <= 0
// means "sleep until tomorrow": the remainder of the current day.
func (e *Engine) PassTime(ctx context.Context, username string, minutes int) (*Result, error) {
	e.locks.Lock(username)
	defer e.locks.Unlock(username)

	s, err := e.loadOrCreate(ctx, username)
	if err != nil {
		return nil, err
	}

	if minutes <= 0 {
		minutes = s.MinutesRemaining()
	}

	summary := Advance(s, minutes)
	burnout, bankruptcy := e.finishTurn(s, summary)

	if err := e.save(ctx, username, s); err != nil {
		return nil, err
	}

	e.metrics.RecordPassTime()
	e.journal.Record(events.Entry{
		Type:     events.EntryPassTime,
		Username: username,
		Turn:     s.Turn,
		Success:  true,
		Message:  fmt.Sprintf("Time passed: %d minutes", minutes),
	})

	return &Result{
		State:       s.Snapshot(),
		Success:     true,
		Message:     fmt.Sprintf("Time passes. It is now %s.", s.ClockString()),
		TurnSummary: summary,
		Burnout:     burnout,
		Bankruptcy:  bankruptcy,
	}, nil
}

// reject records a failed action without mutating or persisting state.
func (e *Engine) reject(s *player.State, location, actionKey, reason string) *Result {
	e.metrics.RecordAction(true)
	e.journal.Record(events.Entry{
		Type:     events.EntryAction,
		Username: s.Username,
		Turn:     s.Turn,
		Location: location,
		Action:   actionKey,
		Success:  false,
		Message:  reason,
	})
	return &Result{State: s.Snapshot(), Success: false, Message: reason}
}

// finishTurn applies the shared tail of the lifecycle: record any day
// rollovers, then evaluate terminal conditions against the mutated
// state. Must be called with the player lock held, before save.
func (e *Engine) finishTurn(s *player.State, summary *TurnSummary) (burnout, bankruptcy bool) {
	if summary != nil {
		e.metrics.RecordRollover(1)
		e.journal.Record(events.Entry{
			Type:     events.EntryDayRollover,
			Username: s.Username,
			Turn:     s.Turn,
			Success:  true,
			Message:  fmt.Sprintf("Day %d begins", summary.NewDay),
		})
	}

	burnout, bankruptcy = CheckTerminal(s)
	if burnout || bankruptcy {
		cause := "bankruptcy"
		if burnout {
			cause = "burnout"
		}
		e.metrics.RecordTerminal(burnout)
		e.journal.Record(events.Entry{
			Type:     events.EntryTerminalReset,
			Username: s.Username,
			Turn:     s.Turn,
			Success:  true,
			Message:  "Reset: " + cause,
		})
		e.logger.Warn(fmt.Sprintf("Player %s hit %s, state reset (turn %d kept)", s.Username, cause, s.Turn))
	}
	return burnout, bankruptcy
}

func (e *Engine) loadOrCreate(ctx context.Context, username string) (*player.State, error) {
	s, err := e.store.Load(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		s = player.New(username)
		if saveErr := e.save(ctx, username, s); saveErr != nil {
			return nil, saveErr
		}
		e.logger.Info(fmt.Sprintf("New player created: %s", username))
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("engine: load %s: %w", username, err)
	}
	return s, nil
}

func (e *Engine) save(ctx context.Context, username string, s *player.State) error {
	start := time.Now()
	err := e.store.Save(ctx, username, s)
	e.metrics.RecordSave(time.Since(start), err)
	if err != nil {
		e.logger.Error(fmt.Sprintf("Save failed for %s: %v", username, err))
		return fmt.Errorf("engine: save %s: %w", username, err)
	}
	return nil
}
