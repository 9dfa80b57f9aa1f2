// Package engine contains the turn machinery: the in-game clock, the
// per-request action lifecycle and the terminal-condition rules.
//
// ARCHITECTURAL RULE: both entry points (direct UI actions and
// chat-triggered tool calls) route through the Engine. Nothing else
// mutates or persists player state.
package engine

import (
	"fmt"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

// Change is one line of the "new day" report shown to the player.
type Change struct {
	Icon  string `json:"icon"`
	Text  string `json:"text"`
	Class string `json:"class"`
}

// StatusSnapshot captures the resource labels right after a rollover.
type StatusSnapshot struct {
	Money          int    `json:"money"`
	HungerLabel    string `json:"hunger"`
	TirednessLabel string `json:"tiredness"`
	HappinessLabel string `json:"happiness"`
}

// TurnSummary reports what the day rollover(s) changed. It is nil on
// calls that do not cross midnight.
type TurnSummary struct {
	NewDay        int            `json:"new_day"`
	Changes       []Change       `json:"changes"`
	CurrentStatus StatusSnapshot `json:"current_status"`
}

// Advance moves the clock forward by minutes. Every time the elapsed
// count passes 1440 the turn increments by exactly one and the per-day
// deltas apply: hunger +25 (uncapped) and rent deducted. The remainder
// carries into the new day.
func Advance(s *player.State, minutes int) *TurnSummary {
	if minutes <= 0 {
		return nil
	}

	s.MinutesElapsed += minutes

	var summary *TurnSummary
	for s.MinutesElapsed >= player.MinutesPerDay {
		s.MinutesElapsed -= player.MinutesPerDay
		s.Turn++

		if summary == nil {
			summary = &TurnSummary{}
		}
		applyDayRollover(s, summary)
	}

	if summary != nil {
		summary.NewDay = s.Turn
		summary.CurrentStatus = StatusSnapshot{
			Money:          s.Money,
			HungerLabel:    player.HungerLabel(s.Hunger),
			TirednessLabel: player.TirednessLabel(s.Tiredness),
			HappinessLabel: player.HappinessLabel(s.Happiness),
		}
	}
	return summary
}

// applyDayRollover charges the overnight costs for one crossed midnight.
func applyDayRollover(s *player.State, summary *TurnSummary) {
	s.Hunger += 25
	summary.Changes = append(summary.Changes, Change{
		Icon:  "🍽️",
		Text:  fmt.Sprintf("You got hungrier overnight (hunger +25, now %s)", player.HungerLabel(s.Hunger)),
		Class: "warning",
	})

	rent := catalog.RentForTier(s.FlatTier)
	if rent > 0 {
		s.Money -= rent
		flat := catalog.FlatByTier(s.FlatTier)
		summary.Changes = append(summary.Changes, Change{
			Icon:  "🏠",
			Text:  fmt.Sprintf("Rent paid for your %s (-£%d)", flat.Name, rent),
			Class: "expense",
		})
	} else {
		summary.Changes = append(summary.Changes, Change{
			Icon:  "🗑️",
			Text:  "Another night on the streets. At least it was free.",
			Class: "info",
		})
	}
}

// Terminal thresholds. Burnout requires both exhaustion and starvation.
const (
	burnoutTiredness = 81
	burnoutHunger    = 81
)

// CheckTerminal evaluates the terminal conditions after a mutation.
// On trigger it resets the state (preserving the turn counter) and
// returns which flag fired. At most one flag is true; burnout wins
// when both would apply.
func CheckTerminal(s *player.State) (burnout, bankruptcy bool) {
	switch {
	case s.Tiredness >= burnoutTiredness && s.Hunger >= burnoutHunger:
		s.Reset()
		return true, false
	case s.Money < 0:
		s.Reset()
		return false, true
	}
	return false, false
}
