// Package events provides the append-only action journal. Every action a
// player takes, whether clicked in the UI or triggered by an NPC tool call,
// lands here so a day can be replayed and audited after the fact.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EntryType categorizes a journal entry.
type EntryType string

const (
	EntryAction        EntryType = "ACTION"
	EntryPassTime      EntryType = "PASS_TIME"
	EntryDayRollover   EntryType = "DAY_ROLLOVER"
	EntryTerminalReset EntryType = "TERMINAL_RESET"
)

// Entry is an immutable record of one thing that happened.
type Entry struct {
	ID        string    `json:"id"`
	Type      EntryType `json:"type"`
	Username  string    `json:"username"`
	Turn      int       `json:"turn"`
	Location  string    `json:"location,omitempty"`
	Action    string    `json:"action,omitempty"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Persister defines how an entry is durably stored.
type Persister interface {
	Append(entry Entry) error
}

// Journal is the in-memory append-only log with optional write-through.
type Journal struct {
	mu        sync.RWMutex
	entries   []Entry
	persister Persister
}

// NewJournal creates a journal with an optional persister.
func NewJournal(persister Persister) *Journal {
	return &Journal{
		entries:   make([]Entry, 0),
		persister: persister,
	}
}

// Record stamps an ID and timestamp onto the entry and appends it.
// Entries are immutable once appended.
func (j *Journal) Record(entry Entry) {
	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now()

	j.mu.Lock()
	j.entries = append(j.entries, entry)
	j.mu.Unlock()

	if j.persister != nil {
		// Journal durability is best-effort; the player state itself
		// goes through the Persistence Gateway.
		go func(e Entry) {
			_ = j.persister.Append(e)
		}(entry)
	}
}

// ByUsername returns all entries recorded for a player.
func (j *Journal) ByUsername(username string) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var result []Entry
	for _, e := range j.entries {
		if e.Username == username {
			result = append(result, e)
		}
	}
	return result
}

// Replay returns the full history of journal entries.
func (j *Journal) Replay() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return append([]Entry{}, j.entries...)
}
