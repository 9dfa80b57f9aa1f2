// Package actions defines the per-location catalogue of things a player
// can do, with cost, effect and prerequisite rules. The catalogue is
// built once at process start and immutable afterwards.
package actions

import (
	"fmt"

	"github.com/mrjones-game/life-server/internal/domain/player"
)

// Default time costs in minutes. Every visit pays the travel time on
// top of the action itself.
const (
	TravelTime        = 30
	DefaultActionTime = 120
)

// Hours is an opening window in wall-clock hours, open at Open,
// closed again at Close (exclusive).
type Hours struct {
	Open  int
	Close int
}

// Contains reports whether hour falls inside the window.
func (h Hours) Contains(hour int) bool {
	return hour >= h.Open && hour < h.Close
}

// DefaultHours is the standard 06:00-20:00 window for locations that
// are not always open.
var DefaultHours = Hours{Open: 6, Close: 20}

// Location is one place on the map.
type Location struct {
	ID          string
	DisplayName string
	// Hours is nil for always-open locations (home, workplace, shops).
	Hours *Hours
}

// Open reports whether the location admits visitors at the given hour.
func (l Location) Open(hour int) bool {
	if l.Hours == nil {
		return true
	}
	return l.Hours.Contains(hour)
}

// Params carries the tool-call or request arguments for an action.
type Params map[string]interface{}

// String fetches a string argument, reporting whether it was present.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Int fetches an integer argument. JSON decoding delivers numbers as
// float64, so both forms are accepted.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Param describes one argument of an action for the tool manifest.
type Param struct {
	Name        string
	Type        string // "string" or "integer"
	Description string
	Required    bool
	Minimum     *int
	Maximum     *int
}

// Outcome is the result of executing an action. Success false means a
// game-rule failure (no money, no job); the message explains it either
// way. State is only mutated on success.
type Outcome struct {
	Message string
	Success bool
}

func ok(format string, args ...interface{}) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...), Success: true}
}

func fail(format string, args ...interface{}) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...), Success: false}
}

// Definition is one catalogue entry: an action a player can take at a
// location, with its rules.
type Definition struct {
	Key         string
	Location    string
	Label       string
	Description string // natural-language description for the tool manifest
	TimeCost    int    // action minutes, travel excluded
	Params      []Param

	// Check returns a rejection reason, or "" when the action is
	// allowed. It must not mutate state.
	Check func(s *player.State, p Params) string

	// Execute applies the action's effects and returns the outcome.
	// It is the only mutation path for money, items, qualification,
	// job and flat fields. It performs no dedup; at-most-once
	// execution is the Turn Engine's responsibility.
	Execute func(s *player.State, p Params) Outcome
}

// TotalTime is the minutes the action consumes including travel.
func (d Definition) TotalTime() int {
	return TravelTime + d.TimeCost
}

// Catalog is the immutable registry of locations and their actions.
type Catalog struct {
	locations map[string]Location
	byKey     map[string]*Definition            // "location/key"
	byLoc     map[string][]*Definition          // preserves registration order
}

// NewCatalog builds the full registry.
func NewCatalog() *Catalog {
	c := &Catalog{
		locations: make(map[string]Location),
		byKey:     make(map[string]*Definition),
		byLoc:     make(map[string][]*Definition),
	}

	c.addLocation(Location{ID: "home", DisplayName: "Home"})
	c.addLocation(Location{ID: "workplace", DisplayName: "Your workplace"})
	c.addLocation(Location{ID: "shop", DisplayName: "The corner shop"})
	c.addLocation(Location{ID: "department_store", DisplayName: "The department store"})
	c.addLocation(Location{ID: "university", DisplayName: "The university", Hours: &DefaultHours})
	c.addLocation(Location{ID: "job_office", DisplayName: "The job office", Hours: &DefaultHours})
	c.addLocation(Location{ID: "estate_agent", DisplayName: "The estate agent", Hours: &DefaultHours})

	registerHome(c)
	registerWorkplace(c)
	registerShop(c)
	registerDepartmentStore(c)
	registerUniversity(c)
	registerJobOffice(c)
	registerEstateAgent(c)

	return c
}

func (c *Catalog) addLocation(l Location) {
	c.locations[l.ID] = l
}

func (c *Catalog) register(d Definition) {
	if _, known := c.locations[d.Location]; !known {
		panic("actions: unknown location " + d.Location)
	}
	def := d
	if def.TimeCost == 0 {
		def.TimeCost = DefaultActionTime
	}
	key := def.Location + "/" + def.Key
	if _, dup := c.byKey[key]; dup {
		panic("actions: duplicate registration " + key)
	}
	c.byKey[key] = &def
	c.byLoc[def.Location] = append(c.byLoc[def.Location], &def)
}

// Locations returns all known locations.
func (c *Catalog) Locations() []Location {
	out := make([]Location, 0, len(c.locations))
	for _, l := range c.locations {
		out = append(out, l)
	}
	return out
}

// Location looks up a location by id.
func (c *Catalog) Location(id string) (Location, bool) {
	l, ok := c.locations[id]
	return l, ok
}

// Get resolves an action by location and key.
func (c *Catalog) Get(location, key string) (*Definition, bool) {
	d, ok := c.byKey[location+"/"+key]
	return d, ok
}

// List returns the actions legal at a location at the given wall-clock
// hour. A closed location lists nothing.
func (c *Catalog) List(location string, hour int) []*Definition {
	loc, known := c.locations[location]
	if !known || !loc.Open(hour) {
		return nil
	}
	return append([]*Definition{}, c.byLoc[location]...)
}

// Validate checks feasibility without mutating anything: the location
// must be open, the whole travel+action block must fit in the remaining
// day, and the action's own prerequisites must hold. Returns a
// human-readable rejection reason, or "" when the action may proceed.
func (c *Catalog) Validate(d *Definition, s *player.State, p Params) string {
	loc := c.locations[d.Location]
	if !loc.Open(s.ClockHour()) {
		return fmt.Sprintf("%s is closed right now (open %02d:00-%02d:00)",
			loc.DisplayName, loc.Hours.Open, loc.Hours.Close)
	}

	if d.TotalTime() > s.MinutesRemaining() {
		return fmt.Sprintf("Not enough time left today: you need %dh %02dm but the day ends first",
			d.TotalTime()/60, d.TotalTime()%60)
	}

	if d.Check != nil {
		if reason := d.Check(s, p); reason != "" {
			return reason
		}
	}
	return ""
}
