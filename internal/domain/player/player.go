// Package player defines the core domain state for a single player.
// This package is PURE and must NOT import any infrastructure packages
// (storage, ai, platform).
package player

import "fmt"

// Qualification is the ordered education ladder. It only ever advances.
type Qualification string

const (
	QualificationNone         Qualification = "None"
	QualificationMiddleSchool Qualification = "Middle School"
	QualificationHighSchool   Qualification = "High School"
	QualificationVocational   Qualification = "Vocational"
	QualificationBachelor     Qualification = "Bachelor"
	QualificationMaster       Qualification = "Master"
	QualificationPhD          Qualification = "PhD"
)

// qualificationRank orders the ladder for forward-only checks.
var qualificationRank = map[Qualification]int{
	QualificationNone:         0,
	QualificationMiddleSchool: 1,
	QualificationHighSchool:   2,
	QualificationVocational:   3,
	QualificationBachelor:     3,
	QualificationMaster:       4,
	QualificationPhD:          5,
}

// Rank returns the position of a qualification on the ladder.
// Vocational and Bachelor share a tier.
func (q Qualification) Rank() int {
	return qualificationRank[q]
}

// AtLeast reports whether q satisfies a requirement of other.
func (q Qualification) AtLeast(other Qualification) bool {
	return q.Rank() >= other.Rank()
}

// Initial values for a fresh (or reset) player.
const (
	InitialMoney     = 100
	InitialHappiness = 50
	InitialTiredness = 0
	InitialHunger    = 0
)

const (
	// MinutesPerDay is the length of one in-game day (one turn).
	MinutesPerDay = 1440

	// DayStartHour is the wall-clock hour at minute 0 of a day.
	DayStartHour = 6
)

// JobUnemployed is the sentinel job title for players without work.
const JobUnemployed = "Unemployed"

// State is the authoritative, persisted record for one player.
// Derived fields (look, rent, wage) are recomputed from their sources,
// never written independently.
type State struct {
	Username string `json:"username"`

	// Clock
	Turn           int `json:"turn"`
	MinutesElapsed int `json:"minutes_elapsed_today"`

	// Resources
	Money     int `json:"money"`
	Happiness int `json:"happiness"`
	Tiredness int `json:"tiredness"`
	Hunger    int `json:"hunger"`

	// Progression
	Qualification     Qualification `json:"qualification"`
	EnrolledCourse    string        `json:"enrolled_course,omitempty"`
	LecturesCompleted int           `json:"lectures_completed"`
	CompletedCourses  []string      `json:"completed_courses"`

	// Employment
	CurrentJob string `json:"current_job"`
	JobWage    int    `json:"job_wage"`

	// Appearance (derived from Items)
	Look int `json:"look"`

	// Housing
	FlatTier int `json:"flat_tier"`
	Rent     int `json:"rent"`

	// Inventory, in purchase order. Duplicates allowed.
	Items []string `json:"items"`
}

// New creates a fresh player state at turn 1, minute 0 (06:00, day one).
func New(username string) *State {
	s := &State{
		Username:         username,
		Turn:             1,
		Money:            InitialMoney,
		Happiness:        InitialHappiness,
		Tiredness:        InitialTiredness,
		Hunger:           InitialHunger,
		Qualification:    QualificationNone,
		CurrentJob:       JobUnemployed,
		Look:             1,
		CompletedCourses: []string{},
		Items:            []string{},
	}
	return s
}

// Reset restores initial values after burnout or bankruptcy.
// The turn counter is cumulative and survives the reset.
func (s *State) Reset() {
	turn := s.Turn
	username := s.Username
	minutes := s.MinutesElapsed
	*s = *New(username)
	s.Turn = turn
	s.MinutesElapsed = minutes
}

// ApplyDelta adjusts the four core resources. Happiness is clamped to
// 0-100. Tiredness and hunger floor at 0 but are uncapped upward:
// hunger above 100 means starving.
func (s *State) ApplyDelta(money, happiness, tiredness, hunger int) {
	s.Money += money

	s.Happiness += happiness
	if s.Happiness < 0 {
		s.Happiness = 0
	}
	if s.Happiness > 100 {
		s.Happiness = 100
	}

	s.Tiredness += tiredness
	if s.Tiredness < 0 {
		s.Tiredness = 0
	}

	s.Hunger += hunger
	if s.Hunger < 0 {
		s.Hunger = 0
	}
}

// AddItem appends an item to the inventory and recomputes look.
func (s *State) AddItem(item string) {
	s.Items = append(s.Items, item)
	s.RecomputeLook()
}

// HasItem reports whether the inventory contains item.
func (s *State) HasItem(item string) bool {
	for _, it := range s.Items {
		if it == item {
			return true
		}
	}
	return false
}

// HasCompletedCourse reports whether courseID is in the completed set.
func (s *State) HasCompletedCourse(courseID string) bool {
	for _, c := range s.CompletedCourses {
		if c == courseID {
			return true
		}
	}
	return false
}

// AdvanceQualification moves the ladder forward. Downgrades are ignored.
func (s *State) AdvanceQualification(q Qualification) {
	if q.Rank() > s.Qualification.Rank() {
		s.Qualification = q
	}
}

// MinutesRemaining returns how many minutes are left before midnight
// rolls the day over.
func (s *State) MinutesRemaining() int {
	return MinutesPerDay - s.MinutesElapsed
}

// ClockHour returns the current wall-clock hour (0-23). Minute 0 of a
// day is 06:00.
func (s *State) ClockHour() int {
	return (DayStartHour + s.MinutesElapsed/60) % 24
}

// ClockString formats the current in-game time as HH:MM.
func (s *State) ClockString() string {
	return fmt.Sprintf("%02d:%02d", s.ClockHour(), s.MinutesElapsed%60)
}
