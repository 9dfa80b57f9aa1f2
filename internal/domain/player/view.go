package player

// View is the serialized snapshot handed to the UI and embedded in NPC
// context. It carries the raw numbers plus every derived label so the
// front end never recomputes game rules.
type View struct {
	Username string `json:"username"`

	Turn        int    `json:"turn"`
	Minutes     int    `json:"minutes_elapsed_today"`
	CurrentTime string `json:"current_time"`

	Money          int    `json:"money"`
	Happiness      int    `json:"happiness"`
	HappinessLabel string `json:"happiness_label"`
	Tiredness      int    `json:"tiredness"`
	TirednessLabel string `json:"tiredness_label"`
	Hunger         int    `json:"hunger"`
	HungerLabel    string `json:"hunger_label"`

	Qualification     string   `json:"qualification"`
	EnrolledCourse    string   `json:"enrolled_course,omitempty"`
	LecturesCompleted int      `json:"lectures_completed"`
	CompletedCourses  []string `json:"completed_courses"`

	CurrentJob string `json:"current_job"`
	JobWage    int    `json:"job_wage"`

	Look      int    `json:"look"`
	LookLabel string `json:"look_label"`

	FlatTier int `json:"flat_tier"`
	Rent     int `json:"rent"`

	Items []string `json:"items"`
}

// Snapshot builds a View from the current state. Tiredness is clipped
// to 100 for display; hunger is reported raw because values above 100
// are meaningful (starving).
func (s *State) Snapshot() View {
	displayTiredness := s.Tiredness
	if displayTiredness > 100 {
		displayTiredness = 100
	}

	return View{
		Username:          s.Username,
		Turn:              s.Turn,
		Minutes:           s.MinutesElapsed,
		CurrentTime:       s.ClockString(),
		Money:             s.Money,
		Happiness:         s.Happiness,
		HappinessLabel:    HappinessLabel(s.Happiness),
		Tiredness:         displayTiredness,
		TirednessLabel:    TirednessLabel(s.Tiredness),
		Hunger:            s.Hunger,
		HungerLabel:       HungerLabel(s.Hunger),
		Qualification:     string(s.Qualification),
		EnrolledCourse:    s.EnrolledCourse,
		LecturesCompleted: s.LecturesCompleted,
		CompletedCourses:  append([]string{}, s.CompletedCourses...),
		CurrentJob:        s.CurrentJob,
		JobWage:           s.JobWage,
		Look:              s.Look,
		LookLabel:         LookLabel(s.Look),
		FlatTier:          s.FlatTier,
		Rent:              s.Rent,
		Items:             append([]string{}, s.Items...),
	}
}
