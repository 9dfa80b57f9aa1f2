package actions

import (
	"strings"
	"testing"

	"github.com/mrjones-game/life-server/internal/domain/player"
)

func TestCatalogRegistersAllLocations(t *testing.T) {
	c := NewCatalog()

	want := []string{"home", "workplace", "shop", "department_store", "university", "job_office", "estate_agent"}
	for _, id := range want {
		if _, ok := c.Location(id); !ok {
			t.Errorf("Missing location %q", id)
		}
		if len(c.List(id, 10)) == 0 {
			t.Errorf("Location %q lists no actions at 10:00", id)
		}
	}
	if len(c.Locations()) != len(want) {
		t.Errorf("Expected %d locations, got %d", len(want), len(c.Locations()))
	}
}

func TestOpeningHours(t *testing.T) {
	c := NewCatalog()

	// Home never closes
	if got := c.List("home", 3); len(got) == 0 {
		t.Error("Home should be open at 03:00")
	}

	// University keeps office hours
	if got := c.List("university", 5); got != nil {
		t.Error("University should be shut at 05:00")
	}
	if got := c.List("university", 6); len(got) == 0 {
		t.Error("University should open at 06:00")
	}
	if got := c.List("university", 19); len(got) == 0 {
		t.Error("University should still be open at 19:00")
	}
	if got := c.List("university", 20); got != nil {
		t.Error("University should close at 20:00")
	}

	// Unknown locations list nothing
	if got := c.List("casino", 12); got != nil {
		t.Error("Unknown location should list nothing")
	}
}

func TestTotalTimeIncludesTravel(t *testing.T) {
	c := NewCatalog()

	d, ok := c.Get("home", "rest")
	if !ok {
		t.Fatal("home/rest not registered")
	}
	if d.TimeCost != DefaultActionTime {
		t.Errorf("Expected default time cost %d, got %d", DefaultActionTime, d.TimeCost)
	}
	if d.TotalTime() != TravelTime+DefaultActionTime {
		t.Errorf("Expected travel included, got %d", d.TotalTime())
	}
}

func TestValidateChecksOpenThenTimeThenRules(t *testing.T) {
	c := NewCatalog()
	d, _ := c.Get("university", "attend_lecture")

	// Closed location wins even when the rule check would also fail
	s := player.New("alice")
	s.MinutesElapsed = 20 * 60 // 02:00
	if reason := c.Validate(d, s, nil); !strings.Contains(reason, "closed") {
		t.Errorf("Expected closed-location reason, got %q", reason)
	}

	// Open but not enough day left
	s = player.New("bob")
	s.MinutesElapsed = 1440 - 60 // 05:00... still closed; use an always-open action
	dRest, _ := c.Get("home", "rest")
	if reason := c.Validate(dRest, s, nil); !strings.Contains(reason, "Not enough time") {
		t.Errorf("Expected time-budget reason, got %q", reason)
	}

	// Open, time available, rule fails
	s = player.New("carol")
	if reason := c.Validate(d, s, nil); !strings.Contains(reason, "not enrolled") {
		t.Errorf("Expected enrollment rule reason, got %q", reason)
	}

	// All clear
	dEnroll, _ := c.Get("university", "enroll_course")
	if reason := c.Validate(dEnroll, s, Params{"course_id": "middle_school"}); reason != "" {
		t.Errorf("Expected valid enrollment, got %q", reason)
	}
}

func TestParamsCoercion(t *testing.T) {
	// JSON decoding delivers numbers as float64
	p := Params{"tier": float64(3), "item_name": "Jeans"}

	if v, ok := p.Int("tier"); !ok || v != 3 {
		t.Errorf("Expected tier 3, got %d ok=%v", v, ok)
	}
	if v, ok := p.String("item_name"); !ok || v != "Jeans" {
		t.Errorf("Expected Jeans, got %q ok=%v", v, ok)
	}
	if _, ok := p.Int("missing"); ok {
		t.Error("Expected missing int to report absent")
	}
	if _, ok := p.String("tier"); ok {
		t.Error("Expected type mismatch to report absent")
	}
}

func TestWorkCheckBlocksUnemployed(t *testing.T) {
	c := NewCatalog()
	d, _ := c.Get("workplace", "work")

	s := player.New("dave")
	if reason := c.Validate(d, s, nil); reason == "" {
		t.Error("Expected unemployed player to be blocked from working")
	}

	s.CurrentJob = "Janitor"
	s.JobWage = 20
	if reason := c.Validate(d, s, nil); reason != "" {
		t.Errorf("Expected employed player to pass, got %q", reason)
	}

	outcome := d.Execute(s, nil)
	if !outcome.Success {
		t.Fatalf("work execute failed: %q", outcome.Message)
	}
	if s.Money != 120 || s.Tiredness != 15 {
		t.Errorf("Expected wage and fatigue applied, got money=%d tiredness=%d", s.Money, s.Tiredness)
	}
}

func TestFoodIsEatenNotStored(t *testing.T) {
	c := NewCatalog()
	d, _ := c.Get("shop", "purchase_food_item")

	s := player.New("erin")
	s.Hunger = 50

	outcome := d.Execute(s, Params{"item_name": "Pizza"})
	if !outcome.Success {
		t.Fatalf("purchase failed: %q", outcome.Message)
	}
	if s.Money != 100-14 {
		t.Errorf("Expected £14 spent, got money %d", s.Money)
	}
	// Pizza: 285 calories -> 28 hunger
	if s.Hunger != 22 {
		t.Errorf("Expected hunger 50-28=22, got %d", s.Hunger)
	}
	if len(s.Items) != 0 {
		t.Errorf("Food must not enter the inventory, got %v", s.Items)
	}
}

func TestHungerReductionCapsAtZero(t *testing.T) {
	c := NewCatalog()
	d, _ := c.Get("shop", "purchase_food_item")

	s := player.New("frank")
	s.Hunger = 5

	outcome := d.Execute(s, Params{"item_name": "Beef"})
	if !outcome.Success {
		t.Fatalf("purchase failed: %q", outcome.Message)
	}
	if s.Hunger != 0 {
		t.Errorf("Expected hunger floored at 0, got %d", s.Hunger)
	}
}

func TestClothingPurchaseRaisesLook(t *testing.T) {
	c := NewCatalog()
	d, _ := c.Get("department_store", "purchase_clothing")

	s := player.New("grace")
	s.Money = 500

	outcome := d.Execute(s, Params{"item_name": "Formal Suit"})
	if !outcome.Success {
		t.Fatalf("purchase failed: %q", outcome.Message)
	}
	if s.Look != 2 {
		t.Errorf("Expected look 2 after first clothing item, got %d", s.Look)
	}
	if !s.HasItem("Formal Suit") {
		t.Error("Expected suit in the inventory")
	}
	if s.Happiness != 60 {
		t.Errorf("Expected retail therapy +10 happiness, got %d", s.Happiness)
	}
}

func TestEnrollSwitchForfeitsProgress(t *testing.T) {
	c := NewCatalog()
	enroll, _ := c.Get("university", "enroll_course")

	s := player.New("henry")
	s.Qualification = player.QualificationHighSchool
	s.EnrolledCourse = "bachelor_arts"
	s.LecturesCompleted = 2

	outcome := enroll.Execute(s, Params{"course_id": "bachelor_science"})
	if !outcome.Success {
		t.Fatalf("switch failed: %q", outcome.Message)
	}
	if s.EnrolledCourse != "bachelor_science" || s.LecturesCompleted != 0 {
		t.Errorf("Expected fresh enrollment, got %q with %d lectures", s.EnrolledCourse, s.LecturesCompleted)
	}
	if !strings.Contains(outcome.Message, "dropped") {
		t.Errorf("Expected the forfeit to be spelled out, got %q", outcome.Message)
	}
}
