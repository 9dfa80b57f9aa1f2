package catalog

import (
	"testing"

	"github.com/mrjones-game/life-server/internal/domain/player"
)

func TestFlatTiersAndRent(t *testing.T) {
	wantRents := map[int]int{0: 0, 1: 10, 2: 25, 3: 50, 4: 100, 5: 200}

	for tier, rent := range wantRents {
		flat := FlatByTier(tier)
		if flat == nil {
			t.Fatalf("Missing flat for tier %d", tier)
		}
		if flat.Rent != rent {
			t.Errorf("Tier %d rent = %d, want %d", tier, flat.Rent, rent)
		}
		if RentForTier(tier) != rent {
			t.Errorf("RentForTier(%d) = %d, want %d", tier, RentForTier(tier), rent)
		}
	}

	if FlatByTier(6) != nil {
		t.Error("Expected no flat for tier 6")
	}
	if RentForTier(-1) != 0 {
		t.Error("Expected zero rent for invalid tier")
	}

	// Rest quality rises with tier
	prev := -1
	for tier := 0; tier <= 5; tier++ {
		f := FlatByTier(tier)
		if f.TirednessReduction <= prev {
			t.Errorf("Expected rest quality to rise with tier, tier %d gives %d", tier, f.TirednessReduction)
		}
		prev = f.TirednessReduction
	}
}

func TestFoodHungerReduction(t *testing.T) {
	apple := FoodByName("Apple")
	if apple == nil {
		t.Fatal("Apple missing from shop catalogue")
	}
	if apple.HungerReduction() != 9 {
		t.Errorf("Apple (95 cal) should reduce hunger by 9, got %d", apple.HungerReduction())
	}

	beef := FoodByName("Beef")
	if beef == nil || beef.HungerReduction() != 42 {
		t.Errorf("Beef (425 cal) should reduce hunger by 42")
	}

	if FoodByName("Caviar") != nil {
		t.Error("Expected no Caviar in a corner shop")
	}
}

func TestAffordableFood(t *testing.T) {
	// Banana at £2 is the cheapest item
	if got := AffordableFood(1); len(got) != 0 {
		t.Errorf("Expected nothing affordable at £1, got %v", got)
	}
	if got := AffordableFood(2); len(got) != 1 || got[0].Name != "Banana" {
		t.Errorf("Expected only Banana at £2, got %v", got)
	}
	if got := AffordableFood(1000); len(got) != len(FoodItems) {
		t.Errorf("Expected full catalogue affordable, got %d items", len(got))
	}
}

func TestStoreItemLookup(t *testing.T) {
	suit := StoreItemByName("Formal Suit")
	if suit == nil || suit.Category != "clothing" || suit.Cost != 250 {
		t.Errorf("Unexpected Formal Suit entry: %+v", suit)
	}

	chair := StoreItemByName("Armchair")
	if chair == nil || chair.Category != "furniture" {
		t.Errorf("Expected Armchair to be furniture")
	}

	// The cheapest store item is Cufflinks at £40
	if got := AffordableStoreItems(39); len(got) != 0 {
		t.Errorf("Expected nothing affordable at £39, got %v", got)
	}
}

func TestCoursePrerequisites(t *testing.T) {
	ms := CourseByID("middle_school")
	if ms == nil || ms.Prerequisite != player.QualificationNone {
		t.Fatal("middle_school should have no prerequisite")
	}
	if ms.LecturesRequired != 3 || ms.CostPerLecture != 5 {
		t.Errorf("Unexpected middle_school shape: %+v", ms)
	}

	phd := CourseByID("phd")
	if phd == nil || phd.Prerequisite != player.QualificationMaster {
		t.Error("phd should require a Master")
	}

	eligible := EligibleCourses(player.QualificationNone, nil)
	if len(eligible) != 1 || eligible[0].ID != "middle_school" {
		t.Errorf("An unqualified player should only see middle_school, got %v", eligible)
	}

	// A completed course disappears from the eligible list
	eligible = EligibleCourses(player.QualificationHighSchool, []string{"vocational"})
	for _, c := range eligible {
		if c.ID == "vocational" {
			t.Error("Completed course should not be offered again")
		}
	}
}

func TestJobEligibility(t *testing.T) {
	janitor := JobByTitle("Janitor")
	if janitor == nil || !janitor.Eligible(player.QualificationNone, 1) {
		t.Fatal("Janitor should accept anyone")
	}

	office := JobByTitle("Office Worker")
	if office == nil {
		t.Fatal("Office Worker missing from the board")
	}
	if office.Eligible(player.QualificationHighSchool, 3) {
		t.Error("Office Worker should require a Bachelor")
	}
	if office.Eligible(player.QualificationBachelor, 1) {
		t.Error("Office Worker should require look level 2")
	}
	if !office.Eligible(player.QualificationBachelor, 2) {
		t.Error("A presentable Bachelor should get Office Worker")
	}
	// Vocational shares the Bachelor rank on the ladder
	if !office.Eligible(player.QualificationVocational, 2) {
		t.Error("Vocational should satisfy a Bachelor requirement")
	}
}

func TestBestJob(t *testing.T) {
	// Fresh player: best of the no-qualification, look-1 jobs
	best := BestJob(player.QualificationNone, 1)
	if best == nil || best.Title != "Warehouse Picker" {
		t.Errorf("Expected Warehouse Picker for a fresh player, got %+v", best)
	}

	// A sharp-dressed PhD gets the top of the board
	best = BestJob(player.QualificationPhD, 5)
	if best == nil || best.Title != "Director" {
		t.Errorf("Expected Director for PhD/look 5, got %+v", best)
	}

	// Look gates the ceiling even for a PhD
	best = BestJob(player.QualificationPhD, 3)
	if best == nil || best.Title != "Manager" {
		t.Errorf("Expected Manager for PhD/look 3, got %+v", best)
	}
}
