package player

import "testing"

func TestLabelBandsPartitionRange(t *testing.T) {
	// Every value in 0-100 must fall in exactly one band, and values
	// above 100 must take the top label instead of falling through.
	for v := 0; v <= 150; v++ {
		if TirednessLabel(v) == "" {
			t.Fatalf("No tiredness label for %d", v)
		}
		if HappinessLabel(v) == "" {
			t.Fatalf("No happiness label for %d", v)
		}
		if HungerLabel(v) == "" {
			t.Fatalf("No hunger label for %d", v)
		}
	}
}

func TestLabelBoundaries(t *testing.T) {
	cases := []struct {
		value int
		want  string
	}{
		{0, "Well rested"},
		{20, "Well rested"},
		{21, "Slightly tired"},
		{80, "Very tired"},
		{81, "Exhausted"},
		{100, "Exhausted"},
		{130, "Exhausted"},
	}
	for _, c := range cases {
		if got := TirednessLabel(c.value); got != c.want {
			t.Errorf("TirednessLabel(%d) = %q, want %q", c.value, got, c.want)
		}
	}

	if got := HungerLabel(81); got != "Starving" {
		t.Errorf("Expected hunger 81 to read Starving, got %q", got)
	}
	if got := HappinessLabel(50); got != "Content" {
		t.Errorf("Expected happiness 50 to read Content, got %q", got)
	}
}

func TestLabelsAreIdempotent(t *testing.T) {
	// Labels are pure functions of the value; asking twice never drifts.
	for v := 0; v <= 110; v += 7 {
		if TirednessLabel(v) != TirednessLabel(v) {
			t.Fatalf("Tiredness label unstable at %d", v)
		}
	}
}

func TestLookLabels(t *testing.T) {
	cases := map[int]string{
		1: "Shabby",
		2: "Scruffy",
		3: "Presentable",
		4: "Smart",
		5: "Very well groomed",
	}
	for level, want := range cases {
		if got := LookLabel(level); got != want {
			t.Errorf("LookLabel(%d) = %q, want %q", level, got, want)
		}
	}

	// Out-of-range levels fall back to the bottom label
	if got := LookLabel(0); got != "Shabby" {
		t.Errorf("Expected fallback label for level 0, got %q", got)
	}
}

func TestIsClothing(t *testing.T) {
	if !IsClothing("Formal Suit") {
		t.Error("Expected Formal Suit to count as clothing")
	}
	if IsClothing("Armchair") {
		t.Error("Expected Armchair not to count as clothing")
	}
	if IsClothing("") {
		t.Error("Expected empty name not to count as clothing")
	}
}
