package player

// Label bands partition each resource into named ranges for the UI and
// for the NPC context block. Labels are pure functions of the numeric
// value and are recomputed on every read, never stored.

type labelBand struct {
	min, max int
	label    string
}

var tirednessBands = []labelBand{
	{0, 20, "Well rested"},
	{21, 40, "Slightly tired"},
	{41, 60, "Tired"},
	{61, 80, "Very tired"},
	{81, 100, "Exhausted"},
}

var happinessBands = []labelBand{
	{0, 20, "Miserable"},
	{21, 40, "Unhappy"},
	{41, 60, "Content"},
	{61, 80, "Happy"},
	{81, 100, "Ecstatic"},
}

var hungerBands = []labelBand{
	{0, 20, "Full"},
	{21, 40, "Satisfied"},
	{41, 60, "Peckish"},
	{61, 80, "Hungry"},
	{81, 100, "Starving"},
}

// lookLabels maps the derived look level (1-5) to its display name.
var lookLabels = map[int]string{
	1: "Shabby",
	2: "Scruffy",
	3: "Presentable",
	4: "Smart",
	5: "Very well groomed",
}

func bandLabel(bands []labelBand, value int, overflow string) string {
	for _, b := range bands {
		if value >= b.min && value <= b.max {
			return b.label
		}
	}
	// Values above 100 (e.g. hunger while starving) take the top label.
	return overflow
}

// TirednessLabel returns the display band for a tiredness value.
func TirednessLabel(value int) string {
	return bandLabel(tirednessBands, value, "Exhausted")
}

// HappinessLabel returns the display band for a happiness value.
func HappinessLabel(value int) string {
	return bandLabel(happinessBands, value, "Miserable")
}

// HungerLabel returns the display band for a hunger value.
func HungerLabel(value int) string {
	return bandLabel(hungerBands, value, "Starving")
}

// LookLabel returns the display name for a look level.
func LookLabel(level int) string {
	if label, ok := lookLabels[level]; ok {
		return label
	}
	return "Shabby"
}

// clothingItems is the set of inventory items that count toward the
// look level. It must stay in sync with the department store catalogue.
var clothingItems = map[string]bool{
	"Formal Suit":     true,
	"Blazer":          true,
	"Dress Shirt":     true,
	"Oxford Shirt":    true,
	"Dress Trousers":  true,
	"Chinos":          true,
	"Oxford Shoes":    true,
	"Brogues":         true,
	"Silk Tie":        true,
	"Leather Belt":    true,
	"Waistcoat":       true,
	"Cufflinks":       true,
	"Winter Coat":     true,
	"Polo Shirt":      true,
	"Trainers":        true,
	"Leather Boots":   true,
	"Cashmere Jumper": true,
	"Jeans":           true,
	"Wool Scarf":      true,
}

// IsClothing reports whether an item name counts toward look.
func IsClothing(item string) bool {
	return clothingItems[item]
}

// RecomputeLook derives the look level (1-5) from the clothing items
// currently in the inventory. It must run after every inventory
// mutation so Look is never stale.
func (s *State) RecomputeLook() {
	count := 0
	for _, item := range s.Items {
		if clothingItems[item] {
			count++
		}
	}

	switch {
	case count == 0:
		s.Look = 1
	case count <= 2:
		s.Look = 2
	case count <= 4:
		s.Look = 3
	case count <= 7:
		s.Look = 4
	default:
		s.Look = 5
	}
}
