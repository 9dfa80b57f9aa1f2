package catalog

// StoreItem is one department-store product. Unlike food these go into
// the inventory; clothing items raise the look level.
type StoreItem struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Category string `json:"category"` // "clothing" or "furniture"
	Emoji    string `json:"emoji"`
}

// StoreItems is the department-store catalogue.
var StoreItems = []StoreItem{
	// Clothing - workwear
	{"Formal Suit", 250, "clothing", "🤵"},
	{"Blazer", 180, "clothing", "🧥"},
	{"Dress Shirt", 65, "clothing", "👔"},
	{"Oxford Shirt", 55, "clothing", "👔"},
	{"Dress Trousers", 90, "clothing", "👖"},
	{"Chinos", 70, "clothing", "👖"},
	{"Oxford Shoes", 140, "clothing", "👞"},
	{"Brogues", 160, "clothing", "👞"},
	{"Silk Tie", 55, "clothing", "👔"},
	{"Leather Belt", 45, "clothing", "🩹"},
	{"Waistcoat", 95, "clothing", "🦺"},
	{"Cufflinks", 40, "clothing", "🔘"},
	// Clothing - casual
	{"Winter Coat", 120, "clothing", "🧥"},
	{"Polo Shirt", 45, "clothing", "👕"},
	{"Trainers", 95, "clothing", "👟"},
	{"Leather Boots", 150, "clothing", "👢"},
	{"Cashmere Jumper", 100, "clothing", "🧶"},
	{"Jeans", 60, "clothing", "👖"},
	{"Wool Scarf", 45, "clothing", "🧣"},
	// Furniture
	{"Armchair", 350, "furniture", "🪑"},
	{"Coffee Table", 180, "furniture", "🪵"},
	{"Floor Lamp", 90, "furniture", "🪔"},
	{"Bookshelf", 220, "furniture", "📚"},
	{"Bedside Table", 120, "furniture", "🛏️"},
	{"Desk", 280, "furniture", "🖥️"},
	{"Rug", 150, "furniture", "🟫"},
	{"Mirror", 75, "furniture", "🪞"},
}

// StoreItemByName looks up a department-store item by its exact name.
func StoreItemByName(name string) *StoreItem {
	for i := range StoreItems {
		if StoreItems[i].Name == name {
			return &StoreItems[i]
		}
	}
	return nil
}

// AffordableStoreItems returns the store items costing at most budget.
func AffordableStoreItems(budget int) []StoreItem {
	var out []StoreItem
	for _, s := range StoreItems {
		if s.Cost <= budget {
			out = append(out, s)
		}
	}
	return out
}
