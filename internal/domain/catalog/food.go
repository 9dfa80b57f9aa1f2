package catalog

// FoodItem is one corner-shop product. Food is eaten on the spot: it
// reduces hunger by calories/10 and is never stored in the inventory.
type FoodItem struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Calories int    `json:"calories"`
}

// FoodItems is the corner-shop catalogue.
var FoodItems = []FoodItem{
	{"Apple", 3, 95},
	{"Banana", 2, 105},
	{"Bread", 5, 265},
	{"Milk", 4, 150},
	{"Eggs", 6, 155},
	{"Cheese", 8, 200},
	{"Chicken", 12, 335},
	{"Beef", 15, 425},
	{"Rice", 7, 205},
	{"Pasta", 6, 220},
	{"Vegetables", 10, 120},
	{"Pizza", 14, 285},
	{"Sandwich", 9, 250},
	{"Coffee", 5, 95},
	{"Chocolate", 4, 210},
}

// FoodByName looks up a shop item by its exact name.
func FoodByName(name string) *FoodItem {
	for i := range FoodItems {
		if FoodItems[i].Name == name {
			return &FoodItems[i]
		}
	}
	return nil
}

// HungerReduction returns how much hunger a food item restores.
// Each 10 calories reduces one hunger point.
func (f FoodItem) HungerReduction() int {
	return f.Calories / 10
}

// AffordableFood returns the shop items costing at most budget.
func AffordableFood(budget int) []FoodItem {
	var out []FoodItem
	for _, f := range FoodItems {
		if f.Cost <= budget {
			out = append(out, f)
		}
	}
	return out
}
