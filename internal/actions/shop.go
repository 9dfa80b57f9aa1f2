package actions

import (
	"math/rand"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

// registerShop wires the corner shop. Food is eaten on the spot: it
// reduces hunger by calories/10 and never enters the inventory.
func registerShop(c *Catalog) {
	c.register(Definition{
		Key:      "buy_food",
		Location: "shop",
		Label:    "Buy food",
		Description: "Buy food from the shop (random affordable item). Food reduces " +
			"hunger immediately and is not stored in inventory.",
		Check: func(s *player.State, _ Params) string {
			if len(catalog.AffordableFood(s.Money)) == 0 {
				return "Not enough money to buy anything!"
			}
			return ""
		},
		Execute: func(s *player.State, _ Params) Outcome {
			affordable := catalog.AffordableFood(s.Money)
			if len(affordable) == 0 {
				return fail("Not enough money to buy anything!")
			}
			item := affordable[rand.Intn(len(affordable))]
			return eatFood(s, item)
		},
	})

	c.register(Definition{
		Key:      "purchase_food_item",
		Location: "shop",
		Label:    "Buy a specific item",
		Description: "Purchase a specific food item from the shop. Items include: Apple, " +
			"Banana, Bread, Milk, Eggs, Cheese, Chicken, Beef, Rice, Pasta, Vegetables, " +
			"Pizza, Sandwich, Coffee, Chocolate. Food reduces hunger based on calories.",
		Params: []Param{{
			Name:        "item_name",
			Type:        "string",
			Description: "The name of the food item to purchase (e.g. 'Apple', 'Pizza')",
			Required:    true,
		}},
		Check: func(s *player.State, p Params) string {
			name, given := p.String("item_name")
			if !given {
				return "Missing required argument: item_name"
			}
			item := catalog.FoodByName(name)
			if item == nil {
				return "Item not found!"
			}
			if s.Money < item.Cost {
				return "Not enough money to buy " + item.Name + "!"
			}
			return ""
		},
		Execute: func(s *player.State, p Params) Outcome {
			name, _ := p.String("item_name")
			item := catalog.FoodByName(name)
			if item == nil {
				return fail("Item not found!")
			}
			if s.Money < item.Cost {
				return fail("Not enough money to buy %s!", item.Name)
			}
			return eatFood(s, *item)
		},
	})
}

func eatFood(s *player.State, item catalog.FoodItem) Outcome {
	reduction := item.HungerReduction()
	if reduction > s.Hunger {
		reduction = s.Hunger
	}
	s.ApplyDelta(-item.Cost, 0, 0, -reduction)
	return ok("You bought %s for £%d (%d calories). Hunger reduced by %d!",
		item.Name, item.Cost, item.Calories, reduction)
}
