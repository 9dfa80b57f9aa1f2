package actions

import (
	"math/rand"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

// Retail therapy. Clothing and furniture go into the inventory
// (duplicates allowed) and clothing drives the look level, so every
// purchase recomputes it.
const shoppingHappiness = 10

func registerDepartmentStore(c *Catalog) {
	c.register(Definition{
		Key:      "browse_store",
		Location: "department_store",
		Label:    "Browse products",
		Description: "Browse the department store and buy a random affordable item. Items " +
			"include work clothes (suits, shirts, shoes) that improve your appearance for " +
			"job applications, plus furniture for your flat.",
		Check: func(s *player.State, _ Params) string {
			if len(catalog.AffordableStoreItems(s.Money)) == 0 {
				return "Not enough money to buy anything at the department store!"
			}
			return ""
		},
		Execute: func(s *player.State, _ Params) Outcome {
			affordable := catalog.AffordableStoreItems(s.Money)
			if len(affordable) == 0 {
				return fail("Not enough money to buy anything at the department store!")
			}
			item := affordable[rand.Intn(len(affordable))]
			return buyStoreItem(s, item)
		},
	})

	c.register(Definition{
		Key:      "purchase_clothing",
		Location: "department_store",
		Label:    "Buy a specific item",
		Description: "Purchase a specific clothing item. Available: Formal Suit, Blazer, " +
			"Dress Shirt, Oxford Shirt, Dress Trousers, Chinos, Oxford Shoes, Brogues, " +
			"Silk Tie, Leather Belt, Waistcoat, Cufflinks. Better clothes improve your " +
			"appearance (look level) for jobs.",
		Params: []Param{{
			Name:        "item_name",
			Type:        "string",
			Description: "The name of the item to purchase (e.g. 'Formal Suit', 'Oxford Shoes')",
			Required:    true,
		}},
		Check: func(s *player.State, p Params) string {
			name, given := p.String("item_name")
			if !given {
				return "Missing required argument: item_name"
			}
			item := catalog.StoreItemByName(name)
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
			item := catalog.StoreItemByName(name)
			if item == nil {
				return fail("Item not found!")
			}
			if s.Money < item.Cost {
				return fail("Not enough money to buy %s!", item.Name)
			}
			return buyStoreItem(s, *item)
		},
	})
}

func buyStoreItem(s *player.State, item catalog.StoreItem) Outcome {
	oldHappiness := s.Happiness
	s.ApplyDelta(-item.Cost, shoppingHappiness, 0, 0)
	s.AddItem(item.Name)
	gained := s.Happiness - oldHappiness
	return ok("You bought %s for £%d! It's now in your inventory. Happiness +%d!",
		item.Name, item.Cost, gained)
}
