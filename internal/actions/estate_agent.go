package actions

import (
	"fmt"

	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

func registerEstateAgent(c *Catalog) {
	c.register(Definition{
		Key:      "browse_flats",
		Location: "estate_agent",
		Label:    "Browse flats",
		Description: "Visit the estate agent to view available flats for rent. Shows your " +
			"current accommodation and available options.",
		Execute: func(s *player.State, _ Params) Outcome {
			if s.FlatTier == 0 {
				return ok("Welcome! You're currently homeless. Browse our selection of flats to find your new home.")
			}
			flat := catalog.FlatByTier(s.FlatTier)
			return ok("Welcome back! You're currently renting a %s for £%d/day. Looking to upgrade?",
				flat.Name, s.Rent)
		},
	})

	minTier, maxTier := 0, 5
	c.register(Definition{
		Key:      "rent_flat",
		Location: "estate_agent",
		Label:    "Rent a flat",
		Description: "Rent a flat at the specified tier. Tier 0=Homeless (no rent), " +
			"Tier 1=Dingy Bedsit (£10/day), Tier 2=Basic Studio (£25/day), " +
			"Tier 3=Comfortable Flat (£50/day), Tier 4=Stylish Apartment (£100/day), " +
			"Tier 5=Luxury Penthouse (£200/day). Better flats provide better rest.",
		Params: []Param{{
			Name:        "tier",
			Type:        "integer",
			Description: "The flat tier to rent (0-5)",
			Required:    true,
			Minimum:     &minTier,
			Maximum:     &maxTier,
		}},
		Check: func(s *player.State, p Params) string {
			tier, given := p.Int("tier")
			if !given {
				return "Missing required argument: tier"
			}
			flat := catalog.FlatByTier(tier)
			if flat == nil {
				return "Invalid flat selection."
			}
			if s.FlatTier == tier {
				if tier == 0 {
					return "You're already homeless!"
				}
				return fmt.Sprintf("You're already renting a %s!", flat.Name)
			}
			return ""
		},
		Execute: func(s *player.State, p Params) Outcome {
			tier, _ := p.Int("tier")
			flat := catalog.FlatByTier(tier)
			if flat == nil {
				return fail("Invalid flat selection.")
			}

			previous := s.FlatTier
			// Renting replaces: flat tier is singular, and rent always
			// derives from the tier.
			s.FlatTier = tier
			s.Rent = catalog.RentForTier(tier)

			switch {
			case tier == 0:
				return ok("You've given up your flat and are now homeless. No rent to pay, but sleeping rough is tough.")
			case previous == 0:
				return ok("Congratulations! You've rented a %s for £%d/day. No more sleeping rough!", flat.Name, flat.Rent)
			case tier > previous:
				return ok("Moving up in the world! You've upgraded to a %s for £%d/day.", flat.Name, flat.Rent)
			default:
				return ok("You've downgraded to a %s for £%d/day. Every penny counts!", flat.Name, flat.Rent)
			}
		},
	})
}
