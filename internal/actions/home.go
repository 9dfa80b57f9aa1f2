package actions

import (
	"github.com/mrjones-game/life-server/internal/domain/catalog"
	"github.com/mrjones-game/life-server/internal/domain/player"
)

// registerHome wires the rest action. Rest quality scales with the flat
// tier; even sleeping rough recovers at least one point.
func registerHome(c *Catalog) {
	c.register(Definition{
		Key:      "rest",
		Location: "home",
		Label:    "Relax at home",
		Description: "Rest at home to reduce tiredness and recover energy. " +
			"Better flats provide better rest benefits and happiness boosts.",
		Execute: func(s *player.State, _ Params) Outcome {
			flat := catalog.FlatByTier(s.FlatTier)
			if flat == nil {
				flat = catalog.FlatByTier(0)
			}

			reduction := flat.TirednessReduction
			if reduction < 1 {
				reduction = 1
			}
			if reduction > s.Tiredness {
				reduction = s.Tiredness
			}

			oldHappiness := s.Happiness
			s.ApplyDelta(0, flat.HappinessBoost, -reduction, 0)
			gained := s.Happiness - oldHappiness

			switch {
			case reduction == 0 && s.FlatTier == 0:
				return ok("You found a spot to rest, but you were already well rested.")
			case reduction == 0:
				return ok("You relaxed in your %s, but you were already well rested.", flat.RestDescription)
			case s.FlatTier == 0:
				return ok("You found a spot to sleep rough. Tiredness reduced by %d.", reduction)
			case gained > 0:
				return ok("You rested in your %s. Tiredness reduced by %d! Happiness +%d.",
					flat.RestDescription, reduction, gained)
			default:
				return ok("You rested in your %s. Tiredness reduced by %d.", flat.RestDescription, reduction)
			}
		},
	})
}
