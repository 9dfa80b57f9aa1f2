// Package catalog holds the static game tables: flats, food, clothing,
// courses and jobs. Everything here is defined at process start and
// immutable thereafter. Like the player package it stays free of
// infrastructure imports.
package catalog

// Flat describes one rentable accommodation tier. Tier 0 is homeless.
type Flat struct {
	Tier        int    `json:"tier"`
	Name        string `json:"name"`
	Rent        int    `json:"rent"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`

	// Rest quality. Better flats recover more tiredness and grant a
	// small happiness boost per rest.
	TirednessReduction int `json:"tiredness_reduction"`
	HappinessBoost     int `json:"happiness_boost"`
	RestDescription    string `json:"rest_description"`
}

// Flats is the full estate-agent catalogue, ordered by tier.
var Flats = []Flat{
	{
		Tier:               0,
		Name:               "Homeless",
		Rent:               0,
		Description:        "Give up your flat and live on the streets. No rent to pay, but rest is much less effective.",
		Emoji:              "🗑️",
		TirednessReduction: 4,
		HappinessBoost:     0,
		RestDescription:    "rough night on the streets",
	},
	{
		Tier:               1,
		Name:               "Dingy Bedsit",
		Rent:               10,
		Description:        "A cramped, damp bedsit with peeling wallpaper and a shared bathroom down the hall.",
		Emoji:              "🏚️",
		TirednessReduction: 5,
		HappinessBoost:     1,
		RestDescription:    "dingy bedsit",
	},
	{
		Tier:               2,
		Name:               "Basic Studio",
		Rent:               25,
		Description:        "A small but functional studio flat. Nothing fancy, but it keeps the rain out.",
		Emoji:              "🏢",
		TirednessReduction: 8,
		HappinessBoost:     1,
		RestDescription:    "basic studio",
	},
	{
		Tier:               3,
		Name:               "Comfortable Flat",
		Rent:               50,
		Description:        "A decent one-bedroom flat with modern amenities and a proper kitchen.",
		Emoji:              "🏠",
		TirednessReduction: 10,
		HappinessBoost:     3,
		RestDescription:    "comfortable flat",
	},
	{
		Tier:               4,
		Name:               "Stylish Apartment",
		Rent:               100,
		Description:        "A spacious two-bedroom apartment with high ceilings and quality furnishings.",
		Emoji:              "🏡",
		TirednessReduction: 13,
		HappinessBoost:     4,
		RestDescription:    "stylish apartment",
	},
	{
		Tier:               5,
		Name:               "Luxury Penthouse",
		Rent:               200,
		Description:        "An exquisite penthouse with panoramic city views, designer interiors, and a private terrace.",
		Emoji:              "🏰",
		TirednessReduction: 15,
		HappinessBoost:     5,
		RestDescription:    "luxury penthouse",
	},
}

// FlatByTier returns the flat for a tier, or nil for an invalid tier.
func FlatByTier(tier int) *Flat {
	for i := range Flats {
		if Flats[i].Tier == tier {
			return &Flats[i]
		}
	}
	return nil
}

// RentForTier returns the rent for a flat tier. Rent is always derived
// from the tier through this table, never stored independently.
func RentForTier(tier int) int {
	if f := FlatByTier(tier); f != nil {
		return f.Rent
	}
	return 0
}
