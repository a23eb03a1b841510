package evolution

import (
	"fmt"
	"strings"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
)

// Summarize renders the conditions of an evolution method as a
// comma-separated "key: value" list in a fixed order. Referenced resources
// are displayed through label; flags appear as a bare key. Conditions not
// listed here, such as held_item, are not rendered.
func Summarize(d entities.EvolutionDetail, label func(entities.Resource) string) string {
	var parts []string

	named := func(key string, ref *entities.Resource) {
		if ref != nil {
			parts = append(parts, key+": "+label(*ref))
		}
	}
	number := func(key string, v *int) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s: %d", key, *v))
		}
	}
	flag := func(key string, set bool) {
		if set {
			parts = append(parts, key)
		}
	}

	named("item", d.Item)
	number("gender", d.Gender)
	named("known_move", d.KnownMove)
	named("known_move_type", d.KnownMoveType)
	named("location", d.Location)
	number("min_level", d.MinLevel)
	number("min_happiness", d.MinHappiness)
	number("min_beauty", d.MinBeauty)
	number("min_affection", d.MinAffection)
	flag("needs_overworld_rain", d.NeedsOverworldRain)
	named("party_species", d.PartySpecies)
	named("party_type", d.PartyType)
	number("relative_physical_stats", d.RelativePhysicalStats)
	if d.TimeOfDay != "" {
		parts = append(parts, "time_of_day: "+d.TimeOfDay)
	}
	named("trade_species", d.TradeSpecies)
	flag("turn_upside_down", d.TurnUpsideDown)

	return strings.Join(parts, ", ")
}

// namedConditions lists the references Summarize will display
func namedConditions(d entities.EvolutionDetail) []entities.Resource {
	var refs []entities.Resource
	for _, ref := range []*entities.Resource{
		d.Item, d.KnownMove, d.KnownMoveType, d.Location, d.PartySpecies, d.PartyType, d.TradeSpecies,
	} {
		if ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}
