package testutils

import (
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/testutils/builders"
	"github.com/KirkDiggler/pokelookup/internal/testutils/mocks"
)

// Evolution chain ids used by the fixtures
const (
	RattataChain   = 10
	FarfetchdChain = 35
	MimeJrChain    = 64
	EeveeChain     = 67
	ZigzagoonChain = 135
)

// AddEvolutionRecords registers the triggers, items, locations and moves
// referenced by the evolution fixtures
func AddEvolutionRecords(c *mocks.Catalog) *mocks.Catalog {
	return AddTypeChart(c).
		AddNamed("evolution-trigger", "level-up", "en", "Level up", "es", "Subir nivel").
		AddNamed("evolution-trigger", "use-item", "en", "Use item", "es", "Usar objeto").
		AddNamed("evolution-trigger", "three-critical-hits", "en", "Land three critical hits in a battle").
		AddNamed("item", "water-stone", "en", "Water Stone", "es", "Piedra Agua").
		AddNamed("item", "thunder-stone", "en", "Thunder Stone", "es", "Piedra Trueno").
		AddNamed("item", "fire-stone", "en", "Fire Stone", "es", "Piedra Fuego").
		AddNamed("item", "leaf-stone", "en", "Leaf Stone", "es", "Piedra Hoja").
		AddNamed("item", "ice-stone", "en", "Ice Stone", "es", "Piedra Hielo").
		AddNamed("location", "eterna-forest", "en", "Eterna Forest").
		AddNamed("location", "pinwheel-forest", "en", "Pinwheel Forest").
		AddNamed("location", "kalos-route-20", "en", "Route 20").
		AddNamed("location", "sinnoh-route-217", "en", "Route 217").
		AddNamed("location", "twist-mountain", "en", "Twist Mountain").
		AddNamed("location", "frost-cavern", "en", "Frost Cavern").
		AddNamed("move", "mimic", "en", "Mimic", "es", "Mimético")
}

func addNamedSpecies(c *mocks.Catalog, chain int, pairs ...string) {
	for i := 0; i < len(pairs); i += 2 {
		c.AddSpecies(builders.NewSpecies(pairs[i]).
			WithNames("en", pairs[i+1], "es", pairs[i+1]).
			WithEvolutionChain(chain).
			Build())
	}
}

// AddEevee registers Eevee's chain: eight evolutions reached through
// fifteen methods
func AddEevee(c *mocks.Catalog) *mocks.Catalog {
	addNamedSpecies(c, EeveeChain,
		"eevee", "Eevee", "vaporeon", "Vaporeon", "jolteon", "Jolteon", "flareon", "Flareon",
		"espeon", "Espeon", "umbreon", "Umbreon", "leafeon", "Leafeon", "glaceon", "Glaceon",
		"sylveon", "Sylveon")

	return c.AddChain(builders.Chain(EeveeChain, builders.Link("eevee").EvolvesTo(
		builders.Link("vaporeon", builders.UseItem("water-stone").Build()),
		builders.Link("jolteon", builders.UseItem("thunder-stone").Build()),
		builders.Link("flareon", builders.UseItem("fire-stone").Build()),
		builders.Link("espeon", builders.LevelUp().WithMinHappiness(160).WithTimeOfDay("day").Build()),
		builders.Link("umbreon", builders.LevelUp().WithMinHappiness(160).WithTimeOfDay("night").Build()),
		builders.Link("leafeon",
			builders.LevelUp().WithLocation("eterna-forest").Build(),
			builders.LevelUp().WithLocation("pinwheel-forest").Build(),
			builders.LevelUp().WithLocation("kalos-route-20").Build(),
			builders.UseItem("leaf-stone").Build()),
		builders.Link("glaceon",
			builders.LevelUp().WithLocation("sinnoh-route-217").Build(),
			builders.LevelUp().WithLocation("twist-mountain").Build(),
			builders.LevelUp().WithLocation("frost-cavern").Build(),
			builders.UseItem("ice-stone").Build()),
		builders.Link("sylveon",
			builders.LevelUp().WithKnownMoveType("fairy").WithMinAffection(2).Build(),
			builders.LevelUp().WithKnownMoveType("fairy").WithMinHappiness(160).Build()),
	)))
}

// AddFarfetchd registers Farfetch'd, whose evolution only exists for its
// Galarian form
func AddFarfetchd(c *mocks.Catalog) *mocks.Catalog {
	addNamedSpecies(c, FarfetchdChain, "farfetchd", "Farfetch’d", "sirfetchd", "Sirfetch’d")
	return c.AddChain(builders.Chain(FarfetchdChain, builders.Link("farfetchd").EvolvesTo(
		builders.Link("sirfetchd", builders.Trigger("three-critical-hits").Build()),
	)))
}

// AddRattata registers Rattata, whose Alolan form evolves only at night
func AddRattata(c *mocks.Catalog) *mocks.Catalog {
	addNamedSpecies(c, RattataChain, "rattata", "Rattata", "raticate", "Raticate")
	return c.AddChain(builders.Chain(RattataChain, builders.Link("rattata").EvolvesTo(
		builders.Link("raticate",
			builders.LevelUp().WithMinLevel(20).Build(),
			builders.LevelUp().WithMinLevel(20).WithTimeOfDay("night").Build()),
	)))
}

// AddMimeJr registers Mime Jr., Mr. Mime and Mr. Rime
func AddMimeJr(c *mocks.Catalog) *mocks.Catalog {
	addNamedSpecies(c, MimeJrChain, "mime-jr", "Mime Jr.", "mr-mime", "Mr. Mime", "mr-rime", "Mr. Rime")
	return c.AddChain(builders.Chain(MimeJrChain, builders.Link("mime-jr").EvolvesTo(
		builders.Link("mr-mime", builders.LevelUp().WithKnownMove("mimic").Build()).EvolvesTo(
			builders.Link("mr-rime", builders.LevelUp().WithMinLevel(42).Build()),
		),
	)))
}

// AddZigzagoon registers Zigzagoon, Linoone and Obstagoon
func AddZigzagoon(c *mocks.Catalog) *mocks.Catalog {
	addNamedSpecies(c, ZigzagoonChain, "zigzagoon", "Zigzagoon", "linoone", "Linoone", "obstagoon", "Obstagoon")
	return c.AddChain(builders.Chain(ZigzagoonChain, builders.Link("zigzagoon").EvolvesTo(
		builders.Link("linoone", builders.LevelUp().WithMinLevel(20).Build()).EvolvesTo(
			builders.Link("obstagoon", builders.LevelUp().WithMinLevel(35).WithTimeOfDay("night").Build()),
		),
	)))
}

var typeNames = [][3]string{
	{"normal", "Normal", "Normal"},
	{"fighting", "Fighting", "Lucha"},
	{"flying", "Flying", "Volador"},
	{"poison", "Poison", "Veneno"},
	{"ground", "Ground", "Tierra"},
	{"rock", "Rock", "Roca"},
	{"bug", "Bug", "Bicho"},
	{"ghost", "Ghost", "Fantasma"},
	{"steel", "Steel", "Acero"},
	{"fire", "Fire", "Fuego"},
	{"water", "Water", "Agua"},
	{"grass", "Grass", "Planta"},
	{"electric", "Electric", "Eléctrico"},
	{"psychic", "Psychic", "Psíquico"},
	{"ice", "Ice", "Hielo"},
	{"dragon", "Dragon", "Dragón"},
	{"dark", "Dark", "Siniestro"},
	{"fairy", "Fairy", "Hada"},
}

// AddTypeChart registers all eighteen types with English and Spanish names.
// Damage relations are filled in for electric, ground, fairy and steel.
func AddTypeChart(c *mocks.Catalog) *mocks.Catalog {
	types := map[string]*builders.TypeBuilder{}
	for _, n := range typeNames {
		types[n[0]] = builders.NewType(n[0]).WithNames("en", n[1], "es", n[2])
	}

	types["electric"].
		WithHalfDamageFrom("flying", "steel", "electric").
		WithDoubleDamageFrom("ground")
	types["ground"].
		WithNoDamageFrom("electric").
		WithHalfDamageFrom("poison", "rock").
		WithDoubleDamageFrom("water", "grass", "ice")
	types["fairy"].
		WithNoDamageFrom("dragon").
		WithHalfDamageFrom("fighting", "bug", "dark").
		WithDoubleDamageFrom("poison", "steel")
	types["steel"].
		WithNoDamageFrom("poison").
		WithHalfDamageFrom("normal", "flying", "rock", "bug", "steel", "grass", "psychic", "ice", "dragon", "fairy").
		WithDoubleDamageFrom("fighting", "ground", "fire")

	for _, b := range types {
		c.AddTypes(b.Build())
	}
	return c
}

// Evolution chain ids of the lookup fixtures
const (
	StantlerChain = 113
	MachopChain   = 30
)

// addPokemon registers pokemon together with a default form that carries
// no names, so display names come from the species
func addPokemon(c *mocks.Catalog, pokemon ...*entities.Pokemon) {
	for _, p := range pokemon {
		c.AddPokemon(p)
		for _, f := range p.Forms {
			c.AddForm(f.Name, true)
		}
	}
}

// AddToxel registers Toxel with its types and abilities
func AddToxel(c *mocks.Catalog) *mocks.Catalog {
	addPokemon(c, builders.NewPokemon("toxel").
		WithTypes("electric", "poison").
		WithAbility("rattled", false).
		WithAbility("static", false).
		WithAbility("klutz", true).
		Build())
	return AddTypeChart(c).
		AddSpecies(builders.NewSpecies("toxel").WithNames("en", "Toxel", "es", "Toxel").Build()).
		AddNamed("ability", "rattled", "en", "Rattled", "es", "Cobardía").
		AddNamed("ability", "static", "en", "Static", "es", "Elec. Estática").
		AddNamed("ability", "klutz", "en", "Klutz", "es", "Zoquete")
}

// AddStantler registers Stantler and Wyrdeer as a two stage family
func AddStantler(c *mocks.Catalog) *mocks.Catalog {
	deer := func(b *builders.PokemonBuilder) *entities.Pokemon {
		return b.
			WithAbility("intimidate", false).
			WithAbility("frisk", false).
			WithAbility("sap-sipper", true).
			Build()
	}
	addPokemon(c,
		deer(builders.NewPokemon("stantler").WithTypes("normal")),
		deer(builders.NewPokemon("wyrdeer").WithTypes("normal", "psychic")),
	)

	return AddTypeChart(c).
		AddSpecies(
			builders.NewSpecies("stantler").
				WithNames("en", "Stantler").
				WithGenderRate(4).
				WithEggGroups("ground").
				WithEvolutionChain(StantlerChain).
				Build(),
			builders.NewSpecies("wyrdeer").
				WithNames("en", "Wyrdeer").
				WithGenderRate(4).
				WithEvolutionChain(StantlerChain).
				Build(),
		).
		AddChain(builders.Chain(StantlerChain, builders.Link("stantler").EvolvesTo(
			builders.Link("wyrdeer", builders.Trigger("agile-style-move").WithKnownMove("psyshield-bash").Build()),
		))).
		AddNamed("egg-group", "ground", "en", "Field", "es", "Campo").
		AddNamed("ability", "intimidate", "en", "Intimidate").
		AddNamed("ability", "frisk", "en", "Frisk").
		AddNamed("ability", "sap-sipper", "en", "Sap Sipper")
}

// AddMeowth registers Meowth with its regional and Gigantamax varieties
func AddMeowth(c *mocks.Catalog) *mocks.Catalog {
	return c.AddSpecies(builders.NewSpecies("meowth").
		WithNames("en", "Meowth", "es", "Meowth").
		WithGenderRate(4).
		WithEggGroups("ground").
		WithVarieties("meowth", "meowth-alola", "meowth-galar", "meowth-gmax").
		Build())
}

// AddMachop registers Machop, Machoke and Machamp with FireRed encounters
// for Machop only
func AddMachop(c *mocks.Catalog) *mocks.Catalog {
	addPokemon(c,
		builders.NewPokemon("machop").WithTypes("fighting").Build(),
		builders.NewPokemon("machoke").WithTypes("fighting").Build(),
		builders.NewPokemon("machamp").WithTypes("fighting").Build(),
	)
	for _, s := range [][2]string{{"machop", "Machop"}, {"machoke", "Machoke"}, {"machamp", "Machamp"}} {
		c.AddSpecies(builders.NewSpecies(s[0]).
			WithNames("en", s[1]).
			WithGenderRate(2).
			WithEvolutionChain(MachopChain).
			Build())
	}

	return c.
		AddChain(builders.Chain(MachopChain, builders.Link("machop").EvolvesTo(
			builders.Link("machoke", builders.LevelUp().WithMinLevel(28).Build()).EvolvesTo(
				builders.Link("machamp", builders.Trigger("trade").Build()),
			),
		))).
		AddEncounters("machop",
			mocks.Encounter("rock-tunnel-1f", "red", "blue", "firered", "leafgreen"),
			mocks.Encounter("rock-tunnel-b1f", "firered", "leafgreen"),
			mocks.Encounter("mt-silver-2f", "gold", "silver"),
			mocks.Encounter("mt-ember-area", "firered"),
		).
		AddEncounters("machoke",
			mocks.Encounter("kanto-victory-road-2-1f", "red", "blue"),
		).
		AddEncounters("machamp").
		AddNamed("location-area", "rock-tunnel-1f", "en", "Rock Tunnel (1F)").
		AddNamed("location-area", "rock-tunnel-b1f", "en", "Rock Tunnel (B1F)").
		AddNamed("location-area", "mt-ember-area", "en", "Mount Ember")
}

// AddQuaxly registers Quaxly with its Scarlet/Violet level-up learnset and
// a few moves that must be filtered out
func AddQuaxly(c *mocks.Catalog) *mocks.Catalog {
	learnset := []struct {
		slug  string
		name  string
		level int
	}{
		{"pound", "Pound", 1},
		{"growl", "Growl", 1},
		{"water-gun", "Water Gun", 1},
		{"work-up", "Work Up", 7},
		{"wing-attack", "Wing Attack", 10},
		{"aqua-jet", "Aqua Jet", 13},
		{"double-hit", "Double Hit", 17},
		{"aqua-cutter", "Aqua Cutter", 21},
		{"air-slash", "Air Slash", 24},
		{"focus-energy", "Focus Energy", 28},
		{"acrobatics", "Acrobatics", 31},
		{"liquidation", "Liquidation", 35},
	}

	b := builders.NewPokemon("quaxly").WithTypes("water")
	for _, m := range learnset {
		b.WithLevelMove(m.slug, entities.DefaultVersionGroup, m.level)
		c.AddNamed("move", m.slug, "en", m.name)
	}
	b.WithMove("aqua-jet", "machine", entities.DefaultVersionGroup, 0).
		WithLevelMove("surf", "sword-shield", 20)
	addPokemon(c, b.Build())

	return c.
		AddSpecies(builders.NewSpecies("quaxly").WithNames("en", "Quaxly").Build()).
		AddNamed("move", "surf", "en", "Surf")
}
