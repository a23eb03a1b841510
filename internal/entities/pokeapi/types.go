// Package pokeapi holds the subset of PokeAPI v2 resources the lookups read.
// Field names follow the upstream JSON; optional evolution conditions are
// pointers so that an absent value can be told apart from a zero value.
package pokeapi

// Resource is a named reference to another resource
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// URLResource is an unnamed reference, used for evolution chains
type URLResource struct {
	URL string `json:"url"`
}

// Name is one localized display name of a resource
type Name struct {
	Name     string   `json:"name"`
	Language Resource `json:"language"`
}

// NamedRecord is any resource carrying localized names. Abilities, moves,
// items, egg groups, locations, types and triggers all decode into it.
type NamedRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Names []Name `json:"names"`
}

// Pokemon is a concrete pokemon (one variety of a species)
type Pokemon struct {
	ID                     int              `json:"id"`
	Name                   string           `json:"name"`
	IsDefault              bool             `json:"is_default"`
	Species                Resource         `json:"species"`
	Forms                  []Resource       `json:"forms"`
	Types                  []PokemonType    `json:"types"`
	Abilities              []PokemonAbility `json:"abilities"`
	Moves                  []PokemonMove    `json:"moves"`
	LocationAreaEncounters string           `json:"location_area_encounters"`
}

// PokemonType is a pokemon's type in a slot
type PokemonType struct {
	Slot int      `json:"slot"`
	Type Resource `json:"type"`
}

// PokemonAbility is an ability a pokemon may have
type PokemonAbility struct {
	Slot     int      `json:"slot"`
	IsHidden bool     `json:"is_hidden"`
	Ability  Resource `json:"ability"`
}

// PokemonMove is a move with every way it can be learned
type PokemonMove struct {
	Move                Resource            `json:"move"`
	VersionGroupDetails []MoveVersionDetail `json:"version_group_details"`
}

// MoveVersionDetail describes how a move is learned in one version group
type MoveVersionDetail struct {
	LevelLearnedAt  int      `json:"level_learned_at"`
	MoveLearnMethod Resource `json:"move_learn_method"`
	VersionGroup    Resource `json:"version_group"`
}

// PokemonForm is a form of a pokemon
type PokemonForm struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	IsDefault bool     `json:"is_default"`
	FormName  string   `json:"form_name"`
	Pokemon   Resource `json:"pokemon"`
	Names     []Name   `json:"names"`
}

// PokemonSpecies groups the varieties of one species
type PokemonSpecies struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Names          []Name       `json:"names"`
	GenderRate     int          `json:"gender_rate"`
	EggGroups      []Resource   `json:"egg_groups"`
	Varieties      []Variety    `json:"varieties"`
	EvolutionChain *URLResource `json:"evolution_chain"`
}

// Variety is one pokemon belonging to a species
type Variety struct {
	IsDefault bool     `json:"is_default"`
	Pokemon   Resource `json:"pokemon"`
}

// Type is an elemental type with its defensive damage relations
type Type struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Names           []Name          `json:"names"`
	DamageRelations DamageRelations `json:"damage_relations"`
}

// DamageRelations lists attacking types by effectiveness against this type
type DamageRelations struct {
	NoDamageFrom     []Resource `json:"no_damage_from"`
	HalfDamageFrom   []Resource `json:"half_damage_from"`
	DoubleDamageFrom []Resource `json:"double_damage_from"`
}

// EvolutionChain is the evolution tree rooted at a base species
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one species node in an evolution tree
type ChainLink struct {
	IsBaby           bool              `json:"is_baby"`
	Species          Resource          `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one way of evolving into a ChainLink's species
type EvolutionDetail struct {
	Trigger               Resource  `json:"trigger"`
	Item                  *Resource `json:"item"`
	Gender                *int      `json:"gender"`
	HeldItem              *Resource `json:"held_item"`
	KnownMove             *Resource `json:"known_move"`
	KnownMoveType         *Resource `json:"known_move_type"`
	Location              *Resource `json:"location"`
	MinLevel              *int      `json:"min_level"`
	MinHappiness          *int      `json:"min_happiness"`
	MinBeauty             *int      `json:"min_beauty"`
	MinAffection          *int      `json:"min_affection"`
	NeedsOverworldRain    bool      `json:"needs_overworld_rain"`
	PartySpecies          *Resource `json:"party_species"`
	PartyType             *Resource `json:"party_type"`
	RelativePhysicalStats *int      `json:"relative_physical_stats"`
	TimeOfDay             string    `json:"time_of_day"`
	TradeSpecies          *Resource `json:"trade_species"`
	TurnUpsideDown        bool      `json:"turn_upside_down"`
}

// LocationAreaEncounter is an area where a pokemon can be found
type LocationAreaEncounter struct {
	LocationArea   Resource                 `json:"location_area"`
	VersionDetails []VersionEncounterDetail `json:"version_details"`
}

// VersionEncounterDetail scopes an encounter to a game version
type VersionEncounterDetail struct {
	MaxChance int      `json:"max_chance"`
	Version   Resource `json:"version"`
}

// ResourceList is a page of a list endpoint
type ResourceList struct {
	Count   int        `json:"count"`
	Next    *string    `json:"next"`
	Results []Resource `json:"results"`
}
