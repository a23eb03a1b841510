// Package builders provides test data builders for PokeAPI fixtures
package builders

import (
	"fmt"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
)

// BaseURL is the API root every fixture reference points into
const BaseURL = "https://pokeapi.co/api/v2/"

// URL returns the canonical resource URL for kind and slug
func URL(kind, slug string) string {
	return BaseURL + kind + "/" + slug + "/"
}

// Ref returns a reference to the kind/slug resource
func Ref(kind, slug string) entities.Resource {
	return entities.Resource{Name: slug, URL: URL(kind, slug)}
}

// Refs returns references to several resources of one kind
func Refs(kind string, slugs ...string) []entities.Resource {
	out := make([]entities.Resource, len(slugs))
	for i, slug := range slugs {
		out[i] = Ref(kind, slug)
	}
	return out
}

// Names builds localized names from language/name pairs:
// Names("en", "Eevee", "es", "Eevee")
func Names(pairs ...string) []entities.Name {
	if len(pairs)%2 != 0 {
		panic("builders.Names needs language/name pairs")
	}
	out := make([]entities.Name, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, entities.Name{
			Language: Ref("language", pairs[i]),
			Name:     pairs[i+1],
		})
	}
	return out
}

// ChainURL returns the URL of an evolution chain by id
func ChainURL(id int) string {
	return fmt.Sprintf("%sevolution-chain/%d/", BaseURL, id)
}

// EncountersURL returns the location_area_encounters URL of a pokemon
func EncountersURL(slug string) string {
	return BaseURL + "pokemon/" + slug + "/encounters"
}

// PokemonBuilder provides a fluent interface for building test Pokemon
type PokemonBuilder struct {
	pokemon *entities.Pokemon
}

// NewPokemon creates a pokemon whose species and single form share its slug
func NewPokemon(slug string) *PokemonBuilder {
	return &PokemonBuilder{
		pokemon: &entities.Pokemon{
			Name:                   slug,
			IsDefault:              true,
			Species:                Ref("pokemon-species", slug),
			Forms:                  []entities.Resource{Ref("pokemon-form", slug)},
			LocationAreaEncounters: EncountersURL(slug),
		},
	}
}

// WithSpecies sets the species reference
func (b *PokemonBuilder) WithSpecies(slug string) *PokemonBuilder {
	b.pokemon.Species = Ref("pokemon-species", slug)
	return b
}

// WithForms replaces the form references
func (b *PokemonBuilder) WithForms(slugs ...string) *PokemonBuilder {
	b.pokemon.Forms = Refs("pokemon-form", slugs...)
	return b
}

// WithTypes sets the types in slot order
func (b *PokemonBuilder) WithTypes(slugs ...string) *PokemonBuilder {
	b.pokemon.Types = nil
	for i, slug := range slugs {
		b.pokemon.Types = append(b.pokemon.Types, entities.PokemonType{Slot: i + 1, Type: Ref("type", slug)})
	}
	return b
}

// WithAbility appends an ability
func (b *PokemonBuilder) WithAbility(slug string, hidden bool) *PokemonBuilder {
	b.pokemon.Abilities = append(b.pokemon.Abilities, entities.PokemonAbility{
		Slot:     len(b.pokemon.Abilities) + 1,
		IsHidden: hidden,
		Ability:  Ref("ability", slug),
	})
	return b
}

// WithMove appends a move learned one way in one version group
func (b *PokemonBuilder) WithMove(slug, method, versionGroup string, level int) *PokemonBuilder {
	detail := entities.MoveVersionDetail{
		LevelLearnedAt:  level,
		MoveLearnMethod: Ref("move-learn-method", method),
		VersionGroup:    Ref("version-group", versionGroup),
	}
	for i := range b.pokemon.Moves {
		if b.pokemon.Moves[i].Move.Name == slug {
			b.pokemon.Moves[i].VersionGroupDetails = append(b.pokemon.Moves[i].VersionGroupDetails, detail)
			return b
		}
	}
	b.pokemon.Moves = append(b.pokemon.Moves, entities.PokemonMove{
		Move:                Ref("move", slug),
		VersionGroupDetails: []entities.MoveVersionDetail{detail},
	})
	return b
}

// WithLevelMove appends a level-up move
func (b *PokemonBuilder) WithLevelMove(slug, versionGroup string, level int) *PokemonBuilder {
	return b.WithMove(slug, entities.LearnMethodLevelUp, versionGroup, level)
}

// Build returns the built Pokemon
func (b *PokemonBuilder) Build() *entities.Pokemon {
	return b.pokemon
}

// SpeciesBuilder provides a fluent interface for building test species
type SpeciesBuilder struct {
	species *entities.PokemonSpecies
}

// NewSpecies creates a species whose only variety shares its slug
func NewSpecies(slug string) *SpeciesBuilder {
	return &SpeciesBuilder{
		species: &entities.PokemonSpecies{
			Name:      slug,
			Varieties: []entities.Variety{{IsDefault: true, Pokemon: Ref("pokemon", slug)}},
		},
	}
}

// WithNames sets localized names from language/name pairs
func (b *SpeciesBuilder) WithNames(pairs ...string) *SpeciesBuilder {
	b.species.Names = Names(pairs...)
	return b
}

// WithGenderRate sets the chance of being female in eighths, -1 for genderless
func (b *SpeciesBuilder) WithGenderRate(rate int) *SpeciesBuilder {
	b.species.GenderRate = rate
	return b
}

// WithEggGroups sets the egg groups
func (b *SpeciesBuilder) WithEggGroups(slugs ...string) *SpeciesBuilder {
	b.species.EggGroups = Refs("egg-group", slugs...)
	return b
}

// WithVarieties replaces the varieties; the first is the default
func (b *SpeciesBuilder) WithVarieties(slugs ...string) *SpeciesBuilder {
	b.species.Varieties = nil
	for i, slug := range slugs {
		b.species.Varieties = append(b.species.Varieties, entities.Variety{IsDefault: i == 0, Pokemon: Ref("pokemon", slug)})
	}
	return b
}

// WithEvolutionChain links the species to a chain id
func (b *SpeciesBuilder) WithEvolutionChain(id int) *SpeciesBuilder {
	b.species.EvolutionChain = &entities.URLResource{URL: ChainURL(id)}
	return b
}

// Build returns the built species
func (b *SpeciesBuilder) Build() *entities.PokemonSpecies {
	return b.species
}

// TypeBuilder provides a fluent interface for building test types
type TypeBuilder struct {
	t *entities.Type
}

// NewType creates a type with no damage relations
func NewType(slug string) *TypeBuilder {
	return &TypeBuilder{t: &entities.Type{Name: slug}}
}

// WithNames sets localized names from language/name pairs
func (b *TypeBuilder) WithNames(pairs ...string) *TypeBuilder {
	b.t.Names = Names(pairs...)
	return b
}

// WithNoDamageFrom sets the immunities
func (b *TypeBuilder) WithNoDamageFrom(slugs ...string) *TypeBuilder {
	b.t.DamageRelations.NoDamageFrom = Refs("type", slugs...)
	return b
}

// WithHalfDamageFrom sets the resistances
func (b *TypeBuilder) WithHalfDamageFrom(slugs ...string) *TypeBuilder {
	b.t.DamageRelations.HalfDamageFrom = Refs("type", slugs...)
	return b
}

// WithDoubleDamageFrom sets the weaknesses
func (b *TypeBuilder) WithDoubleDamageFrom(slugs ...string) *TypeBuilder {
	b.t.DamageRelations.DoubleDamageFrom = Refs("type", slugs...)
	return b
}

// Build returns the built type
func (b *TypeBuilder) Build() *entities.Type {
	return b.t
}
