// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"sync/atomic"

	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokelookup/internal/clients/pokeapi/mock"
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/testutils/builders"
)

// Catalog is an in-memory PokeAPI keyed by resource URL. ExpectCatalog
// wires it behind a MockClient so tests can describe data instead of
// individual calls.
type Catalog struct {
	pokemon    map[string]*entities.Pokemon
	species    map[string]*entities.PokemonSpecies
	types      map[string]*entities.Type
	forms      map[string]*entities.PokemonForm
	chains     map[string]*entities.EvolutionChain
	named      map[string]*entities.NamedRecord
	encounters map[string][]entities.LocationAreaEncounter
	failing    map[string]bool

	// Fetches counts every client call served
	Fetches atomic.Int64
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		pokemon:    map[string]*entities.Pokemon{},
		species:    map[string]*entities.PokemonSpecies{},
		types:      map[string]*entities.Type{},
		forms:      map[string]*entities.PokemonForm{},
		chains:     map[string]*entities.EvolutionChain{},
		named:      map[string]*entities.NamedRecord{},
		encounters: map[string][]entities.LocationAreaEncounter{},
		failing:    map[string]bool{},
	}
}

// AddPokemon registers pokemon
func (c *Catalog) AddPokemon(pokemon ...*entities.Pokemon) *Catalog {
	for _, p := range pokemon {
		c.pokemon[builders.URL("pokemon", p.Name)] = p
	}
	return c
}

// AddSpecies registers species
func (c *Catalog) AddSpecies(species ...*entities.PokemonSpecies) *Catalog {
	for _, s := range species {
		c.species[builders.URL("pokemon-species", s.Name)] = s
	}
	return c
}

// AddTypes registers types
func (c *Catalog) AddTypes(types ...*entities.Type) *Catalog {
	for _, t := range types {
		c.types[builders.URL("type", t.Name)] = t
	}
	return c
}

// AddForm registers a pokemon form with localized names
func (c *Catalog) AddForm(slug string, isDefault bool, pairs ...string) *Catalog {
	c.forms[builders.URL("pokemon-form", slug)] = &entities.PokemonForm{
		Name:      slug,
		IsDefault: isDefault,
		Names:     builders.Names(pairs...),
	}
	return c
}

// AddChain registers an evolution chain
func (c *Catalog) AddChain(chain *entities.EvolutionChain) *Catalog {
	c.chains[builders.ChainURL(chain.ID)] = chain
	return c
}

// AddNamed registers a kind/slug record with localized names
func (c *Catalog) AddNamed(kind, slug string, pairs ...string) *Catalog {
	c.named[builders.URL(kind, slug)] = &entities.NamedRecord{Name: slug, Names: builders.Names(pairs...)}
	return c
}

// AddEncounters registers the encounter list of a pokemon
func (c *Catalog) AddEncounters(pokemon string, encounters ...entities.LocationAreaEncounter) *Catalog {
	c.encounters[builders.EncountersURL(pokemon)] = encounters
	return c
}

// Fail makes every fetch of url return errors.Unavailable
func (c *Catalog) Fail(url string) *Catalog {
	c.failing[url] = true
	return c
}

// Encounter builds an encounter in area for the given versions
func Encounter(area string, versions ...string) entities.LocationAreaEncounter {
	e := entities.LocationAreaEncounter{LocationArea: builders.Ref("location-area", area)}
	for _, v := range versions {
		e.VersionDetails = append(e.VersionDetails, entities.VersionEncounterDetail{
			MaxChance: 10,
			Version:   builders.Ref("version", v),
		})
	}
	return e
}

func find[T any](c *Catalog, m map[string]T, url string) (T, error) {
	c.Fetches.Add(1)
	var zero T
	if c.failing[url] {
		return zero, errors.Unavailablef("unexpected status 503 from %s", url)
	}
	v, ok := m[url]
	if !ok {
		return zero, errors.NotFoundf("resource not found: %s", url)
	}
	return v, nil
}

// followNamed serves FollowNamed from any record kind that carries names
func (c *Catalog) followNamed(url string) (*entities.NamedRecord, error) {
	if s, ok := c.species[url]; ok && !c.failing[url] {
		c.Fetches.Add(1)
		return &entities.NamedRecord{Name: s.Name, Names: s.Names}, nil
	}
	if t, ok := c.types[url]; ok && !c.failing[url] {
		c.Fetches.Add(1)
		return &entities.NamedRecord{Name: t.Name, Names: t.Names}, nil
	}
	return find(c, c.named, url)
}

// ExpectCatalog serves every Client method from the catalog, any number of times
func ExpectCatalog(mockClient *pokeapimock.MockClient, c *Catalog) {
	mockClient.EXPECT().
		GetPokemon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*entities.Pokemon, error) {
			return find(c, c.pokemon, builders.URL("pokemon", name))
		}).
		AnyTimes()
	mockClient.EXPECT().
		GetPokemonSpecies(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*entities.PokemonSpecies, error) {
			return find(c, c.species, builders.URL("pokemon-species", name))
		}).
		AnyTimes()
	mockClient.EXPECT().
		GetType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name string) (*entities.Type, error) {
			return find(c, c.types, builders.URL("type", name))
		}).
		AnyTimes()
	mockClient.EXPECT().
		FollowPokemon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entities.Resource) (*entities.Pokemon, error) {
			return find(c, c.pokemon, ref.URL)
		}).
		AnyTimes()
	mockClient.EXPECT().
		FollowSpecies(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entities.Resource) (*entities.PokemonSpecies, error) {
			return find(c, c.species, ref.URL)
		}).
		AnyTimes()
	mockClient.EXPECT().
		FollowForm(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entities.Resource) (*entities.PokemonForm, error) {
			return find(c, c.forms, ref.URL)
		}).
		AnyTimes()
	mockClient.EXPECT().
		FollowEvolutionChain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entities.URLResource) (*entities.EvolutionChain, error) {
			return find(c, c.chains, ref.URL)
		}).
		AnyTimes()
	mockClient.EXPECT().
		FollowNamed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref entities.Resource) (*entities.NamedRecord, error) {
			return c.followNamed(ref.URL)
		}).
		AnyTimes()
	mockClient.EXPECT().
		GetEncounters(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *entities.Pokemon) ([]entities.LocationAreaEncounter, error) {
			return find(c, c.encounters, p.LocationAreaEncounters)
		}).
		AnyTimes()
	mockClient.EXPECT().
		ListPokemonSpecies(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]entities.Resource, error) {
			c.Fetches.Add(1)
			out := make([]entities.Resource, 0, len(c.species))
			for _, s := range c.species {
				out = append(out, builders.Ref("pokemon-species", s.Name))
			}
			return out, nil
		}).
		AnyTimes()
}
