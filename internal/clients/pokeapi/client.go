// Package pokeapi provides a client for the PokeAPI v2 REST service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokelookup/internal/clients/pokeapi Client

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/repositories/responsecache"
)

// DefaultBaseURL is the public PokeAPI endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2/"

// Client fetches PokeAPI resources. Get* methods look a resource up by slug;
// Follow* methods dereference a {name, url} reference embedded in another
// resource. Every method returns errors.NotFound for a 404,
// errors.Unavailable for transport or status failures and errors.DataLoss
// for a body that does not decode.
type Client interface {
	GetPokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error)
	GetPokemonSpecies(ctx context.Context, name string) (*pokeapi.PokemonSpecies, error)
	GetType(ctx context.Context, name string) (*pokeapi.Type, error)

	FollowPokemon(ctx context.Context, ref pokeapi.Resource) (*pokeapi.Pokemon, error)
	FollowSpecies(ctx context.Context, ref pokeapi.Resource) (*pokeapi.PokemonSpecies, error)
	FollowForm(ctx context.Context, ref pokeapi.Resource) (*pokeapi.PokemonForm, error)
	FollowEvolutionChain(ctx context.Context, ref pokeapi.URLResource) (*pokeapi.EvolutionChain, error)
	// FollowNamed dereferences any resource that carries localized names
	FollowNamed(ctx context.Context, ref pokeapi.Resource) (*pokeapi.NamedRecord, error)

	// GetEncounters fetches the location areas listed at a pokemon's
	// location_area_encounters URL
	GetEncounters(ctx context.Context, pokemon *pokeapi.Pokemon) ([]pokeapi.LocationAreaEncounter, error)

	// ListPokemonSpecies returns a reference to every species
	ListPokemonSpecies(ctx context.Context) ([]pokeapi.Resource, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      responsecache.Repository
}

// Config holds the configuration for the PokeAPI client
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client; HTTPTimeout is ignored when set
	HTTPClient *http.Client
	// Cache is optional; responses are always fetched when nil
	Cache responsecache.Repository
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", c.BaseURL, vb)
	if c.HTTPClient == nil && c.HTTPTimeout <= 0 {
		vb.Field("http_timeout", "must be positive")
	}
	return vb.Build()
}

// New creates a new PokeAPI client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		httpClient: httpClient,
		cache:      cfg.Cache,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (*pokeapi.Pokemon, error) {
	var out pokeapi.Pokemon
	if err := c.get(ctx, c.endpoint("pokemon", name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetPokemonSpecies(ctx context.Context, name string) (*pokeapi.PokemonSpecies, error) {
	var out pokeapi.PokemonSpecies
	if err := c.get(ctx, c.endpoint("pokemon-species", name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetType(ctx context.Context, name string) (*pokeapi.Type, error) {
	var out pokeapi.Type
	if err := c.get(ctx, c.endpoint("type", name), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) FollowPokemon(ctx context.Context, ref pokeapi.Resource) (*pokeapi.Pokemon, error) {
	var out pokeapi.Pokemon
	if err := c.follow(ctx, ref.URL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) FollowSpecies(ctx context.Context, ref pokeapi.Resource) (*pokeapi.PokemonSpecies, error) {
	var out pokeapi.PokemonSpecies
	if err := c.follow(ctx, ref.URL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) FollowForm(ctx context.Context, ref pokeapi.Resource) (*pokeapi.PokemonForm, error) {
	var out pokeapi.PokemonForm
	if err := c.follow(ctx, ref.URL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) FollowEvolutionChain(ctx context.Context, ref pokeapi.URLResource) (*pokeapi.EvolutionChain, error) {
	var out pokeapi.EvolutionChain
	if err := c.follow(ctx, ref.URL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) FollowNamed(ctx context.Context, ref pokeapi.Resource) (*pokeapi.NamedRecord, error) {
	var out pokeapi.NamedRecord
	if err := c.follow(ctx, ref.URL, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GetEncounters(ctx context.Context, pokemon *pokeapi.Pokemon) ([]pokeapi.LocationAreaEncounter, error) {
	if pokemon == nil {
		return nil, errors.InvalidArgument("pokemon cannot be nil")
	}

	var out []pokeapi.LocationAreaEncounter
	if err := c.follow(ctx, pokemon.LocationAreaEncounters, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// speciesPageSize covers every species in a single page
const speciesPageSize = 100000

func (c *client) ListPokemonSpecies(ctx context.Context) ([]pokeapi.Resource, error) {
	var out pokeapi.ResourceList
	url := c.baseURL + "pokemon-species?limit=" + strconv.Itoa(speciesPageSize)
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *client) endpoint(resource, name string) string {
	return c.baseURL + resource + "/" + name + "/"
}

func (c *client) follow(ctx context.Context, url string, out any) error {
	if url == "" {
		return errors.InvalidArgument("resource url cannot be empty")
	}
	return c.get(ctx, url, out)
}
