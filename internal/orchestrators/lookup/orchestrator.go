// Package lookup implements the pokelookup queries. Each one resolves its
// subject through the PokeAPI client, decorates it with localized names and
// returns the rendered lines.
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/pokelookup/internal/clients/pokeapi"
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/pkg/batch"
	"github.com/KirkDiggler/pokelookup/internal/pkg/suggest"
	"github.com/KirkDiggler/pokelookup/internal/services/matchup"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
)

// AppName is the command name used in remediation tips
const AppName = "pokelookup"

// Service defines the interface for lookup operations
type Service interface {
	Varieties(ctx context.Context, input *VarietiesInput) (*Output, error)
	Types(ctx context.Context, input *TypesInput) (*Output, error)
	Abilities(ctx context.Context, input *AbilitiesInput) (*Output, error)
	Moves(ctx context.Context, input *MovesInput) (*Output, error)
	Eggs(ctx context.Context, input *EggsInput) (*Output, error)
	Genders(ctx context.Context, input *GendersInput) (*Output, error)
	Encounters(ctx context.Context, input *EncountersInput) (*Output, error)
	Evolutions(ctx context.Context, input *EvolutionsInput) (*Output, error)
	Matchups(ctx context.Context, input *MatchupsInput) (*Output, error)
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	Client pokeapi.Client
	// Matcher proposes a spelling when a subject is not found; optional
	Matcher *suggest.Matcher
	// Concurrency bounds fan-out fetches; batch.DefaultLimit when zero
	Concurrency int
	// ColumnWidth is the matchup table column width
	ColumnWidth int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Concurrency < 0 {
		vb.Field("Concurrency", "cannot be negative")
	}
	if c.ColumnWidth < 0 {
		vb.Field("ColumnWidth", "cannot be negative")
	}
	return vb.Build()
}

type orchestrator struct {
	client   pokeapi.Client
	matcher  *suggest.Matcher
	limit    int
	renderer *matchup.Renderer
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		matcher:  cfg.Matcher,
		limit:    cfg.Concurrency,
		renderer: matchup.NewRenderer(cfg.ColumnWidth),
	}, nil
}

// resolver builds the per-request name resolver
func (o *orchestrator) resolver(opts Options) (*names.Resolver, error) {
	language := opts.Language
	if language == "" {
		language = entities.DefaultLanguage
	}

	r, err := names.New(&names.Config{
		Client:      o.client,
		Language:    language,
		Fast:        opts.Fast,
		Concurrency: o.limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}
	return r, nil
}

func requireSubject(field, value string) error {
	if value == "" {
		return errors.InvalidArgumentf("%s is required", field)
	}
	return nil
}

// getPokemon fetches the subject pokemon, turning a miss into the
// user-facing invalid pokemon error
func (o *orchestrator) getPokemon(ctx context.Context, name string) (*entities.Pokemon, error) {
	pokemon, err := o.client.GetPokemon(ctx, name)
	if err == nil {
		return pokemon, nil
	}
	if !errors.IsNotFound(err) {
		return nil, upstream(err, "API error: could not retrieve pokemon %s", name)
	}

	notFound := errors.WrapWithCodef(err, errors.CodeNotFound, "invalid pokemon: %s", name).
		WithTip(fmt.Sprintf("try running '%s list %s'", AppName, name))
	return nil, o.withSuggestion(ctx, notFound, name)
}

// getSpecies fetches the subject species, turning a miss into the
// user-facing invalid species error
func (o *orchestrator) getSpecies(ctx context.Context, name string) (*entities.PokemonSpecies, error) {
	species, err := o.client.GetPokemonSpecies(ctx, name)
	if err == nil {
		return species, nil
	}
	if !errors.IsNotFound(err) {
		return nil, upstream(err, "API error: could not retrieve pokemon species %s", name)
	}

	notFound := errors.WrapWithCodef(err, errors.CodeNotFound, "invalid pokemon species: %s", name)
	return nil, o.withSuggestion(ctx, notFound, name)
}

// withSuggestion attaches the closest species slug to a not found error
// when a matcher is configured. Failing to list species is not an error.
func (o *orchestrator) withSuggestion(ctx context.Context, err *errors.Error, name string) *errors.Error {
	if o.matcher == nil {
		return err
	}

	all, listErr := o.client.ListPokemonSpecies(ctx)
	if listErr != nil {
		slog.Debug("could not list species for suggestion", "error", listErr)
		return err
	}

	if best, ok := o.matcher.Closest(name, names.Slugs(all)); ok {
		err = err.WithSuggestion(best)
	}
	return err
}

// upstream wraps a failed secondary fetch. Malformed responses keep their
// data loss code; everything else is reported as unavailable.
func upstream(err error, format string, args ...interface{}) *errors.Error {
	code := errors.CodeUnavailable
	if errors.IsDataLoss(err) || errors.IsCanceled(err) {
		code = errors.GetCode(err)
	}
	return errors.WrapWithCodef(err, code, format, args...)
}

// subjects returns the pokemon a per-pokemon lookup reports on: the
// pokemon alone, or with recursive every variety of every species in its
// evolution family, in depth-first order.
func (o *orchestrator) subjects(ctx context.Context, name string, recursive bool) ([]*entities.Pokemon, error) {
	pokemon, err := o.getPokemon(ctx, name)
	if err != nil {
		return nil, err
	}
	if !recursive {
		return []*entities.Pokemon{pokemon}, nil
	}

	species, err := o.client.FollowSpecies(ctx, pokemon.Species)
	if err != nil {
		return nil, upstream(err, "API error: could not retrieve species for %s", pokemon.Name)
	}
	if species.EvolutionChain == nil {
		return o.varieties(ctx, species)
	}

	chain, err := o.client.FollowEvolutionChain(ctx, *species.EvolutionChain)
	if err != nil {
		return nil, upstream(err, "API error: could not retrieve evolution chain for %s", species.Name)
	}

	var members []entities.Resource
	walkChain(chain.Chain, func(link entities.ChainLink) {
		members = append(members, link.Species)
	})

	var out []*entities.Pokemon
	for _, member := range members {
		memberSpecies, err := o.client.GetPokemonSpecies(ctx, member.Name)
		if err != nil {
			return nil, upstream(err, "API error: could not retrieve pokemon species %s", member.Name)
		}
		varieties, err := o.varieties(ctx, memberSpecies)
		if err != nil {
			return nil, err
		}
		out = append(out, varieties...)
	}
	return out, nil
}

// varieties fetches every pokemon of a species in one batch
func (o *orchestrator) varieties(ctx context.Context, species *entities.PokemonSpecies) ([]*entities.Pokemon, error) {
	refs := make([]entities.Resource, len(species.Varieties))
	for i, v := range species.Varieties {
		refs[i] = v.Pokemon
	}

	out, err := batch.Map(ctx, o.limit, refs, o.client.FollowPokemon)
	if err != nil {
		return nil, upstream(err, "API error: could not retrieve varieties for %s", species.Name)
	}
	return out, nil
}

func walkChain(link entities.ChainLink, visit func(entities.ChainLink)) {
	visit(link)
	for _, child := range link.EvolvesTo {
		walkChain(child, visit)
	}
}

// records fetches named records in one batch
func (o *orchestrator) records(ctx context.Context, refs []entities.Resource) ([]*entities.NamedRecord, error) {
	return batch.Map(ctx, o.limit, refs, o.client.FollowNamed)
}
