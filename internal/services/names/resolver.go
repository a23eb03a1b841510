// Package names resolves PokeAPI slugs to localized display names.
//
// Resolution is total: whenever a localized name cannot be found, because
// the record has none for the language or because the fetch failed, the
// canonical slug is returned instead. In fast mode no fetches are made and
// every lookup yields the slug.
package names

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokelookup/internal/clients/pokeapi"
	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/pkg/batch"
)

// Resolver turns slugs and references into display names for one language
type Resolver struct {
	client   pokeapi.Client
	language string
	fast     bool
	limit    int
}

// Config configures a Resolver
type Config struct {
	Client   pokeapi.Client
	Language string
	// Fast skips every fetch and returns slugs
	Fast bool
	// Concurrency bounds batch resolution; batch.DefaultLimit when zero
	Concurrency int
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	errors.ValidateEnum("language", c.Language, entities.Languages, vb)
	if c.Concurrency < 0 {
		vb.Field("concurrency", "cannot be negative")
	}
	return vb.Build()
}

// New creates a Resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Resolver{
		client:   cfg.Client,
		language: cfg.Language,
		fast:     cfg.Fast,
		limit:    cfg.Concurrency,
	}, nil
}

// Language returns the language code names are resolved in
func (r *Resolver) Language() string { return r.language }

// Fast reports whether the resolver returns slugs without fetching
func (r *Resolver) Fast() bool { return r.fast }

// Unresolved returns a copy of the resolver in fast mode
func (r *Resolver) Unresolved() *Resolver {
	c := *r
	c.fast = true
	return &c
}

// display is the single switch between fast and resolved output
func (r *Resolver) display(slug string, resolve func() string) string {
	if r.fast {
		return slug
	}
	return resolve()
}

// Name resolves a record already in hand
func (r *Resolver) Name(slug string, names []entities.Name) string {
	return r.display(slug, func() string {
		return Localized(slug, names, r.language)
	})
}

// Follow fetches the referenced record and resolves its name. A failed
// fetch yields the reference's slug.
func (r *Resolver) Follow(ctx context.Context, ref entities.Resource) string {
	return r.display(ref.Name, func() string {
		record, err := r.client.FollowNamed(ctx, ref)
		if err != nil {
			slog.Debug("name lookup fell back to slug", "slug", ref.Name, "error", err)
			return ref.Name
		}
		return Localized(ref.Name, record.Names, r.language)
	})
}

// FollowAll resolves a batch of references concurrently, preserving order
func (r *Resolver) FollowAll(ctx context.Context, refs []entities.Resource) []string {
	if r.fast {
		return Slugs(refs)
	}

	out, err := batch.Map(ctx, r.limit, refs, func(ctx context.Context, ref entities.Resource) (string, error) {
		return r.Follow(ctx, ref), nil
	})
	if err != nil {
		// Follow never fails; only cancellation ends up here.
		return Slugs(refs)
	}
	return out
}

// Pokemon resolves a pokemon's display name in two tiers: the default
// form's localized name when that form has names at all, otherwise the
// species' localized name. Form names distinguish regional variants such as
// "Alolan Raichu" that the species name cannot.
func (r *Resolver) Pokemon(ctx context.Context, pokemon *entities.Pokemon) string {
	return r.display(pokemon.Name, func() string {
		forms, err := batch.Map(ctx, r.limit, pokemon.Forms, r.client.FollowForm)
		if err != nil {
			slog.Debug("form lookup fell back to slug", "pokemon", pokemon.Name, "error", err)
			return pokemon.Name
		}

		for _, form := range forms {
			if !form.IsDefault || len(form.Names) == 0 {
				continue
			}
			if name, ok := lookup(form.Names, r.language); ok {
				return name
			}
			break
		}

		return r.Follow(ctx, pokemon.Species)
	})
}

// Localized returns the display name for language from names. When several
// entries match the last one wins; slug is returned when none match.
func Localized(slug string, names []entities.Name, language string) string {
	if name, ok := lookup(names, language); ok {
		return name
	}
	return slug
}

func lookup(names []entities.Name, language string) (string, bool) {
	found := ""
	ok := false
	for _, n := range names {
		if n.Language.Name == language {
			found = n.Name
			ok = true
		}
	}
	return found, ok
}

// Slugs returns the names of refs
func Slugs(refs []entities.Resource) []string {
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = ref.Name
	}
	return out
}
