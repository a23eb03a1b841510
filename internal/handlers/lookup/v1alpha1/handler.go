// Package v1alpha1 serves the lookup queries over gRPC
package v1alpha1

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokelookup/internal/pkg/idgen"
	"github.com/KirkDiggler/pokelookup/internal/pkg/slug"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	LookupService lookup.Service
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.LookupService == nil {
		return errors.InvalidArgument("lookup service is required")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("id generator is required")
	}
	return nil
}

// Handler implements LookupServiceServer on top of the lookup orchestrator
type Handler struct {
	service lookup.Service
	ids     idgen.Generator
}

// NewHandler creates a new lookup handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.LookupService,
		ids:     cfg.IDGenerator,
	}, nil
}

// Varieties lists the pokemon belonging to a species
func (h *Handler) Varieties(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodVarieties, func() (*lookup.Output, error) {
		return h.service.Varieties(ctx, &lookup.VarietiesInput{
			Options: r.options(),
			Species: r.slug(FieldSubject),
		})
	})
}

// Types lists the types of a pokemon
func (h *Handler) Types(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodTypes, func() (*lookup.Output, error) {
		return h.service.Types(ctx, &lookup.TypesInput{
			Options:   r.options(),
			Pokemon:   r.slug(FieldSubject),
			Recursive: r.boolean(FieldRecursive),
		})
	})
}

// Abilities lists the abilities of a pokemon
func (h *Handler) Abilities(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodAbilities, func() (*lookup.Output, error) {
		return h.service.Abilities(ctx, &lookup.AbilitiesInput{
			Options:   r.options(),
			Pokemon:   r.slug(FieldSubject),
			Recursive: r.boolean(FieldRecursive),
		})
	})
}

// Moves lists the level-up moves of a pokemon
func (h *Handler) Moves(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}
	level := r.integer(FieldLevel)
	if level < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("level cannot be negative, got %d", level))
	}

	return h.respond(ctx, MethodMoves, func() (*lookup.Output, error) {
		return h.service.Moves(ctx, &lookup.MovesInput{
			Options:      r.options(),
			Pokemon:      r.slug(FieldSubject),
			VersionGroup: r.slug(FieldVersionGroup),
			Level:        level,
		})
	})
}

// Eggs lists the egg groups of a species
func (h *Handler) Eggs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodEggs, func() (*lookup.Output, error) {
		return h.service.Eggs(ctx, &lookup.EggsInput{
			Options: r.options(),
			Species: r.slug(FieldSubject),
		})
	})
}

// Genders reports the gender ratio of a species
func (h *Handler) Genders(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodGenders, func() (*lookup.Output, error) {
		return h.service.Genders(ctx, &lookup.GendersInput{
			Options: r.options(),
			Species: r.slug(FieldSubject),
		})
	})
}

// Encounters lists where a pokemon appears in the wild in one game version
func (h *Handler) Encounters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldVersion, FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodEncounters, func() (*lookup.Output, error) {
		return h.service.Encounters(ctx, &lookup.EncountersInput{
			Options:   r.options(),
			Version:   r.slug(FieldVersion),
			Pokemon:   r.slug(FieldSubject),
			Recursive: r.boolean(FieldRecursive),
		})
	})
}

// Evolutions lists the evolution paths of a species
func (h *Handler) Evolutions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodEvolutions, func() (*lookup.Output, error) {
		return h.service.Evolutions(ctx, &lookup.EvolutionsInput{
			Options: r.options(),
			Species: r.slug(FieldSubject),
			Secret:  r.boolean(FieldSecret),
			All:     r.boolean(FieldAll),
		})
	})
}

// Matchups renders the defensive matchups of one or two types
func (h *Handler) Matchups(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := request{req}
	if err := r.require(FieldSubject); err != nil {
		return nil, err
	}

	return h.respond(ctx, MethodMatchups, func() (*lookup.Output, error) {
		return h.service.Matchups(ctx, &lookup.MatchupsInput{
			Options:   r.options(),
			Primary:   r.slug(FieldSubject),
			Secondary: r.slug(FieldSecondary),
			List:      r.boolean(FieldList),
		})
	})
}

func (h *Handler) respond(
	ctx context.Context,
	method string,
	run func() (*lookup.Output, error),
) (*structpb.Struct, error) {
	id := h.ids.Generate()

	out, err := run()
	if err != nil {
		slog.DebugContext(ctx, "lookup failed", "request_id", id, "method", method, "error", err)
		return nil, errors.ToGRPCError(err)
	}

	lines := make([]any, 0, len(out.Lines))
	for _, line := range out.Lines {
		lines = append(lines, line)
	}

	resp, err := structpb.NewStruct(map[string]any{
		FieldRequestID: id,
		FieldLines:     lines,
	})
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return resp, nil
}

type request struct {
	*structpb.Struct
}

func (r request) value(key string) *structpb.Value {
	return r.GetFields()[key]
}

func (r request) slug(key string) string {
	return slug.Normalize(r.value(key).GetStringValue())
}

func (r request) boolean(key string) bool {
	return r.value(key).GetBoolValue()
}

func (r request) integer(key string) int {
	return int(r.value(key).GetNumberValue())
}

// options keeps the language as given since codes such as ja-Hrkt are
// case sensitive
func (r request) options() lookup.Options {
	return lookup.Options{
		Language: strings.TrimSpace(r.value(FieldLanguage).GetStringValue()),
		Fast:     r.boolean(FieldFast),
	}
}

func (r request) require(keys ...string) error {
	vb := errors.NewValidationBuilder()
	for _, key := range keys {
		if r.slug(key) == "" {
			vb.RequiredField(key)
		}
	}
	return errors.ToGRPCError(vb.Build())
}
