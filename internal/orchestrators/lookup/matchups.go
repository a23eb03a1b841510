package lookup

import (
	"context"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/services/matchup"
)

// Matchups shows the damage multipliers a pokemon of the given types
// takes from every attacking type
func (o *orchestrator) Matchups(ctx context.Context, input *MatchupsInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("primary", input.Primary, entities.Types, vb)
	if input.Secondary != "" {
		errors.ValidateEnum("secondary", input.Secondary, entities.Types, vb)
		if input.Secondary == input.Primary {
			vb.Field("secondary", "must differ from primary")
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	primary, err := o.client.GetType(ctx, input.Primary)
	if err != nil {
		return nil, upstream(err, "API error: could not retrieve type %s", input.Primary)
	}

	var secondary *entities.Type
	if input.Secondary != "" {
		secondary, err = o.client.GetType(ctx, input.Secondary)
		if err != nil {
			return nil, upstream(err, "API error: could not retrieve type %s", input.Secondary)
		}
	}

	cols := matchup.Resolve(ctx, r, matchup.Combine(primary, secondary))
	dual := secondary != nil

	if !input.List {
		return &Output{Lines: o.renderer.Table(cols, dual)}, nil
	}

	title := r.Name(primary.Name, primary.Names)
	if dual {
		title += "/" + r.Name(secondary.Name, secondary.Names)
	}
	return &Output{Lines: o.renderer.List(title, cols, dual)}, nil
}
