package lookup

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/services/evolution"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
)

// Varieties lists the pokemon slugs of a species, default first
func (o *orchestrator) Varieties(ctx context.Context, input *VarietiesInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("species", input.Species); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	species, err := o.getSpecies(ctx, input.Species)
	if err != nil {
		return nil, err
	}

	lines := []string{r.Name(species.Name, species.Names) + ":"}
	for _, v := range species.Varieties {
		lines = append(lines, " - "+v.Pokemon.Name)
	}

	return &Output{Lines: lines}, nil
}

// Eggs lists the egg groups of a species
func (o *orchestrator) Eggs(ctx context.Context, input *EggsInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("species", input.Species); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	species, err := o.getSpecies(ctx, input.Species)
	if err != nil {
		return nil, err
	}
	if len(species.EggGroups) == 0 {
		return &Output{}, nil
	}

	labels := names.Slugs(species.EggGroups)
	if !r.Fast() {
		records, err := o.records(ctx, species.EggGroups)
		if err != nil {
			return nil, upstream(err, "API error: could not retrieve egg groups for %s", species.Name)
		}
		for i, rec := range records {
			labels[i] = r.Name(species.EggGroups[i].Name, rec.Names)
		}
	}

	lines := []string{r.Name(species.Name, species.Names) + ":"}
	for _, label := range labels {
		lines = append(lines, " - "+label)
	}

	return &Output{Lines: lines}, nil
}

// Genders shows the male and female percentages of a species
func (o *orchestrator) Genders(ctx context.Context, input *GendersInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("species", input.Species); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	species, err := o.getSpecies(ctx, input.Species)
	if err != nil {
		return nil, err
	}

	lines := []string{r.Name(species.Name, species.Names) + ":"}
	// gender_rate is the chance of being female in eighths, -1 when genderless
	female := float64(species.GenderRate) / 8 * 100
	if female < 0 {
		lines = append(lines, " Genderless")
	} else {
		lines = append(lines,
			fmt.Sprintf(" M: %5.1f%%", 100-female),
			fmt.Sprintf(" F: %5.1f%%", female))
	}

	return &Output{Lines: lines}, nil
}

// Evolutions lists the evolution paths of the species' family
func (o *orchestrator) Evolutions(ctx context.Context, input *EvolutionsInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("species", input.Species); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	species, err := o.getSpecies(ctx, input.Species)
	if err != nil {
		return nil, err
	}

	if species.EvolutionChain == nil {
		name := r.Name(species.Name, species.Names)
		if input.Secret {
			name = evolution.SecretName
		}
		return &Output{Lines: []string{name}}, nil
	}

	chain, err := o.client.FollowEvolutionChain(ctx, *species.EvolutionChain)
	if err != nil {
		return nil, upstream(err, "API error: could not retrieve evolution chain for %s", species.Name)
	}

	lines := evolution.New(r).Linearize(ctx, chain.Chain, evolution.Options{
		Secret: input.Secret,
		All:    input.All,
	})
	return &Output{Lines: lines}, nil
}
