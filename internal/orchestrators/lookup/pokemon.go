package lookup

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
)

// currentMoveset is how many moves a pokemon knows at once
const currentMoveset = 4

// Types lists each pokemon's types in slot order
func (o *orchestrator) Types(ctx context.Context, input *TypesInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("pokemon", input.Pokemon); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	subjects, err := o.subjects(ctx, input.Pokemon, input.Recursive)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, p := range subjects {
		refs := make([]entities.Resource, len(p.Types))
		for i, t := range p.Types {
			refs[i] = t.Type
		}
		lines = append(lines,
			r.Pokemon(ctx, p)+":",
			"  "+strings.Join(r.FollowAll(ctx, refs), "/"))
	}

	return &Output{Lines: lines}, nil
}

// Abilities lists each pokemon's abilities, marking hidden ones
func (o *orchestrator) Abilities(ctx context.Context, input *AbilitiesInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("pokemon", input.Pokemon); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	subjects, err := o.subjects(ctx, input.Pokemon, input.Recursive)
	if err != nil {
		return nil, err
	}

	hiddenMark := " (Hidden)"
	if r.Fast() {
		hiddenMark = " (hidden)"
	}

	var lines []string
	for _, p := range subjects {
		refs := make([]entities.Resource, len(p.Abilities))
		for i, a := range p.Abilities {
			refs[i] = a.Ability
		}

		labels := names.Slugs(refs)
		if !r.Fast() {
			records, err := o.records(ctx, refs)
			if err != nil {
				return nil, upstream(err, "API error: could not retrieve abilities for %s", p.Name)
			}
			for i, rec := range records {
				labels[i] = r.Name(refs[i].Name, rec.Names)
			}
		}

		lines = append(lines, r.Pokemon(ctx, p)+":")
		for i, a := range p.Abilities {
			label := labels[i]
			if a.IsHidden {
				label += hiddenMark
			}
			lines = append(lines, fmt.Sprintf(" %d. %s", i+1, label))
		}
	}

	return &Output{Lines: lines}, nil
}

type learnedMove struct {
	move  entities.Resource
	level int
}

// Moves lists the level-up learnset of a pokemon in one version group in
// ascending level order. With a level only the four most recent moves at
// or below it are listed: the moveset of a pokemon that never forgot a
// move.
func (o *orchestrator) Moves(ctx context.Context, input *MovesInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("pokemon", input.Pokemon); err != nil {
		return nil, err
	}
	versionGroup := input.VersionGroup
	if versionGroup == "" {
		versionGroup = entities.DefaultVersionGroup
	}
	if !entities.IsVersionGroup(versionGroup) {
		return nil, errors.InvalidArgumentf("invalid version group: %s (valid values: %s)",
			versionGroup, strings.Join(entities.VersionGroups, ", "))
	}
	if input.Level < 0 {
		return nil, errors.InvalidArgumentf("level cannot be negative, got %d", input.Level)
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	p, err := o.getPokemon(ctx, input.Pokemon)
	if err != nil {
		return nil, err
	}

	var moves []learnedMove
	for _, m := range p.Moves {
		for _, d := range m.VersionGroupDetails {
			if d.MoveLearnMethod.Name != entities.LearnMethodLevelUp || d.VersionGroup.Name != versionGroup {
				continue
			}
			if input.Level > 0 && d.LevelLearnedAt > input.Level {
				continue
			}
			moves = append(moves, learnedMove{move: m.Move, level: d.LevelLearnedAt})
		}
	}
	if len(moves) == 0 {
		return &Output{}, nil
	}

	slices.SortStableFunc(moves, func(a, b learnedMove) int {
		return cmp.Compare(b.level, a.level)
	})
	if input.Level > 0 && len(moves) > currentMoveset {
		moves = moves[:currentMoveset]
	}
	slices.Reverse(moves)

	refs := make([]entities.Resource, len(moves))
	for i, m := range moves {
		refs[i] = m.move
	}
	labels := r.FollowAll(ctx, refs)

	lines := []string{r.Pokemon(ctx, p) + ":"}
	for i, m := range moves {
		lines = append(lines, fmt.Sprintf(" - %s (%d)", labels[i], m.level))
	}

	return &Output{Lines: lines}, nil
}

// Encounters lists the location areas each pokemon can be found in for a
// game version. Pokemon without any are left out.
func (o *orchestrator) Encounters(ctx context.Context, input *EncountersInput) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireSubject("version", input.Version); err != nil {
		return nil, err
	}
	if !entities.IsVersion(input.Version) {
		return nil, errors.InvalidArgumentf("invalid version: %s (valid values: %s)",
			input.Version, strings.Join(entities.Versions, ", "))
	}
	if err := requireSubject("pokemon", input.Pokemon); err != nil {
		return nil, err
	}
	r, err := o.resolver(input.Options)
	if err != nil {
		return nil, err
	}

	subjects, err := o.subjects(ctx, input.Pokemon, input.Recursive)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, p := range subjects {
		encounters, err := o.client.GetEncounters(ctx, p)
		if err != nil {
			return nil, upstream(err, "API error: could not follow url for encounters for %s", p.Name)
		}

		areas := areasIn(encounters, input.Version)
		if len(areas) == 0 {
			continue
		}

		lines = append(lines, r.Pokemon(ctx, p)+":")
		for _, name := range r.FollowAll(ctx, areas) {
			lines = append(lines, " - "+name)
		}
	}

	return &Output{Lines: lines}, nil
}

func areasIn(encounters []entities.LocationAreaEncounter, version string) []entities.Resource {
	var areas []entities.Resource
	for _, enc := range encounters {
		for _, d := range enc.VersionDetails {
			if d.Version.Name == version {
				areas = append(areas, enc.LocationArea)
				break
			}
		}
	}
	return areas
}
