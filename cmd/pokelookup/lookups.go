package main

import (
	"context"

	"github.com/spf13/cobra"

	entities "github.com/KirkDiggler/pokelookup/internal/entities/pokeapi"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokelookup/internal/pkg/slug"
)

const levelUsage = "list the four latest moves at or below this level; 0 lists the whole learnset"

var (
	recursiveTypes      bool
	recursiveAbilities  bool
	recursiveEncounters bool
	versionGroup        string
	level               int
	secret              bool
	allMethods          bool
	asList              bool
)

var varietiesCmd = &cobra.Command{
	Use:   "list SPECIES",
	Short: "Look up the varieties of a given pokemon species",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Varieties(ctx, &lookup.VarietiesInput{
				Options: opts,
				Species: slug.Normalize(args[0]),
			})
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types POKEMON",
	Short: "Look up the type(s) of a given pokemon",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Types(ctx, &lookup.TypesInput{
				Options:   opts,
				Pokemon:   slug.Normalize(args[0]),
				Recursive: recursiveTypes,
			})
		})
	},
}

var abilitiesCmd = &cobra.Command{
	Use:   "abilities POKEMON",
	Short: "Look up the abilities of a given pokemon",
	Long: `Look up the abilities of a given pokemon. Hidden abilities are marked
accordingly.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Abilities(ctx, &lookup.AbilitiesInput{
				Options:   opts,
				Pokemon:   slug.Normalize(args[0]),
				Recursive: recursiveAbilities,
			})
		})
	},
}

var movesCmd = &cobra.Command{
	Use:   "moves POKEMON",
	Short: "Look up the level-up moveset of a given pokemon",
	Long: `Look up the level-up moveset of a given pokemon. With a level, the four
moves at or below that level are listed: the moveset a wild pokemon of that
level knows. A level of 0, the default, lists the whole learnset.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Moves(ctx, &lookup.MovesInput{
				Options:      opts,
				Pokemon:      slug.Normalize(args[0]),
				VersionGroup: slug.Normalize(versionGroup),
				Level:        level,
			})
		})
	},
}

var eggsCmd = &cobra.Command{
	Use:   "eggs SPECIES",
	Short: "Look up the egg groups of a given pokemon species",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Eggs(ctx, &lookup.EggsInput{
				Options: opts,
				Species: slug.Normalize(args[0]),
			})
		})
	},
}

var gendersCmd = &cobra.Command{
	Use:   "genders SPECIES",
	Short: "Look up the gender ratio of a given pokemon species",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Genders(ctx, &lookup.GendersInput{
				Options: opts,
				Species: slug.Normalize(args[0]),
			})
		})
	},
}

var encountersCmd = &cobra.Command{
	Use:   "encounters VERSION POKEMON",
	Short: "Look up where a pokemon can be found in the wild",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Encounters(ctx, &lookup.EncountersInput{
				Options:   opts,
				Version:   slug.Normalize(args[0]),
				Pokemon:   slug.Normalize(args[1]),
				Recursive: recursiveEncounters,
			})
		})
	},
}

var evolutionsCmd = &cobra.Command{
	Use:   "evolutions SPECIES",
	Short: "Look up the evolution chain of a given pokemon species",
	Long: `Look up the evolution chain of a given pokemon species. Paths reached by
several methods show only the most recent method unless --all is given.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Evolutions(ctx, &lookup.EvolutionsInput{
				Options: opts,
				Species: slug.Normalize(args[0]),
				Secret:  secret,
				All:     allMethods,
			})
		})
	},
}

var matchupsCmd = &cobra.Command{
	Use:   "matchups PRIMARY [SECONDARY]",
	Short: "Look up the defensive type matchups of one or two types",
	Args:  rangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var secondary string
		if len(args) == 2 {
			secondary = slug.Normalize(args[1])
		}

		return runLookup(cmd, func(ctx context.Context, s lookup.Service, opts lookup.Options) (*lookup.Output, error) {
			return s.Matchups(ctx, &lookup.MatchupsInput{
				Options:   opts,
				Primary:   slug.Normalize(args[0]),
				Secondary: secondary,
				List:      asList,
			})
		})
	},
}

func init() {
	typesCmd.Flags().BoolVarP(&recursiveTypes, "recursive", "r", false, "recursively check evolution chain")
	abilitiesCmd.Flags().BoolVarP(&recursiveAbilities, "recursive", "r", false, "recursively check evolution chain")
	encountersCmd.Flags().BoolVarP(&recursiveEncounters, "recursive", "r", false, "recursively check evolution chain")

	movesCmd.Flags().StringVarP(&versionGroup, "vgroup", "v", entities.DefaultVersionGroup, "version group of the moveset")
	movesCmd.Flags().IntVarP(&level, "level", "l", 0, levelUsage)

	evolutionsCmd.Flags().BoolVarP(&secret, "secret", "s", false, "hide the names of every species")
	evolutionsCmd.Flags().BoolVarP(&allMethods, "all", "a", false, "show every evolution method, even outdated ones")

	matchupsCmd.Flags().BoolVarP(&asList, "list", "l", false, "print output as a list instead of a table")
}

// exactArgs reports a wrong argument count as invalid input
func exactArgs(n int) cobra.PositionalArgs {
	return invalidInput(cobra.ExactArgs(n))
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return invalidInput(cobra.RangeArgs(lo, hi))
}

func invalidInput(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, err.Error())
		}
		return nil
	}
}
