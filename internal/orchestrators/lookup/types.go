package lookup

// Options are shared by every lookup
type Options struct {
	// Language is the display language code; English when empty
	Language string
	// Fast prints slugs and skips every name lookup
	Fast bool
}

// Output holds the rendered lines of a lookup. An empty Lines means the
// subject exists but has nothing to show.
type Output struct {
	Lines []string
}

// VarietiesInput defines the request for listing the pokemon of a species
type VarietiesInput struct {
	Options
	Species string
}

// TypesInput defines the request for listing pokemon types
type TypesInput struct {
	Options
	Pokemon string
	// Recursive covers every variety of every species in the evolution family
	Recursive bool
}

// AbilitiesInput defines the request for listing pokemon abilities
type AbilitiesInput struct {
	Options
	Pokemon   string
	Recursive bool
}

// MovesInput defines the request for listing level-up moves
type MovesInput struct {
	Options
	Pokemon string
	// VersionGroup selects the learnset; DefaultVersionGroup when empty
	VersionGroup string
	// Level limits the list to the four most recent moves at or below it.
	// Zero lists the whole learnset.
	Level int
}

// EggsInput defines the request for listing egg groups
type EggsInput struct {
	Options
	Species string
}

// GendersInput defines the request for a species' gender ratio
type GendersInput struct {
	Options
	Species string
}

// EncountersInput defines the request for listing wild encounter areas
type EncountersInput struct {
	Options
	Version   string
	Pokemon   string
	Recursive bool
}

// EvolutionsInput defines the request for listing evolution paths
type EvolutionsInput struct {
	Options
	Species string
	// Secret hides every species name
	Secret bool
	// All keeps every evolution method instead of the latest per path
	All bool
}

// MatchupsInput defines the request for defensive type matchups
type MatchupsInput struct {
	Options
	Primary string
	// Secondary is optional
	Secondary string
	// List renders sections instead of a table
	List bool
}
