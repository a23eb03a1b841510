package lookup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokelookup/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
	"github.com/KirkDiggler/pokelookup/internal/pkg/suggest"
	"github.com/KirkDiggler/pokelookup/internal/testutils"
	"github.com/KirkDiggler/pokelookup/internal/testutils/builders"
	"github.com/KirkDiggler/pokelookup/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	catalog      *mocks.Catalog
	orchestrator lookup.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	s.catalog = mocks.NewCatalog()
	testutils.AddEvolutionRecords(s.catalog)
	testutils.AddEevee(s.catalog)
	testutils.AddFarfetchd(s.catalog)
	testutils.AddToxel(s.catalog)
	testutils.AddStantler(s.catalog)
	testutils.AddMeowth(s.catalog)
	testutils.AddMachop(s.catalog)
	testutils.AddQuaxly(s.catalog)
	s.catalog.AddSpecies(
		builders.NewSpecies("pikachu").WithNames("en", "Pikachu").Build(),
		builders.NewSpecies("tauros").WithNames("en", "Tauros", "es", "Tauros").Build(),
	)
	mocks.ExpectCatalog(s.mockClient, s.catalog)

	var err error
	s.orchestrator, err = lookup.NewOrchestrator(&lookup.Config{
		Client:  s.mockClient,
		Matcher: suggest.New(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func en(fast bool) lookup.Options {
	return lookup.Options{Language: "en", Fast: fast}
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := lookup.NewOrchestrator(&lookup.Config{Concurrency: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client: is required")
	s.Contains(err.Error(), "Concurrency: cannot be negative")
}

func (s *OrchestratorTestSuite) TestTypes() {
	testCases := []struct {
		name     string
		fast     bool
		expected []string
	}{
		{"resolved", false, []string{"Toxel:", "  Electric/Poison"}},
		{"fast", true, []string{"toxel:", "  electric/poison"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{Options: en(tc.fast), Pokemon: "toxel"})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Lines)
		})
	}
}

func (s *OrchestratorTestSuite) TestTypesRecursive() {
	out, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{
		Options:   en(true),
		Pokemon:   "stantler",
		Recursive: true,
	})
	s.Require().NoError(err)
	s.Equal([]string{"stantler:", "  normal", "wyrdeer:", "  normal/psychic"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestTypesDefaultsToEnglish() {
	out, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{Pokemon: "toxel"})
	s.Require().NoError(err)
	s.Equal([]string{"Toxel:", "  Electric/Poison"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestAbilities() {
	testCases := []struct {
		name     string
		options  lookup.Options
		expected []string
	}{
		{
			name:     "resolved",
			options:  en(false),
			expected: []string{"Toxel:", " 1. Rattled", " 2. Static", " 3. Klutz (Hidden)"},
		},
		{
			name:     "fast",
			options:  en(true),
			expected: []string{"toxel:", " 1. rattled", " 2. static", " 3. klutz (hidden)"},
		},
		{
			name:     "spanish",
			options:  lookup.Options{Language: "es"},
			expected: []string{"Toxel:", " 1. Cobardía", " 2. Elec. Estática", " 3. Zoquete (Hidden)"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.Abilities(s.ctx, &lookup.AbilitiesInput{Options: tc.options, Pokemon: "toxel"})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Lines)
		})
	}
}

func (s *OrchestratorTestSuite) TestAbilitiesRecursive() {
	out, err := s.orchestrator.Abilities(s.ctx, &lookup.AbilitiesInput{
		Options:   en(false),
		Pokemon:   "stantler",
		Recursive: true,
	})
	s.Require().NoError(err)
	s.Equal([]string{
		"Stantler:", " 1. Intimidate", " 2. Frisk", " 3. Sap Sipper (Hidden)",
		"Wyrdeer:", " 1. Intimidate", " 2. Frisk", " 3. Sap Sipper (Hidden)",
	}, out.Lines)
}

func (s *OrchestratorTestSuite) TestAbilitiesBatchFailure() {
	s.catalog.Fail(builders.URL("ability", "static"))

	_, err := s.orchestrator.Abilities(s.ctx, &lookup.AbilitiesInput{Options: en(false), Pokemon: "toxel"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("API error: could not retrieve abilities for toxel", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestMoves() {
	out, err := s.orchestrator.Moves(s.ctx, &lookup.MovesInput{Options: en(true), Pokemon: "quaxly"})
	s.Require().NoError(err)
	s.Equal([]string{
		"quaxly:", " - water-gun (1)", " - growl (1)", " - pound (1)", " - work-up (7)",
		" - wing-attack (10)", " - aqua-jet (13)", " - double-hit (17)", " - aqua-cutter (21)",
		" - air-slash (24)", " - focus-energy (28)", " - acrobatics (31)", " - liquidation (35)",
	}, out.Lines)
}

func (s *OrchestratorTestSuite) TestMovesAtLevel() {
	out, err := s.orchestrator.Moves(s.ctx, &lookup.MovesInput{Options: en(false), Pokemon: "quaxly", Level: 30})
	s.Require().NoError(err)
	s.Equal([]string{
		"Quaxly:", " - Double Hit (17)", " - Aqua Cutter (21)", " - Air Slash (24)", " - Focus Energy (28)",
	}, out.Lines)
}

func (s *OrchestratorTestSuite) TestMovesAtLevelOneIsALimit() {
	out, err := s.orchestrator.Moves(s.ctx, &lookup.MovesInput{Options: en(true), Pokemon: "quaxly", Level: 1})
	s.Require().NoError(err)
	s.Equal([]string{"quaxly:", " - water-gun (1)", " - growl (1)", " - pound (1)"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestMovesOtherVersionGroup() {
	out, err := s.orchestrator.Moves(s.ctx, &lookup.MovesInput{
		Options:      en(false),
		Pokemon:      "quaxly",
		VersionGroup: "sword-shield",
	})
	s.Require().NoError(err)
	s.Equal([]string{"Quaxly:", " - Surf (20)"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestMovesEmptyLearnset() {
	out, err := s.orchestrator.Moves(s.ctx, &lookup.MovesInput{Options: en(false), Pokemon: "quaxly", VersionGroup: "red-blue"})
	s.Require().NoError(err)
	s.Empty(out.Lines)
}

func (s *OrchestratorTestSuite) TestMovesInvalidInput() {
	testCases := []struct {
		name  string
		input *lookup.MovesInput
	}{
		{"nil input", nil},
		{"missing pokemon", &lookup.MovesInput{}},
		{"unknown version group", &lookup.MovesInput{Pokemon: "quaxly", VersionGroup: "pokemon-snap"}},
		{"negative level", &lookup.MovesInput{Pokemon: "quaxly", Level: -1}},
		{"unknown language", &lookup.MovesInput{Pokemon: "quaxly", Options: lookup.Options{Language: "tlh"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Moves(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestEggs() {
	testCases := []struct {
		name     string
		fast     bool
		expected []string
	}{
		{"resolved", false, []string{"Stantler:", " - Field"}},
		{"fast", true, []string{"stantler:", " - ground"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.Eggs(s.ctx, &lookup.EggsInput{Options: en(tc.fast), Species: "stantler"})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Lines)
		})
	}
}

func (s *OrchestratorTestSuite) TestEggsNone() {
	out, err := s.orchestrator.Eggs(s.ctx, &lookup.EggsInput{Options: en(false), Species: "wyrdeer"})
	s.Require().NoError(err)
	s.Empty(out.Lines)
}

func (s *OrchestratorTestSuite) TestEggsBatchFailure() {
	s.catalog.Fail(builders.URL("egg-group", "ground"))

	_, err := s.orchestrator.Eggs(s.ctx, &lookup.EggsInput{Options: en(false), Species: "stantler"})
	s.Require().Error(err)
	s.Equal("API error: could not retrieve egg groups for stantler", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestGenders() {
	out, err := s.orchestrator.Genders(s.ctx, &lookup.GendersInput{Options: en(false), Species: "meowth"})
	s.Require().NoError(err)
	s.Equal([]string{"Meowth:", " M:  50.0%", " F:  50.0%"}, out.Lines)

	out, err = s.orchestrator.Genders(s.ctx, &lookup.GendersInput{Options: en(true), Species: "machop"})
	s.Require().NoError(err)
	s.Equal([]string{"machop:", " M:  75.0%", " F:  25.0%"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestGendersGenderless() {
	s.catalog.AddSpecies(builders.NewSpecies("magnemite").WithNames("en", "Magnemite").WithGenderRate(-1).Build())

	out, err := s.orchestrator.Genders(s.ctx, &lookup.GendersInput{Options: en(false), Species: "magnemite"})
	s.Require().NoError(err)
	s.Equal([]string{"Magnemite:", " Genderless"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestVarieties() {
	for _, fast := range []bool{false, true} {
		out, err := s.orchestrator.Varieties(s.ctx, &lookup.VarietiesInput{Options: en(fast), Species: "meowth"})
		s.Require().NoError(err)

		header := "Meowth:"
		if fast {
			header = "meowth:"
		}
		s.Equal([]string{header, " - meowth", " - meowth-alola", " - meowth-galar", " - meowth-gmax"}, out.Lines)
	}
}

func (s *OrchestratorTestSuite) TestEncounters() {
	testCases := []struct {
		name      string
		fast      bool
		recursive bool
		expected  []string
	}{
		{
			name:     "resolved",
			expected: []string{"Machop:", " - Rock Tunnel (1F)", " - Rock Tunnel (B1F)", " - Mount Ember"},
		},
		{
			name:     "fast",
			fast:     true,
			expected: []string{"machop:", " - rock-tunnel-1f", " - rock-tunnel-b1f", " - mt-ember-area"},
		},
		{
			name:      "recursive skips pokemon without encounters",
			fast:      true,
			recursive: true,
			expected:  []string{"machop:", " - rock-tunnel-1f", " - rock-tunnel-b1f", " - mt-ember-area"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.Encounters(s.ctx, &lookup.EncountersInput{
				Options:   en(tc.fast),
				Version:   "firered",
				Pokemon:   "machop",
				Recursive: tc.recursive,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Lines)
		})
	}
}

func (s *OrchestratorTestSuite) TestEncountersRecursiveOtherVersion() {
	out, err := s.orchestrator.Encounters(s.ctx, &lookup.EncountersInput{
		Options:   en(true),
		Version:   "red",
		Pokemon:   "machoke",
		Recursive: true,
	})
	s.Require().NoError(err)
	s.Equal([]string{"machop:", " - rock-tunnel-1f", "machoke:", " - kanto-victory-road-2-1f"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestEncountersNone() {
	out, err := s.orchestrator.Encounters(s.ctx, &lookup.EncountersInput{Options: en(true), Version: "x", Pokemon: "machop"})
	s.Require().NoError(err)
	s.Empty(out.Lines)
}

func (s *OrchestratorTestSuite) TestEncountersFetchFailure() {
	s.catalog.Fail(builders.EncountersURL("machop"))

	_, err := s.orchestrator.Encounters(s.ctx, &lookup.EncountersInput{Options: en(true), Version: "firered", Pokemon: "machop"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("API error: could not follow url for encounters for machop", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestEncountersInvalidVersion() {
	_, err := s.orchestrator.Encounters(s.ctx, &lookup.EncountersInput{Version: "pokemon-stadium", Pokemon: "machop"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestEvolutions() {
	out, err := s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{Options: en(false), Species: "eevee", All: true})
	s.Require().NoError(err)
	s.Len(out.Lines, 15)

	out, err = s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{Options: en(false), Species: "farfetchd"})
	s.Require().NoError(err)
	s.Equal([]string{"Farfetch’d", "Farfetch’d -> Land three critical hits in a battle -> Sirfetch’d"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestEvolutionsFastSecret() {
	out, err := s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{
		Options: en(true),
		Species: "eevee",
		Secret:  true,
		All:     true,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Lines, 15)
	s.Equal("MON -> use-item (item: water-stone) -> MON", out.Lines[0])
	s.Equal("MON -> level-up (known_move_type: fairy, min_happiness: 160) -> MON", out.Lines[14])
}

func (s *OrchestratorTestSuite) TestEvolutionsWithoutChain() {
	out, err := s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{Options: lookup.Options{Language: "es"}, Species: "tauros"})
	s.Require().NoError(err)
	s.Equal([]string{"Tauros"}, out.Lines)

	out, err = s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{Species: "tauros", Secret: true})
	s.Require().NoError(err)
	s.Equal([]string{"MON"}, out.Lines)
}

func (s *OrchestratorTestSuite) TestEvolutionsChainFailure() {
	s.catalog.Fail(builders.ChainURL(testutils.EeveeChain))

	_, err := s.orchestrator.Evolutions(s.ctx, &lookup.EvolutionsInput{Species: "eevee"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("API error: could not retrieve evolution chain for eevee", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestMatchups() {
	out, err := s.orchestrator.Matchups(s.ctx, &lookup.MatchupsInput{Options: en(false), Primary: "fairy"})
	s.Require().NoError(err)
	s.Equal([]string{
		"     *0          *0.5          *2     ",
		"------------ ------------ ------------",
		"Dragon       Fighting     Poison      ",
		"             Bug          Steel       ",
		"             Dark                     ",
	}, out.Lines)
}

func (s *OrchestratorTestSuite) TestMatchupsList() {
	out, err := s.orchestrator.Matchups(s.ctx, &lookup.MatchupsInput{
		Options:   lookup.Options{Language: "es"},
		Primary:   "fairy",
		Secondary: "steel",
		List:      true,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Lines)
	s.Equal("Hada/Acero:", out.Lines[0])
	s.Equal([]string{" - 2x:", "   * Tierra", "   * Fuego"}, out.Lines[len(out.Lines)-3:])
}

func (s *OrchestratorTestSuite) TestMatchupsCustomWidth() {
	narrow, err := lookup.NewOrchestrator(&lookup.Config{Client: s.mockClient, ColumnWidth: 8})
	s.Require().NoError(err)

	out, err := narrow.Matchups(s.ctx, &lookup.MatchupsInput{Options: en(true), Primary: "fairy"})
	s.Require().NoError(err)
	s.Equal("-------- -------- --------", out.Lines[1])
}

func (s *OrchestratorTestSuite) TestMatchupsInvalidTypes() {
	testCases := []struct {
		name  string
		input *lookup.MatchupsInput
	}{
		{"missing primary", &lookup.MatchupsInput{}},
		{"unknown primary", &lookup.MatchupsInput{Primary: "sound"}},
		{"unknown secondary", &lookup.MatchupsInput{Primary: "fairy", Secondary: "cosmic"}},
		{"same type twice", &lookup.MatchupsInput{Primary: "fairy", Secondary: "fairy"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.Matchups(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestMatchupsTypeFailure() {
	s.catalog.Fail(builders.URL("type", "steel"))

	_, err := s.orchestrator.Matchups(s.ctx, &lookup.MatchupsInput{Primary: "fairy", Secondary: "steel"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("API error: could not retrieve type steel", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestUnknownPokemon() {
	_, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{Options: en(false), Pokemon: "pikachoo"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(errors.ExitBadInput, errors.ExitStatus(err))
	s.Equal("invalid pokemon: pikachoo", errors.GetMessage(err))
	s.Equal("try running 'pokelookup list pikachoo'", errors.GetMetaString(err, errors.MetaTip))
	s.Equal("pikachu", errors.GetMetaString(err, errors.MetaSuggestion))
}

func (s *OrchestratorTestSuite) TestUnknownSpecies() {
	_, err := s.orchestrator.Genders(s.ctx, &lookup.GendersInput{Species: "meowthh"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("invalid pokemon species: meowthh", errors.GetMessage(err))
	s.Equal("meowth", errors.GetMetaString(err, errors.MetaSuggestion))
	s.Empty(errors.GetMetaString(err, errors.MetaTip))
}

func (s *OrchestratorTestSuite) TestUnknownWithoutMatcher() {
	plain, err := lookup.NewOrchestrator(&lookup.Config{Client: s.mockClient})
	s.Require().NoError(err)

	_, err = plain.Moves(s.ctx, &lookup.MovesInput{Pokemon: "pikachoo"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(errors.GetMetaString(err, errors.MetaSuggestion))
}

func (s *OrchestratorTestSuite) TestUpstreamFailureIsNotNotFound() {
	s.catalog.Fail(builders.URL("pokemon", "toxel"))

	_, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{Pokemon: "toxel"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(errors.ExitFailure, errors.ExitStatus(err))
}

func (s *OrchestratorTestSuite) TestRecursiveVarietyFailure() {
	s.catalog.Fail(builders.URL("pokemon", "wyrdeer"))

	_, err := s.orchestrator.Types(s.ctx, &lookup.TypesInput{Options: en(true), Pokemon: "stantler", Recursive: true})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal("API error: could not retrieve varieties for wyrdeer", errors.GetMessage(err))
}
