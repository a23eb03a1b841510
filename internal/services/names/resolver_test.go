package names_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokelookup/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/services/names"
	"github.com/KirkDiggler/pokelookup/internal/testutils/builders"
	"github.com/KirkDiggler/pokelookup/internal/testutils/mocks"
)

type ResolverTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	catalog    *mocks.Catalog
	ctx        context.Context
}

func (s *ResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	s.catalog = mocks.NewCatalog().
		AddNamed("ability", "anticipation", "es", "Anticipación", "en", "Anticipation").
		AddNamed("ability", "run-away", "ja", "にげあし").
		AddNamed("item", "water-stone", "en", "Water Stone", "en", "Water Stone (Gen IX)").
		AddSpecies(builders.NewSpecies("raichu").WithNames("en", "Raichu", "es", "Raichu").Build()).
		AddSpecies(builders.NewSpecies("toxel").WithNames("en", "Toxel").Build()).
		AddForm("raichu-alola", true, "en", "Alolan Raichu").
		AddForm("toxel", true)
	mocks.ExpectCatalog(s.mockClient, s.catalog)
}

func (s *ResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverTestSuite) resolver(language string, fast bool) *names.Resolver {
	r, err := names.New(&names.Config{
		Client:   s.mockClient,
		Language: language,
		Fast:     fast,
	})
	s.Require().NoError(err)
	return r
}

func (s *ResolverTestSuite) TestNewValidation() {
	_, err := names.New(&names.Config{Language: "klingon", Concurrency: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "client: is required")
	s.Contains(err.Error(), "language: must be one of")
	s.Contains(err.Error(), "concurrency: cannot be negative")
}

func (s *ResolverTestSuite) TestLocalized() {
	testCases := []struct {
		name     string
		language string
		expected string
	}{
		{"match", "es", "Anticipación"},
		{"other match", "en", "Anticipation"},
		{"no match falls back to slug", "fr", "anticipation"},
	}

	records := builders.Names("es", "Anticipación", "en", "Anticipation")
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, names.Localized("anticipation", records, tc.language))
		})
	}
}

func (s *ResolverTestSuite) TestLocalizedLastMatchWins() {
	records := builders.Names("en", "First", "en", "Second")
	s.Equal("Second", names.Localized("slug", records, "en"))
}

func (s *ResolverTestSuite) TestNameInHand() {
	records := builders.Names("es", "Hada", "en", "Fairy")
	s.Equal("Hada", s.resolver("es", false).Name("fairy", records))
	s.Equal("fairy", s.resolver("es", true).Name("fairy", records))
}

func (s *ResolverTestSuite) TestFollow() {
	r := s.resolver("en", false)

	s.Equal("Anticipation", r.Follow(s.ctx, builders.Ref("ability", "anticipation")))
	s.Equal("run-away", r.Follow(s.ctx, builders.Ref("ability", "run-away")))
	s.Equal("Water Stone (Gen IX)", r.Follow(s.ctx, builders.Ref("item", "water-stone")))
}

func (s *ResolverTestSuite) TestFollowFailureFallsBackToSlug() {
	s.catalog.Fail(builders.URL("ability", "anticipation"))
	r := s.resolver("en", false)

	s.Equal("anticipation", r.Follow(s.ctx, builders.Ref("ability", "anticipation")))
	s.Equal("missing", r.Follow(s.ctx, builders.Ref("ability", "missing")))
}

func (s *ResolverTestSuite) TestFastModeNeverFetches() {
	r := s.resolver("en", true)

	s.Equal("anticipation", r.Follow(s.ctx, builders.Ref("ability", "anticipation")))
	s.Equal([]string{"anticipation", "run-away"},
		r.FollowAll(s.ctx, builders.Refs("ability", "anticipation", "run-away")))
	s.Equal("toxel", r.Pokemon(s.ctx, builders.NewPokemon("toxel").Build()))
	s.EqualValues(0, s.catalog.Fetches.Load())
}

func (s *ResolverTestSuite) TestFollowAllPreservesOrder() {
	r := s.resolver("es", false)

	got := r.FollowAll(s.ctx, builders.Refs("ability", "run-away", "anticipation", "missing"))
	s.Equal([]string{"run-away", "Anticipación", "missing"}, got)
}

func (s *ResolverTestSuite) TestPokemonPrefersDefaultFormName() {
	raichu := builders.NewPokemon("raichu-alola").WithSpecies("raichu").Build()
	s.Equal("Alolan Raichu", s.resolver("en", false).Pokemon(s.ctx, raichu))
}

func (s *ResolverTestSuite) TestPokemonFormWithoutLanguageUsesSpecies() {
	raichu := builders.NewPokemon("raichu-alola").WithSpecies("raichu").Build()
	s.Equal("Raichu", s.resolver("es", false).Pokemon(s.ctx, raichu))
}

func (s *ResolverTestSuite) TestPokemonFormWithoutNamesUsesSpecies() {
	toxel := builders.NewPokemon("toxel").Build()
	s.Equal("Toxel", s.resolver("en", false).Pokemon(s.ctx, toxel))
}

func (s *ResolverTestSuite) TestPokemonFormFailureFallsBackToSlug() {
	toxel := builders.NewPokemon("toxel").WithForms("toxel", "toxel-missing").Build()
	s.Equal("toxel", s.resolver("en", false).Pokemon(s.ctx, toxel))
}

func (s *ResolverTestSuite) TestUnresolved() {
	r := s.resolver("es", false)
	u := r.Unresolved()

	s.True(u.Fast())
	s.False(r.Fast())
	s.Equal("es", u.Language())
	s.Equal("anticipation", u.Follow(s.ctx, builders.Ref("ability", "anticipation")))
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
