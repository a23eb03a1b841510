package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/handlers/lookup/v1alpha1"
	"github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup"
	lookupmock "github.com/KirkDiggler/pokelookup/internal/orchestrators/lookup/mock"
	"github.com/KirkDiggler/pokelookup/internal/pkg/idgen"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLookup *lookupmock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	client     v1alpha1.LookupServiceClient
	ctx        context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLookup = lookupmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LookupService: s.mockLookup,
		IDGenerator:   idgen.NewSequential("req"),
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterLookupServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewLookupServiceClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) call(method string, fields map[string]any) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return s.client.Call(s.ctx, method, req)
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	testCases := []struct {
		name string
		cfg  *v1alpha1.HandlerConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing service", cfg: &v1alpha1.HandlerConfig{IDGenerator: idgen.NewSequential("req")}},
		{name: "missing id generator", cfg: &v1alpha1.HandlerConfig{LookupService: s.mockLookup}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			handler, err := v1alpha1.NewHandler(tc.cfg)
			s.Assert().Nil(handler)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *HandlerTestSuite) TestTypesNormalizesSubject() {
	s.mockLookup.EXPECT().
		Types(gomock.Any(), &lookup.TypesInput{
			Options:   lookup.Options{Language: "es", Fast: true},
			Pokemon:   "mr-mime",
			Recursive: true,
		}).
		Return(&lookup.Output{Lines: []string{"mr-mime: psychic fairy"}}, nil)

	resp, err := s.call(v1alpha1.MethodTypes, map[string]any{
		v1alpha1.FieldSubject:   "  Mr Mime ",
		v1alpha1.FieldLanguage:  " es",
		v1alpha1.FieldFast:      true,
		v1alpha1.FieldRecursive: true,
	})
	s.Require().NoError(err)
	s.Assert().Equal("req_1", v1alpha1.RequestID(resp))
	s.Assert().Equal([]string{"mr-mime: psychic fairy"}, v1alpha1.Lines(resp))
}

func (s *HandlerTestSuite) TestRequestIDsAreSequential() {
	s.mockLookup.EXPECT().
		Eggs(gomock.Any(), &lookup.EggsInput{Species: "eevee"}).
		Return(&lookup.Output{Lines: []string{"Field"}}, nil).
		Times(2)

	first, err := s.call(v1alpha1.MethodEggs, map[string]any{v1alpha1.FieldSubject: "eevee"})
	s.Require().NoError(err)
	second, err := s.call(v1alpha1.MethodEggs, map[string]any{v1alpha1.FieldSubject: "eevee"})
	s.Require().NoError(err)

	s.Assert().Equal("req_1", v1alpha1.RequestID(first))
	s.Assert().Equal("req_2", v1alpha1.RequestID(second))
}

func (s *HandlerTestSuite) TestMovesPassesLevelAndVersionGroup() {
	s.mockLookup.EXPECT().
		Moves(gomock.Any(), &lookup.MovesInput{
			Pokemon:      "quaxly",
			VersionGroup: "scarlet-violet",
			Level:        20,
		}).
		Return(&lookup.Output{Lines: []string{"Aqua Cutter", "Double Hit", "Aerial Ace", "Water Pledge"}}, nil)

	resp, err := s.call(v1alpha1.MethodMoves, map[string]any{
		v1alpha1.FieldSubject:      "quaxly",
		v1alpha1.FieldVersionGroup: "scarlet-violet",
		v1alpha1.FieldLevel:        20,
	})
	s.Require().NoError(err)
	s.Assert().Len(v1alpha1.Lines(resp), 4)
}

func (s *HandlerTestSuite) TestMovesRejectsNegativeLevel() {
	_, err := s.call(v1alpha1.MethodMoves, map[string]any{
		v1alpha1.FieldSubject: "quaxly",
		v1alpha1.FieldLevel:   -1,
	})
	s.Assert().Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestEncountersRequiresVersion() {
	_, err := s.call(v1alpha1.MethodEncounters, map[string]any{
		v1alpha1.FieldSubject: "machop",
	})
	s.Require().Error(err)

	back := errors.FromGRPCError(err)
	s.Assert().True(errors.IsInvalidArgument(back))
	s.Assert().Contains(errors.GetMessage(back), "version: is required")
}

func (s *HandlerTestSuite) TestEncounters() {
	s.mockLookup.EXPECT().
		Encounters(gomock.Any(), &lookup.EncountersInput{
			Version: "firered",
			Pokemon: "machop",
		}).
		Return(&lookup.Output{Lines: []string{"Rock Tunnel"}}, nil)

	resp, err := s.call(v1alpha1.MethodEncounters, map[string]any{
		v1alpha1.FieldVersion: "FireRed",
		v1alpha1.FieldSubject: "machop",
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Rock Tunnel"}, v1alpha1.Lines(resp))
}

func (s *HandlerTestSuite) TestEvolutionsFlags() {
	s.mockLookup.EXPECT().
		Evolutions(gomock.Any(), &lookup.EvolutionsInput{
			Species: "eevee",
			Secret:  true,
			All:     true,
		}).
		Return(&lookup.Output{Lines: []string{"MON -> MON"}}, nil)

	resp, err := s.call(v1alpha1.MethodEvolutions, map[string]any{
		v1alpha1.FieldSubject: "eevee",
		v1alpha1.FieldSecret:  true,
		v1alpha1.FieldAll:     true,
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"MON -> MON"}, v1alpha1.Lines(resp))
}

func (s *HandlerTestSuite) TestMatchupsDualList() {
	s.mockLookup.EXPECT().
		Matchups(gomock.Any(), &lookup.MatchupsInput{
			Primary:   "fairy",
			Secondary: "steel",
			List:      true,
		}).
		Return(&lookup.Output{Lines: []string{"Fairy/Steel:", " - 0x:", "   * Dragon"}}, nil)

	resp, err := s.call(v1alpha1.MethodMatchups, map[string]any{
		v1alpha1.FieldSubject:   "fairy",
		v1alpha1.FieldSecondary: "steel",
		v1alpha1.FieldList:      true,
	})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Fairy/Steel:", " - 0x:", "   * Dragon"}, v1alpha1.Lines(resp))
}

func (s *HandlerTestSuite) TestEmptyOutput() {
	s.mockLookup.EXPECT().
		Varieties(gomock.Any(), &lookup.VarietiesInput{Species: "toxel"}).
		Return(&lookup.Output{}, nil)

	resp, err := s.call(v1alpha1.MethodVarieties, map[string]any{v1alpha1.FieldSubject: "toxel"})
	s.Require().NoError(err)
	s.Assert().Empty(v1alpha1.Lines(resp))
	s.Assert().Equal("req_1", v1alpha1.RequestID(resp))
}

func (s *HandlerTestSuite) TestMissingSubject() {
	methods := []string{
		v1alpha1.MethodVarieties,
		v1alpha1.MethodTypes,
		v1alpha1.MethodAbilities,
		v1alpha1.MethodMoves,
		v1alpha1.MethodEggs,
		v1alpha1.MethodGenders,
		v1alpha1.MethodEvolutions,
		v1alpha1.MethodMatchups,
	}

	for _, method := range methods {
		s.Run(method, func() {
			_, err := s.call(method, map[string]any{v1alpha1.FieldSubject: "   "})
			s.Assert().Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestNotFoundKeepsSuggestion() {
	s.mockLookup.EXPECT().
		Abilities(gomock.Any(), &lookup.AbilitiesInput{Pokemon: "pikachoo"}).
		Return(nil, errors.NotFoundf("invalid pokemon: %s", "pikachoo").
			WithTip("try running 'pokelookup list pikachoo'").
			WithSuggestion("pikachu"))

	_, err := s.call(v1alpha1.MethodAbilities, map[string]any{v1alpha1.FieldSubject: "pikachoo"})
	s.Require().Error(err)
	s.Assert().Equal(codes.NotFound, status.Code(err))

	back := errors.FromGRPCError(err)
	s.Assert().Equal("invalid pokemon: pikachoo", errors.GetMessage(back))
	s.Assert().Equal("pikachu", errors.GetMetaString(back, errors.MetaSuggestion))
	s.Assert().Equal("try running 'pokelookup list pikachoo'", errors.GetMetaString(back, errors.MetaTip))
}

func (s *HandlerTestSuite) TestUpstreamFailure() {
	s.mockLookup.EXPECT().
		Genders(gomock.Any(), &lookup.GendersInput{Species: "eevee"}).
		Return(nil, errors.Unavailable("API error: could not retrieve pokemon species eevee"))

	_, err := s.call(v1alpha1.MethodGenders, map[string]any{v1alpha1.FieldSubject: "eevee"})
	s.Assert().Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestLinesOnMalformedResponse() {
	s.Assert().Empty(v1alpha1.Lines(nil))
	s.Assert().Empty(v1alpha1.RequestID(nil))

	resp, err := structpb.NewStruct(map[string]any{v1alpha1.FieldLines: "not a list"})
	s.Require().NoError(err)
	s.Assert().Empty(v1alpha1.Lines(resp))
}
