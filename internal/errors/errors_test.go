package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/pokelookup/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "invalid pokemon: pikachoo",
			expected: "NOT_FOUND: invalid pokemon: pikachoo",
		},
		{
			name:     "upstream error",
			code:     errors.CodeUnavailable,
			message:  "API error: could not retrieve type fairy",
			expected: "UNAVAILABLE: API error: could not retrieve type fairy",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("pokemon-species/eevee").WithTip("check spelling")
	wrapped := errors.Wrapf(baseErr, "invalid pokemon species: %s", "eevee")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("invalid pokemon species: eevee", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
	s.Assert().Equal("check spelling", errors.GetMetaString(wrapped, errors.MetaTip))
}

func (s *ErrorsTestSuite) TestWrapDoesNotShareMetaWithCause() {
	inner := errors.NotFound("x").WithMeta("a", 1)
	outer := errors.Wrap(inner, "outer").WithTip("tip")

	s.Assert().Equal(map[string]interface{}{"a": 1}, inner.Meta)
	s.Assert().Equal(1, outer.Meta["a"])
	s.Assert().Equal("tip", errors.GetMetaString(outer, errors.MetaTip))
	s.Assert().Empty(errors.GetMetaString(inner, errors.MetaTip))
}

func (s *ErrorsTestSuite) TestWrapWithCodeDoesNotShareMetaWithCause() {
	inner := errors.NotFound("x").WithMeta("a", 1)
	outer := errors.WrapWithCode(inner, errors.CodeUnavailable, "outer").WithSuggestion("y")

	s.Assert().Equal(map[string]interface{}{"a": 1}, inner.Meta)
	s.Assert().Equal("y", errors.GetMetaString(outer, errors.MetaSuggestion))
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrap(fmt.Errorf("boom"), "failed")
	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("connection reset")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "could not reach pokeapi")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("could not reach pokeapi", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.DataLoss("a")

	s.Assert().True(errors.Is(err1, err2))
	s.Assert().False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.Unavailable("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(fmt.Errorf("get: %w", context.Canceled)))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestExitStatus() {
	testCases := []struct {
		err      error
		expected int
	}{
		{nil, errors.ExitOK},
		{errors.NotFound("x"), errors.ExitBadInput},
		{errors.InvalidArgument("x"), errors.ExitBadInput},
		{errors.Unavailable("x"), errors.ExitFailure},
		{errors.DataLoss("x"), errors.ExitFailure},
		{fmt.Errorf("plain"), errors.ExitFailure},
	}

	for _, tc := range testCases {
		s.Run(errors.GetCode(tc.err).String(), func() {
			s.Assert().Equal(tc.expected, errors.ExitStatus(tc.err))
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	err := errors.NotFoundf("invalid pokemon: %s", "pikachoo").
		WithTip("try running 'pokelookup list pikachoo'").
		WithSuggestion("pikachu")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("invalid pokemon: pikachoo", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Assert().Equal("invalid pokemon: pikachoo", errors.GetMessage(back))
	s.Assert().Equal("pikachu", errors.GetMetaString(back, errors.MetaSuggestion))
	s.Assert().Equal("try running 'pokelookup list pikachoo'", errors.GetMetaString(back, errors.MetaTip))
}

func (s *ErrorsTestSuite) TestFromGRPCErrorPlainStatus() {
	err := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Assert().Equal("invalid input", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", " ", vb)
	errors.ValidatePositive("concurrency", 0, vb)
	errors.ValidateEnum("backend", "memcached", []string{"sqlite", "redis", "none"}, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: backend: must be one of: sqlite, redis, none; base_url: is required; concurrency: must be greater than 0, got 0",
		errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("backend", "redis", []string{"sqlite", "redis"}, vb)
	s.Assert().NoError(vb.Build())
}
