package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokelookup/internal/config"
	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/handlers/lookup/v1alpha1"
)

type MainTestSuite struct {
	suite.Suite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) SetupTest() {
	cfg = config.Default()
	fast = false
	remoteRecursive = false
	remoteVersionGroup = ""
	remoteLevel = 0
	remoteList = false
}

func (s *MainTestSuite) TestPrintLines() {
	var buf bytes.Buffer
	printLines(&buf, []string{"Toxel:", "  Electric/Poison"})
	s.Assert().Equal("Toxel:\n  Electric/Poison\n", buf.String())
}

func (s *MainTestSuite) TestPrintLinesEmpty() {
	var buf bytes.Buffer
	printLines(&buf, nil)
	s.Assert().Equal("No results found.\n", buf.String())
}

func (s *MainTestSuite) TestReportWithTipAndSuggestion() {
	err := errors.NotFoundf("invalid pokemon: %s", "pikachoo").
		WithTip("try running 'pokelookup list pikachoo'").
		WithSuggestion("pikachu")

	var buf bytes.Buffer
	report(&buf, err)
	s.Assert().Equal(
		"error: invalid pokemon: pikachoo\n"+
			"\n"+
			"  tip: try running 'pokelookup list pikachoo'\n"+
			"  did you mean 'pikachu'?\n",
		buf.String())
	s.Assert().Equal(errors.ExitBadInput, errors.ExitStatus(err))
}

func (s *MainTestSuite) TestReportPlain() {
	err := errors.Unavailable("API error: could not retrieve type fairy")

	var buf bytes.Buffer
	report(&buf, err)
	s.Assert().Equal("error: API error: could not retrieve type fairy\n", buf.String())
	s.Assert().Equal(errors.ExitFailure, errors.ExitStatus(err))
}

func (s *MainTestSuite) TestArgCountIsInvalidInput() {
	err := exactArgs(1)(typesCmd, []string{"a", "b"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().NoError(rangeArgs(1, 2)(matchupsCmd, []string{"fairy", "steel"}))
}

func (s *MainTestSuite) TestLookupRequest() {
	testCases := []struct {
		name     string
		command  string
		args     []string
		setup    func()
		expected map[string]any
	}{
		{
			name:    "encounters",
			command: "encounters",
			args:    []string{"firered", "machop"},
			setup:   func() { remoteRecursive = true },
			expected: map[string]any{
				v1alpha1.FieldLanguage:  "en",
				v1alpha1.FieldFast:      false,
				v1alpha1.FieldVersion:   "firered",
				v1alpha1.FieldSubject:   "machop",
				v1alpha1.FieldRecursive: true,
			},
		},
		{
			name:    "dual matchups",
			command: "matchups",
			args:    []string{"fairy", "steel"},
			setup:   func() { remoteList = true },
			expected: map[string]any{
				v1alpha1.FieldLanguage:  "en",
				v1alpha1.FieldFast:      false,
				v1alpha1.FieldSubject:   "fairy",
				v1alpha1.FieldSecondary: "steel",
				v1alpha1.FieldList:      true,
			},
		},
		{
			name:    "moves",
			command: "moves",
			args:    []string{"quaxly"},
			setup: func() {
				remoteLevel = 30
				remoteVersionGroup = "scarlet-violet"
			},
			expected: map[string]any{
				v1alpha1.FieldLanguage:     "en",
				v1alpha1.FieldFast:         false,
				v1alpha1.FieldSubject:      "quaxly",
				v1alpha1.FieldVersionGroup: "scarlet-violet",
				v1alpha1.FieldLevel:        float64(30),
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setup()

			req, err := lookupRequest(tc.command, tc.args)
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, req.AsMap())
		})
	}
}

func (s *MainTestSuite) TestLookupRequestWrongArity() {
	_, err := lookupRequest("types", []string{"toxel", "extra"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = lookupRequest("encounters", []string{"machop"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *MainTestSuite) TestLevelFlagDocumentsZero() {
	for _, cmd := range []*cobra.Command{movesCmd, clientLookupCmd} {
		flag := cmd.Flags().Lookup("level")
		s.Require().NotNil(flag, cmd.Name())
		s.Assert().Equal("0", flag.DefValue)
		s.Assert().Contains(flag.Usage, "0 lists the whole learnset")
	}
}
