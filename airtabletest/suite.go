// Package airtabletest hosts a testify suite base for code that talks to
// airtablemock. It resets the shared registry around every test and captures
// the mock's logs, so one test's tables and warnings never leak into the
// next.
//
// Embed Suite and run it like any other testify suite:
//
//	type recipesSuite struct {
//	    airtabletest.Suite
//	}
//
//	func TestRecipes(t *testing.T) {
//	    suite.Run(t, new(recipesSuite))
//	}
//
//	func (s *recipesSuite) TestCreate() {
//	    client := s.Client("appRecipes")
//	    _, err := client.Create("recipes", map[string]any{"name": "dal"})
//	    s.Require().NoError(err)
//	}
package airtabletest

import (
	"strings"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bayesimpact/airtablemock"
)

// Suite is the base for test suites using the mock. Each test starts with an
// empty registry, a default configuration and a fresh log observer.
type Suite struct {
	suite.Suite

	logs     *observer.ObservedLogs
	previous *zap.Logger
}

func (s *Suite) SetupTest() {
	airtablemock.Clear()
	airtablemock.Configure(airtablemock.Config{})

	core, logs := observer.New(zapcore.InfoLevel)
	s.logs = logs
	s.previous = airtablemock.SetLogger(zap.New(core))
}

func (s *Suite) TearDownTest() {
	airtablemock.SetLogger(s.previous)
	airtablemock.Clear()
}

// Client returns a client for the base. The API key is irrelevant to the
// mock, so none is taken.
func (s *Suite) Client(baseID string) *airtablemock.Client {
	return airtablemock.New(baseID, "")
}

// Logs exposes everything the mock logged since the test started.
func (s *Suite) Logs() *observer.ObservedLogs {
	return s.logs
}

// Warnings returns the warning messages logged since the test started, in
// order.
func (s *Suite) Warnings() []string {
	var messages []string
	for _, entry := range s.logs.FilterLevelExact(zapcore.WarnLevel).All() {
		messages = append(messages, entry.Message)
	}
	return messages
}

// ImportFixture loads a JSON fixture document into the registry and fails
// the test when it does not parse.
func (s *Suite) ImportFixture(document string) {
	s.Require().NoError(airtablemock.ImportJSON(strings.NewReader(document)))
}
