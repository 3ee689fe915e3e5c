package azurestorage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
}

func (s *ResolverTestSuite) env() MapEnv {
	return MapEnv{
		"AZURE_STORAGE_CONNECTION_1":           "acme",
		"AZURE_STORAGE_CONNECTION_1_URL":       "https://x/",
		"AZURE_STORAGE_CONNECTION_1_CONTAINER": "logs",
		"AZURE_STORAGE_CONNECTION_2":           "contoso",
		"AZURE_STORAGE_CONNECTION_2_URL":       "https://y/",
	}
}

func (s *ResolverTestSuite) TestServiceOptions() {
	r := NewResolver(s.env())

	opts, err := r.ServiceOptions("acme")
	s.NoError(err)
	s.Equal("https://x/", opts.URL)

	opts, err = r.ServiceOptions("contoso")
	s.NoError(err)
	s.Equal("https://y/", opts.URL)
}

func (s *ResolverTestSuite) TestServiceOptions_TrimsNameAndValue() {
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_7":     "  acme  ",
		"AZURE_STORAGE_CONNECTION_7_URL": "  https://x/  ",
	})

	opts, err := r.ServiceOptions(" acme ")
	s.NoError(err)
	s.Equal("https://x/", opts.URL, "url should be trimmed")
}

func (s *ResolverTestSuite) TestServiceOptions_UnknownName() {
	r := NewResolver(s.env())

	_, err := r.ServiceOptions("unknown")
	s.ErrorIs(err, ErrConnectionNotFound)

	var notFound *ConnectionNotFoundError
	s.ErrorAs(err, &notFound)
	s.Equal("unknown", notFound.Name, "the error should carry the requested name")
}

func (s *ResolverTestSuite) TestServiceOptions_EmptyName() {
	// an empty name never matches, even when a declaration has a blank value
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_1":     "",
		"AZURE_STORAGE_CONNECTION_1_URL": "https://x/",
	})

	_, err := r.ServiceOptions("   ")
	s.ErrorIs(err, ErrConnectionNotFound)
}

func (s *ResolverTestSuite) TestServiceOptions_MissingURL() {
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_1": "acme",
	})

	_, err := r.ServiceOptions("acme")
	s.ErrorIs(err, ErrConnectionNotFound, "a declaration without _URL is treated as not found")
}

func (s *ResolverTestSuite) TestServiceOptions_BlankURL() {
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_1":     "acme",
		"AZURE_STORAGE_CONNECTION_1_URL": "   ",
	})

	_, err := r.ServiceOptions("acme")
	s.ErrorIs(err, ErrConnectionNotFound, "a whitespace-only _URL is treated as not found")
}

func (s *ResolverTestSuite) TestServiceOptions_IgnoresSuffixedKeys() {
	// only bare declaration keys may bind a name; a name stored in a _URL or
	// _CONTAINER value must not resolve
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_1_URL":       "acme",
		"AZURE_STORAGE_CONNECTION_1_CONTAINER": "acme",
		"AZURE_STORAGE_CONNECTION_X":           "acme",
	})

	_, err := r.ServiceOptions("acme")
	s.ErrorIs(err, ErrConnectionNotFound)
}

func (s *ResolverTestSuite) TestServiceOptions_FirstMatchWins() {
	// MapEnv enumerates in sorted key order, so index 1 is encountered first
	r := NewResolver(MapEnv{
		"AZURE_STORAGE_CONNECTION_1":     "acme",
		"AZURE_STORAGE_CONNECTION_1_URL": "https://first/",
		"AZURE_STORAGE_CONNECTION_2":     "acme",
		"AZURE_STORAGE_CONNECTION_2_URL": "https://second/",
	})

	opts, err := r.ServiceOptions("acme")
	s.NoError(err)
	s.Equal("https://first/", opts.URL)
}

func (s *ResolverTestSuite) TestContainerOptions_Default() {
	r := NewResolver(s.env())

	opts, err := r.ContainerOptions("acme", "")
	s.NoError(err)
	s.Equal("https://x/", opts.URL)
	s.Equal("logs", opts.Container)
}

func (s *ResolverTestSuite) TestContainerOptions_Override() {
	r := NewResolver(s.env())

	opts, err := r.ContainerOptions("acme", "override")
	s.NoError(err)
	s.Equal("override", opts.Container, "a non-blank override takes precedence over _CONTAINER")
}

func (s *ResolverTestSuite) TestContainerOptions_BlankOverrideFallsBack() {
	r := NewResolver(s.env())

	opts, err := r.ContainerOptions("acme", "   ")
	s.NoError(err)
	s.Equal("logs", opts.Container)
}

func (s *ResolverTestSuite) TestContainerOptions_NoneDefined() {
	r := NewResolver(s.env())

	_, err := r.ContainerOptions("contoso", "")
	s.ErrorIs(err, ErrNoContainerDefined)
}

func (s *ResolverTestSuite) TestContainerOptions_UnknownName() {
	r := NewResolver(s.env())

	_, err := r.ContainerOptions("unknown", "override")
	s.ErrorIs(err, ErrConnectionNotFound)
}

func (s *ResolverTestSuite) TestListConnections() {
	connections := ListConnections(s.env())
	s.Len(connections, 2)

	s.Equal(1, connections[0].Index)
	s.Equal("acme", connections[0].Name)
	s.Equal("https://x/", connections[0].URL)
	s.Equal("logs", connections[0].Container)

	s.Equal(2, connections[1].Index)
	s.Equal("contoso", connections[1].Name)
	s.Equal("https://y/", connections[1].URL)
	s.Empty(connections[1].Container)
}

func (s *ResolverTestSuite) TestListConnections_IncludesIncomplete() {
	connections := ListConnections(MapEnv{
		"AZURE_STORAGE_CONNECTION_3": "broken",
	})
	s.Len(connections, 1)
	s.Equal("broken", connections[0].Name)
	s.Empty(connections[0].URL)
}

func (s *ResolverTestSuite) TestNotFoundErrorMessage() {
	err := error(&ConnectionNotFoundError{Name: "acme"})
	s.EqualError(err, "connection acme not found")
	s.True(errors.Is(err, ErrConnectionNotFound))
}

func TestResolver(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
