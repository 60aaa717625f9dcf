package runtime

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"roomlist-lab/contract"
	"roomlist-lab/domain"
	"roomlist-lab/errors"
	"roomlist-lab/source"
)

func TestRegistry_Attach_KeepsInsertionOrder(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	s1 := source.NewLocalSource("alice")
	s2 := source.NewLocalSource("bob")

	// Given no source is attached
	req.Empty(registry.Sources())

	// When two sources attach
	req.NoError(registry.Attach(s1))
	req.NoError(registry.Attach(s2))

	// Then iteration follows attach order, deterministically
	req.Equal([]contract.Source{s1, s2}, registry.Sources())
	req.True(registry.Contains(s1))
	req.True(registry.Contains(s2))
}

func TestRegistry_Attach_Twice_IsRejected(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	s := source.NewLocalSource("alice")
	req.NoError(registry.Attach(s))

	req.ErrorIs(registry.Attach(s), errors.ErrAlreadyListed)
	req.Len(registry.Sources(), 1)
}

func TestRegistry_Detach_UnknownSource_IsRejected(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	req.ErrorIs(registry.Detach(source.NewLocalSource("ghost")), errors.ErrUnknownSource)
}

func TestRegistry_Detach_KeepsRelativeOrder(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	s1 := source.NewLocalSource("alice")
	s2 := source.NewLocalSource("bob")
	s3 := source.NewLocalSource("carol")
	req.NoError(registry.Attach(s1))
	req.NoError(registry.Attach(s2))
	req.NoError(registry.Attach(s3))

	req.NoError(registry.Detach(s2))

	req.Equal([]contract.Source{s1, s3}, registry.Sources())
}

func TestRegistry_TotalRooms_AggregatesAcrossSources(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(logs.GetLoggerFromLevel(slog.LevelDebug))

	s1 := source.NewLocalSource("alice")
	s1.AddRoom(s1.NewRoom("a", "A"))
	s1.AddRoom(s1.NewRoom("b", "B"))

	s2 := source.NewLocalSource("bob")
	r := s2.NewRoom("c", "C")
	r.SetTag("u.work", domain.Order(1))
	s2.AddRoom(r)

	req.NoError(registry.Attach(s1))
	req.NoError(registry.Attach(s2))

	req.Equal(3, registry.TotalRooms())
}
