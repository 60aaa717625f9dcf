package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomlist-lab/contract"
	"roomlist-lab/domain"
	"roomlist-lab/domain/event"
	"roomlist-lab/errors"
	"roomlist-lab/mocks"
	"roomlist-lab/policy"
	"roomlist-lab/source"
)

// recordingSink keeps every notification in arrival order.
type recordingSink struct {
	notifications []event.Notification
}

func (s *recordingSink) Consume(_ context.Context, n event.Notification) error {
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *recordingSink) reset() {
	s.notifications = s.notifications[:0]
}

func newEngine(priority []string, sinks ...contract.NotificationSink) *Coordinator {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewCoordinator(context.Background(), log, policy.New(log, priority),
		NewRegistry(log), sinks...)
}

func TestCoordinator_Attach_BuildsGroupsInPriorityOrder(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine([]string{domain.FavouriteTag, "u.*", domain.UntaggedCaption}, sink)

	s := source.NewLocalSource("alice")
	r1 := s.NewRoom("r1", "Favourite room")
	r1.SetTag(domain.FavouriteTag, domain.Unordered)
	s.AddRoom(r1)
	r2 := s.NewRoom("r2", "Custom room")
	r2.SetTag("u.custom", domain.Unordered)
	s.AddRoom(r2)
	s.AddRoom(s.NewRoom("r3", "Plain room"))

	// When the source attaches
	c.Attach(s)

	// Then the whole index is rebuilt and announced as a reset
	req.Equal([]event.Notification{event.FullReset{}}, sink.notifications)

	ix := c.Index()
	req.Equal(3, ix.GroupCount())
	req.Equal(domain.FavouriteTag, ix.GroupAt(0))
	req.Equal("u.custom", ix.GroupAt(1))
	req.Equal(domain.UntaggedCaption, ix.GroupAt(2))
	req.Equal(3, c.TotalRooms())
}

func TestCoordinator_TagRemoval_MovesRoomBetweenGroups(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	r := src.NewRoom("r", "R")
	r.SetTag("work", domain.Order(2))
	src.AddRoom(r)
	s := src.NewRoom("s", "S")
	s.SetTag("work", domain.Order(1))
	src.AddRoom(s)
	c.Attach(src)

	ix := c.Index()
	req.Equal(contract.Room(s), ix.RoomAt(0, 0))
	req.Equal(contract.Room(r), ix.RoomAt(0, 1))

	// When S loses its only tag
	sink.reset()
	s.RemoveTag("work")

	// Then it leaves "work" and lands in the untagged fallback group,
	// which sorts before unknown captions under the default priority
	req.Equal([]event.Notification{
		event.RoomRemoved{GroupPos: 0, RoomPos: 0},
		event.GroupInserted{GroupPos: 0},
		event.RoomInserted{GroupPos: 0, RoomPos: 0},
	}, sink.notifications)

	req.Equal(2, ix.GroupCount())
	req.Equal(domain.UntaggedCaption, ix.GroupAt(0))
	req.Equal(contract.Room(s), ix.RoomAt(0, 0))
	req.Equal("work", ix.GroupAt(1))
	req.Equal(1, ix.RoomCount(1))
	req.Equal(contract.Room(r), ix.RoomAt(1, 0))
}

func TestCoordinator_WeightChange_EmitsSingleMove(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	a := src.NewRoom("a", "A")
	a.SetTag("work", domain.Order(1))
	src.AddRoom(a)
	b := src.NewRoom("b", "B")
	b.SetTag("work", domain.Order(2))
	src.AddRoom(b)
	rc := src.NewRoom("c", "C")
	rc.SetTag("work", domain.Order(3))
	src.AddRoom(rc)
	c.Attach(src)

	// When the last room's weight drops below everyone else's
	sink.reset()
	rc.SetTag("work", domain.Order(0))

	// Then the room moves in place, no remove/insert pair
	req.Equal([]event.Notification{
		event.RoomMoved{GroupPos: 0, OldPos: 2, NewPos: 0},
	}, sink.notifications)

	ix := c.Index()
	req.Equal(contract.Room(rc), ix.RoomAt(0, 0))
	req.Equal(contract.Room(a), ix.RoomAt(0, 1))
	req.Equal(contract.Room(b), ix.RoomAt(0, 2))
}

func TestCoordinator_UnchangedWeight_EmitsNothing(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	a := src.NewRoom("a", "A")
	a.SetTag("work", domain.Order(1))
	src.AddRoom(a)
	c.Attach(src)

	// Re-setting the same tag keeps the position; nothing to announce
	sink.reset()
	a.SetTag("work", domain.Order(1))

	req.Empty(sink.notifications)
}

func TestCoordinator_RoomRemoval_CascadesEmptyGroup(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	r := src.NewRoom("r", "R")
	r.SetTag("work", domain.Order(1))
	src.AddRoom(r)
	c.Attach(src)

	sink.reset()
	src.RemoveRoom("r")

	// The last room takes its group down with it
	req.Equal([]event.Notification{
		event.RoomRemoved{GroupPos: 0, RoomPos: 0},
		event.GroupRemoved{GroupPos: 0},
	}, sink.notifications)
	req.Equal(0, c.Index().GroupCount())
}

func TestCoordinator_DisplayChange_RefreshesEveryOccurrence(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	r := src.NewRoom("r", "R")
	r.SetTag("u.alpha", domain.Unordered)
	r.SetTag("u.beta", domain.Unordered)
	src.AddRoom(r)
	c.Attach(src)

	// When a display attribute changes
	sink.reset()
	r.SetDisplayName("Renamed")

	// Then every group listing the room gets an in-place refresh
	req.Equal([]event.Notification{
		event.DataChanged{GroupPos: 0, RoomPos: 0, Aspects: domain.Aspects(domain.AspectName)},
		event.DataChanged{GroupPos: 1, RoomPos: 0, Aspects: domain.Aspects(domain.AspectName)},
	}, sink.notifications)
}

func TestCoordinator_RoomReplaced_SameID_Rebuilds(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	old := src.NewRoom("r", "Old")
	old.SetTag("u.alpha", domain.Unordered)
	src.AddRoom(old)
	c.Attach(src)

	// When the source swaps the room object for a fresh one
	sink.reset()
	next := src.NewRoom("r", "New")
	next.SetTag("u.beta", domain.Unordered)
	src.AddRoom(next)

	// Then the index is rebuilt around the replacement
	req.Equal([]event.Notification{event.FullReset{}}, sink.notifications)
	ix := c.Index()
	req.Equal(1, ix.GroupCount())
	req.Equal("u.beta", ix.GroupAt(0))
	req.Equal(contract.Room(next), ix.RoomAt(0, 0))

	// And the stale object is no longer watched
	sink.reset()
	old.SetTag("u.gamma", domain.Unordered)
	req.Empty(sink.notifications)
}

func TestCoordinator_RoomReplaced_SelfReplacement_RefreshesOnly(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	r := src.NewRoom("r", "R")
	r.SetTag("u.alpha", domain.Unordered)
	src.AddRoom(r)
	c.Attach(src)

	// Announcing the same object again refreshes it instead of resetting
	sink.reset()
	src.AddRoom(r)

	req.Equal([]event.Notification{
		event.DataChanged{GroupPos: 0, RoomPos: 0, Aspects: nil},
	}, sink.notifications)
}

func TestCoordinator_DeleteTag_ReservedCaptionIsRejected(t *testing.T) {
	req := require.New(t)
	c := newEngine(nil, &recordingSink{})

	req.ErrorIs(c.DeleteTag(domain.DirectCaption), errors.ErrReservedCaption)
	req.ErrorIs(c.DeleteTag(domain.UntaggedCaption), errors.ErrReservedCaption)
	req.ErrorIs(c.DeleteTag(""), errors.ErrGroupMissing)
}

func TestCoordinator_DeleteTag_RemovesAcrossSources(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	s1 := source.NewLocalSource("alice")
	a := s1.NewRoom("a", "A")
	a.SetTag("u.team", domain.Unordered)
	s1.AddRoom(a)
	c.Attach(s1)

	s2 := source.NewLocalSource("bob")
	b := s2.NewRoom("b", "B")
	b.SetTag("u.team", domain.Unordered)
	b.SetTag("u.keep", domain.Unordered)
	s2.AddRoom(b)
	c.Attach(s2)

	// When the tag is deleted engine-wide
	req.NoError(c.DeleteTag("u.team"))

	// Then the group is gone; rooms fall back to their remaining groups
	ix := c.Index()
	_, ok := ix.GroupPos("u.team")
	req.False(ok)

	pos, ok := ix.GroupPos("u.keep")
	req.True(ok)
	req.Equal(contract.Room(b), ix.RoomAt(pos, 0))

	pos, ok = ix.GroupPos(domain.UntaggedCaption)
	req.True(ok)
	req.Equal(contract.Room(a), ix.RoomAt(pos, 0))
}

func TestCoordinator_CommitWithoutPrepare_SelfHeals(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	r := src.NewRoom("r", "R")
	r.SetTag("work", domain.Order(1))
	src.AddRoom(r)
	c.Attach(src)

	// A commit with no matching prepare resyncs the whole index
	sink.reset()
	c.TagsChanged(r)

	req.Equal([]event.Notification{event.FullReset{}}, sink.notifications)
	req.Equal(1, c.Index().GroupCount())
}

func TestCoordinator_OverlappingPrepare_SecondIsIgnored(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	src := source.NewLocalSource("alice")
	a := src.NewRoom("a", "A")
	a.SetTag("work", domain.Order(1))
	src.AddRoom(a)
	b := src.NewRoom("b", "B")
	b.SetTag("work", domain.Order(2))
	src.AddRoom(b)
	c.Attach(src)

	// Given a prepare is already pending for room a
	c.TagsAboutToChange(a)
	// When another prepare arrives before a commits, it is dropped
	c.TagsAboutToChange(b)

	// Then a's commit still resolves against a's capture
	sink.reset()
	c.TagsChanged(a)
	req.Empty(sink.notifications)
	req.Equal(2, c.Index().RoomCount(0))
}

func TestCoordinator_TwoSources_SameRoomID_BothListed(t *testing.T) {
	req := require.New(t)
	c := newEngine(nil, &recordingSink{})

	s1 := source.NewLocalSource("alice")
	r1 := s1.NewRoom("shared", "Shared")
	r1.SetTag("u.team", domain.Unordered)
	s1.AddRoom(r1)
	c.Attach(s1)

	s2 := source.NewLocalSource("bob")
	r2 := s2.NewRoom("shared", "Shared")
	r2.SetTag("u.team", domain.Unordered)
	s2.AddRoom(r2)
	c.Attach(s2)

	ix := c.Index()
	pos, ok := ix.GroupPos("u.team")
	req.True(ok)
	req.Equal(2, ix.RoomCount(pos))

	// Each entry keeps its own identity: moving one leaves the other
	r2.SetTag("u.team", domain.Order(0))
	gPos, rPos, err := ix.Locate("u.team", r2)
	req.NoError(err)
	req.Equal(pos, gPos)
	req.Equal(0, rPos)
}

func TestCoordinator_Disconnect_DetachesTheSource(t *testing.T) {
	req := require.New(t)
	sink := &recordingSink{}
	c := newEngine(nil, sink)

	s1 := source.NewLocalSource("alice")
	keep := s1.NewRoom("keep", "Keep")
	keep.SetTag("work", domain.Order(1))
	s1.AddRoom(keep)
	c.Attach(s1)

	s2 := source.NewLocalSource("bob")
	gone := s2.NewRoom("gone", "Gone")
	gone.SetTag("work", domain.Order(2))
	s2.AddRoom(gone)
	c.Attach(s2)
	req.Equal(2, c.TotalRooms())

	// When the source announces it is going away
	sink.reset()
	s2.Disconnect()

	// Then it is detached wholesale and the index resets
	req.Equal([]event.Notification{event.FullReset{}}, sink.notifications)
	req.False(c.registry.Contains(s2))
	req.Equal(1, c.TotalRooms())
	req.Equal(1, c.Index().RoomCount(0))
	req.Equal(contract.Room(keep), c.Index().RoomAt(0, 0))

	// And its rooms are no longer watched
	sink.reset()
	gone.SetTag("work", domain.Order(9))
	req.Empty(sink.notifications)
}

func TestCoordinator_SinkContract_AttachEmitsFullReset(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockNotificationSink(ctrl)

	sink.EXPECT().Consume(gomock.Any(), event.FullReset{}).Return(nil)

	c := newEngine(nil, sink)
	s := source.NewLocalSource("alice")
	s.AddRoom(s.NewRoom("r", "R"))
	c.Attach(s)
	req.Equal(1, c.TotalRooms())
}

func TestCoordinator_FailingSink_DoesNotStopTheOthers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockNotificationSink(ctrl)
	failing.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("sink unavailable")).AnyTimes()
	recorder := &recordingSink{}

	c := newEngine(nil, failing, recorder)
	s := source.NewLocalSource("alice")
	s.AddRoom(s.NewRoom("r", "R"))
	c.Attach(s)

	// The failure is logged; the healthy sink still sees the reset
	req.Equal([]event.Notification{event.FullReset{}}, recorder.notifications)
}
