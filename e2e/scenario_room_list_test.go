package e2e

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"roomlist-lab/domain"
	"roomlist-lab/source"
)

type testRoomListSuite struct {
	BaseEngineSuite
}

func TestRoomListSuite(t *testing.T) {
	suite.Run(t, &testRoomListSuite{})
}

func (s *testRoomListSuite) TestFullRoomListLifecycle() {
	src := source.NewLocalSource("e2e-" + uuid.NewString())

	favourite := src.NewRoom(uuid.NewString(), "Favourite room")
	favourite.SetTag(domain.FavouriteTag, domain.Unordered)
	src.AddRoom(favourite)

	project := src.NewRoom(uuid.NewString(), "Project room")
	project.SetTag("u.project", domain.Order(1))
	src.AddRoom(project)

	dm := src.NewRoom(uuid.NewString(), "Direct chat")
	dm.SetDirect(true)
	src.AddRoom(dm)

	plain := src.NewRoom(uuid.NewString(), "Plain room")
	src.AddRoom(plain)

	// --- STEP 1: ATTACH AND INITIAL LAYOUT ---
	s.Run("Step 1: Attach builds the persisted group layout", func() {
		s.Step("Attaching the source")
		s.Coordinator.Attach(src)

		ix := s.Coordinator.Index()
		s.Require().Equal(4, ix.GroupCount())
		s.Require().Equal(domain.FavouriteTag, ix.GroupAt(0))
		s.Require().Equal("u.project", ix.GroupAt(1))
		s.Require().Equal(domain.DirectCaption, ix.GroupAt(2))
		s.Require().Equal(domain.UntaggedCaption, ix.GroupAt(3))
		s.Require().Equal(4, s.Coordinator.TotalRooms())
		s.Require().Equal(1, s.Tap.ByName["FullReset"])
	})

	// --- STEP 2: LIVE TAG CHURN ---
	s.Run("Step 2: Tagging moves rooms between groups incrementally", func() {
		s.Step("Tagging the plain room into the project group")
		plain.SetTag("u.project", domain.Order(0))

		ix := s.Coordinator.Index()
		pos, ok := ix.GroupPos("u.project")
		s.Require().True(ok)
		s.Require().Equal(2, ix.RoomCount(pos))
		// Weight 0 sorts before weight 1
		s.Require().Equal(plain.DisplayName(), ix.RoomAt(pos, 0).DisplayName())

		// The fallback group lost its only room and is gone
		_, ok = ix.GroupPos(domain.UntaggedCaption)
		s.Require().False(ok)
		s.Require().GreaterOrEqual(s.Tap.ByName["RoomInserted"], 1)
		s.Require().GreaterOrEqual(s.Tap.ByName["GroupRemoved"], 1)
	})

	// --- STEP 3: REORDER WITHIN A GROUP ---
	s.Run("Step 3: A weight change is a single move", func() {
		s.Step("Dropping the project room below its sibling")
		moves := s.Tap.ByName["RoomMoved"]
		project.SetTag("u.project", domain.Order(-1))

		ix := s.Coordinator.Index()
		pos, ok := ix.GroupPos("u.project")
		s.Require().True(ok)
		s.Require().Equal(project.DisplayName(), ix.RoomAt(pos, 0).DisplayName())
		s.Require().Equal(moves+1, s.Tap.ByName["RoomMoved"])
	})

	// --- STEP 4: ENGINE-WIDE TAG DELETION ---
	s.Run("Step 4: Deleting the tag dissolves the group", func() {
		s.Step("Deleting u.project everywhere")
		s.Require().NoError(s.Coordinator.DeleteTag("u.project"))

		ix := s.Coordinator.Index()
		_, ok := ix.GroupPos("u.project")
		s.Require().False(ok)
		// Both former members fell back to the untagged group
		pos, ok := ix.GroupPos(domain.UntaggedCaption)
		s.Require().True(ok)
		s.Require().Equal(2, ix.RoomCount(pos))
	})

	// --- STEP 5: DISCONNECT ---
	s.Run("Step 5: Disconnecting empties the list", func() {
		s.Step("Disconnecting the source")
		src.Disconnect()

		s.Require().Equal(0, s.Coordinator.Index().GroupCount())
		s.Require().Equal(0, s.Coordinator.TotalRooms())
		s.Require().GreaterOrEqual(s.Tap.ByName["FullReset"], 2)
	})
}
