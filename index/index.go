// Package index holds the two-level ordered container behind the room
// list: an ordered sequence of groups, each holding an ordered sequence of
// room references. All structural change goes through the mutation
// primitives; each primitive returns exact positions so that callers can
// emit precise change notifications.
package index

import (
	"fmt"
	"log/slog"
	"sort"

	"roomlist-lab/contract"
	"roomlist-lab/errors"
	"roomlist-lab/policy"
)

// Group is one caption with its ordered room sequence. Groups exist only
// while non-empty; identity is the caption.
type Group struct {
	Caption string
	rooms   []contract.Room
}

type Index struct {
	log    *slog.Logger
	policy *policy.Policy
	groups []*Group
}

func New(log *slog.Logger, p *policy.Policy) *Index {
	return &Index{log: log, policy: p}
}

func (ix *Index) GroupCount() int {
	return len(ix.groups)
}

// GroupAt returns the caption at a group position, or "" when out of range.
func (ix *Index) GroupAt(groupPos int) string {
	if !ix.validGroupPos(groupPos) {
		return ""
	}
	return ix.groups[groupPos].Caption
}

func (ix *Index) RoomCount(groupPos int) int {
	if !ix.validGroupPos(groupPos) {
		return 0
	}
	return len(ix.groups[groupPos].rooms)
}

// RoomAt returns the room reference at an exact position, or nil when the
// position is out of range.
func (ix *Index) RoomAt(groupPos, roomPos int) contract.Room {
	if !ix.validRoomPos(groupPos, roomPos) {
		return nil
	}
	return ix.groups[groupPos].rooms[roomPos]
}

func (ix *Index) validGroupPos(groupPos int) bool {
	return groupPos >= 0 && groupPos < len(ix.groups)
}

func (ix *Index) validRoomPos(groupPos, roomPos int) bool {
	return ix.validGroupPos(groupPos) &&
		roomPos >= 0 && roomPos < len(ix.groups[groupPos].rooms)
}

// lowerBoundGroup returns the first position whose caption does not sort
// before the candidate. Insertion at this position keeps the group order.
func (ix *Index) lowerBoundGroup(caption string) int {
	return sort.Search(len(ix.groups), func(i int) bool {
		return !ix.policy.GroupLessThan(ix.groups[i].Caption, caption)
	})
}

func (ix *Index) lowerBoundRoom(g *Group, room contract.Room) int {
	less := ix.policy.RoomLessThan(g.Caption)
	return sort.Search(len(g.rooms), func(i int) bool {
		return !less(g.rooms[i], room)
	})
}

// GroupPos finds a group by caption. The search agrees exactly with what
// insertion would have produced.
func (ix *Index) GroupPos(caption string) (int, bool) {
	pos := ix.lowerBoundGroup(caption)
	if pos == len(ix.groups) || ix.groups[pos].Caption != caption {
		return 0, false
	}
	return pos, true
}

// InsertGroupIfAbsent ensures a group for the caption exists and returns
// its position. created reports whether a new group was inserted.
func (ix *Index) InsertGroupIfAbsent(caption string) (pos int, created bool) {
	pos = ix.lowerBoundGroup(caption)
	if pos < len(ix.groups) && ix.groups[pos].Caption == caption {
		return pos, false
	}
	ix.groups = append(ix.groups, nil)
	copy(ix.groups[pos+1:], ix.groups[pos:])
	ix.groups[pos] = &Group{Caption: caption}
	return pos, true
}

// InsertRoom places a room at its sorted position within an existing
// group. The group must already exist; creating it is the caller's call
// (see InsertGroupIfAbsent). Inserting a room already listed in the group
// is a non-fatal integrity slip: logged, nothing mutated.
func (ix *Index) InsertRoom(caption string, room contract.Room) (groupPos, roomPos int, err error) {
	groupPos, ok := ix.GroupPos(caption)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errors.ErrGroupMissing, caption)
	}
	g := ix.groups[groupPos]
	roomPos = ix.lowerBoundRoom(g, room)
	if roomPos < len(g.rooms) && g.rooms[roomPos] == room {
		ix.log.Warn(fmt.Sprintf("Room %s is already listed under group %q", room.DisplayName(), caption))
		return groupPos, roomPos, errors.ErrAlreadyListed
	}
	g.rooms = append(g.rooms, nil)
	copy(g.rooms[roomPos+1:], g.rooms[roomPos:])
	g.rooms[roomPos] = room
	ix.log.Debug(fmt.Sprintf("Added %s to group %q", room.DisplayName(), caption))
	return groupPos, roomPos, nil
}

// RemoveRoomAt removes the room at an exact position. When the group
// becomes empty it is removed in the same logical operation; groupRemoved
// reports that cascade so the caller can emit both notifications.
func (ix *Index) RemoveRoomAt(groupPos, roomPos int) (groupRemoved bool, err error) {
	if !ix.validRoomPos(groupPos, roomPos) {
		ix.log.Error(fmt.Sprintf("Attempt to remove a room at invalid position (%d, %d)", groupPos, roomPos))
		return false, errors.ErrInvalidPosition
	}
	g := ix.groups[groupPos]
	ix.log.Debug(fmt.Sprintf("Removing room %s from group %q", g.rooms[roomPos].DisplayName(), g.Caption))
	g.rooms = append(g.rooms[:roomPos], g.rooms[roomPos+1:]...)
	if len(g.rooms) > 0 {
		return false, nil
	}
	ix.groups = append(ix.groups[:groupPos], ix.groups[groupPos+1:]...)
	return true, nil
}

// MoveRoom relocates a room within one group after a tag weight change.
// newPos is the final index of the row. No-op when the positions match.
func (ix *Index) MoveRoom(groupPos, oldPos, newPos int) error {
	if !ix.validRoomPos(groupPos, oldPos) || !ix.validRoomPos(groupPos, newPos) {
		ix.log.Error(fmt.Sprintf("Attempt to move a room across invalid positions (%d, %d -> %d)", groupPos, oldPos, newPos))
		return errors.ErrInvalidPosition
	}
	if oldPos == newPos {
		return nil
	}
	g := ix.groups[groupPos]
	room := g.rooms[oldPos]
	if oldPos < newPos {
		copy(g.rooms[oldPos:], g.rooms[oldPos+1:newPos+1])
	} else {
		copy(g.rooms[newPos+1:], g.rooms[newPos:oldPos])
	}
	g.rooms[newPos] = room
	return nil
}

// SortedPos computes where a room listed in the group should sit per the
// current comparator, counting the room's own row. Used after a tag weight
// change, when the row may be out of place: a comparator-driven binary
// search can no longer find it, but its target position is still
// well-defined once the stale row is discounted.
func (ix *Index) SortedPos(groupPos, roomPos int) (int, error) {
	if !ix.validRoomPos(groupPos, roomPos) {
		return 0, errors.ErrInvalidPosition
	}
	g := ix.groups[groupPos]
	room := g.rooms[roomPos]
	less := ix.policy.RoomLessThan(g.Caption)
	// The stale row makes the sequence non-monotone around roomPos, so a
	// binary search could be misled; count the rooms sorting before this
	// one instead. That count is the final index.
	target := 0
	for i, r := range g.rooms {
		if i != roomPos && less(r, room) {
			target++
		}
	}
	return target, nil
}

// Locate finds the exact position of a room within the group named by the
// caption, using the same binary searches insertion uses. It is only valid
// while the room's sort key for this group is unchanged.
func (ix *Index) Locate(caption string, room contract.Room) (groupPos, roomPos int, err error) {
	groupPos, ok := ix.GroupPos(caption)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errors.ErrGroupMissing, caption)
	}
	g := ix.groups[groupPos]
	roomPos = ix.lowerBoundRoom(g, room)
	if roomPos == len(g.rooms) || g.rooms[roomPos] != room {
		return 0, 0, fmt.Errorf("%w: %s in %q", errors.ErrRoomMissing, room.DisplayName(), caption)
	}
	return groupPos, roomPos, nil
}

// FindInGroup scans a group for a room by reference. Unlike Locate it does
// not rely on the comparator, so it stays correct while the room's tags
// are mid-update.
func (ix *Index) FindInGroup(groupPos int, room contract.Room) (int, bool) {
	if !ix.validGroupPos(groupPos) {
		return 0, false
	}
	for i, r := range ix.groups[groupPos].rooms {
		if r == room {
			return i, true
		}
	}
	return 0, false
}

// RebuildAll drops the whole structure and reinserts every room of every
// source, deriving membership and order from scratch. Bulk operation: no
// per-item bookkeeping, the caller signals a full reset instead.
func (ix *Index) RebuildAll(sources []contract.Source) {
	ix.groups = nil
	for _, s := range sources {
		for _, r := range s.Rooms() {
			ix.insertToGroups(ix.policy.MembershipOf(r), r)
		}
	}
}

func (ix *Index) insertToGroups(captions []string, room contract.Room) {
	for _, caption := range captions {
		ix.InsertGroupIfAbsent(caption)
		// Duplicate insertions are already logged by InsertRoom.
		_, _, _ = ix.InsertRoom(caption, room)
	}
}
