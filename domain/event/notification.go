// Package event defines the positional notifications the engine emits
// towards presentation sinks. Each structural mutation of the index maps
// to exactly one notification; positions are only valid until the next
// structural notification or FullReset.
package event

import "roomlist-lab/domain"

type Notification interface {
	Name() string
}

// GroupInserted reports a new group at GroupPos.
type GroupInserted struct {
	GroupPos int
}

func (GroupInserted) Name() string { return "GroupInserted" }

// RoomInserted reports a new room row inside an existing group.
type RoomInserted struct {
	GroupPos int
	RoomPos  int
}

func (RoomInserted) Name() string { return "RoomInserted" }

// RoomRemoved reports a removed room row. When the removal empties the
// group, a GroupRemoved for the same group follows immediately.
type RoomRemoved struct {
	GroupPos int
	RoomPos  int
}

func (RoomRemoved) Name() string { return "RoomRemoved" }

type GroupRemoved struct {
	GroupPos int
}

func (GroupRemoved) Name() string { return "GroupRemoved" }

// RoomMoved reports a same-group relocation after a tag weight change.
// NewPos is the final index of the row after the move.
type RoomMoved struct {
	GroupPos int
	OldPos   int
	NewPos   int
}

func (RoomMoved) Name() string { return "RoomMoved" }

// DataChanged reports an in-place refresh of one room row.
// An empty aspect set means every display aspect changed.
type DataChanged struct {
	GroupPos int
	RoomPos  int
	Aspects  domain.AspectSet
}

func (DataChanged) Name() string { return "DataChanged" }

// FullReset invalidates every previously obtained position. Emitted after
// bulk operations (source attach/detach, room replacement, policy change).
type FullReset struct{}

func (FullReset) Name() string { return "FullReset" }
