// Package domain contains core concepts of the room list engine.
// It defines tags, captions, join states and display aspects.
// No runtime, storage, or UI logic should be added here.
package domain

// TagOrder is the optional ordering weight a tag carries.
// The zero value means "no explicit order": such rooms sort after
// rooms whose tag carries a weight.
type TagOrder struct {
	Value   float64
	Present bool
}

func Order(v float64) TagOrder {
	return TagOrder{Value: v, Present: true}
}

// Unordered is the omitted-order sentinel.
var Unordered = TagOrder{}

// Tags maps tag keys to their optional order weight.
type Tags map[string]TagOrder

type JoinState string

const (
	JoinStateJoin   JoinState = "join"
	JoinStateInvite JoinState = "invite"
	JoinStateLeave  JoinState = "leave"
)

// RoomKey identifies a room across sources. Two sources may each own a
// room with the same id string; those are distinct entries.
type RoomKey struct {
	Source string
	ID     string
}
