//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"roomlist-lab/domain"
	"roomlist-lab/domain/event"
)

// Room is a chat room owned by a Source. The engine holds non-owning
// references; the owning source manages the room's lifetime.
type Room interface {
	ID() string
	Source() string
	DisplayName() string
	Tags() domain.Tags
	IsDirectChat() bool
	JoinState() domain.JoinState

	// RemoveTag drops one tag, firing the usual TagsAboutToChange /
	// TagsChanged pair on the room's observers.
	RemoveTag(key string)

	Subscribe(RoomObserver)
	Unsubscribe(RoomObserver)
}

// RoomObserver receives per-room lifecycle signals. TagsAboutToChange and
// TagsChanged always come as a pair with no other event in between.
type RoomObserver interface {
	TagsAboutToChange(r Room)
	TagsChanged(r Room)
	DisplayChanged(r Room, aspects domain.AspectSet)
}

// Source is a connection exposing a mutable collection of rooms.
// Rooms() must enumerate in a deterministic order so that rebuilds are
// reproducible.
type Source interface {
	ID() string
	Rooms() []Room

	Subscribe(SourceObserver)
	Unsubscribe(SourceObserver)
}

// SourceObserver receives source-level lifecycle signals.
type SourceObserver interface {
	RoomAdded(s Source, r Room)
	// RoomReplaced fires when a room object supersedes a previous one for
	// the same id (invitation accepted, room re-joined). prev may be nil
	// for a plain addition on some sources.
	RoomReplaced(s Source, next, prev Room)
	RoomRemoved(s Source, r Room)
	Disconnected(s Source)
}

// NotificationSink consumes positional change notifications.
// Sinks must tolerate interleaved sequences such as a RoomRemoved
// immediately followed by a GroupRemoved for the same group.
type NotificationSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

// KeyOf builds the cross-source identity of a room.
func KeyOf(r Room) domain.RoomKey {
	return domain.RoomKey{Source: r.Source(), ID: r.ID()}
}
