// Package source provides an in-process implementation of the Source and
// Room contracts: a scripted connection whose room collection is mutated
// by direct calls. Used by the viewer, the e2e suite, and anywhere a real
// network-backed connection is out of scope.
package source

import (
	"roomlist-lab/contract"
	"roomlist-lab/domain"
)

// LocalRoom implements contract.Room. Mutators fire the corresponding
// observer signals synchronously; the TagsAboutToChange / TagsChanged pair
// always runs back-to-back with no other event in between.
//
// Cooperative single-threaded use only, like the engine itself.
type LocalRoom struct {
	id        string
	source    string
	name      string
	direct    bool
	joinState domain.JoinState
	unread    int
	tags      domain.Tags
	observers []contract.RoomObserver
}

func NewRoom(sourceID, id, name string) *LocalRoom {
	return &LocalRoom{
		id:        id,
		source:    sourceID,
		name:      name,
		joinState: domain.JoinStateJoin,
		tags:      make(domain.Tags),
	}
}

func (r *LocalRoom) ID() string { return r.id }

func (r *LocalRoom) Source() string { return r.source }

func (r *LocalRoom) DisplayName() string { return r.name }

func (r *LocalRoom) IsDirectChat() bool { return r.direct }

func (r *LocalRoom) JoinState() domain.JoinState { return r.joinState }

func (r *LocalRoom) UnreadCount() int { return r.unread }

// Tags returns a copy so that observers never see a half-applied change.
func (r *LocalRoom) Tags() domain.Tags {
	tags := make(domain.Tags, len(r.tags))
	for k, v := range r.tags {
		tags[k] = v
	}
	return tags
}

func (r *LocalRoom) Subscribe(o contract.RoomObserver) {
	r.observers = append(r.observers, o)
}

func (r *LocalRoom) Unsubscribe(o contract.RoomObserver) {
	for i, cur := range r.observers {
		if cur == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// SetTag adds or updates one tag under the two-phase update protocol.
func (r *LocalRoom) SetTag(key string, order domain.TagOrder) {
	r.updateTags(func() { r.tags[key] = order })
}

// RemoveTag drops one tag. No signals fire when the tag isn't there.
func (r *LocalRoom) RemoveTag(key string) {
	if _, ok := r.tags[key]; !ok {
		return
	}
	r.updateTags(func() { delete(r.tags, key) })
}

// SetTags replaces the whole tag set at once.
func (r *LocalRoom) SetTags(tags domain.Tags) {
	r.updateTags(func() {
		r.tags = make(domain.Tags, len(tags))
		for k, v := range tags {
			r.tags[k] = v
		}
	})
}

// SetDirect flips the direct-chat flag. Membership derives from it, so the
// change goes through the same two-phase protocol as a tag change.
func (r *LocalRoom) SetDirect(direct bool) {
	if r.direct == direct {
		return
	}
	r.updateTags(func() { r.direct = direct })
}

func (r *LocalRoom) updateTags(apply func()) {
	for _, o := range r.snapshot() {
		o.TagsAboutToChange(r)
	}
	apply()
	for _, o := range r.snapshot() {
		o.TagsChanged(r)
	}
}

func (r *LocalRoom) SetDisplayName(name string) {
	r.name = name
	r.notifyDisplay(domain.Aspects(domain.AspectName))
}

func (r *LocalRoom) SetJoinState(state domain.JoinState) {
	r.joinState = state
	r.notifyDisplay(domain.Aspects(domain.AspectJoinState))
}

func (r *LocalRoom) SetUnreadCount(count int) {
	r.unread = count
	r.notifyDisplay(domain.Aspects(domain.AspectUnread))
}

func (r *LocalRoom) notifyDisplay(aspects domain.AspectSet) {
	for _, o := range r.snapshot() {
		o.DisplayChanged(r, aspects)
	}
}

// snapshot guards against observers unsubscribing mid-notification.
func (r *LocalRoom) snapshot() []contract.RoomObserver {
	return append([]contract.RoomObserver(nil), r.observers...)
}

// LocalSource implements contract.Source over an insertion-ordered room
// slice, so Rooms() enumerates deterministically.
type LocalSource struct {
	id        string
	rooms     []*LocalRoom
	observers []contract.SourceObserver
}

func NewLocalSource(id string) *LocalSource {
	return &LocalSource{id: id}
}

func (s *LocalSource) ID() string { return s.id }

func (s *LocalSource) Rooms() []contract.Room {
	rooms := make([]contract.Room, len(s.rooms))
	for i, r := range s.rooms {
		rooms[i] = r
	}
	return rooms
}

func (s *LocalSource) Subscribe(o contract.SourceObserver) {
	s.observers = append(s.observers, o)
}

func (s *LocalSource) Unsubscribe(o contract.SourceObserver) {
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// NewRoom creates a room owned by this source without announcing it yet;
// callers stage tags first, then AddRoom.
func (s *LocalSource) NewRoom(id, name string) *LocalRoom {
	return NewRoom(s.id, id, name)
}

// AddRoom announces a new room. A room whose id is already present is
// treated as a replacement carrying the previous state.
func (s *LocalSource) AddRoom(r *LocalRoom) {
	for i, cur := range s.rooms {
		if cur.id == r.id {
			prev := s.rooms[i]
			s.rooms[i] = r
			for _, o := range s.snapshot() {
				o.RoomReplaced(s, r, prev)
			}
			return
		}
	}
	s.rooms = append(s.rooms, r)
	for _, o := range s.snapshot() {
		o.RoomAdded(s, r)
	}
}

// RemoveRoom reports a room as gone.
func (s *LocalSource) RemoveRoom(id string) {
	for i, cur := range s.rooms {
		if cur.id == id {
			removed := s.rooms[i]
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			for _, o := range s.snapshot() {
				o.RoomRemoved(s, removed)
			}
			return
		}
	}
}

// Disconnect announces the source going away; the engine detaches it.
func (s *LocalSource) Disconnect() {
	for _, o := range s.snapshot() {
		o.Disconnected(s)
	}
}

func (s *LocalSource) snapshot() []contract.SourceObserver {
	return append([]contract.SourceObserver(nil), s.observers...)
}
