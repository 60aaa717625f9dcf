// Package runtime wires the engine together: the Coordinator reacts to
// source and room lifecycle events, reconciles the index against freshly
// derived memberships, and fans out positional notifications to the
// registered sinks. The Registry tracks attached sources.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"roomlist-lab/contract"
	"roomlist-lab/domain"
	"roomlist-lab/domain/event"
	"roomlist-lab/errors"
	"roomlist-lab/index"
	"roomlist-lab/policy"
)

// capturedRow is one exact position snapshotted before a tag update.
type capturedRow struct {
	caption  string
	groupPos int
	roomPos  int
}

// tagCapture is the short-lived buffer of the two-phase tag update,
// scoped to a single room. The coordinator is idle when it is nil.
type tagCapture struct {
	key  domain.RoomKey
	room contract.Room
	rows []capturedRow
}

// Coordinator exclusively owns and mutates the Index. Every event is
// handled to completion under one mutex before the next is processed;
// sinks are notified synchronously within the same turn.
type Coordinator struct {
	mu         sync.Mutex
	ctx        context.Context
	log        *slog.Logger
	policy     *policy.Policy
	index      *index.Index
	registry   *Registry
	sinks      []contract.NotificationSink
	subscribed map[domain.RoomKey]contract.Room
	capture    *tagCapture
}

func NewCoordinator(ctx context.Context, log *slog.Logger, p *policy.Policy,
	registry *Registry, sinks ...contract.NotificationSink) *Coordinator {
	return &Coordinator{
		ctx:        ctx,
		log:        log,
		policy:     p,
		index:      index.New(log, p),
		registry:   registry,
		sinks:      sinks,
		subscribed: make(map[domain.RoomKey]contract.Room),
	}
}

// Index exposes the two-level structure for lookups. Consumers may only
// read between events; a FullReset notification invalidates every
// previously obtained position.
func (c *Coordinator) Index() *index.Index {
	return c.index
}

func (c *Coordinator) AddSinks(sinks ...contract.NotificationSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sinks = append(c.sinks, sinks...)
}

// TotalRooms reports the aggregate room count over all attached sources.
func (c *Coordinator) TotalRooms() int {
	return c.registry.TotalRooms()
}

// Attach registers a source, subscribes to its lifecycle signals and the
// signals of every room it currently owns, then rebuilds the index.
func (c *Coordinator) Attach(s contract.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.registry.Attach(s); err != nil {
		return
	}
	s.Subscribe(c)
	for _, r := range s.Rooms() {
		c.watchRoom(r)
	}
	c.rebuildAndReset()
}

// Detach removes every room belonging to the source and deregisters it.
// Many groups are likely affected at once, so this is a full reset rather
// than per-row notifications.
func (c *Coordinator) Detach(s contract.Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.registry.Contains(s) {
		c.log.Error(fmt.Sprintf("Source %s is missing in the registry", s.ID()))
		return
	}
	for _, r := range s.Rooms() {
		c.unwatchRoom(r)
	}
	s.Unsubscribe(c)
	_ = c.registry.Detach(s)
	c.rebuildAndReset()
}

// DeleteTag drops a tag from every room of every attached source. The
// resulting TagsAboutToChange/TagsChanged pairs drive the index updates,
// so the group disappears once its last room loses the tag. Reserved
// captions name pseudo-groups and cannot be deleted this way.
func (c *Coordinator) DeleteTag(caption string) error {
	if caption == "" {
		c.log.Error("Invalid empty tag caption")
		return fmt.Errorf("%w: empty caption", errors.ErrGroupMissing)
	}
	if domain.IsReservedCaption(caption) {
		c.log.Warn(fmt.Sprintf("System groups cannot be deleted (tried to delete %q)", caption))
		return errors.ErrReservedCaption
	}
	// No coordinator lock here: RemoveTag fires the tag update signals,
	// which re-enter through the observer methods.
	for _, s := range c.registry.Sources() {
		for _, r := range s.Rooms() {
			if _, tagged := r.Tags()[caption]; tagged {
				r.RemoveTag(caption)
			}
		}
	}
	return nil
}

// RoomAdded implements contract.SourceObserver. A new room is structurally
// indistinguishable from a replacement with no previous state.
func (c *Coordinator) RoomAdded(s contract.Source, r contract.Room) {
	c.RoomReplaced(s, r, nil)
}

// RoomReplaced implements contract.SourceObserver. Anything may have
// changed along with the room object (name, tags, join state), so this is
// handled as a structural event: re-subscribe and rebuild. Infrequent,
// O(total rooms), always consistent.
func (c *Coordinator) RoomReplaced(s contract.Source, next, prev contract.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if next == nil {
		c.log.Error("Attempt to add a nil room to the room list")
		return
	}
	if prev == next {
		c.log.Error(fmt.Sprintf("Room %s tried to replace itself", next.DisplayName()))
		c.refresh(next, nil)
		return
	}
	if prev != nil && next.ID() != prev.ID() {
		// Doesn't look right but technically still workable.
		c.log.Error(fmt.Sprintf("Attempt to update room %s to %s", prev.ID(), next.ID()))
	}
	if prev != nil {
		c.unwatchRoom(prev)
	}
	c.watchRoom(next)
	c.rebuildAndReset()
}

// RoomRemoved implements contract.SourceObserver: the room is gone from
// its source, so every occurrence leaves the index.
func (c *Coordinator) RoomRemoved(s contract.Source, r contract.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unwatchRoom(r)
	c.removeFromAllGroups(r)
}

// Disconnected implements contract.SourceObserver.
func (c *Coordinator) Disconnected(s contract.Source) {
	c.Detach(s)
}

// TagsAboutToChange implements contract.RoomObserver: the prepare phase of
// the two-phase tag update. It snapshots the room's exact position in
// every group it is currently indexed under, before the sort keys change.
func (c *Coordinator) TagsAboutToChange(r contract.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.capture != nil {
		c.log.Error(fmt.Sprintf("%v: %s while updating %s",
			errors.ErrUpdateInFlight, r.DisplayName(), c.capture.room.DisplayName()))
		return
	}
	capture := &tagCapture{key: contract.KeyOf(r), room: r}
	for _, caption := range c.policy.MembershipOf(r) {
		groupPos, roomPos, err := c.index.Locate(caption, r)
		if err != nil {
			c.log.Error(fmt.Sprintf("The current order lists room %s in group %q but the index doesn't have it: %v",
				r.DisplayName(), caption, err))
			continue
		}
		capture.rows = append(capture.rows, capturedRow{caption: caption, groupPos: groupPos, roomPos: roomPos})
	}
	c.capture = capture
}

// TagsChanged implements contract.RoomObserver: the commit phase. For each
// captured group the room either stays (possibly moved to its new sorted
// position, never removed and reinserted), or leaves when the new
// membership dropped the group. Groups gained by the new membership get
// the room inserted, auto-creating them as needed.
func (c *Coordinator) TagsChanged(r contract.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	capture := c.capture
	c.capture = nil
	if capture == nil || capture.key != contract.KeyOf(r) {
		// The prepare/commit pairing broke; resync everything.
		c.log.Error(fmt.Sprintf("Tag update committed for %s without a matching capture", r.DisplayName()))
		c.rebuildAndReset()
		return
	}

	membership := c.policy.MembershipOf(r)
	pending := append([]string(nil), membership...)
	for _, row := range capture.rows {
		// Earlier edits in this loop shift positions; re-resolve by
		// caption and reference instead of trusting the snapshot.
		groupPos, ok := c.index.GroupPos(row.caption)
		if !ok {
			c.log.Error(fmt.Sprintf("Group %q vanished while updating tags of %s", row.caption, r.DisplayName()))
			continue
		}
		roomPos, ok := c.index.FindInGroup(groupPos, r)
		if !ok {
			c.log.Error(fmt.Sprintf("Room %s left group %q while its tags were updating", r.DisplayName(), row.caption))
			continue
		}
		if lo.Contains(membership, row.caption) {
			pending = lo.Without(pending, row.caption)
			target, err := c.index.SortedPos(groupPos, roomPos)
			if err != nil || target == roomPos {
				continue
			}
			if err := c.index.MoveRoom(groupPos, roomPos, target); err == nil {
				c.emit(event.RoomMoved{GroupPos: groupPos, OldPos: roomPos, NewPos: target})
			}
			continue
		}
		c.removeAt(groupPos, roomPos)
	}
	c.insertToGroups(pending, r)
}

// DisplayChanged implements contract.RoomObserver. Display attributes
// never affect membership or order, so every occupied position gets an
// in-place refresh.
func (c *Coordinator) DisplayChanged(r contract.Room, aspects domain.AspectSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refresh(r, aspects)
}

func (c *Coordinator) refresh(r contract.Room, aspects domain.AspectSet) {
	for _, caption := range c.policy.MembershipOf(r) {
		groupPos, roomPos, err := c.index.Locate(caption, r)
		if err != nil {
			c.log.Error(fmt.Sprintf("The current order lists room %s in group %q but the index doesn't have it: %v",
				r.DisplayName(), caption, err))
			continue
		}
		c.emit(event.DataChanged{GroupPos: groupPos, RoomPos: roomPos, Aspects: aspects})
	}
}

// removeFromAllGroups removes every occurrence of the room, re-locating
// per group because earlier removals shift positions.
func (c *Coordinator) removeFromAllGroups(r contract.Room) {
	for _, caption := range c.policy.MembershipOf(r) {
		groupPos, roomPos, err := c.index.Locate(caption, r)
		if err != nil {
			c.log.Error(fmt.Sprintf("Room %s claims membership of group %q but the index disagrees: %v",
				r.DisplayName(), caption, err))
			continue
		}
		c.removeAt(groupPos, roomPos)
	}
}

func (c *Coordinator) removeAt(groupPos, roomPos int) {
	groupRemoved, err := c.index.RemoveRoomAt(groupPos, roomPos)
	if err != nil {
		return
	}
	c.emit(event.RoomRemoved{GroupPos: groupPos, RoomPos: roomPos})
	if groupRemoved {
		c.emit(event.GroupRemoved{GroupPos: groupPos})
	}
}

func (c *Coordinator) insertToGroups(captions []string, r contract.Room) {
	for _, caption := range captions {
		groupPos, created := c.index.InsertGroupIfAbsent(caption)
		if created {
			c.emit(event.GroupInserted{GroupPos: groupPos})
		}
		groupPos, roomPos, err := c.index.InsertRoom(caption, r)
		if err != nil {
			// Duplicate insertion is already logged by the index.
			continue
		}
		c.emit(event.RoomInserted{GroupPos: groupPos, RoomPos: roomPos})
	}
}

func (c *Coordinator) watchRoom(r contract.Room) {
	key := contract.KeyOf(r)
	if prev, ok := c.subscribed[key]; ok {
		if prev == r {
			return
		}
		prev.Unsubscribe(c)
	}
	r.Subscribe(c)
	c.subscribed[key] = r
}

func (c *Coordinator) unwatchRoom(r contract.Room) {
	key := contract.KeyOf(r)
	if cur, ok := c.subscribed[key]; ok && cur == r {
		r.Unsubscribe(c)
		delete(c.subscribed, key)
	}
}

func (c *Coordinator) rebuildAndReset() {
	c.index.RebuildAll(c.registry.Sources())
	c.emit(event.FullReset{})
}

func (c *Coordinator) emit(n event.Notification) {
	for _, sink := range c.sinks {
		if err := sink.Consume(c.ctx, n); err != nil {
			c.log.Error("Notification sink failed", "notification", n.Name(), "error", err)
		}
	}
}
