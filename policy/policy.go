// Package policy implements the ordering policy: group ranking, in-group
// room comparison, and tag-to-group membership derivation. The three parts
// form one atomic configuration; swapping a policy requires a full rebuild
// of any index that was sorted with the previous one.
package policy

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/lo"

	"roomlist-lab/contract"
	"roomlist-lab/domain"
)

type Policy struct {
	log      *slog.Logger
	priority []string
}

// New builds an immutable policy from a caption-priority pattern list.
// Patterns are either exact captions or namespace wildcards ("u.*").
// An empty list falls back to domain.DefaultPriority.
func New(log *slog.Logger, priority []string) *Policy {
	if len(priority) == 0 {
		priority = domain.DefaultPriority
	}
	return &Policy{log: log, priority: append([]string(nil), priority...)}
}

// Priority returns a copy of the configured pattern list.
func (p *Policy) Priority() []string {
	return append([]string(nil), p.priority...)
}

// rankOf resolves a caption against the priority list. An exact match wins;
// otherwise namespace wildcards are tried right-to-left over '.'-separated
// segments ("a.b.c" tries "a.b.*" then "a.*"). Unmatched captions rank
// after every pattern.
func (p *Policy) rankOf(caption string) int {
	if caption == "" {
		return len(p.priority)
	}
	if i := lo.IndexOf(p.priority, caption); i >= 0 {
		return i
	}
	for dot := strings.LastIndexByte(caption, '.'); dot >= 0; dot = strings.LastIndexByte(caption[:dot], '.') {
		if i := lo.IndexOf(p.priority, caption[:dot+1]+"*"); i >= 0 {
			return i
		}
	}
	return len(p.priority)
}

// GroupLessThan is the strict total order over group captions: priority
// rank first, lexicographic caption comparison on equal ranks.
func (p *Policy) GroupLessThan(existing, candidate string) bool {
	li := p.rankOf(existing)
	ri := p.rankOf(candidate)
	return li < ri || (li == ri && existing < candidate)
}

// keyLess is the deterministic identity tie-break: room id first, owning
// source second. Identity is (source, id), so rooms sharing an id across
// sources still order strictly.
func keyLess(a, b contract.Room) bool {
	if a.ID() != b.ID() {
		return a.ID() < b.ID()
	}
	return a.Source() < b.Source()
}

func sameRoom(a, b contract.Room) bool {
	return a.ID() == b.ID() && a.Source() == b.Source()
}

// RoomLessThan returns the in-group comparator closed over the group's
// caption; order weights are tag-specific. Rooms without an explicit
// weight for this tag sort after rooms that have one. Equal explicit
// weights on distinct rooms violate the policy: the comparator warns and
// falls back to the identity tie-break so the ordering stays strict.
func (p *Policy) RoomLessThan(caption string) func(a, b contract.Room) bool {
	return func(a, b contract.Room) bool {
		if a == b {
			return false
		}
		oa := a.Tags()[caption]
		ob := b.Tags()[caption]
		if !ob.Present {
			return oa.Present || keyLess(a, b)
		}
		if !oa.Present {
			return false
		}
		if oa.Value < ob.Value {
			return true
		}
		if oa.Value > ob.Value || sameRoom(a, b) {
			return false
		}
		p.log.Warn(fmt.Sprintf("Order values for tag %q aren't strongly ordered: %s with %v vs. %s with %v",
			caption, a.DisplayName(), oa.Value, b.DisplayName(), ob.Value))
		return keyLess(a, b)
	}
}

// MembershipOf derives the groups a room belongs to right now: its tag
// keys (sorted for determinism), the direct-chat pseudo-caption for direct
// chats, and the untagged pseudo-caption when nothing else applies.
// The result is never empty.
func (p *Policy) MembershipOf(r contract.Room) []string {
	captions := lo.Keys(r.Tags())
	sort.Strings(captions)
	if r.IsDirectChat() {
		captions = append(captions, domain.DirectCaption)
	}
	if len(captions) == 0 {
		captions = append(captions, domain.UntaggedCaption)
	}
	return captions
}
