package domain

// Aspect names one display attribute of a room row.
type Aspect string

const (
	AspectName      Aspect = "name"
	AspectAvatar    Aspect = "avatar"
	AspectUnread    Aspect = "unread"
	AspectJoinState Aspect = "join_state"
)

// AspectSet is the set of display attributes touched by a change.
// An empty (or nil) set means every aspect changed.
type AspectSet map[Aspect]struct{}

func Aspects(aspects ...Aspect) AspectSet {
	set := make(AspectSet, len(aspects))
	for _, a := range aspects {
		set[a] = struct{}{}
	}
	return set
}

func (s AspectSet) Contains(a Aspect) bool {
	_, ok := s[a]
	return ok
}

// All reports whether the set stands for "every aspect changed".
func (s AspectSet) All() bool {
	return len(s) == 0
}
