package domain

import "strings"

// Reserved captions for the two pseudo-groups. They never come from room
// tags and cannot be deleted through tag removal.
const (
	DirectCaption   = "org.roomlist.direct"
	UntaggedCaption = "org.roomlist.none"
)

// Well-known tag keys with a fixed place in the default ordering.
const (
	FavouriteTag   = "m.favourite"
	LowPriorityTag = "m.lowpriority"
)

// DefaultPriority is the caption ranking used when no order has been
// configured or persisted yet.
var DefaultPriority = []string{
	FavouriteTag, "u.*", DirectCaption, UntaggedCaption, LowPriorityTag,
}

func IsReservedCaption(caption string) bool {
	return strings.HasPrefix(caption, "org.roomlist.")
}

// DisplayLabel translates a caption into a human-readable group title.
// User tags ("u." namespace) are shown without their prefix.
func DisplayLabel(caption string) string {
	switch caption {
	case FavouriteTag:
		return "Favourites"
	case LowPriorityTag:
		return "Low priority"
	case DirectCaption:
		return "People"
	case UntaggedCaption:
		return "Ungrouped rooms"
	}
	if after, ok := strings.CutPrefix(caption, "u."); ok {
		return after
	}
	return caption
}
