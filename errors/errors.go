package errors

import "fmt"

var (
	ErrAlreadyListed   = fmt.Errorf("room is already listed in this group")
	ErrGroupMissing    = fmt.Errorf("no group with this caption")
	ErrRoomMissing     = fmt.Errorf("room is not listed in this group")
	ErrInvalidPosition = fmt.Errorf("position is out of range")
	ErrUpdateInFlight  = fmt.Errorf("another tag update is already in flight")
	ErrReservedCaption = fmt.Errorf("reserved captions cannot be deleted")
	ErrUnknownSource   = fmt.Errorf("source is not attached")
)
