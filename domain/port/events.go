// domain/port/events.go
package port

// Push event names emitted through the Notifier.
const (
	EventMessageNew          = "message:new"
	EventMessageRead         = "message:read"
	EventFriendRequestNew    = "friend:request:new"
	EventFriendRequestUpdate = "friend:request:update"
	EventFriendRemoved       = "friend:removed"
)
