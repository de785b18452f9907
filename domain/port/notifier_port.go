// domain/port/notifier_port.go
package port

import "github.com/google/uuid"

// Notifier is the one-way push capability services use to reach live
// connections. It is fire-and-forget by contract: NotifyUser reports whether a
// live connection existed at the instant of the call, not whether the client
// process received anything. Keeping it separate from the repositories lets
// tests assert on "persisted" independently of "pushed".
type Notifier interface {
	// NotifyUser pushes an event to the user's connection if one is
	// registered. Returns false when the user is offline.
	NotifyUser(userID uuid.UUID, event string, data interface{}) bool

	// BroadcastAll pushes an event to every connected client.
	BroadcastAll(event string, data interface{})
}
