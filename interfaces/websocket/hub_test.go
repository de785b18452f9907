// interfaces/websocket/hub_test.go
package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// drain empties a client's send channel and returns the decoded frames.
func drain(t *testing.T, client *Client) []WSResponse {
	t.Helper()
	var frames []WSResponse
	for {
		select {
		case payload := <-client.Send:
			var frame WSResponse
			if err := json.Unmarshal(payload, &frame); err != nil {
				t.Fatalf("bad frame: %v", err)
			}
			frames = append(frames, frame)
		default:
			return frames
		}
	}
}

func TestRegisterAndLookup(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	client := newClient(hub, nil, alice)

	hub.registerClient(client)

	if !hub.IsOnline(alice) {
		t.Fatal("user should be online after register")
	}
	if hub.IsOnline(uuid.New()) {
		t.Error("unknown user reported online")
	}

	frames := drain(t, client)
	var sawConnect bool
	for _, frame := range frames {
		if frame.Type == TypeConnect {
			sawConnect = true
		}
	}
	if !sawConnect {
		t.Error("no connect frame after register")
	}
}

func TestNotifyUserReportsRegistration(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	client := newClient(hub, nil, alice)
	hub.registerClient(client)
	drain(t, client)

	if !hub.NotifyUser(alice, TypeMessageNew, map[string]string{"body": "hi"}) {
		t.Fatal("NotifyUser = false for a registered user")
	}
	frames := drain(t, client)
	if len(frames) != 1 || frames[0].Type != TypeMessageNew {
		t.Fatalf("frames = %+v, want one message:new", frames)
	}

	if hub.NotifyUser(uuid.New(), TypeMessageNew, nil) {
		t.Error("NotifyUser = true for an unregistered user")
	}
}

func TestLastRegisterWins(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	first := newClient(hub, nil, alice)
	second := newClient(hub, nil, alice)

	hub.registerClient(first)
	hub.registerClient(second)
	drain(t, first)
	drain(t, second)

	// Pushes land on the newest connection only.
	if !hub.NotifyUser(alice, TypeMessageNew, nil) {
		t.Fatal("NotifyUser = false with two handles registered")
	}
	if frames := drain(t, second); len(frames) != 1 {
		t.Errorf("newest handle got %d frames, want 1", len(frames))
	}
	if frames := drain(t, first); len(frames) != 0 {
		t.Errorf("superseded handle got %d frames, want 0", len(frames))
	}
}

func TestStaleHandleUnregisterKeepsUserOnline(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	first := newClient(hub, nil, alice)
	second := newClient(hub, nil, alice)

	hub.registerClient(first)
	hub.registerClient(second)

	// The superseded handle goes away; the user stays online through the
	// newer connection.
	hub.unregisterClient(first)
	if !hub.IsOnline(alice) {
		t.Fatal("user went offline when a stale handle unregistered")
	}

	hub.unregisterClient(second)
	if hub.IsOnline(alice) {
		t.Fatal("user still online after the live handle unregistered")
	}
}

func TestUnregisterBroadcastsOffline(t *testing.T) {
	hub := NewHub()
	alice, bob := uuid.New(), uuid.New()
	aliceConn := newClient(hub, nil, alice)
	watcher := newClient(hub, nil, bob)

	hub.registerClient(watcher)
	hub.registerClient(aliceConn)
	drain(t, watcher)
	drain(t, aliceConn)

	hub.unregisterClient(aliceConn)

	var sawOffline bool
	for _, frame := range drain(t, watcher) {
		if frame.Type != TypePresenceUpdate {
			continue
		}
		data, ok := frame.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("presence data = %T, want object", frame.Data)
		}
		if data["user_id"] == alice.String() && data["online"] == false {
			sawOffline = true
		}
	}
	if !sawOffline {
		t.Error("watcher did not receive the offline presence update")
	}
}

func TestUnregisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	client := newClient(hub, nil, uuid.New())
	hub.registerClient(client)
	hub.unregisterClient(client)

	// A second unregister for the same handle must not double-close Send.
	hub.unregisterClient(client)
}

func TestSendAfterUnregisterIsSafe(t *testing.T) {
	hub := NewHub()
	alice := uuid.New()
	client := newClient(hub, nil, alice)
	hub.registerClient(client)

	// A service goroutine can resolve the client just before the hub tears it
	// down; the late write must be a no-op, not a panic.
	resolved, ok := hub.lookup(alice)
	if !ok {
		t.Fatal("lookup failed for a registered user")
	}
	hub.unregisterClient(client)

	hub.sendToClient(resolved, WSResponse{Type: TypePong, Success: true})
	hub.BroadcastAll(TypePresenceUpdate, map[string]interface{}{"online": true})
	if hub.NotifyUser(alice, TypeMessageNew, nil) {
		t.Error("NotifyUser = true for an unregistered user")
	}
}

func TestConcurrentPushAndTeardown(t *testing.T) {
	hub := NewHub()
	frame := WSResponse{Type: TypeMessageNew, Success: true}

	for i := 0; i < 20; i++ {
		client := newClient(hub, nil, uuid.New())
		hub.registerClient(client)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				hub.sendToClient(client, frame)
			}
		}()
		go func() {
			defer wg.Done()
			hub.unregisterClient(client)
		}()
		wg.Wait()
	}
}

func TestSweepDropsStaleClients(t *testing.T) {
	hub := NewHub()
	alice, bob := uuid.New(), uuid.New()

	stale := newClient(hub, nil, alice)
	stale.lastPong = time.Now().Add(-10 * time.Minute)
	fresh := newClient(hub, nil, bob)
	hub.registerClient(stale)
	hub.registerClient(fresh)

	// Runs on the hub goroutine in production; a regression to channel-based
	// unregister would deadlock this call.
	hub.sweepDeadClients()

	if hub.IsOnline(alice) {
		t.Error("stale client survived the sweep")
	}
	if !hub.IsOnline(bob) {
		t.Error("responsive client was swept")
	}
}

func TestRegisterConcurrentUsers(t *testing.T) {
	hub := NewHub()

	const users = 50
	ids := make([]uuid.UUID, users)
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		ids[i] = uuid.New()
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			hub.registerClient(newClient(hub, nil, userID))
		}(ids[i])
	}
	wg.Wait()

	for _, id := range ids {
		if !hub.IsOnline(id) {
			t.Fatalf("user %s not online after concurrent register", id)
		}
	}

	stats := hub.Stats()
	if stats["online_users"] != users {
		t.Errorf("online_users = %v, want %d", stats["online_users"], users)
	}
}
