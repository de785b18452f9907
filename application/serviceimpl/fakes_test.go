// application/serviceimpl/fakes_test.go
package serviceimpl

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// fakeStore is an in-memory stand-in for the user and friend-request
// repositories. It mirrors the Postgres semantics the services rely on:
// last-writer rows, the pending-pair uniqueness backstop, the transactional
// accept (status + both edges + reverse collapse), and the purge count.
type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*models.User
	requests map[uuid.UUID]*models.FriendRequest
	friends  map[string]bool // directed edge "a->b"

	failCreateWithDup bool // simulate losing the unique-index race
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uuid.UUID]*models.User),
		requests: make(map[uuid.UUID]*models.FriendRequest),
		friends:  make(map[string]bool),
	}
}

func edgeKey(a, b uuid.UUID) string {
	return a.String() + "->" + b.String()
}

func (f *fakeStore) addUser(name string) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	user := &models.User{
		ID:    uuid.New(),
		Name:  name,
		Email: strings.ToLower(name) + "@example.com",
	}
	f.users[user.ID] = user
	return user
}

// UserRepository

func (f *fakeStore) Create(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) FindByID(id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeStore) FindByEmail(email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) Search(query string, excludeID uuid.UUID, limit int) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*models.User
	for _, user := range f.users {
		if user.ID == excludeID {
			continue
		}
		if strings.Contains(strings.ToLower(user.Name), strings.ToLower(query)) ||
			strings.Contains(user.Email, strings.ToLower(query)) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func (f *fakeStore) Friends(userID uuid.UUID) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var friends []*models.User
	for _, user := range f.users {
		if f.friends[edgeKey(userID, user.ID)] {
			friends = append(friends, user)
		}
	}
	return friends, nil
}

func (f *fakeStore) AreFriends(userID, friendID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.friends[edgeKey(userID, friendID)], nil
}

// FriendRequestRepository (distinct type to avoid the Create clash)

type fakeFriendRequestRepo struct {
	store *fakeStore
}

func (f *fakeFriendRequestRepo) Create(request *models.FriendRequest) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failCreateWithDup {
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range s.requests {
		if existing.FromID == request.FromID && existing.ToID == request.ToID &&
			existing.Status == models.FriendRequestPending {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *request
	s.requests[request.ID] = &clone
	return nil
}

func (f *fakeFriendRequestRepo) FindByID(id uuid.UUID) (*models.FriendRequest, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	clone := *request
	clone.From = s.users[request.FromID]
	clone.To = s.users[request.ToID]
	return &clone, nil
}

func (f *fakeFriendRequestRepo) FindPending(fromID, toID uuid.UUID) (*models.FriendRequest, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.requests {
		if request.FromID == fromID && request.ToID == toID &&
			request.Status == models.FriendRequestPending {
			clone := *request
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeFriendRequestRepo) PendingForUser(userID uuid.UUID) ([]*models.FriendRequest, []*models.FriendRequest, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var incoming, outgoing []*models.FriendRequest
	for _, request := range s.requests {
		if request.Status != models.FriendRequestPending {
			continue
		}
		clone := *request
		clone.From = s.users[request.FromID]
		clone.To = s.users[request.ToID]
		if request.ToID == userID {
			incoming = append(incoming, &clone)
		}
		if request.FromID == userID {
			outgoing = append(outgoing, &clone)
		}
	}
	return incoming, outgoing, nil
}

func (f *fakeFriendRequestRepo) Accept(request *models.FriendRequest) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.requests[request.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = models.FriendRequestAccepted
	stored.UpdatedAt = time.Now()

	s.friends[edgeKey(request.FromID, request.ToID)] = true
	s.friends[edgeKey(request.ToID, request.FromID)] = true

	// Reverse pending request collapses into the same friendship.
	for _, other := range s.requests {
		if other.FromID == request.ToID && other.ToID == request.FromID &&
			other.Status == models.FriendRequestPending {
			other.Status = models.FriendRequestAccepted
			other.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (f *fakeFriendRequestRepo) UpdateStatus(id uuid.UUID, status string) error {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	request, ok := s.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return nil
}

func (f *fakeFriendRequestRepo) PurgePair(userID, friendID uuid.UUID) (int64, error) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.friends, edgeKey(userID, friendID))
	delete(s.friends, edgeKey(friendID, userID))

	var purged int64
	for id, request := range s.requests {
		samePair := (request.FromID == userID && request.ToID == friendID) ||
			(request.FromID == friendID && request.ToID == userID)
		if samePair {
			delete(s.requests, id)
			purged++
		}
	}
	return purged, nil
}

// fakeMessageRepo is an in-memory message store.
type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*models.Message
}

func (f *fakeMessageRepo) Create(message *models.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *message
	f.messages = append(f.messages, &clone)
	return nil
}

func (f *fakeMessageRepo) MarkDelivered(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, message := range f.messages {
		if message.ID == id {
			message.Delivered = true
		}
	}
	return nil
}

func (f *fakeMessageRepo) Thread(userID, withUserID uuid.UUID, limit, offset int) ([]*models.Message, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var thread []*models.Message
	for _, message := range f.messages {
		inPair := (message.FromID == userID && message.ToID == withUserID) ||
			(message.FromID == withUserID && message.ToID == userID)
		if inPair {
			clone := *message
			thread = append(thread, &clone)
		}
	}
	sort.Slice(thread, func(i, j int) bool {
		return thread[i].CreatedAt.Before(thread[j].CreatedAt)
	})
	total := int64(len(thread))
	if offset > len(thread) {
		offset = len(thread)
	}
	thread = thread[offset:]
	if limit < len(thread) {
		thread = thread[:limit]
	}
	return thread, total, nil
}

func (f *fakeMessageRepo) MarkThreadRead(fromID, toID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var updated int64
	for _, message := range f.messages {
		if message.FromID == fromID && message.ToID == toID && !message.Read {
			message.Read = true
			updated++
		}
	}
	return updated, nil
}

func (f *fakeMessageRepo) find(id uuid.UUID) *models.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, message := range f.messages {
		if message.ID == id {
			return message
		}
	}
	return nil
}

// fakeNotifier records pushes and reports presence from a configured set.
type notifiedEvent struct {
	UserID uuid.UUID
	Event  string
	Data   interface{}
}

type fakeNotifier struct {
	mu     sync.Mutex
	online map[uuid.UUID]bool
	events []notifiedEvent
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{online: make(map[uuid.UUID]bool)}
}

func (f *fakeNotifier) setOnline(userID uuid.UUID, online bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.online[userID] = online
}

func (f *fakeNotifier) NotifyUser(userID uuid.UUID, event string, data interface{}) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, notifiedEvent{UserID: userID, Event: event, Data: data})
	return f.online[userID]
}

func (f *fakeNotifier) BroadcastAll(event string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, notifiedEvent{Event: event, Data: data})
}

func (f *fakeNotifier) eventsFor(userID uuid.UUID, event string) []notifiedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []notifiedEvent
	for _, e := range f.events {
		if e.UserID == userID && e.Event == event {
			matches = append(matches, e)
		}
	}
	return matches
}
