// application/serviceimpl/friend_service.go
package serviceimpl

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/domain/dto"
	"github.com/driftchat/gofiber-dm-api/domain/models"
	"github.com/driftchat/gofiber-dm-api/domain/port"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
	"github.com/driftchat/gofiber-dm-api/domain/service"
)

type friendService struct {
	friendRequestRepo repository.FriendRequestRepository
	userRepo          repository.UserRepository
	notifier          port.Notifier
}

func NewFriendService(
	friendRequestRepo repository.FriendRequestRepository,
	userRepo repository.UserRepository,
	notifier port.Notifier,
) service.FriendService {
	return &friendService{
		friendRequestRepo: friendRequestRepo,
		userRepo:          userRepo,
		notifier:          notifier,
	}
}

// SendRequest creates a pending request after the pre-checks. The checks and
// the insert are separate store round trips, so two racing duplicates can both
// pass them; the partial unique index on (from, to, pending) is the backstop,
// and its violation is reported as the same conflict the pre-check gives.
func (s *friendService) SendRequest(fromID, toID uuid.UUID) (*models.FriendRequest, error) {
	if toID == uuid.Nil {
		return nil, service.ErrInvalidInput
	}
	if fromID == toID {
		return nil, service.ErrSelfRequest
	}

	recipient, err := s.userRepo.FindByID(toID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, service.ErrUserNotFound
	}

	alreadyFriends, err := s.userRepo.AreFriends(fromID, toID)
	if err != nil {
		return nil, err
	}
	if alreadyFriends {
		return nil, service.ErrAlreadyFriends
	}

	pending, err := s.friendRequestRepo.FindPending(fromID, toID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, service.ErrRequestExists
	}

	now := time.Now()
	request := &models.FriendRequest{
		ID:        uuid.New(),
		FromID:    fromID,
		ToID:      toID,
		Status:    models.FriendRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.friendRequestRepo.Create(request); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrRequestExists
		}
		return nil, err
	}

	// Expand both parties for the push and the response.
	populated, err := s.friendRequestRepo.FindByID(request.ID)
	if err == nil && populated != nil {
		request = populated
	}

	s.notifier.NotifyUser(toID, port.EventFriendRequestNew, dto.ToFriendRequestResponse(request))

	return request, nil
}

func (s *friendService) ListRequests(userID uuid.UUID) ([]*models.FriendRequest, []*models.FriendRequest, error) {
	return s.friendRequestRepo.PendingForUser(userID)
}

// ActOnRequest lets the recipient accept or reject a pending request. The
// accept path mutates both friend sets and the request row in one store
// transaction; accepting also resolves a reverse pending request, so mutual
// requests collapse into a single friendship on the first accept.
func (s *friendService) ActOnRequest(requestID, actorID uuid.UUID, action string) (*models.FriendRequest, error) {
	if action != service.ActionAccept && action != service.ActionReject {
		return nil, service.ErrInvalidInput
	}

	request, err := s.friendRequestRepo.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, service.ErrRequestNotFound
	}
	if request.ToID != actorID {
		return nil, service.ErrNotAuthorized
	}
	if request.Status != models.FriendRequestPending {
		return nil, service.ErrRequestProcessed
	}

	if action == service.ActionAccept {
		if err := s.friendRequestRepo.Accept(request); err != nil {
			return nil, err
		}
		request.Status = models.FriendRequestAccepted
	} else {
		if err := s.friendRequestRepo.UpdateStatus(request.ID, models.FriendRequestRejected); err != nil {
			return nil, err
		}
		request.Status = models.FriendRequestRejected
	}
	request.UpdatedAt = time.Now()

	s.notifier.NotifyUser(request.FromID, port.EventFriendRequestUpdate, dto.ToFriendRequestResponse(request))

	return request, nil
}

// Unfriend resets the pair to a clean slate: both friendship edges go, and
// every request row between them regardless of direction or status is purged
// so nothing stale blocks a future request. Idempotent: unfriending a
// non-friend pair succeeds and purges zero or more rows.
func (s *friendService) Unfriend(userID, friendID uuid.UUID) (int64, error) {
	if friendID == uuid.Nil {
		return 0, service.ErrInvalidInput
	}

	purged, err := s.friendRequestRepo.PurgePair(userID, friendID)
	if err != nil {
		return 0, err
	}

	s.notifier.NotifyUser(friendID, port.EventFriendRemoved, map[string]interface{}{
		"user_id": userID.String(),
	})

	return purged, nil
}

func (s *friendService) ListFriends(userID uuid.UUID) ([]*models.User, error) {
	return s.userRepo.Friends(userID)
}
