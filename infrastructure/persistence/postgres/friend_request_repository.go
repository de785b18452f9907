// infrastructure/persistence/postgres/friend_request_repository.go
package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/domain/models"
	"github.com/driftchat/gofiber-dm-api/domain/repository"
)

type friendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(db *gorm.DB) repository.FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

func (r *friendRequestRepository) Create(request *models.FriendRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	if request.UpdatedAt.IsZero() {
		request.UpdatedAt = now
	}
	return r.db.Create(request).Error
}

func (r *friendRequestRepository) FindByID(id uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.Preload("From").Preload("To").First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) FindPending(fromID, toID uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := r.db.
		Where("from_id = ? AND to_id = ? AND status = ?", fromID, toID, models.FriendRequestPending).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *friendRequestRepository) PendingForUser(userID uuid.UUID) ([]*models.FriendRequest, []*models.FriendRequest, error) {
	var incoming []*models.FriendRequest
	if err := r.db.Preload("From").Preload("To").
		Where("to_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at DESC").
		Find(&incoming).Error; err != nil {
		return nil, nil, err
	}

	var outgoing []*models.FriendRequest
	if err := r.db.Preload("From").Preload("To").
		Where("from_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("created_at DESC").
		Find(&outgoing).Error; err != nil {
		return nil, nil, err
	}

	return incoming, outgoing, nil
}

// Accept flips the request to accepted, inserts both friendship edges, and
// resolves a reverse pending request if one exists. One transaction, so a
// crash cannot leave an asymmetric friendship.
func (r *friendRequestRepository) Accept(request *models.FriendRequest) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FriendRequest{}).
			Where("id = ?", request.ID).
			Updates(map[string]interface{}{
				"status":     models.FriendRequestAccepted,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		// Both directions of the edge; ON CONFLICT keeps the accept idempotent
		// when a reverse request already created one side.
		if err := tx.Exec(
			"INSERT INTO user_friends (user_id, friend_id) VALUES (?, ?), (?, ?) ON CONFLICT DO NOTHING",
			request.FromID, request.ToID, request.ToID, request.FromID,
		).Error; err != nil {
			return err
		}

		// A pending request in the opposite direction is now moot; accepting
		// one side resolves both.
		return tx.Model(&models.FriendRequest{}).
			Where("from_id = ? AND to_id = ? AND status = ?",
				request.ToID, request.FromID, models.FriendRequestPending).
			Updates(map[string]interface{}{
				"status":     models.FriendRequestAccepted,
				"updated_at": now,
			}).Error
	})
}

func (r *friendRequestRepository) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.FriendRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// PurgePair removes both friendship edges and every request row between the
// unordered pair, resetting them to a clean slate.
func (r *friendRequestRepository) PurgePair(userID, friendID uuid.UUID) (int64, error) {
	var purged int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM user_friends WHERE (user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID,
		).Error; err != nil {
			return err
		}

		result := tx.Where(
			"(from_id = ? AND to_id = ?) OR (from_id = ? AND to_id = ?)",
			userID, friendID, friendID, userID,
		).Delete(&models.FriendRequest{})
		if result.Error != nil {
			return result.Error
		}
		purged = result.RowsAffected
		return nil
	})
	return purged, err
}
