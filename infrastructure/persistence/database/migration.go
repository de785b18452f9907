// database/migration.go
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/driftchat/gofiber-dm-api/domain/models"
)

// SetupDatabase runs migrations and creates the indexes the models need.
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	return CreateIndices(db)
}

// RunMigration migrates all models. Order matters: parent tables first.
func RunMigration(db *gorm.DB) error {
	log.Println("Running auto migration...")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Message{},
	)
	if err != nil {
		log.Printf("Auto migration failed: %v", err)
		return err
	}

	log.Println("Auto migration complete")
	return nil
}

// CreateIndices creates indexes that AutoMigrate cannot express.
func CreateIndices(db *gorm.DB) error {
	log.Println("Creating indices...")

	// At most one pending request per ordered (from, to) pair. This partial
	// unique index is the hard backstop behind the service's pre-checks: two
	// concurrent duplicate sends can both pass the read, but only one insert
	// lands; the loser gets a uniqueness violation surfaced as a conflict.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_pending_pair
		 ON friend_requests (from_id, to_id) WHERE status = 'pending'`,
	).Error; err != nil {
		return err
	}

	// Mutual friendship edges, one row per direction.
	if err := db.Exec(
		`CREATE TABLE IF NOT EXISTS user_friends (
			user_id uuid NOT NULL REFERENCES users(id),
			friend_id uuid NOT NULL REFERENCES users(id),
			PRIMARY KEY (user_id, friend_id)
		)`,
	).Error; err != nil {
		return err
	}

	if err := db.Exec(
		"CREATE INDEX IF NOT EXISTS idx_messages_unread ON messages (to_id, from_id) WHERE read = false",
	).Error; err != nil {
		return err
	}

	log.Println("Indices ready")
	return nil
}
