package session

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/platebook/platebook-client/internal/types"
)

// record is the single-row table holding the persisted session. It stands
// in for the device keychain: one token, one user, nothing else durable.
type record struct {
	ID        uint `gorm:"primaryKey"`
	Token     string
	UserID    string
	Name      string
	Email     string
	Bio       string
	Gender    string
	Avatar    string
	UpdatedAt time.Time
}

func (record) TableName() string { return "session_records" }

// Store persists the signed-in session across launches.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (and migrates) the session database at path. Use
// ":memory:" in tests.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	return &Store{db: db}, nil
}

// Save replaces the persisted session.
func (s *Store) Save(token string, user types.UserProfile) error {
	rec := record{
		ID:     1,
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Bio:    user.Bio,
		Gender: user.Gender,
	}
	if user.Avatar != nil {
		rec.Avatar = *user.Avatar
	}
	return s.db.Save(&rec).Error
}

// Load returns the persisted session, or ("", zero, false) when none exists.
func (s *Store) Load() (string, types.UserProfile, bool, error) {
	var rec record
	if err := s.db.First(&rec, "id = ?", 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", types.UserProfile{}, false, nil
		}
		return "", types.UserProfile{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	user := types.UserProfile{
		ID:     rec.UserID,
		Name:   rec.Name,
		Email:  rec.Email,
		Bio:    rec.Bio,
		Gender: rec.Gender,
	}
	if rec.Avatar != "" {
		avatar := rec.Avatar
		user.Avatar = &avatar
	}
	return rec.Token, user, true, nil
}

// Clear removes the persisted session.
func (s *Store) Clear() error {
	return s.db.Delete(&record{}, "id = ?", 1).Error
}
