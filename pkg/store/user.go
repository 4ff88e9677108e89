package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/videomack/videomack/pkg/model"
)

// SaveUser replaces any existing row with the same id, full-row semantics.
// Field format validation (email shape and the like) is the UI's concern.
func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error; err != nil {
		return errors.Wrapf(err, "SaveUser failed, err: %v", err)
	}
	s.persist()
	return nil
}

// GetUser returns nil when no such user exists.
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user model.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUser failed, err: %v", err)
	}
	return &user, nil
}

func (s *Store) CheckUserExistById(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed, err: %v", err)
	}
	return count > 0, nil
}
