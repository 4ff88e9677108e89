package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/videomack/videomack/pkg/model"
)

// ToggleSubscription inserts the (userId, subscriberId) pair when absent and
// removes it when present. It does not touch the target's subscriber_count;
// the denormalized counters on users are written only by SaveUser.
func (s *Store) ToggleSubscription(ctx context.Context, subscriberId, userId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND user_id = ?", subscriberId, userId).
		Count(&count).Error; err != nil {
		return errors.Wrapf(err, "ToggleSubscription lookup failed, err: %v", err)
	}

	if count > 0 {
		if err := s.db.WithContext(ctx).
			Where("subscriber_id = ? AND user_id = ?", subscriberId, userId).
			Delete(&model.Subscription{}).Error; err != nil {
			return errors.Wrapf(err, "ToggleSubscription delete failed, err: %v", err)
		}
	} else {
		if err := s.db.WithContext(ctx).Create(&model.Subscription{
			UserId:       userId,
			SubscriberId: subscriberId,
		}).Error; err != nil {
			return errors.Wrapf(err, "ToggleSubscription insert failed, err: %v", err)
		}
	}
	s.persist()
	return nil
}

func (s *Store) IsSubscribed(ctx context.Context, subscriberId, userId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND user_id = ?", subscriberId, userId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsSubscribed failed, err: %v", err)
	}
	return count > 0, nil
}

// GetFollowers returns the full user records subscribed to userId.
func (s *Store) GetFollowers(ctx context.Context, userId string) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.User, 0)
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON users.id = subscriptions.subscriber_id").
		Where("subscriptions.user_id = ?", userId).
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetFollowers failed, err: %v", err)
	}
	return list, nil
}

// GetFollowing returns the full user records subscriberId has subscribed to.
func (s *Store) GetFollowing(ctx context.Context, subscriberId string) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.User, 0)
	if err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON users.id = subscriptions.user_id").
		Where("subscriptions.subscriber_id = ?", subscriberId).
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetFollowing failed, err: %v", err)
	}
	return list, nil
}
