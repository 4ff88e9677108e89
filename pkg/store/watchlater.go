package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/videomack/videomack/pkg/model"
)

// ToggleWatchLater flips the (userId, videoId) join row. The insert path
// also upserts the full video record, so a watch-later entry never points at
// a video the collection has not seen.
func (s *Store) ToggleWatchLater(ctx context.Context, userId string, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.WatchLater{}).
		Where("user_id = ? AND video_id = ?", userId, video.Id).
		Count(&count).Error; err != nil {
		return errors.Wrapf(err, "ToggleWatchLater lookup failed, err: %v", err)
	}

	if count > 0 {
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND video_id = ?", userId, video.Id).
			Delete(&model.WatchLater{}).Error; err != nil {
			return errors.Wrapf(err, "ToggleWatchLater delete failed, err: %v", err)
		}
	} else {
		if err := s.db.WithContext(ctx).Create(&model.WatchLater{
			UserId:  userId,
			VideoId: video.Id,
		}).Error; err != nil {
			return errors.Wrapf(err, "ToggleWatchLater insert failed, err: %v", err)
		}
		if err := s.saveVideoLocked(ctx, video); err != nil {
			return err
		}
	}
	s.persist()
	return nil
}

func (s *Store) IsInWatchLater(ctx context.Context, userId, videoId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.WatchLater{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "IsInWatchLater failed, err: %v", err)
	}
	return count > 0, nil
}

// GetWatchLaterVideos joins against videos, so entries whose video row was
// deleted afterwards simply drop out of the result.
func (s *Store) GetWatchLaterVideos(ctx context.Context, userId string) ([]model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.Video, 0)
	if err := s.db.WithContext(ctx).Model(&model.Video{}).
		Joins("JOIN watch_later ON videos.id = watch_later.video_id").
		Where("watch_later.user_id = ?", userId).
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetWatchLaterVideos failed, err: %v", err)
	}
	return list, nil
}
