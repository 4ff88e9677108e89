package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/videomack/videomack/pkg/model"
)

// SaveVideo upserts the full video row.
func (s *Store) SaveVideo(ctx context.Context, video *model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveVideoLocked(ctx, video); err != nil {
		return err
	}
	s.persist()
	return nil
}

func (s *Store) saveVideoLocked(ctx context.Context, video *model.Video) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(video).Error; err != nil {
		return errors.Wrapf(err, "SaveVideo failed, err: %v", err)
	}
	return nil
}

// GetVideos returns every video, or only one owner's when userId is set.
func (s *Store) GetVideos(ctx context.Context, userId string) ([]model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.Video, 0)
	tx := s.db.WithContext(ctx).Model(&model.Video{})
	if userId != "" {
		tx = tx.Where("user_id = ?", userId)
	}
	if err := tx.Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideos failed, err: %v", err)
	}
	return list, nil
}

// DeleteVideo removes the row only. Comments, watch-later entries and like
// state are not cascade-deleted; read paths that join against videos drop
// the orphans instead.
func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed, err: %v", err)
	}
	s.persist()
	return nil
}

func (s *Store) UpdateVideoTitle(ctx context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Update("title", title).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoTitle failed, err: %v", err)
	}
	s.persist()
	return nil
}

// IncrementVideoViews adds one view per video-open event. Repeated opens by
// the same viewer keep counting.
func (s *Store) IncrementVideoViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementVideoViews failed, err: %v", err)
	}
	s.persist()
	return nil
}

// ToggleLike flips the video's shared liked flag and moves likes_count by
// one in the same statement, the direction decided by the pre-toggle value.
// The flag is global rather than per-user, so toggles from different users
// collide; that is the documented behavior, not something this layer hides.
func (s *Store) ToggleLike(ctx context.Context, userId, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = userId // like state is shared across viewers

	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Updates(map[string]interface{}{
			"liked":       gorm.Expr("CASE WHEN liked THEN 0 ELSE 1 END"),
			"likes_count": gorm.Expr("CASE WHEN liked THEN likes_count - 1 ELSE likes_count + 1 END"),
		}).Error; err != nil {
		return errors.Wrapf(err, "ToggleLike failed, err: %v", err)
	}
	s.persist()
	return nil
}

func (s *Store) IncrementRepost(ctx context.Context, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Update("reposts_count", gorm.Expr("reposts_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementRepost failed, err: %v", err)
	}
	s.persist()
	return nil
}

func (s *Store) IncrementShare(ctx context.Context, videoId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoId).
		Update("shares_count", gorm.Expr("shares_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementShare failed, err: %v", err)
	}
	s.persist()
	return nil
}
