package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/videomack/videomack/pkg/model"
)

// AddComment appends a comment. Comments are immutable, there is no edit or
// delete path.
func (s *Store) AddComment(ctx context.Context, comment *model.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "AddComment failed, err: %v", err)
	}
	s.persist()
	return nil
}

// GetComments returns a video's comments newest first.
func (s *Store) GetComments(ctx context.Context, videoId string) ([]model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.Comment, 0)
	if err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetComments failed, err: %v", err)
	}
	return list, nil
}
