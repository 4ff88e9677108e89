package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/model"
)

// SendMessage appends an immutable message row with a fresh id and the
// current timestamp.
func (s *Store) SendMessage(ctx context.Context, senderId, receiverId, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &model.Message{
		Id:         uuid.New().String(),
		SenderId:   senderId,
		ReceiverId: receiverId,
		Content:    content,
		Timestamp:  time.Now().Format(constants.TimestampFormat),
	}
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return errors.Wrapf(err, "SendMessage failed, err: %v", err)
	}
	s.persist()
	return nil
}

// GetMessages returns the full conversation between the two users, oldest
// first. The result is the same whichever way the arguments are passed.
func (s *Store) GetMessages(ctx context.Context, userId1, userId2 string) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]model.Message, 0)
	if err := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userId1, userId2, userId2, userId1).
		Order("timestamp ASC").
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetMessages failed, err: %v", err)
	}
	return list, nil
}

// GetChatPeers returns every user this one has exchanged any message with,
// resolved to full records, in no particular order. Peers whose user row is
// missing come back as an "Unknown User" stand-in rather than being dropped.
func (s *Store) GetChatPeers(ctx context.Context, userId string) ([]model.User, error) {
	s.mu.Lock()
	peerIds := make([]string, 0)
	err := s.db.WithContext(ctx).Raw(
		`SELECT DISTINCT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS peer_id
		 FROM messages WHERE sender_id = ? OR receiver_id = ?`,
		userId, userId, userId).Scan(&peerIds).Error
	s.mu.Unlock()
	if err != nil {
		return nil, errors.Wrapf(err, "GetChatPeers failed, err: %v", err)
	}

	peers := make([]model.User, 0, len(peerIds))
	for _, peerId := range peerIds {
		user, err := s.GetUser(ctx, peerId)
		if err != nil {
			return nil, err
		}
		if user == nil {
			user = &model.User{Id: peerId, Username: constants.UnknownUserName}
		}
		peers = append(peers, *user)
	}
	return peers, nil
}
