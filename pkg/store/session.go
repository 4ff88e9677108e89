package store

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/videomack/videomack/pkg/constants"
	"github.com/videomack/videomack/pkg/model"
)

// SaveSession records the signed-in user under the session key, separate
// from the engine snapshot.
func (s *Store) SaveSession(user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrapf(err, "SaveSession marshal failed, err: %v", err)
	}
	return s.kv.Put(constants.SessionKey, data)
}

// LoadSession returns the saved session user, refreshed from the users table
// when the row still exists. Nil when no session is stored.
func (s *Store) LoadSession(ctx context.Context) (*model.User, error) {
	data, err := s.kv.Get(constants.SessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var saved model.User
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, errors.Wrapf(err, "LoadSession unmarshal failed, err: %v", err)
	}

	fresh, err := s.GetUser(ctx, saved.Id)
	if err != nil {
		return nil, err
	}
	if fresh != nil {
		return fresh, nil
	}
	return &saved, nil
}

func (s *Store) ClearSession() error {
	return s.kv.Delete(constants.SessionKey)
}
