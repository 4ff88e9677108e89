package store

import (
	"context"
	"testing"
)

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	loaded, err := s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession empty: %v", err)
	}
	if loaded != nil {
		t.Fatalf("expected no session, got %+v", loaded)
	}

	u := testUser("u1")
	if err := s.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := s.SaveSession(u); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	// The user row is updated after the session was written; LoadSession
	// must return the fresh row, not the stale session copy.
	u.Bio = "refreshed"
	if err := s.SaveUser(ctx, u); err != nil {
		t.Fatalf("SaveUser update: %v", err)
	}

	loaded, err = s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded == nil || loaded.Bio != "refreshed" {
		t.Errorf("session not refreshed from users table: %+v", loaded)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	loaded, err = s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession after clear: %v", err)
	}
	if loaded != nil {
		t.Errorf("expected nil after clear, got %+v", loaded)
	}
}

func TestSessionSurvivesUserRowDeletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := testUser("u1")
	if err := s.SaveSession(u); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	// No matching row in users: the stored session copy is returned as-is.
	loaded, err := s.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded == nil || loaded.Id != "u1" {
		t.Errorf("expected stored session copy, got %+v", loaded)
	}
}
