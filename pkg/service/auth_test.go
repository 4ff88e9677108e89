package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/videomack/videomack/config"
	"github.com/videomack/videomack/pkg/storage"
	"github.com/videomack/videomack/pkg/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "storage.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	s, err := store.Open(kv)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func testConfig() {
	config.ConfigInfo.Auth.LatencyMs = 0
	config.ConfigInfo.Auth.OtpCode = "1234"
	config.ConfigInfo.Upload.TickMs = 0
	config.ConfigInfo.Upload.StepSize = 20
}

func TestLoginValidation(t *testing.T) {
	testConfig()
	s := NewAuthService(context.Background(), newTestStore(t))

	if _, err := s.Login("", "secret"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := s.Login("a@b.c", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestLoginPersistsSession(t *testing.T) {
	testConfig()
	ctx := context.Background()
	st := newTestStore(t)
	s := NewAuthService(ctx, st)

	user, err := s.Login("john@videomack.app", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !user.IsAuthenticated {
		t.Error("logged-in user should be authenticated")
	}

	session, err := st.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if session == nil || session.Id != user.Id {
		t.Errorf("session not persisted: %+v", session)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	session, _ = st.LoadSession(ctx)
	if session != nil {
		t.Errorf("session should be cleared after logout: %+v", session)
	}
}

func TestRegisterAndOtpFlow(t *testing.T) {
	testConfig()
	ctx := context.Background()
	st := newTestStore(t)
	s := NewAuthService(ctx, st)

	if _, err := s.Register("Jane Doe", "janedoe", "jane@videomack.app", ""); err == nil {
		t.Error("expected error for missing password")
	}

	user, err := s.Register("Jane Doe", "janedoe", "jane@videomack.app", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.IsActivated {
		t.Error("fresh registration should be activation-pending")
	}

	code, err := s.SendCode("jane@videomack.app")
	if err != nil {
		t.Fatalf("SendCode: %v", err)
	}
	if err := s.VerifyCode("jane@videomack.app", "0000"); err == nil {
		t.Error("expected error for wrong code")
	}
	if err := s.VerifyCode("jane@videomack.app", code); err != nil {
		t.Errorf("VerifyCode: %v", err)
	}
	// Codes are single use.
	if err := s.VerifyCode("jane@videomack.app", code); err == nil {
		t.Error("expected error for reused code")
	}
}

func TestRegisteredCredentialIsChecked(t *testing.T) {
	testConfig()
	ctx := context.Background()
	st := newTestStore(t)
	s := NewAuthService(ctx, st)

	if _, err := s.Register("Jane Doe", "janedoe", "jane@videomack.app", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := s.Login("jane@videomack.app", "wrong"); err == nil {
		t.Error("expected error for wrong password on registered email")
	}
	if _, err := s.Login("jane@videomack.app", "secret"); err != nil {
		t.Errorf("Login with correct password: %v", err)
	}

	if err := s.ResetPassword("jane@videomack.app", "newsecret"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := s.Login("jane@videomack.app", "secret"); err == nil {
		t.Error("old password should stop working after reset")
	}
	if _, err := s.Login("jane@videomack.app", "newsecret"); err != nil {
		t.Errorf("Login with new password: %v", err)
	}
}
