// Package service holds the store's UI-facing collaborators: the simulated
// auth backend, the upload pipeline stand-in, the description generator and
// the countries provider. Nothing here talks to a real platform backend.
package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/videomack/videomack/config"
	"github.com/videomack/videomack/pkg/errno"
	"github.com/videomack/videomack/pkg/model"
	"github.com/videomack/videomack/pkg/store"
	"github.com/videomack/videomack/pkg/utils"
)

// AuthService simulates the account backend. Credentials live only in this
// process; the user records themselves go through the store.
type AuthService struct {
	ctx   context.Context
	store *store.Store

	// email -> bcrypt hash, transient by design
	credentials map[string]string
	// email -> pending verification code
	pendingCodes map[string]string
}

func NewAuthService(ctx context.Context, st *store.Store) *AuthService {
	return &AuthService{
		ctx:          ctx,
		store:        st,
		credentials:  make(map[string]string),
		pendingCodes: make(map[string]string),
	}
}

// simulateLatency stands in for the network round-trip the UI expects.
func simulateLatency() {
	time.Sleep(time.Duration(config.ConfigInfo.Auth.LatencyMs) * time.Millisecond)
}

// Login accepts any non-empty credentials and signs in the demo identity,
// except for emails registered in this session, which must match their
// bcrypt hash. The session user is persisted under the session key.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	simulateLatency()

	if email == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("Please fill in all fields")
	}

	if hash, ok := s.credentials[email]; ok {
		if _, valid := utils.VerifyPassword(password, hash); !valid {
			return nil, errno.AuthorizationErr.WithMessage("Wrong password")
		}
	}

	user := &model.User{
		Id:              "u1",
		FullName:        "John Doe",
		Username:        "johndoe",
		Email:           email,
		PhoneNumber:     "+1234567890",
		Country:         "United States",
		CountryCode:     "+1",
		Bio:             "Avid music lover and creator.",
		IsAuthenticated: true,
		IsActivated:     true,
	}

	// Returning users keep their stored profile; only the demo identity's
	// defaults are used on first sign-in.
	if existing, err := s.store.GetUser(s.ctx, user.Id); err != nil {
		return nil, err
	} else if existing != nil {
		existing.Email = email
		existing.IsAuthenticated = true
		user = existing
	}

	if err := s.store.SaveUser(s.ctx, user); err != nil {
		return nil, err
	}
	if err := s.store.SaveSession(user); err != nil {
		return nil, err
	}
	logrus.Infof("user %s logged in", user.Username)
	return user, nil
}

// Register creates a not-yet-activated account and remembers the credential
// hash for this session. The caller shows the activation-pending screen.
func (s *AuthService) Register(fullName, username, email, password string) (*model.User, error) {
	simulateLatency()

	if fullName == "" || username == "" || email == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}

	hash, err := utils.Crypt(password)
	if err != nil {
		return nil, err
	}
	s.credentials[email] = hash

	user := &model.User{
		Id:              "u-" + utils.GenerateId(),
		FullName:        fullName,
		Username:        username,
		Email:           email,
		IsAuthenticated: false,
		IsActivated:     false,
	}
	if err := s.store.SaveUser(s.ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SendCode issues the verification code for a forgot-password flow. The code
// is the fixed demo OTP from config.
func (s *AuthService) SendCode(email string) (string, error) {
	simulateLatency()

	if email == "" {
		return "", errno.ParamErr.WithMessage("Email is required")
	}
	code := config.ConfigInfo.Auth.OtpCode
	s.pendingCodes[email] = code
	logrus.Infof("verification code issued for %s", email)
	return code, nil
}

func (s *AuthService) VerifyCode(email, code string) error {
	simulateLatency()

	pending, ok := s.pendingCodes[email]
	if !ok || pending != code {
		return errno.VerificationErr.WithMessage("Invalid OTP. Hint: " + config.ConfigInfo.Auth.OtpCode)
	}
	delete(s.pendingCodes, email)
	return nil
}

// ResetPassword replaces the stored credential hash after a verified OTP.
func (s *AuthService) ResetPassword(email, newPassword string) error {
	simulateLatency()

	if newPassword == "" {
		return errno.ParamErr.WithMessage("Password is required")
	}
	hash, err := utils.Crypt(newPassword)
	if err != nil {
		return err
	}
	s.credentials[email] = hash
	return nil
}

func (s *AuthService) Logout() error {
	return s.store.ClearSession()
}
