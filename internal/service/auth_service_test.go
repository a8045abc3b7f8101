package service

import (
	"errors"
	"testing"
	"time"

	"pocketsmart/pkg/auth"
	"pocketsmart/pkg/config"

	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc, err := NewAuthService(&config.DemoConfig{Username: "demo", Password: "demo1234"}, jwtManager, zap.NewNop())
	if err != nil {
		t.Fatalf("new auth service: %v", err)
	}
	return svc
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)

	session, err := svc.Login("demo", "demo1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Error("session should carry both tokens")
	}
	if session.Username != "demo" || session.UserID == "" {
		t.Errorf("session identity = %q/%q", session.Username, session.UserID)
	}
	if session.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, want 3600", session.ExpiresIn)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "demo", "nope"},
		{"wrong username", "admin", "demo1234"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(tt.username, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthService_StableUserID(t *testing.T) {
	svc := newTestAuthService(t)

	s1, err := svc.Login("demo", "demo1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	s2, err := svc.Login("demo", "demo1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if s1.UserID != s2.UserID {
		t.Errorf("user id changed between logins: %q vs %q", s1.UserID, s2.UserID)
	}
}
