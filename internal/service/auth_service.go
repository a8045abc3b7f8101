package service

import (
	"errors"

	"pocketsmart/pkg/auth"
	"pocketsmart/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the single demo account and issues session
// tokens. There is no user database and no registration.
type AuthService struct {
	username     string
	passwordHash string
	demoUserID   string
	jwtManager   *auth.JWTManager
	logger       *zap.Logger
}

func NewAuthService(cfg *config.DemoConfig, jwtManager *auth.JWTManager, logger *zap.Logger) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return nil, err
	}

	// Stable ID so the session store survives re-logins within one
	// process lifetime.
	demoID := uuid.NewSHA1(uuid.NameSpaceOID, []byte("pocketsmart-demo:"+cfg.Username))

	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		demoUserID:   demoID.String(),
		jwtManager:   jwtManager,
		logger:       logger,
	}, nil
}

// Session is the issued demo session.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	UserID       string
	Username     string
}

func (s *AuthService) Login(username, password string) (*Session, error) {
	if username != s.username || !auth.CheckPasswordHash(password, s.passwordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateToken(s.demoUserID, s.username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(s.demoUserID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Demo session issued", zap.String("username", s.username))

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		UserID:       s.demoUserID,
		Username:     s.username,
	}, nil
}
