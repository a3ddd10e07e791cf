package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/pkg/logger"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/repository/memory"
	"notebook-share-be/internal/repository/unitofwork"
)

const sessionLifetime = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	jwtSecret  string
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	jwtSecret string,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		logger:     logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	// Credentials are provisioned out of band as plain strings; the check is
	// exact string equality. An unknown username and a wrong password are
	// the same negative result.
	if admin == nil || subtle.ConstantTimeCompare([]byte(admin.Password), []byte(req.Password)) != 1 {
		s.logger.Warn("auth", "Login rejected", map[string]interface{}{"username": req.Username})
		return nil, serverutils.NewUnauthorized("invalid credentials")
	}

	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"jti":      sessionID,
		"username": admin.Username,
		"exp":      time.Now().Add(sessionLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, serverutils.NewInternal("could not issue session token", err)
	}

	s.sessions.Save(&memory.Session{
		ID:         sessionID,
		Username:   admin.Username,
		LoggedInAt: time.Now(),
	})
	s.logger.Info("auth", "Operator logged in", map[string]interface{}{"username": admin.Username})

	return &dto.LoginResponse{
		Token:    signedToken,
		Username: admin.Username,
	}, nil
}

// Logout is unconditional: deleting an absent session is not an error.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if session, ok := s.sessions.Get(sessionID); ok {
		s.logger.Info("auth", "Operator logged out", map[string]interface{}{"username": session.Username})
	}
	s.sessions.Delete(sessionID)
	return nil
}
