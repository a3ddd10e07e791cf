package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"notebook-share-be/internal/dto"
	"notebook-share-be/internal/entity"
	"notebook-share-be/internal/pkg/serverutils"
	"notebook-share-be/internal/repository/memory"
)

func newAuthFixture() (IAuthService, *fakeFactory, *memory.SessionRepository) {
	factory := newFakeFactory()
	factory.uow.admins.accounts = []*entity.AdminAccount{
		{Username: "alice", Password: "s3cret"},
	}
	sessions := memory.NewSessionRepository()
	svc := NewAuthService(factory, sessions, "test-secret", nopLogger{})
	return svc, factory, sessions
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	var appErr *serverutils.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, serverutils.KindUnauthorized, appErr.Kind)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice", res.Username)

	// the jti claim is the session id; the session must be registered
	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	sessionID := claims["jti"].(string)
	assert.True(t, sessions.Exists(sessionID))
	assert.Equal(t, "alice", claims["username"])
}

func TestLoginThenLogoutEndsSession(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "s3cret"})
	assert.NoError(t, err)

	token, _ := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	sessionID := token.Claims.(jwt.MapClaims)["jti"].(string)

	assert.NoError(t, svc.Logout(context.Background(), sessionID))
	assert.False(t, sessions.Exists(sessionID))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "mallory", Password: "s3cret"})
	assertUnauthorized(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "S3CRET"})
	assertUnauthorized(t, err)
}

func TestLoginPasswordIsExactStringMatch(t *testing.T) {
	svc, factory, _ := newAuthFixture()
	factory.uow.admins.accounts = append(factory.uow.admins.accounts,
		&entity.AdminAccount{Username: "bob", Password: "0123"})

	// "123" must not pass for a stored "0123"
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "123"})
	assertUnauthorized(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "bob", Password: "0123"})
	assert.NoError(t, err)
}

func TestLogoutIsUnconditional(t *testing.T) {
	svc, _, sessions := newAuthFixture()

	sessions.Save(&memory.Session{ID: "sess-1", Username: "alice"})
	assert.True(t, sessions.Exists("sess-1"))

	assert.NoError(t, svc.Logout(context.Background(), "sess-1"))
	assert.False(t, sessions.Exists("sess-1"))

	// logging out an absent session is still fine
	assert.NoError(t, svc.Logout(context.Background(), "sess-1"))
}
