package services

import (
	"sync"
	"testing"
	"time"

	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv()

	created, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "band@example.com",
		Password: "secret123",
		Role:     models.UserRoleBand,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "band@example.com", created.Email)
	assert.Equal(t, models.UserRoleBand, created.Role)

	user, err := env.userRepo.FindByEmail("band@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleBand, user.Role)
	// Хэш, а не пароль
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("secret123", user.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	req := &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
		Role:     models.UserRoleVenue,
	}
	_, err := env.auth.Register(req)
	require.NoError(t, err)

	_, err = env.auth.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterDuplicateEmailConcurrent(t *testing.T) {
	env := newTestEnv()

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.auth.Register(&dto.RegisterRequest{
				Email:    "race@example.com",
				Password: "secret123",
				Role:     models.UserRoleBand,
			})
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	env := newTestEnv()

	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "weak@example.com",
		Password: "123",
		Role:     models.UserRoleBand,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv()

	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestLogin(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "band@example.com",
		Password: "secret123",
		Role:     models.UserRoleBand,
	})
	require.NoError(t, err)

	tokens, err := env.auth.Login(&dto.LoginRequest{
		Email:    "band@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = env.auth.Login(&dto.LoginRequest{
		Email:    "band@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Несуществующий пользователь неотличим от неверного пароля
	_, err = env.auth.Login(&dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "band@example.com",
		Password: "secret123",
		Role:     models.UserRoleBand,
	})
	require.NoError(t, err)

	initial, err := env.auth.Login(&dto.LoginRequest{
		Email:    "band@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", initial.TokenType)

	rotated, err := env.auth.RefreshToken(initial.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, initial.RefreshToken, rotated.RefreshToken)

	// Использованный токен отозван
	_, err = env.auth.RefreshToken(initial.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshTokenExpired(t *testing.T) {
	env := newTestEnv()
	user := env.seedUser("band@example.com", models.UserRoleBand)

	stale := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, env.refreshRepo.Create(stale))

	_, err := env.auth.RefreshToken("stale-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// Истекший токен удален, повтор дает invalid
	_, err = env.auth.RefreshToken("stale-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "band@example.com",
		Password: "secret123",
		Role:     models.UserRoleBand,
	})
	require.NoError(t, err)

	tokens, err := env.auth.Login(&dto.LoginRequest{
		Email:    "band@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(tokens.RefreshToken))
	_, err = env.auth.RefreshToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Повторный logout идемпотентен
	require.NoError(t, env.auth.Logout(tokens.RefreshToken))
}

func TestLogoutRevokesAllSessions(t *testing.T) {
	env := newTestEnv()
	_, err := env.auth.Register(&dto.RegisterRequest{
		Email:    "band@example.com",
		Password: "secret123",
		Role:     models.UserRoleBand,
	})
	require.NoError(t, err)

	creds := &dto.LoginRequest{Email: "band@example.com", Password: "secret123"}
	first, err := env.auth.Login(creds)
	require.NoError(t, err)
	second, err := env.auth.Login(creds)
	require.NoError(t, err)

	// Выход с одного устройства завершает сессии на всех
	require.NoError(t, env.auth.Logout(first.RefreshToken))
	_, err = env.auth.RefreshToken(second.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
