package services

import (
	"errors"
	"time"

	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/logger"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(refreshToken string) (*dto.TokenResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	refreshRepo    repositories.RefreshTokenRepository
	tokens         *auth.TokenManager
	refreshTTLDays int
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshRepo repositories.RefreshTokenRepository,
	tokens *auth.TokenManager,
	refreshTTLDays int,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		refreshRepo:    refreshRepo,
		tokens:         tokens,
		refreshTTLDays: refreshTTLDays,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role != models.UserRoleBand && req.Role != models.UserRoleVenue {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	// Уникальность email гарантирует индекс, предварительная проверка не нужна
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(user)
}

// RefreshToken меняет refresh-токен на новую пару токенов.
// Использованный токен удаляется, повторное предъявление отклоняется.
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.refreshRepo.FindByToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		// Попутная уборка: вместе с предъявленным вычищаются
		// все истекшие токены
		_ = s.refreshRepo.CleanExpired()
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

// Logout завершает все сессии владельца токена.
// Неизвестный токен не ошибка: выход идемпотентен
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	stored, err := s.refreshRepo.FindByToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if err := s.refreshRepo.DeleteByUserID(stored.UserID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	accessToken, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().AddDate(0, 0, s.refreshTTLDays),
	}
	if err := s.refreshRepo.Create(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		TokenType:    "bearer",
	}, nil
}
