package services

import (
	"errors"

	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

type UserService interface {
	GetMe(userID string) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		CreatedAt:       user.CreatedAt,
		HasBandProfile:  user.BandProfile != nil,
		HasVenueProfile: user.VenueProfile != nil,
	}, nil
}
