package services

import (
	"errors"
	"time"

	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

type GigRequestService interface {
	Create(bandUserID string, req *dto.CreateGigRequestRequest) (*models.GigRequest, error)
	GetByID(id string) (*models.GigRequest, error)
	List(genre string) ([]models.GigRequest, error)
}

type GigRequestServiceImpl struct {
	requestRepo repositories.GigRequestRepository
	userRepo    repositories.UserRepository
}

func NewGigRequestService(requestRepo repositories.GigRequestRepository, userRepo repositories.UserRepository) GigRequestService {
	return &GigRequestServiceImpl{requestRepo: requestRepo, userRepo: userRepo}
}

func (s *GigRequestServiceImpl) Create(bandUserID string, req *dto.CreateGigRequestRequest) (*models.GigRequest, error) {
	user, err := s.userRepo.FindByID(bandUserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleBand {
		return nil, apperrors.ErrNotGigRequester
	}

	from, err := time.Parse("2006-01-02", req.AvailableFrom)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid available_from, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.AvailableTo)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid available_to, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, apperrors.NewBadRequestError("available_to must not precede available_from")
	}

	request := &models.GigRequest{
		BandID:          bandUserID,
		AvailableFrom:   from,
		AvailableTo:     to,
		Genres:          req.Genres,
		WillingToTravel: req.WillingToTravel,
		MaxDistance:     req.MaxDistance,
		Notes:           req.Notes,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *GigRequestServiceImpl) GetByID(id string) (*models.GigRequest, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigRequestNotFound) {
			return nil, apperrors.ErrGigRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *GigRequestServiceImpl) List(genre string) ([]models.GigRequest, error) {
	requests, err := s.requestRepo.List(genre)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return requests, nil
}
