package services

import (
	"errors"

	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

type ProfileService interface {
	UpsertBandProfile(userID string, req *dto.UpsertBandProfileRequest) (*models.BandProfile, error)
	UpsertVenueProfile(userID string, req *dto.UpsertVenueProfileRequest) (*models.VenueProfile, error)
	GetByUserID(userID string) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, userRepo: userRepo}
}

// UpsertBandProfile создает профиль либо обновляет существующий.
// Nil-поля запроса не трогают сохраненные значения.
func (s *ProfileServiceImpl) UpsertBandProfile(userID string, req *dto.UpsertBandProfileRequest) (*models.BandProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleBand {
		return nil, apperrors.NewForbiddenError("Only band accounts can have a band profile")
	}

	profile, err := s.profileRepo.FindBandProfileByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.BandProfile{UserID: userID}
		s.applyBandPatch(profile, req)
		if profile.BandName == "" || profile.Genre == "" || profile.LocationCity == "" {
			return nil, apperrors.NewBadRequestError("band_name, genre and location_city are required for a new profile")
		}
		if err := s.profileRepo.CreateBandProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	s.applyBandPatch(profile, req)
	if err := s.profileRepo.UpdateBandProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpsertVenueProfile(userID string, req *dto.UpsertVenueProfileRequest) (*models.VenueProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleVenue {
		return nil, apperrors.NewForbiddenError("Only venue accounts can have a venue profile")
	}

	profile, err := s.profileRepo.FindVenueProfileByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.VenueProfile{UserID: userID}
		s.applyVenuePatch(profile, req)
		if profile.VenueName == "" || profile.LocationCity == "" {
			return nil, apperrors.NewBadRequestError("venue_name and location_city are required for a new profile")
		}
		if err := s.profileRepo.CreateVenueProfile(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return profile, nil
	}

	s.applyVenuePatch(profile, req)
	if err := s.profileRepo.UpdateVenueProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// GetByUserID возвращает профиль, соответствующий роли пользователя
func (s *ProfileServiceImpl) GetByUserID(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	resp := &dto.ProfileResponse{Role: user.Role}
	switch user.Role {
	case models.UserRoleBand:
		profile, err := s.profileRepo.FindBandProfileByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return nil, apperrors.ErrProfileNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		resp.Band = profile
	case models.UserRoleVenue:
		profile, err := s.profileRepo.FindVenueProfileByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return nil, apperrors.ErrProfileNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		resp.Venue = profile
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
	return resp, nil
}

func (s *ProfileServiceImpl) applyBandPatch(profile *models.BandProfile, req *dto.UpsertBandProfileRequest) {
	setString(&profile.BandName, req.BandName)
	setString(&profile.Genre, req.Genre)
	setString(&profile.LocationCity, req.LocationCity)
	setString(&profile.LocationState, req.LocationState)
	setString(&profile.Bio, req.Bio)
	setString(&profile.DemoURL, req.DemoURL)
	setString(&profile.PhotoURL, req.PhotoURL)
	setString(&profile.Instagram, req.Instagram)
	setString(&profile.Spotify, req.Spotify)
	setString(&profile.Youtube, req.Youtube)
	setString(&profile.WhatsappNumber, req.WhatsappNumber)
	setString(&profile.ContactEmail, req.ContactEmail)
	if req.ContactMethod != nil {
		profile.ContactMethod = *req.ContactMethod
	}
}

func (s *ProfileServiceImpl) applyVenuePatch(profile *models.VenueProfile, req *dto.UpsertVenueProfileRequest) {
	setString(&profile.VenueName, req.VenueName)
	setString(&profile.LocationCity, req.LocationCity)
	setString(&profile.LocationState, req.LocationState)
	setString(&profile.Bio, req.Bio)
	setString(&profile.PhotoURL, req.PhotoURL)
	setString(&profile.WhatsappNumber, req.WhatsappNumber)
	setString(&profile.Instagram, req.Instagram)
	setString(&profile.ContactEmail, req.ContactEmail)
	if req.Capacity != nil {
		profile.Capacity = req.Capacity
	}
	if req.TypicalGenres != nil {
		profile.TypicalGenres = req.TypicalGenres
	}
	if req.ContactMethod != nil {
		profile.ContactMethod = *req.ContactMethod
	}
}

func setString[T ~string](dst *T, src *string) {
	if src != nil {
		*dst = T(*src)
	}
}
