package services

import (
	"errors"
	"strings"
	"time"

	"booklyn_backend/internal/logger"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

type GigService interface {
	Create(venueUserID string, req *dto.CreateGigRequest) (*models.GigPosting, error)
	GetByID(id string) (*models.GigPosting, error)
	ListOpen(req *dto.ListGigsRequest) ([]models.GigPosting, error)
	ListManaged(venueUserID string) ([]models.GigPosting, error)
}

type GigServiceImpl struct {
	gigRepo     repositories.GigRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewGigService(
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) GigService {
	return &GigServiceImpl{
		gigRepo:     gigRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *GigServiceImpl) Create(venueUserID string, req *dto.CreateGigRequest) (*models.GigPosting, error) {
	user, err := s.userRepo.FindByID(venueUserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleVenue {
		return nil, apperrors.ErrNotVenue
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date format, expected YYYY-MM-DD")
	}

	// Координаты либо заданы парой, либо отсутствуют
	if (req.LocationLat == nil) != (req.LocationLng == nil) {
		return nil, apperrors.NewBadRequestError("location_lat and location_lng must be provided together")
	}

	gig := &models.GigPosting{
		VenueID:          user.ID,
		VenueName:        s.venueDisplayName(user),
		Title:            req.Title,
		Date:             date,
		Time:             req.Time,
		Genre:            req.Genre,
		Description:      req.Description,
		Pay:              req.Pay,
		FormattedAddress: req.FormattedAddress,
		LocationLat:      req.LocationLat,
		LocationLng:      req.LocationLng,
		Status:           models.GigStatusOpen,
		Tags:             req.Tags,
		PhotoURL:         req.PhotoURL,
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("gig created", "gig_id", gig.ID, "venue_id", user.ID)
	return gig, nil
}

func (s *GigServiceImpl) GetByID(id string) (*models.GigPosting, error) {
	gig, err := s.gigRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *GigServiceImpl) ListOpen(req *dto.ListGigsRequest) ([]models.GigPosting, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	gigs, err := s.gigRepo.Search(repositories.GigSearchCriteria{
		Status: models.GigStatusOpen,
		Genre:  req.Genre,
		Search: req.Search,
		Limit:  limit,
		Offset: req.Offset,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigs, nil
}

func (s *GigServiceImpl) ListManaged(venueUserID string) ([]models.GigPosting, error) {
	gigs, err := s.gigRepo.ListByVenue(venueUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gigs, nil
}

// venueDisplayName берет название из профиля площадки,
// без профиля - локальную часть email с заглавной буквы
func (s *GigServiceImpl) venueDisplayName(user *models.User) string {
	if profile, err := s.profileRepo.FindVenueProfileByUserID(user.ID); err == nil && profile.VenueName != "" {
		return profile.VenueName
	}
	local := user.Email
	if at := strings.IndexByte(local, '@'); at > 0 {
		local = local[:at]
	}
	if local == "" {
		return "Venue"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
