package services

import (
	"booklyn_backend/internal/geo"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

const (
	defaultSearchLimit  = 20
	maxSearchLimit      = 100
	defaultRadiusMeters = 10000
)

// DiscoveryService - поиск открытых объявлений по независимым критериям:
// гео-радиус, жанр, текст. Отсутствующий критерий не сужает выборку.
type DiscoveryService interface {
	DiscoverGigs(req *dto.DiscoverGigsRequest) (*dto.DiscoverGigsResponse, error)
}

type DiscoveryServiceImpl struct {
	gigRepo repositories.GigRepository
}

func NewDiscoveryService(gigRepo repositories.GigRepository) DiscoveryService {
	return &DiscoveryServiceImpl{gigRepo: gigRepo}
}

func (s *DiscoveryServiceImpl) DiscoverGigs(req *dto.DiscoverGigsRequest) (*dto.DiscoverGigsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	// Гео-критерий активен при полном центре; без radius_meters
	// действует радиус по умолчанию
	if (req.Lat == nil) != (req.Lng == nil) {
		return nil, apperrors.NewBadRequestError("lat and lng must be provided together")
	}
	geoActive := req.Lat != nil && req.Lng != nil
	radius := req.RadiusMeters
	if geoActive && radius <= 0 {
		radius = defaultRadiusMeters
	}

	criteria := repositories.GigSearchCriteria{
		Status: models.GigStatusOpen,
		Genre:  req.Genre,
		Search: req.Search,
		Limit:  limit,
		Offset: offset,
	}
	if geoActive {
		box := geo.BoundingBoxAround(*req.Lat, *req.Lng, radius)
		criteria.Box = &box
	}

	gigs, err := s.gigRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if geoActive {
		// Рамка грубая, точный радиус проверяется по хаверсину.
		// Объявления без координат гео-поиску не видны
		filtered := make([]models.GigPosting, 0, len(gigs))
		for _, gig := range gigs {
			if gig.LocationLat == nil || gig.LocationLng == nil {
				continue
			}
			dist := geo.DistanceMeters(*req.Lat, *req.Lng, *gig.LocationLat, *gig.LocationLng)
			if dist <= radius {
				filtered = append(filtered, gig)
			}
		}
		gigs = paginate(filtered, limit, offset)
		return &dto.DiscoverGigsResponse{
			Gigs:   gigs,
			Total:  len(filtered),
			Limit:  limit,
			Offset: offset,
		}, nil
	}

	return &dto.DiscoverGigsResponse{
		Gigs:   gigs,
		Total:  len(gigs),
		Limit:  limit,
		Offset: offset,
	}, nil
}

func paginate(gigs []models.GigPosting, limit, offset int) []models.GigPosting {
	if offset >= len(gigs) {
		return []models.GigPosting{}
	}
	end := offset + limit
	if end > len(gigs) {
		end = len(gigs)
	}
	return gigs[offset:end]
}
