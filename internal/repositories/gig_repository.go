package repositories

import (
	"errors"

	"booklyn_backend/internal/geo"
	"booklyn_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigNotFound = errors.New("gig not found")

// GigSearchCriteria - независимо-опциональные критерии поиска по каталогу.
// Критерии соединяются через AND, текстовый поиск внутри себя через OR
// по title/description/tags
type GigSearchCriteria struct {
	Status models.GigStatus
	Genre  string
	Search string
	// Грубый геопрефильтр. Точная проверка радиуса выполняется вызывающей
	// стороной, поэтому при заданном Box пагинация здесь не применяется
	Box    *geo.BoundingBox
	Limit  int
	Offset int
}

type GigRepository interface {
	Create(gig *models.GigPosting) error
	FindByID(id string) (*models.GigPosting, error)
	ListByVenue(venueID string) ([]models.GigPosting, error)
	Search(criteria GigSearchCriteria) ([]models.GigPosting, error)
}

type GigRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRepository(db *gorm.DB) GigRepository {
	return &GigRepositoryImpl{db: db}
}

func (r *GigRepositoryImpl) Create(gig *models.GigPosting) error {
	return r.db.Create(gig).Error
}

func (r *GigRepositoryImpl) FindByID(id string) (*models.GigPosting, error) {
	var gig models.GigPosting
	err := r.db.First(&gig, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigNotFound
		}
		return nil, err
	}
	return &gig, nil
}

// ListByVenue возвращает все гиги площадки, включая закрытые, новые первыми
func (r *GigRepositoryImpl) ListByVenue(venueID string) ([]models.GigPosting, error) {
	var gigs []models.GigPosting
	err := r.db.Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Find(&gigs).Error
	return gigs, err
}

func (r *GigRepositoryImpl) Search(criteria GigSearchCriteria) ([]models.GigPosting, error) {
	var gigs []models.GigPosting
	query := r.db.Model(&models.GigPosting{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	// Пустой жанр означает отсутствие фильтра, а не пустое совпадение
	if criteria.Genre != "" {
		query = query.Where("genre = ?", criteria.Genre)
	}

	// Text search
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR array_to_string(tags, ' ') ILIKE ?",
			search, search, search,
		)
	}

	if criteria.Box != nil {
		// Гиги без координат не могут попасть под радиусный фильтр
		query = query.Where("location_lat IS NOT NULL AND location_lng IS NOT NULL").
			Where("location_lat BETWEEN ? AND ?", criteria.Box.MinLat, criteria.Box.MaxLat).
			Where("location_lng BETWEEN ? AND ?", criteria.Box.MinLng, criteria.Box.MaxLng)
	} else {
		if criteria.Limit > 0 {
			query = query.Limit(criteria.Limit)
		}
		if criteria.Offset > 0 {
			query = query.Offset(criteria.Offset)
		}
	}

	err := query.Order("created_at DESC").Find(&gigs).Error
	return gigs, err
}
