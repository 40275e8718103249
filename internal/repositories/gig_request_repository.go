package repositories

import (
	"errors"

	"booklyn_backend/internal/models"

	"gorm.io/gorm"
)

var ErrGigRequestNotFound = errors.New("gig request not found")

type GigRequestRepository interface {
	Create(request *models.GigRequest) error
	FindByID(id string) (*models.GigRequest, error)
	List(genre string) ([]models.GigRequest, error)
}

type GigRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewGigRequestRepository(db *gorm.DB) GigRequestRepository {
	return &GigRequestRepositoryImpl{db: db}
}

func (r *GigRequestRepositoryImpl) Create(request *models.GigRequest) error {
	return r.db.Create(request).Error
}

func (r *GigRequestRepositoryImpl) FindByID(id string) (*models.GigRequest, error) {
	var request models.GigRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGigRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// List возвращает заявки групп, опционально сузив по вхождению жанра
func (r *GigRequestRepositoryImpl) List(genre string) ([]models.GigRequest, error) {
	var requests []models.GigRequest
	query := r.db.Model(&models.GigRequest{})

	if genre != "" {
		query = query.Where("? = ANY(genres)", genre)
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}
