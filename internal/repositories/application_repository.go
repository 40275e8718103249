package repositories

import (
	"errors"

	"booklyn_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this gig")
	ErrApplicationDecided       = errors.New("application already decided")
)

type ApplicationRepository interface {
	Create(app *models.GigApplication) error
	FindByID(id string) (*models.GigApplication, error)
	FindByGigAndApplicant(gigID, applicantID string) (*models.GigApplication, error)
	ListByApplicant(applicantID string) ([]models.GigApplication, error)
	ListByVenue(venueID string) ([]models.GigApplication, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	WithTx(tx *gorm.DB) ApplicationRepository
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) WithTx(tx *gorm.DB) ApplicationRepository {
	if tx == nil {
		return r
	}
	return &ApplicationRepositoryImpl{db: tx}
}

// Create создает отклик. Пара (gig_id, applicant_id) защищена составным
// уникальным индексом: при одновременных одинаковых заявках выживает одна
func (r *ApplicationRepositoryImpl) Create(app *models.GigApplication) error {
	err := r.db.Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.GigApplication, error) {
	var app models.GigApplication
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByGigAndApplicant(gigID, applicantID string) (*models.GigApplication, error) {
	var app models.GigApplication
	err := r.db.Where("gig_id = ? AND applicant_id = ?", gigID, applicantID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByApplicant(applicantID string) ([]models.GigApplication, error) {
	var apps []models.GigApplication
	err := r.db.Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByVenue(venueID string) ([]models.GigApplication, error) {
	var apps []models.GigApplication
	err := r.db.Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// UpdateStatus переводит отклик из pending в новый статус.
// Условие по статусу в самом UPDATE: при двух одновременных решениях
// выигрывает одно, второе получает ErrApplicationDecided
func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.GigApplication{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationDecided
	}
	return nil
}
