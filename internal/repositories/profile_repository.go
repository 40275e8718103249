package repositories

import (
	"errors"

	"booklyn_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// BandProfile operations
	CreateBandProfile(profile *models.BandProfile) error
	FindBandProfileByUserID(userID string) (*models.BandProfile, error)
	UpdateBandProfile(profile *models.BandProfile) error

	// VenueProfile operations
	CreateVenueProfile(profile *models.VenueProfile) error
	FindVenueProfileByUserID(userID string) (*models.VenueProfile, error)
	UpdateVenueProfile(profile *models.VenueProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// BandProfile operations

func (r *ProfileRepositoryImpl) CreateBandProfile(profile *models.BandProfile) error {
	err := r.db.Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindBandProfileByUserID(userID string) (*models.BandProfile, error) {
	var profile models.BandProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateBandProfile(profile *models.BandProfile) error {
	return r.db.Save(profile).Error
}

// VenueProfile operations

func (r *ProfileRepositoryImpl) CreateVenueProfile(profile *models.VenueProfile) error {
	err := r.db.Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindVenueProfileByUserID(userID string) (*models.VenueProfile, error) {
	var profile models.VenueProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateVenueProfile(profile *models.VenueProfile) error {
	return r.db.Save(profile).Error
}
