package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GigPosting struct {
	BaseModel
	VenueID string `gorm:"type:uuid;not null;index" json:"venue_id"`
	// Снимок названия площадки на момент создания, с профилем не синхронизируется
	VenueName        string         `gorm:"size:255" json:"venue_name"`
	Title            string         `gorm:"size:255;not null" json:"title"`
	Date             time.Time      `gorm:"type:date;not null" json:"date"`
	Time             string         `gorm:"size:50;not null" json:"time"`
	Genre            string         `gorm:"size:100;not null;index" json:"genre"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	Pay              string         `gorm:"size:100" json:"pay,omitempty"`
	FormattedAddress string         `gorm:"type:text" json:"formatted_address,omitempty"`
	LocationLat      *float64       `gorm:"type:numeric(9,6)" json:"location_lat,omitempty"`
	LocationLng      *float64       `gorm:"type:numeric(9,6)" json:"location_lng,omitempty"`
	Status           GigStatus      `gorm:"type:varchar(20);default:'open'" json:"status"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	PhotoURL         string         `gorm:"type:text" json:"photo_url,omitempty"`
}

type GigApplication struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	GigID string `gorm:"type:uuid;not null;uniqueIndex:idx_gig_applicant" json:"gig_id"`
	// VenueID денормализован из гига, чтобы площадка читала свои отклики одним запросом
	VenueID       string            `gorm:"type:uuid;not null;index" json:"venue_id"`
	ApplicantID   string            `gorm:"type:uuid;not null;uniqueIndex:idx_gig_applicant" json:"applicant_id"`
	ApplicantName string            `gorm:"size:255" json:"applicant_name"`
	Message       *string           `gorm:"type:text" json:"message,omitempty"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (a *GigApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type GigRequest struct {
	BaseModel
	BandID          string         `gorm:"type:uuid;not null;index" json:"band_id"`
	AvailableFrom   time.Time      `gorm:"type:date;not null" json:"available_from"`
	AvailableTo     time.Time      `gorm:"type:date;not null" json:"available_to"`
	Genres          pq.StringArray `gorm:"type:text[];not null" json:"genres"`
	WillingToTravel bool           `gorm:"default:false" json:"willing_to_travel"`
	MaxDistance     *int           `json:"max_distance,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
}
