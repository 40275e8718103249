package dto

import "booklyn_backend/internal/models"

// UpsertBandProfileRequest - создание или частичное обновление профиля группы.
// Nil-поля не изменяют сохранённые значения.
type UpsertBandProfileRequest struct {
	BandName       *string               `json:"band_name" validate:"omitempty,min=1,max=255"`
	Genre          *string               `json:"genre" validate:"omitempty,max=100"`
	LocationCity   *string               `json:"location_city" validate:"omitempty,max=100"`
	LocationState  *string               `json:"location_state" validate:"omitempty,max=100"`
	Bio            *string               `json:"bio" validate:"omitempty,max=5000"`
	DemoURL        *string               `json:"demo_url" validate:"omitempty,url"`
	PhotoURL       *string               `json:"photo_url" validate:"omitempty,url"`
	Instagram      *string               `json:"instagram" validate:"omitempty,max=255"`
	Spotify        *string               `json:"spotify" validate:"omitempty,max=255"`
	Youtube        *string               `json:"youtube" validate:"omitempty,max=255"`
	ContactMethod  *models.ContactMethod `json:"contact_method" validate:"omitempty,contact_method"`
	WhatsappNumber *string               `json:"whatsapp_number" validate:"omitempty,max=50"`
	ContactEmail   *string               `json:"contact_email" validate:"omitempty,email"`
}

// UpsertVenueProfileRequest - создание или частичное обновление профиля площадки.
type UpsertVenueProfileRequest struct {
	VenueName      *string               `json:"venue_name" validate:"omitempty,min=1,max=255"`
	LocationCity   *string               `json:"location_city" validate:"omitempty,max=100"`
	LocationState  *string               `json:"location_state" validate:"omitempty,max=50"`
	Capacity       *int                  `json:"capacity" validate:"omitempty,min=0"`
	Bio            *string               `json:"bio" validate:"omitempty,max=5000"`
	PhotoURL       *string               `json:"photo_url" validate:"omitempty,url"`
	TypicalGenres  []string              `json:"typical_genres" validate:"omitempty,dive,max=100"`
	ContactMethod  *models.ContactMethod `json:"contact_method" validate:"omitempty,contact_method"`
	WhatsappNumber *string               `json:"whatsapp_number" validate:"omitempty,max=50"`
	Instagram      *string               `json:"instagram" validate:"omitempty,max=255"`
	ContactEmail   *string               `json:"contact_email" validate:"omitempty,email"`
}

// ProfileResponse - профиль пользователя. Заполнено ровно одно из полей,
// соответствующее роли.
type ProfileResponse struct {
	Role  models.UserRole      `json:"role"`
	Band  *models.BandProfile  `json:"band_profile,omitempty"`
	Venue *models.VenueProfile `json:"venue_profile,omitempty"`
}
