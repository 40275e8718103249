package dto

import (
	"time"

	"booklyn_backend/internal/models"
)

// ApplyRequest - отклик группы на объявление
type ApplyRequest struct {
	GigID   string  `json:"gig_id" validate:"required,uuid"`
	Message *string `json:"message" validate:"omitempty,max=2000"`
}

// SetApplicationStatusRequest - решение площадки по отклику
type SetApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,application_status"`
}

// ApplicantContact - контакты группы, раскрываются площадке
// только после принятия отклика
type ApplicantContact struct {
	ContactMethod  models.ContactMethod `json:"contact_method,omitempty"`
	WhatsappNumber string               `json:"whatsapp_number,omitempty"`
	ContactEmail   string               `json:"contact_email,omitempty"`
	Instagram      string               `json:"instagram,omitempty"`
}

// VenueApplicationResponse - отклик глазами площадки
type VenueApplicationResponse struct {
	ID            string                   `json:"id"`
	GigID         string                   `json:"gig_id"`
	GigTitle      string                   `json:"gig_title,omitempty"`
	ApplicantID   string                   `json:"applicant_id"`
	ApplicantName string                   `json:"applicant_name"`
	Message       *string                  `json:"message,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
	Contact       *ApplicantContact        `json:"contact,omitempty"`
}

// BandApplicationResponse - отклик глазами группы
type BandApplicationResponse struct {
	ID        string                   `json:"id"`
	GigID     string                   `json:"gig_id"`
	GigTitle  string                   `json:"gig_title,omitempty"`
	VenueName string                   `json:"venue_name,omitempty"`
	Message   *string                  `json:"message,omitempty"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}
