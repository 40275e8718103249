package models

import "github.com/lib/pq"

type BandProfile struct {
	BaseModel
	UserID         string        `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BandName       string        `gorm:"size:255;not null" json:"band_name"`
	Genre          string        `gorm:"size:100;not null;index" json:"genre"`
	LocationCity   string        `gorm:"size:100;not null" json:"location_city"`
	LocationState  string        `gorm:"size:50;not null" json:"location_state"`
	Bio            string        `gorm:"type:text" json:"bio,omitempty"`
	DemoURL        string        `gorm:"type:text" json:"demo_url,omitempty"`
	PhotoURL       string        `gorm:"type:text" json:"photo_url,omitempty"`
	Instagram      string        `gorm:"size:255" json:"instagram,omitempty"`
	Spotify        string        `gorm:"size:255" json:"spotify,omitempty"`
	Youtube        string        `gorm:"size:255" json:"youtube,omitempty"`
	ContactMethod  ContactMethod `gorm:"size:20" json:"contact_method,omitempty"`
	WhatsappNumber string        `gorm:"size:20" json:"whatsapp_number,omitempty"`
	ContactEmail   string        `gorm:"size:255" json:"contact_email,omitempty"`
}

type VenueProfile struct {
	BaseModel
	UserID         string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	VenueName      string         `gorm:"size:255;not null" json:"venue_name"`
	LocationCity   string         `gorm:"size:100;not null" json:"location_city"`
	LocationState  string         `gorm:"size:50;not null" json:"location_state"`
	Capacity       *int           `json:"capacity,omitempty"`
	Bio            string         `gorm:"type:text" json:"bio,omitempty"`
	PhotoURL       string         `gorm:"type:text" json:"photo_url,omitempty"`
	TypicalGenres  pq.StringArray `gorm:"type:text[]" json:"typical_genres"`
	ContactMethod  ContactMethod  `gorm:"size:20" json:"contact_method,omitempty"`
	WhatsappNumber string         `gorm:"size:20" json:"whatsapp_number,omitempty"`
	Instagram      string         `gorm:"size:255" json:"instagram,omitempty"`
	ContactEmail   string         `gorm:"size:255" json:"contact_email,omitempty"`
}
