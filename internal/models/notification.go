package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Type    NotificationType `gorm:"not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Content string           `json:"content"`
	// Ссылка, куда ведет клик по уведомлению
	Link   string         `json:"link,omitempty"`
	Data   datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"gig_id": "...", "application_id": "..."}
	IsRead bool           `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time     `json:"read_at,omitempty"`
}
