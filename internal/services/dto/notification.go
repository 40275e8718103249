package dto

import "booklyn_backend/internal/models"

// ListNotificationsResponse - уведомления пользователя со счётчиком непрочитанных
type ListNotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
}
