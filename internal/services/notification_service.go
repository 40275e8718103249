package services

import (
	"errors"

	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"
)

const notificationPageSize = 50

type NotificationService interface {
	ListForUser(userID string) (*dto.ListNotificationsResponse, error)
	MarkAsRead(userID, notificationID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) ListForUser(userID string) (*dto.ListNotificationsResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(userID, notificationPageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return &dto.ListNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkAsRead помечает уведомление прочитанным, только для его получателя
func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}
	if notification.UserID != userID {
		return apperrors.NewForbiddenError("Notification belongs to another user")
	}
	if notification.IsRead {
		return nil
	}
	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
