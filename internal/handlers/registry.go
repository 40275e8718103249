package handlers

import (
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/validator"
)

// AppHandlers собирает все HTTP-обработчики приложения
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	Gig          *GigHandler
	Discovery    *DiscoveryHandler
	Application  *ApplicationHandler
	Notification *NotificationHandler
	GigRequest   *GigRequestHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())
	return &AppHandlers{
		Auth:         NewAuthHandler(base, sc.Auth),
		User:         NewUserHandler(base, sc.User),
		Profile:      NewProfileHandler(base, sc.Profile),
		Gig:          NewGigHandler(base, sc.Gig),
		Discovery:    NewDiscoveryHandler(base, sc.Discovery),
		Application:  NewApplicationHandler(base, sc.Application),
		Notification: NewNotificationHandler(base, sc.Notification),
		GigRequest:   NewGigRequestHandler(base, sc.GigRequest),
	}
}
