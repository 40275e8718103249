package services

import (
	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/config"
	"booklyn_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer собирает все сервисы приложения.
// Tokens отдается наружу, чтобы middleware проверяло токены
// тем же менеджером, которым их выпускает auth-сервис
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Profile      ProfileService
	Gig          GigService
	Discovery    DiscoveryService
	Application  ApplicationService
	Notification NotificationService
	GigRequest   GigRequestService

	Tokens *auth.TokenManager
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	refreshRepo := repositories.NewRefreshTokenRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	gigRepo := repositories.NewGigRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	requestRepo := repositories.NewGigRequestRepository(db)
	tx := repositories.NewTransactor(db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, refreshRepo, tokens, cfg.JWT.RefreshTTLDays),
		User:         NewUserService(userRepo),
		Profile:      NewProfileService(profileRepo, userRepo),
		Gig:          NewGigService(gigRepo, userRepo, profileRepo),
		Discovery:    NewDiscoveryService(gigRepo),
		Application:  NewApplicationService(appRepo, gigRepo, userRepo, profileRepo, notificationRepo, tx),
		Notification: NewNotificationService(notificationRepo),
		GigRequest:   NewGigRequestService(requestRepo, userRepo),
		Tokens:       tokens,
	}
}
