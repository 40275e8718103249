package services

import (
	"booklyn_backend/internal/auth"
	"booklyn_backend/internal/models"

	"github.com/google/uuid"
)

// testEnv - полный набор сервисов поверх фейковых репозиториев
type testEnv struct {
	userRepo         *fakeUserRepo
	refreshRepo      *fakeRefreshTokenRepo
	profileRepo      *fakeProfileRepo
	gigRepo          *fakeGigRepo
	appRepo          *fakeApplicationRepo
	notificationRepo *fakeNotificationRepo
	requestRepo      *fakeGigRequestRepo

	auth         AuthService
	user         UserService
	profile      ProfileService
	gig          GigService
	discovery    DiscoveryService
	application  ApplicationService
	notification NotificationService
	gigRequest   GigRequestService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userRepo:         newFakeUserRepo(),
		refreshRepo:      newFakeRefreshTokenRepo(),
		profileRepo:      newFakeProfileRepo(),
		gigRepo:          newFakeGigRepo(),
		appRepo:          newFakeApplicationRepo(),
		notificationRepo: newFakeNotificationRepo(),
		requestRepo:      newFakeGigRequestRepo(),
	}

	tokens := auth.NewTokenManager("test-secret", 30)
	env.auth = NewAuthService(env.userRepo, env.refreshRepo, tokens, 7)
	env.user = NewUserService(env.userRepo)
	env.profile = NewProfileService(env.profileRepo, env.userRepo)
	env.gig = NewGigService(env.gigRepo, env.userRepo, env.profileRepo)
	env.discovery = NewDiscoveryService(env.gigRepo)
	env.application = NewApplicationService(env.appRepo, env.gigRepo, env.userRepo, env.profileRepo, env.notificationRepo, &fakeTransactor{})
	env.notification = NewNotificationService(env.notificationRepo)
	env.gigRequest = NewGigRequestService(env.requestRepo, env.userRepo)
	return env
}

func (env *testEnv) seedUser(email string, role models.UserRole) *models.User {
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	user.ID = uuid.NewString()
	env.userRepo.users[user.ID] = user
	return user
}

func (env *testEnv) seedBand(email, bandName string) *models.User {
	user := env.seedUser(email, models.UserRoleBand)
	env.profileRepo.bands[user.ID] = &models.BandProfile{
		UserID:         user.ID,
		BandName:       bandName,
		Genre:          "rock",
		LocationCity:   "Brooklyn",
		ContactMethod:  models.ContactMethodWhatsapp,
		WhatsappNumber: "+15550001111",
	}
	return user
}

func (env *testEnv) seedVenue(email, venueName string) *models.User {
	user := env.seedUser(email, models.UserRoleVenue)
	env.profileRepo.venues[user.ID] = &models.VenueProfile{
		UserID:       user.ID,
		VenueName:    venueName,
		LocationCity: "Brooklyn",
	}
	return user
}

func (env *testEnv) seedGig(venueID, title, genre string, lat, lng *float64) *models.GigPosting {
	gig := &models.GigPosting{
		VenueID:     venueID,
		Title:       title,
		Genre:       genre,
		Status:      models.GigStatusOpen,
		LocationLat: lat,
		LocationLng: lng,
	}
	_ = env.gigRepo.Create(gig)
	return gig
}

func ptr[T any](v T) *T { return &v }
