package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"booklyn_backend/internal/logger"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(bandUserID string, req *dto.ApplyRequest) (*models.GigApplication, error)
	ListMine(bandUserID string) ([]dto.BandApplicationResponse, error)
	ListForVenue(venueUserID string) ([]dto.VenueApplicationResponse, error)
	SetStatus(venueUserID, applicationID string, req *dto.SetApplicationStatusRequest) (*models.GigApplication, error)
}

type ApplicationServiceImpl struct {
	appRepo          repositories.ApplicationRepository
	gigRepo          repositories.GigRepository
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	notificationRepo repositories.NotificationRepository
	tx               repositories.Transactor
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	gigRepo repositories.GigRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notificationRepo repositories.NotificationRepository,
	tx repositories.Transactor,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:          appRepo,
		gigRepo:          gigRepo,
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		tx:               tx,
	}
}

func (s *ApplicationServiceImpl) Apply(bandUserID string, req *dto.ApplyRequest) (*models.GigApplication, error) {
	user, err := s.userRepo.FindByID(bandUserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleBand {
		return nil, apperrors.ErrNotBand
	}
	bandProfile, err := s.profileRepo.FindBandProfileByUserID(bandUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotBand
		}
		return nil, apperrors.InternalError(err)
	}

	gig, err := s.gigRepo.FindByID(req.GigID)
	if err != nil {
		if errors.Is(err, repositories.ErrGigNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Дружелюбный ответ на повтор до вставки, индекс остается последней защитой
	if _, err := s.appRepo.FindByGigAndApplicant(gig.ID, bandUserID); err == nil {
		return nil, apperrors.ErrApplicationAlreadyExists
	}

	app := &models.GigApplication{
		GigID:       gig.ID,
		VenueID:     gig.VenueID,
		ApplicantID: bandUserID,
		// Имя фиксируется на момент отклика
		ApplicantName: bandProfile.BandName,
		Message:       req.Message,
		Status:        models.ApplicationStatusPending,
	}
	// Дубликаты отсекает составной индекс, в том числе при гонке
	if err := s.appRepo.Create(app); err != nil {
		if errors.Is(err, repositories.ErrApplicationAlreadyExists) {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("application created", "application_id", app.ID, "gig_id", gig.ID, "applicant_id", bandUserID)
	return app, nil
}

func (s *ApplicationServiceImpl) ListMine(bandUserID string) ([]dto.BandApplicationResponse, error) {
	apps, err := s.appRepo.ListByApplicant(bandUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	gigs := map[string]*models.GigPosting{}
	result := make([]dto.BandApplicationResponse, 0, len(apps))
	for _, app := range apps {
		item := dto.BandApplicationResponse{
			ID:        app.ID,
			GigID:     app.GigID,
			Message:   app.Message,
			Status:    app.Status,
			CreatedAt: app.CreatedAt,
		}
		gig, ok := gigs[app.GigID]
		if !ok {
			gig, _ = s.gigRepo.FindByID(app.GigID)
			gigs[app.GigID] = gig
		}
		if gig != nil {
			item.GigTitle = gig.Title
			item.VenueName = gig.VenueName
		}
		result = append(result, item)
	}
	return result, nil
}

// ListForVenue возвращает отклики на все объявления площадки.
// Контакты группы раскрываются только по принятым откликам
func (s *ApplicationServiceImpl) ListForVenue(venueUserID string) ([]dto.VenueApplicationResponse, error) {
	apps, err := s.appRepo.ListByVenue(venueUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	gigs := map[string]*models.GigPosting{}
	result := make([]dto.VenueApplicationResponse, 0, len(apps))
	for _, app := range apps {
		item := dto.VenueApplicationResponse{
			ID:            app.ID,
			GigID:         app.GigID,
			ApplicantID:   app.ApplicantID,
			ApplicantName: app.ApplicantName,
			Message:       app.Message,
			Status:        app.Status,
			CreatedAt:     app.CreatedAt,
		}
		gig, ok := gigs[app.GigID]
		if !ok {
			gig, _ = s.gigRepo.FindByID(app.GigID)
			gigs[app.GigID] = gig
		}
		if gig != nil {
			item.GigTitle = gig.Title
		}
		if app.Status == models.ApplicationStatusAccepted {
			item.Contact = s.applicantContact(app.ApplicantID)
		}
		result = append(result, item)
	}
	return result, nil
}

// SetStatus переводит отклик из pending в accepted или declined.
// Принятие и уведомление группы выполняются в одной транзакции
func (s *ApplicationServiceImpl) SetStatus(venueUserID, applicationID string, req *dto.SetApplicationStatusRequest) (*models.GigApplication, error) {
	if req.Status != models.ApplicationStatusAccepted && req.Status != models.ApplicationStatusDeclined {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if app.VenueID != venueUserID {
		return nil, apperrors.NewForbiddenError("Application belongs to another venue")
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationDecided
	}

	// Решающим является условный UPDATE внутри транзакции: из двух
	// одновременных решений уведомление создаст только выигравшее
	err = s.tx.InTx(func(tx *gorm.DB) error {
		if err := s.appRepo.WithTx(tx).UpdateStatus(app.ID, req.Status); err != nil {
			return err
		}
		if req.Status != models.ApplicationStatusAccepted {
			return nil
		}
		notification, err := s.buildAcceptedNotification(app)
		if err != nil {
			return err
		}
		return s.notificationRepo.WithTx(tx).Create(notification)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationDecided) {
			return nil, apperrors.ErrApplicationDecided
		}
		return nil, apperrors.InternalError(err)
	}

	app.Status = req.Status
	logger.Info("application status updated", "application_id", app.ID, "status", app.Status)
	return app, nil
}

func (s *ApplicationServiceImpl) buildAcceptedNotification(app *models.GigApplication) (*models.Notification, error) {
	title := "Your application was accepted"
	content := "The venue accepted your application."
	if gig, err := s.gigRepo.FindByID(app.GigID); err == nil {
		content = fmt.Sprintf("%s accepted your application for %q.", gig.VenueName, gig.Title)
	}

	data, err := json.Marshal(map[string]string{
		"gig_id":         app.GigID,
		"application_id": app.ID,
	})
	if err != nil {
		return nil, err
	}

	return &models.Notification{
		UserID:  app.ApplicantID,
		Type:    models.NotificationTypeApplicationAccepted,
		Title:   title,
		Content: content,
		Link:    "/dashboard",
		Data:    data,
	}, nil
}

func (s *ApplicationServiceImpl) applicantContact(applicantID string) *dto.ApplicantContact {
	profile, err := s.profileRepo.FindBandProfileByUserID(applicantID)
	if err != nil {
		return nil
	}
	return &dto.ApplicantContact{
		ContactMethod:  profile.ContactMethod,
		WhatsappNumber: profile.WhatsappNumber,
		ContactEmail:   profile.ContactEmail,
		Instagram:      profile.Instagram,
	}
}
