package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"booklyn_backend/internal/geo"
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Фейковые репозитории повторяют контракты настоящих,
// включая sentinel-ошибки и поведение уникальных индексов под гонками.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) WithTx(tx *gorm.DB) repositories.UserRepository { return r }

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(tokenString string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[tokenString]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	return token, nil
}

func (r *fakeRefreshTokenRepo) DeleteByToken(tokenString string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[tokenString]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(r.tokens, tokenString)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, token := range r.tokens {
		if token.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CleanExpired() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for key, token := range r.tokens {
		if token.ExpiresAt.Before(now) {
			delete(r.tokens, key)
		}
	}
	return nil
}

type fakeProfileRepo struct {
	mu     sync.Mutex
	bands  map[string]*models.BandProfile
	venues map[string]*models.VenueProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		bands:  map[string]*models.BandProfile{},
		venues: map[string]*models.VenueProfile{},
	}
}

func (r *fakeProfileRepo) CreateBandProfile(profile *models.BandProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bands[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.bands[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindBandProfileByUserID(userID string) (*models.BandProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.bands[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) UpdateBandProfile(profile *models.BandProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bands[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) CreateVenueProfile(profile *models.VenueProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.venues[profile.UserID]; ok {
		return repositories.ErrProfileAlreadyExists
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.venues[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) FindVenueProfileByUserID(userID string) (*models.VenueProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.venues[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) UpdateVenueProfile(profile *models.VenueProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.venues[profile.UserID] = profile
	return nil
}

type fakeGigRepo struct {
	mu   sync.Mutex
	gigs []*models.GigPosting
}

func newFakeGigRepo() *fakeGigRepo {
	return &fakeGigRepo{}
}

func (r *fakeGigRepo) Create(gig *models.GigPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gig.ID == "" {
		gig.ID = uuid.NewString()
	}
	if gig.CreatedAt.IsZero() {
		gig.CreatedAt = time.Now()
	}
	r.gigs = append(r.gigs, gig)
	return nil
}

func (r *fakeGigRepo) FindByID(id string) (*models.GigPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, gig := range r.gigs {
		if gig.ID == id {
			return gig, nil
		}
	}
	return nil, repositories.ErrGigNotFound
}

func (r *fakeGigRepo) ListByVenue(venueID string) ([]models.GigPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.GigPosting
	for _, gig := range r.gigs {
		if gig.VenueID == venueID {
			result = append(result, *gig)
		}
	}
	sortByCreatedDesc(result)
	return result, nil
}

// Search повторяет семантику SQL-версии: AND между критериями,
// OR внутри текстового поиска, при Box пагинация не применяется
func (r *fakeGigRepo) Search(criteria repositories.GigSearchCriteria) ([]models.GigPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.GigPosting
	for _, gig := range r.gigs {
		if criteria.Status != "" && gig.Status != criteria.Status {
			continue
		}
		if criteria.Genre != "" && gig.Genre != criteria.Genre {
			continue
		}
		if criteria.Search != "" && !matchesText(gig, criteria.Search) {
			continue
		}
		if criteria.Box != nil && !insideBox(gig, criteria.Box) {
			continue
		}
		result = append(result, *gig)
	}
	sortByCreatedDesc(result)
	if criteria.Box == nil {
		offset := criteria.Offset
		if offset > len(result) {
			offset = len(result)
		}
		end := len(result)
		if criteria.Limit > 0 && offset+criteria.Limit < end {
			end = offset + criteria.Limit
		}
		result = result[offset:end]
	}
	return result, nil
}

func matchesText(gig *models.GigPosting, search string) bool {
	needle := strings.ToLower(search)
	haystacks := []string{gig.Title, gig.Description, strings.Join(gig.Tags, " ")}
	for _, hay := range haystacks {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func insideBox(gig *models.GigPosting, box *geo.BoundingBox) bool {
	if gig.LocationLat == nil || gig.LocationLng == nil {
		return false
	}
	return *gig.LocationLat >= box.MinLat && *gig.LocationLat <= box.MaxLat &&
		*gig.LocationLng >= box.MinLng && *gig.LocationLng <= box.MaxLng
}

func sortByCreatedDesc(gigs []models.GigPosting) {
	sort.SliceStable(gigs, func(i, j int) bool {
		return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
	})
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.GigApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]*models.GigApplication{}}
}

func (r *fakeApplicationRepo) WithTx(tx *gorm.DB) repositories.ApplicationRepository { return r }

func (r *fakeApplicationRepo) Create(app *models.GigApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.GigID == app.GigID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.CreatedAt = time.Now()
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.GigApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByGigAndApplicant(gigID, applicantID string) (*models.GigApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.GigID == gigID && app.ApplicantID == applicantID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) ListByApplicant(applicantID string) ([]models.GigApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.GigApplication
	for _, app := range r.apps {
		if app.ApplicantID == applicantID {
			result = append(result, *app)
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) ListByVenue(venueID string) ([]models.GigApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.GigApplication
	for _, app := range r.apps {
		if app.VenueID == venueID {
			result = append(result, *app)
		}
	}
	return result, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok || app.Status != models.ApplicationStatusPending {
		return repositories.ErrApplicationDecided
	}
	app.Status = status
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) WithTx(tx *gorm.DB) repositories.NotificationRepository { return r }

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) ListByUser(userID string, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, *n)
		}
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) CountUnread(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			now := time.Now()
			n.IsRead = true
			n.ReadAt = &now
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

type fakeGigRequestRepo struct {
	mu       sync.Mutex
	requests []*models.GigRequest
}

func newFakeGigRequestRepo() *fakeGigRequestRepo {
	return &fakeGigRequestRepo{}
}

func (r *fakeGigRequestRepo) Create(request *models.GigRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	r.requests = append(r.requests, request)
	return nil
}

func (r *fakeGigRequestRepo) FindByID(id string) (*models.GigRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, request := range r.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return nil, repositories.ErrGigRequestNotFound
}

func (r *fakeGigRequestRepo) List(genre string) ([]models.GigRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.GigRequest
	for _, request := range r.requests {
		if genre != "" && !containsGenre(request.Genres, genre) {
			continue
		}
		result = append(result, *request)
	}
	return result, nil
}

func containsGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}

// fakeTransactor выполняет функцию без настоящей транзакции
type fakeTransactor struct{}

func (t *fakeTransactor) InTx(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// barrierTransactor задерживает записи, пока все участники
// не пройдут предварительные проверки
type barrierTransactor struct {
	ready *sync.WaitGroup
}

func (t *barrierTransactor) InTx(fn func(tx *gorm.DB) error) error {
	t.ready.Done()
	t.ready.Wait()
	return fn(nil)
}
