package handlers

import (
	"booklyn_backend/internal/models"
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/services/dto"
	"booklyn_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

// RegisterRoutes: просмотр чужого профиля открыт без токена,
// свой профиль доступен только владельцу
func (h *ProfileHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/profiles/:user_id", h.GetByUserID)

	profiles := protected.Group("/profiles")
	{
		profiles.GET("/me", h.GetMyProfile)
		profiles.PUT("/me", h.UpsertMyProfile)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

func (h *ProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(c.Param("user_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, profile)
}

// UpsertMyProfile разбирает тело по роли из токена: для band и venue
// один и тот же путь принимает разные формы
func (h *ProfileHandler) UpsertMyProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	switch models.UserRole(c.GetString("role")) {
	case models.UserRoleBand:
		var req dto.UpsertBandProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpsertBandProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		h.OK(c, profile)
	case models.UserRoleVenue:
		var req dto.UpsertVenueProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpsertVenueProfile(userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		h.OK(c, profile)
	default:
		h.HandleServiceError(c, apperrors.ErrInvalidUserRole)
	}
}
