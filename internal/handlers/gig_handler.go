package handlers

import (
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigHandler struct {
	*BaseHandler
	gigService services.GigService
}

func NewGigHandler(base *BaseHandler, gigService services.GigService) *GigHandler {
	return &GigHandler{BaseHandler: base, gigService: gigService}
}

func (h *GigHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	// Каталог открыт без аутентификации
	public.GET("/gigs", h.ListOpen)
	public.GET("/gigs/:id", h.GetByID)

	protected.POST("/gigs", h.Create)
	protected.GET("/gigs/me/managed", h.ListManaged)
}

func (h *GigHandler) ListOpen(c *gin.Context) {
	var req dto.ListGigsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	gigs, err := h.gigService.ListOpen(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gigs)
}

func (h *GigHandler) GetByID(c *gin.Context) {
	gig, err := h.gigService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gig)
}

func (h *GigHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGigRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	gig, err := h.gigService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, gig)
}

func (h *GigHandler) ListManaged(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	gigs, err := h.gigService.ListManaged(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gigs)
}
