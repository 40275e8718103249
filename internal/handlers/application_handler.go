package handlers

import (
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	{
		apps.POST("", h.Apply)
		apps.GET("/my-applications", h.ListMine)
		apps.GET("/venue", h.ListForVenue)
		apps.PATCH("/:id/status", h.SetStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	app, err := h.appService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	apps, err := h.appService.ListMine(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, apps)
}

func (h *ApplicationHandler) ListForVenue(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	apps, err := h.appService.ListForVenue(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, apps)
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.SetApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	app, err := h.appService.SetStatus(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, app)
}
