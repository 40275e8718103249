package handlers

import (
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type GigRequestHandler struct {
	*BaseHandler
	requestService services.GigRequestService
}

func NewGigRequestHandler(base *BaseHandler, requestService services.GigRequestService) *GigRequestHandler {
	return &GigRequestHandler{BaseHandler: base, requestService: requestService}
}

func (h *GigRequestHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/requests", h.List)
	public.GET("/requests/:id", h.GetByID)
	protected.POST("/requests", h.Create)
}

func (h *GigRequestHandler) GetByID(c *gin.Context) {
	request, err := h.requestService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, request)
}

func (h *GigRequestHandler) List(c *gin.Context) {
	var req dto.ListGigRequestsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	requests, err := h.requestService.List(req.Genre)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, requests)
}

func (h *GigRequestHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateGigRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	request, err := h.requestService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, request)
}
