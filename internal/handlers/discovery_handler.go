package handlers

import (
	"booklyn_backend/internal/services"
	"booklyn_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	*BaseHandler
	discoveryService services.DiscoveryService
}

func NewDiscoveryHandler(base *BaseHandler, discoveryService services.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{BaseHandler: base, discoveryService: discoveryService}
}

func (h *DiscoveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/discovery/gigs", h.DiscoverGigs)
}

func (h *DiscoveryHandler) DiscoverGigs(c *gin.Context) {
	var req dto.DiscoverGigsRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}
	page, err := h.discoveryService.DiscoverGigs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}
