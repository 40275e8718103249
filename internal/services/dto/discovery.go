package dto

import "booklyn_backend/internal/models"

// DiscoverGigsRequest - параметры поиска открытых объявлений.
// Гео-фильтр применяется когда заданы обе координаты;
// radius_meters по умолчанию 10000
type DiscoverGigsRequest struct {
	Lat          *float64 `form:"lat" validate:"omitempty,latitude"`
	Lng          *float64 `form:"lng" validate:"omitempty,longitude"`
	RadiusMeters float64  `form:"radius_meters" validate:"omitempty,min=0"`
	Genre        string   `form:"genre" validate:"omitempty,max=100"`
	Search       string   `form:"search" validate:"omitempty,max=255"`
	Limit        int      `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset       int      `form:"offset" validate:"omitempty,min=0"`
}

// DiscoverGigsResponse - страница результатов поиска
type DiscoverGigsResponse struct {
	Gigs   []models.GigPosting `json:"gigs"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}
