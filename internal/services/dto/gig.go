package dto

// CreateGigRequest - создание объявления о выступлении
type CreateGigRequest struct {
	Title            string   `json:"title" validate:"required,min=3,max=255"`
	Date             string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time             string   `json:"time" validate:"required,max=50"`
	Genre            string   `json:"genre" validate:"required,max=100"`
	Description      string   `json:"description" validate:"omitempty,max=5000"`
	Pay              string   `json:"pay" validate:"omitempty,max=100"`
	FormattedAddress string   `json:"formatted_address" validate:"omitempty,max=500"`
	LocationLat      *float64 `json:"location_lat" validate:"omitempty,latitude"`
	LocationLng      *float64 `json:"location_lng" validate:"omitempty,longitude"`
	Tags             []string `json:"tags" validate:"omitempty,dive,max=100"`
	PhotoURL         string   `json:"photo_url" validate:"omitempty,url"`
}

// ListGigsRequest - фильтры списка открытых объявлений
type ListGigsRequest struct {
	Genre  string `form:"genre" validate:"omitempty,max=100"`
	Search string `form:"search" validate:"omitempty,max=255"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}
