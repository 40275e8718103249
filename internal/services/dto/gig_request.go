package dto

// CreateGigRequestRequest - заявка группы на поиск выступлений
type CreateGigRequestRequest struct {
	AvailableFrom   string   `json:"available_from" validate:"required,datetime=2006-01-02"`
	AvailableTo     string   `json:"available_to" validate:"required,datetime=2006-01-02"`
	Genres          []string `json:"genres" validate:"required,min=1,dive,max=100"`
	WillingToTravel bool     `json:"willing_to_travel"`
	MaxDistance     *int     `json:"max_distance" validate:"omitempty,min=0"`
	Notes           string   `json:"notes" validate:"omitempty,max=2000"`
}

// ListGigRequestsRequest - фильтр заявок по жанру
type ListGigRequestsRequest struct {
	Genre string `form:"genre" validate:"omitempty,max=100"`
}
