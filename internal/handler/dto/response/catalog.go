package response

import (
	"booking-flow/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Image              string   `json:"image"`
	Price              string   `json:"price" example:"120.00"`
	PriceCents         int64    `json:"priceCents" example:"12000"`
	OriginalPrice      *string  `json:"originalPrice,omitempty"`
	OriginalPriceCents *int64   `json:"originalPriceCents,omitempty"`
	Duration           string   `json:"duration" example:"90 minutes"`
	Popular            bool     `json:"popular"`
	Features           []string `json:"features"`
	Rating             float64  `json:"rating"`
	Reviews            int      `json:"reviews"`
	Bookings           int      `json:"bookings"`
}

type ProviderResponse struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Experience     int      `json:"experience"`
	Location       string   `json:"location"`
	Specialties    []string `json:"specialties"`
	Available      bool     `json:"available"`
	Featured       bool     `json:"featured"`
	NextAvailable  string   `json:"nextAvailable"`
	BasePrice      *string  `json:"basePrice,omitempty"`
	BasePriceCents *int64   `json:"basePriceCents,omitempty"`
	VenueImages    []string `json:"venueImages"`
}

func FromServiceViews(views []*queries.ServiceView) ([]ServiceResponse, error) {
	res := make([]ServiceResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, views, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}

func FromProviderViews(views []*queries.ProviderView) ([]ProviderResponse, error) {
	res := make([]ProviderResponse, 0, len(views))
	if err := copier.CopyWithOption(&res, views, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return res, nil
}
