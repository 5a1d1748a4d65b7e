package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Currency     string    `json:"currency"`
	ProviderID   string    `json:"provider_id"`
	CareerTypeID *string   `json:"career_type_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		Category:    service.Category,
		Currency:    service.Currency,
		ProviderID:  service.UserID.String(),
		CreatedAt:   service.CreatedAt,
	}

	if service.CareerTypeID != nil {
		id := service.CareerTypeID.String()
		resp.CareerTypeID = &id
	}

	return resp
}

func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceToResponse(s))
	}
	return result
}
