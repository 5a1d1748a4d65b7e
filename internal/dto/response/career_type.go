package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type CareerTypeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func CareerTypeToResponse(careerType *entity.CareerType) CareerTypeResponse {
	return CareerTypeResponse{
		ID:         careerType.ID.String(),
		Name:       careerType.Name,
		IsApproved: careerType.IsApproved,
		CreatedAt:  careerType.CreatedAt,
	}
}

func CareerTypesToResponse(careerTypes []*entity.CareerType) []CareerTypeResponse {
	result := make([]CareerTypeResponse, 0, len(careerTypes))
	for _, ct := range careerTypes {
		result = append(result, CareerTypeToResponse(ct))
	}
	return result
}
