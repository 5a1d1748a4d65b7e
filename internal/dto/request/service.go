package request

type CreateServiceRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	Description  string  `json:"description" validate:"max=2000"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Category     string  `json:"category" validate:"max=100"`
	Currency     string  `json:"currency" validate:"omitempty,len=3"`
	CareerTypeID *string `json:"career_type_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}
