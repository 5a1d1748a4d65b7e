package request

type AdminCreateUserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	FullName string   `json:"full_name" validate:"required,min=2,max=255"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"omitempty,dive,min=2"`
}

type AdminUpdateUserRequest struct {
	FullName *string   `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	IsActive *bool     `json:"is_active,omitempty"`
	Roles    *[]string `json:"roles,omitempty" validate:"omitempty,dive,min=2"`
}

type AssignRoleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid4"`
	Role   string `json:"role" validate:"required,min=2,max=50"`
}
