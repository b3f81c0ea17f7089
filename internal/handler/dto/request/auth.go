package request

import "salon-booking/internal/usecase/commands"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"required,oneof=customer provider"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest is optional; the refresh cookie is used when the body is empty.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
