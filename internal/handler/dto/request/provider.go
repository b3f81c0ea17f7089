package request

import (
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/commands"
)

type RegisterProviderRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Kind        string `json:"kind" binding:"required"`
	Address     string `json:"address" binding:"required"`
	OpeningTime string `json:"openingTime" binding:"required"`
	ClosingTime string `json:"closingTime" binding:"required"`
}

func (r *RegisterProviderRequest) ToInput() commands.RegisterProviderInput {
	return commands.RegisterProviderInput{
		Name:        r.Name,
		Kind:        r.Kind,
		Address:     r.Address,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
	}
}

type UpdateProviderRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=120"`
	Address     *string `json:"address"`
	OpeningTime *string `json:"openingTime"`
	ClosingTime *string `json:"closingTime"`
}

// ToInput treats blank fields as absent.
func (r *UpdateProviderRequest) ToInput() commands.UpdateProviderInput {
	return commands.UpdateProviderInput{
		Name:        patch.TrimmedOrNil(r.Name),
		Address:     patch.TrimmedOrNil(r.Address),
		OpeningTime: patch.TrimmedOrNil(r.OpeningTime),
		ClosingTime: patch.TrimmedOrNil(r.ClosingTime),
	}
}

type AddEmployeeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type AddServiceRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Style           string `json:"style" binding:"max=120"`
	Amount          int64  `json:"amount" binding:"required,gt=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0,lte=480"`
}

func (r *AddServiceRequest) ToInput() commands.AddServiceInput {
	return commands.AddServiceInput{
		Name:            r.Name,
		Style:           r.Style,
		Amount:          r.Amount,
		DurationMinutes: r.DurationMinutes,
	}
}

type PriorityRequest struct {
	Priority *int `json:"priority" binding:"required,min=0,max=1000"`
}
