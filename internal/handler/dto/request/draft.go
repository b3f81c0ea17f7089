package request

import "github.com/google/uuid"

type CreateDraftRequest struct {
	ProviderID uuid.UUID `json:"providerId" binding:"required"`
}

type DraftCustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// DraftServiceRequest selects the primary service or toggles an add-on.
type DraftServiceRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
}

type DraftDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type DraftEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}

type DraftTimeRequest struct {
	Slot string `json:"slot" binding:"required"`
}

type DraftTermsRequest struct {
	Version string `json:"version" binding:"required"`
}
