package provider

import "errors"

type Kind string

const (
	KindSalon          Kind = "salon"
	KindBeautyParlor   Kind = "beauty_parlor"
	KindSkincareClinic Kind = "skincare_clinic"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindSalon, KindBeautyParlor, KindSkincareClinic:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

var (
	ErrInvalidKind         = errors.New("invalid provider kind")
	ErrInvalidStatus       = errors.New("invalid provider status")
	ErrEmptyName           = errors.New("provider name cannot be empty")
	ErrNameTooLong         = errors.New("provider name exceeds maximum length")
	ErrEmptyAddress        = errors.New("provider address cannot be empty")
	ErrInvalidHours        = errors.New("closing time must be after opening time")
	ErrInvalidPriority     = errors.New("priority must be between 0 and 1000")
	ErrAlreadyDecided      = errors.New("provider has already been approved or rejected")
	ErrNotApproved         = errors.New("provider is not approved")
	ErrEmptyEmployeeName   = errors.New("employee name cannot be empty")
	ErrEmployeeNameTooLong = errors.New("employee name exceeds maximum length")
)

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
