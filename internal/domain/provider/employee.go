package provider

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxEmployeeNameLength = 80

type Employee struct {
	id         uuid.UUID
	providerID uuid.UUID
	name       string
	active     bool
	createdAt  time.Time
}

func NewEmployee(providerID uuid.UUID, name string, now time.Time) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyEmployeeName
	}
	if len(name) > MaxEmployeeNameLength {
		return nil, ErrEmployeeNameTooLong
	}
	return &Employee{
		id:         uuid.New(),
		providerID: providerID,
		name:       name,
		active:     true,
		createdAt:  now,
	}, nil
}

func ReconstructEmployee(id, providerID uuid.UUID, name string, active bool, createdAt time.Time) *Employee {
	return &Employee{id: id, providerID: providerID, name: name, active: active, createdAt: createdAt}
}

func (e *Employee) ID() uuid.UUID         { return e.id }
func (e *Employee) ProviderID() uuid.UUID { return e.providerID }
func (e *Employee) Name() string          { return e.name }
func (e *Employee) Active() bool          { return e.active }
func (e *Employee) CreatedAt() time.Time  { return e.createdAt }
