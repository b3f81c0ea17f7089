package booking

import (
	"errors"
	"slices"
	"strings"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrEmptyEmployee     = errors.New("employee name cannot be empty")
	ErrSlotUnavailable   = errors.New("time slot is not available for the selected services")
	ErrAddOnDoesNotFit   = errors.New("add-on does not fit in the selected time slot")
	ErrServiceNotFit     = errors.New("service does not fit in the selected time slot")
	ErrAddOnIsPrimary    = errors.New("add-on is already the primary service")
	ErrNoPrimaryService  = errors.New("select a service before adding add-ons")
	ErrEmptyTermsVersion = errors.New("terms version cannot be empty")
	ErrDraftNotReady     = errors.New("draft has not been validated")
)

type State int

const (
	StateIdle State = iota
	StateSelecting
	StateValidating
	StateReadyForPayment
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateValidating:
		return "validating"
	case StateReadyForPayment:
		return "ready_for_payment"
	default:
		return "unknown"
	}
}

// Draft is a booking being assembled before payment. Every mutator either applies fully or
// returns an error and leaves the draft untouched.
type Draft struct {
	id           uuid.UUID
	providerID   uuid.UUID
	customerID   uuid.UUID
	currency     string
	state        State
	customerName string
	service      *catalog.Line
	addOns       []catalog.Line
	date         *time.Time
	employee     string
	timeSlot     string
	termsVersion string
	createdAt    time.Time
}

func NewDraft(providerID, customerID uuid.UUID, currency string, now time.Time) *Draft {
	return &Draft{
		id:         uuid.New(),
		providerID: providerID,
		customerID: customerID,
		currency:   currency,
		state:      StateIdle,
		createdAt:  now,
	}
}

func (d *Draft) ID() uuid.UUID          { return d.id }
func (d *Draft) ProviderID() uuid.UUID  { return d.providerID }
func (d *Draft) CustomerID() uuid.UUID  { return d.customerID }
func (d *Draft) Currency() string       { return d.currency }
func (d *Draft) State() State           { return d.state }
func (d *Draft) CustomerName() string   { return d.customerName }
func (d *Draft) Service() *catalog.Line { return d.service }
func (d *Draft) AddOns() []catalog.Line { return slices.Clone(d.addOns) }
func (d *Draft) Date() *time.Time       { return d.date }
func (d *Draft) Employee() string       { return d.employee }
func (d *Draft) TimeSlot() string       { return d.timeSlot }
func (d *Draft) TermsVersion() string   { return d.termsVersion }
func (d *Draft) CreatedAt() time.Time   { return d.createdAt }

func (d *Draft) TotalDuration() int {
	return totalDuration(d.service, d.addOns)
}

func (d *Draft) TotalPrice() money.Money {
	total := money.Zero(d.currency)
	for _, l := range d.lines() {
		if sum, err := total.Add(l.Price); err == nil {
			total = sum
		}
	}
	return total
}

func (d *Draft) lines() []catalog.Line {
	if d.service == nil {
		return nil
	}
	return append([]catalog.Line{*d.service}, d.addOns...)
}

func (d *Draft) touch() {
	d.state = StateSelecting
}

func (d *Draft) SetCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCustomerName
	}
	d.customerName = name
	d.touch()
	return nil
}

// SelectService replaces the primary service. With a time already chosen the new total
// must still fit, otherwise nothing changes.
func (d *Draft) SelectService(line catalog.Line, booked []availability.Interval) error {
	if line.DurationMinutes <= 0 {
		return ErrZeroDuration
	}
	if line.Price.Currency() != d.currency {
		return money.ErrCurrencyMismatch
	}

	addOns := slices.DeleteFunc(slices.Clone(d.addOns), func(a catalog.Line) bool {
		return a.ServiceID == line.ServiceID
	})
	if d.timeSlot != "" && !d.fits(totalDuration(&line, addOns), booked) {
		return ErrServiceNotFit
	}

	d.service = &line
	d.addOns = addOns
	d.touch()
	return nil
}

// SelectDate stores the calendar day and clears the chosen time slot.
func (d *Draft) SelectDate(date time.Time) {
	y, m, day := date.Date()
	normalized := time.Date(y, m, day, 0, 0, 0, 0, date.Location())
	d.date = &normalized
	d.timeSlot = ""
	d.touch()
}

// SelectEmployee stores the employee and clears the chosen time slot.
func (d *Draft) SelectEmployee(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyEmployee
	}
	d.employee = name
	d.timeSlot = ""
	d.touch()
	return nil
}

// SelectTime picks a slot label. When a service is selected the full duration must be free.
func (d *Draft) SelectTime(label string, booked []availability.Interval) error {
	start, _, err := availability.ParseSlotLabel(label)
	if err != nil {
		return err
	}
	if total := d.TotalDuration(); total > 0 {
		if !availability.IsAvailable(availability.Interval{Start: start, Duration: total}, booked) {
			return ErrSlotUnavailable
		}
	}
	d.timeSlot = label
	d.touch()
	return nil
}

// ToggleAddOn adds the line if absent and removes it if present. Adding is refused with
// ErrAddOnDoesNotFit when the longer total no longer fits the chosen slot.
func (d *Draft) ToggleAddOn(line catalog.Line, booked []availability.Interval) error {
	if d.service == nil {
		return ErrNoPrimaryService
	}
	if line.ServiceID == d.service.ServiceID {
		return ErrAddOnIsPrimary
	}

	if i := slices.IndexFunc(d.addOns, func(a catalog.Line) bool { return a.ServiceID == line.ServiceID }); i >= 0 {
		d.addOns = slices.Delete(slices.Clone(d.addOns), i, i+1)
		d.touch()
		return nil
	}

	if line.DurationMinutes <= 0 {
		return ErrZeroDuration
	}
	if line.Price.Currency() != d.currency {
		return money.ErrCurrencyMismatch
	}

	next := append(slices.Clone(d.addOns), line)
	if d.timeSlot != "" && !d.fits(totalDuration(d.service, next), booked) {
		return ErrAddOnDoesNotFit
	}

	d.addOns = next
	d.touch()
	return nil
}

func (d *Draft) AcceptTerms(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return ErrEmptyTermsVersion
	}
	d.termsVersion = version
	d.touch()
	return nil
}

func (d *Draft) fits(duration int, booked []availability.Interval) bool {
	start, _, err := availability.ParseSlotLabel(d.timeSlot)
	if err != nil {
		return false
	}
	return availability.IsAvailable(availability.Interval{Start: start, Duration: duration}, booked)
}

type ValidateInput struct {
	Booked         []availability.Interval
	EmployeesExist bool
	TermsVersion   string
	Today          time.Time
}

// Validate checks the draft in form order: name, date, time, service, amount, employee,
// slot availability (reported on time), terms.
func (d *Draft) Validate(in ValidateInput) error {
	d.state = StateValidating

	if err := d.validate(in); err != nil {
		d.state = StateSelecting
		return err
	}

	d.state = StateReadyForPayment
	return nil
}

func (d *Draft) validate(in ValidateInput) *ValidationError {
	if d.customerName == "" {
		return invalid(FieldName, "name is required")
	}
	if d.date == nil {
		return invalid(FieldDate, "date is required")
	}
	if !in.Today.IsZero() && beforeDay(*d.date, in.Today) {
		return invalid(FieldDate, "date is in the past")
	}
	if d.timeSlot == "" {
		return invalid(FieldTime, "time is required")
	}
	if d.service == nil {
		return invalid(FieldService, "service is required")
	}
	if !d.TotalPrice().IsPositive() {
		return invalid(FieldAmount, "amount must be greater than zero")
	}
	if in.EmployeesExist && d.employee == "" {
		return invalid(FieldEmployee, "employee is required")
	}
	if d.TotalDuration() <= 0 {
		return invalid(FieldService, ErrZeroDuration.Error())
	}
	if !d.fits(d.TotalDuration(), in.Booked) {
		return invalid(FieldTime, "time slot is no longer available")
	}
	if d.termsVersion == "" {
		return invalid(FieldTerms, "terms must be accepted")
	}
	if in.TermsVersion != "" && d.termsVersion != in.TermsVersion {
		return invalid(FieldTerms, "terms have changed and must be accepted again")
	}
	return nil
}

// Checkout is the hand-off from a validated draft to payment initiation.
type Checkout struct {
	DraftID         uuid.UUID
	CustomerID      uuid.UUID
	ProviderID      uuid.UUID
	CustomerName    string
	EmployeeName    string
	Date            time.Time
	Start           availability.Minute
	Services        []catalog.Line
	DurationMinutes int
	Total           money.Money
}

func (d *Draft) Checkout() (Checkout, error) {
	if d.state != StateReadyForPayment {
		return Checkout{}, ErrDraftNotReady
	}
	start, _, err := availability.ParseSlotLabel(d.timeSlot)
	if err != nil {
		return Checkout{}, err
	}
	return Checkout{
		DraftID:         d.id,
		CustomerID:      d.customerID,
		ProviderID:      d.providerID,
		CustomerName:    d.customerName,
		EmployeeName:    d.employee,
		Date:            *d.date,
		Start:           start,
		Services:        d.lines(),
		DurationMinutes: d.TotalDuration(),
		Total:           d.TotalPrice(),
	}, nil
}

func totalDuration(service *catalog.Line, addOns []catalog.Line) int {
	if service == nil {
		return 0
	}
	total := service.DurationMinutes
	for _, a := range addOns {
		total += a.DurationMinutes
	}
	return total
}

func beforeDay(date, today time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.Date()
	return time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC).Before(time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC))
}
