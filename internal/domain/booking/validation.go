package booking

import "errors"

// ErrValidation matches every *ValidationError through errors.Is.
var ErrValidation = errors.New("draft validation failed")

type Field string

const (
	FieldName     Field = "name"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldService  Field = "service"
	FieldAmount   Field = "amount"
	FieldEmployee Field = "employee"
	FieldTerms    Field = "terms"
)

// ValidationError names the first field, in form order, that blocks checkout.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	return string(e.Field) + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field Field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
