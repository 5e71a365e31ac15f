package aggregator

import (
	"errors"
	"fmt"

	"github.com/dharmasatrya/ticketreport/internal/models"
)

var ErrNoTickets = errors.New("no tickets found for the route")

// RecordError describes a matched ticket that could not be converted.
// Index is the position among the matched records.
type RecordError struct {
	Index   int
	Carrier string
	Err     error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("ticket %d (%s): %v", e.Index, e.Carrier, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(index int, fields models.RawFields, err error) *RecordError {
	return &RecordError{
		Index:   index,
		Carrier: fields.Get(models.FieldCarrier),
		Err:     err,
	}
}
