package interfaces

import (
	"context"
	"errors"

	"mecanica_agenda/internal/domain/entities"
)

// ErrVersionConflict is returned by repositories when an optimistic
// concurrency check fails: the document changed between the read and
// the conditional write. Callers surface it; no local retry (the store
// round trip is the only blocking work an operation performs).
var ErrVersionConflict = errors.New("version conflict")

// IBookingRepository abstracts DynamoDB persistence for BookingRequest.
//
// Update writes the whole document conditioned on the version the
// caller read, and returns the stored entity with the bumped version.
// A missing document reads back as the zero value, not an error.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error)
	GetByID(ctx context.Context, id string) (entities.BookingRequest, error)
	Update(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.BookingRequest, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.BookingRequest, error)
}
