package interfaces

import (
	"context"

	"mecanica_agenda/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote engine must be able to:
//   - create a draft (and later its revisions, each a new entity)
//   - load by id and by owning booking request
//   - write back a mutated quote under the optimistic version check
//   - count a workshop's quotes for a calendar year (sequence numbers)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByBookingRequestID(ctx context.Context, bookingRequestID string) ([]entities.Quote, error)
	CountByWorkshopYear(ctx context.Context, workshopID string, year int) (int, error)
}
