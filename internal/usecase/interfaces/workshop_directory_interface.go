package interfaces

import "context"

// IWorkshopDirectory is the workshop-directory collaborator. The one
// call this core makes is the aggregate booking counter bump on booking
// creation; it is fire-and-forget, failures are logged and never
// propagated to the customer.
type IWorkshopDirectory interface {
	IncrementBookingCount(ctx context.Context, workshopID string) error
}
