package interfaces

import "mecanica_agenda/internal/domain/entities"

// IBookingEvents is the synchronization layer seen from the core: after
// every successful mutation the full booking state is published, and
// consumers register callbacks that receive that state in commit order
// for a given document. Subscribe calls return a cancel function;
// cancellation takes effect before any further delivery.
type IBookingEvents interface {
	Publish(b entities.BookingRequest)
	SubscribeBooking(bookingID string, fn func(entities.BookingRequest)) (cancel func())
	SubscribeCustomer(customerID string, fn func(entities.BookingRequest)) (cancel func())
	SubscribeWorkshop(workshopID string, fn func(entities.BookingRequest)) (cancel func())
}
