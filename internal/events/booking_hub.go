// Package events fans booking change notifications out to subscribers.
//
// The store itself offers no push channel, so the repositories' writers
// publish the full document state here after every committed mutation.
// Deliveries for a single booking happen in publish order; no ordering
// is guaranteed across different bookings.
package events

import (
	"sync"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"
)

type subscriber struct {
	fn        func(entities.BookingRequest)
	cancelled bool
}

// BookingHub is an in-process synchronization layer: callbacks can be
// registered per booking, per customer or per workshop, and each one
// receives the complete current document on every change.
//
// Publish runs the callbacks synchronously under the hub lock, which is
// what makes cancellation effective before any further delivery and
// keeps per-document commit order intact.
type BookingHub struct {
	mu        sync.Mutex
	byBooking map[string]map[int64]*subscriber
	byUser    map[string]map[int64]*subscriber
	byShop    map[string]map[int64]*subscriber
	nextID    int64
}

var _ interfaces.IBookingEvents = (*BookingHub)(nil)

func NewBookingHub() *BookingHub {
	return &BookingHub{
		byBooking: make(map[string]map[int64]*subscriber),
		byUser:    make(map[string]map[int64]*subscriber),
		byShop:    make(map[string]map[int64]*subscriber),
	}
}

// Publish delivers the booking state to every matching live subscriber.
func (h *BookingHub) Publish(b entities.BookingRequest) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliver(h.byBooking[b.ID], b)
	h.deliver(h.byUser[b.CustomerID], b)
	h.deliver(h.byShop[b.WorkshopID], b)
}

func (h *BookingHub) deliver(subs map[int64]*subscriber, b entities.BookingRequest) {
	for _, s := range subs {
		if !s.cancelled {
			s.fn(b)
		}
	}
}

// SubscribeBooking registers fn for changes to one booking document.
func (h *BookingHub) SubscribeBooking(bookingID string, fn func(entities.BookingRequest)) func() {
	return h.subscribe(h.byBooking, bookingID, fn)
}

// SubscribeCustomer registers fn for changes to any booking owned by the
// given customer.
func (h *BookingHub) SubscribeCustomer(customerID string, fn func(entities.BookingRequest)) func() {
	return h.subscribe(h.byUser, customerID, fn)
}

// SubscribeWorkshop registers fn for changes to any booking assigned to
// the given workshop.
func (h *BookingHub) SubscribeWorkshop(workshopID string, fn func(entities.BookingRequest)) func() {
	return h.subscribe(h.byShop, workshopID, fn)
}

func (h *BookingHub) subscribe(index map[string]map[int64]*subscriber, key string, fn func(entities.BookingRequest)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if index[key] == nil {
		index[key] = make(map[int64]*subscriber)
	}
	sub := &subscriber{fn: fn}
	index[key][id] = sub

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		sub.cancelled = true
		delete(index[key], id)
		if len(index[key]) == 0 {
			delete(index, key)
		}
	}
}
