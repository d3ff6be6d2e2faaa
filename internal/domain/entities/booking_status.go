package entities

// BookingStatus is the top-level negotiation state of a BookingRequest.
//
// Lifecycle:
//
//	pending → {quote_requested, quote_sent, date_proposed} → confirmed
//	        → in_progress → completed
//
// cancelled and rejected are terminal and reachable from any
// pre-confirmed state; cancelled is also reachable after confirmation.
type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "pending"
	BookingStatusQuoteRequested BookingStatus = "quote_requested"
	BookingStatusQuoteSent      BookingStatus = "quote_sent"
	BookingStatusDateProposed   BookingStatus = "date_proposed"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusInProgress     BookingStatus = "in_progress"
	BookingStatusCompleted      BookingStatus = "completed"
	BookingStatusCancelled      BookingStatus = "cancelled"
	BookingStatusRejected       BookingStatus = "rejected"
)

// bookingTransitions is the explicit transition table consulted by
// UpdateBookingStatus. Negotiation-internal moves (appending proposals,
// accepting a proposal, quote approval) go through their own operations
// and are included here so workflow-driven calls stay expressible.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {
		BookingStatusQuoteRequested, BookingStatusQuoteSent,
		BookingStatusDateProposed, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusRejected,
	},
	BookingStatusQuoteRequested: {
		BookingStatusQuoteSent, BookingStatusDateProposed,
		BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRejected,
	},
	BookingStatusQuoteSent: {
		BookingStatusQuoteRequested, BookingStatusDateProposed,
		BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRejected,
	},
	BookingStatusDateProposed: {
		BookingStatusQuoteRequested, BookingStatusQuoteSent,
		BookingStatusDateProposed, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusRejected,
	},
	BookingStatusConfirmed: {
		// date_proposed reopens the negotiation; see AddProposal.
		BookingStatusDateProposed, BookingStatusInProgress,
		BookingStatusCancelled,
	},
	BookingStatusInProgress: {
		BookingStatusCompleted, BookingStatusCancelled,
	},
	// completed, cancelled and rejected are terminal.
}

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusQuoteRequested, BookingStatusQuoteSent,
		BookingStatusDateProposed, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled || s == BookingStatusRejected
}

// CanTransition reports whether moving a booking from one status to
// another is a legal workflow step.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
