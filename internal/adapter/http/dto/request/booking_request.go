package request

import "time"

type VehicleRequest struct {
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Year     int    `json:"year"`
	Plate    string `json:"plate"`
	Odometer int    `json:"odometer"`
}

type ServiceRefRequest struct {
	CatalogID string `json:"catalog_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
}

// CreateBookingRequest is the payload for opening a new negotiation.
// Either service.catalog_id or problem_description must be present.
type CreateBookingRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	WorkshopID   string `json:"workshop_id" binding:"required"`
	WorkshopName string `json:"workshop_name"`
	MechanicID   string `json:"mechanic_id"`

	Vehicle VehicleRequest `json:"vehicle" binding:"required"`

	BookingType        string            `json:"booking_type"`
	Service            ServiceRefRequest `json:"service"`
	ProblemDescription string            `json:"problem_description"`
	Urgency            string            `json:"urgency"`

	PreferredDates []time.Time `json:"preferred_dates"`
}

// ProposalRequest offers one candidate appointment date.
type ProposalRequest struct {
	ProposedBy    string    `json:"proposed_by" binding:"required"`
	ProposedDate  time.Time `json:"proposed_date" binding:"required"`
	Message       string    `json:"message"`
	EstimatedCost float64   `json:"estimated_cost"`
}

// CounterProposalRequest rejects an existing proposal and offers a new
// one in the same operation.
type CounterProposalRequest struct {
	RejectedProposalID string          `json:"rejected_proposal_id" binding:"required"`
	Proposal           ProposalRequest `json:"proposal" binding:"required"`
}

type AcceptProposalRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
}

type MessageRequest struct {
	SenderID    string   `json:"sender_id" binding:"required"`
	SenderName  string   `json:"sender_name"`
	SenderRole  string   `json:"sender_role" binding:"required"`
	Text        string   `json:"text" binding:"required"`
	Attachments []string `json:"attachments"`
}

type MarkMessagesReadRequest struct {
	ReaderID string `json:"reader_id" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
