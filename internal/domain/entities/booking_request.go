package entities

import "time"

// BookingType classifies how a booking request entered the system.
type BookingType string

const (
	BookingTypeRoutine   BookingType = "routine"
	BookingTypeCustom    BookingType = "custom"
	BookingTypeEmergency BookingType = "emergency"
)

// Urgency is the customer-declared priority of the repair.
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
)

// SenderRole identifies which side of the negotiation performed an action.
type SenderRole string

const (
	RoleUser     SenderRole = "user"
	RoleMechanic SenderRole = "mechanic"
)

// ValidSenderRole reports whether s is one of the two negotiation roles.
func ValidSenderRole(s SenderRole) bool {
	return s == RoleUser || s == RoleMechanic
}

// ProposalStatus is the lifecycle of a single date proposal.
type ProposalStatus string

const (
	ProposalStatusPending         ProposalStatus = "pending"
	ProposalStatusAccepted        ProposalStatus = "accepted"
	ProposalStatusRejected        ProposalStatus = "rejected"
	ProposalStatusCounterProposed ProposalStatus = "counter_proposed"
)

// VehicleRef identifies the vehicle a booking request is about.
type VehicleRef struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Plate    string `json:"plate"`
	Odometer int    `json:"odometer"`
}

// ServiceRef points at a catalog service and/or a free-text service name.
type ServiceRef struct {
	CatalogID string `json:"catalog_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Proposal is one candidate appointment date offered by either party.
//
// Proposals are append-only: entries transition in place but are never
// removed from the booking's list.
type Proposal struct {
	ID            string         `json:"id"`
	ProposedBy    SenderRole     `json:"proposed_by"`
	ProposedDate  time.Time      `json:"proposed_date"`
	Message       string         `json:"message,omitempty"`
	EstimatedCost float64        `json:"estimated_cost,omitempty"`
	Status        ProposalStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Message is one chat entry in the negotiation thread. Append-only.
type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	SenderName  string     `json:"sender_name"`
	SenderRole  SenderRole `json:"sender_role"`
	Text        string     `json:"text"`
	Attachments []string   `json:"attachments,omitempty"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NotificationFlags tracks whether each party has already been pushed a
// notification for the current state, so composing workflows can avoid
// duplicate delivery.
type NotificationFlags struct {
	CustomerNotified bool `json:"customer_notified"`
	WorkshopNotified bool `json:"workshop_notified"`
}

// BookingRequest is one customer-to-workshop negotiation instance.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (workshop_id-index): workshop_id
//
// Invariants:
//   - SelectedDate is set iff Status has reached confirmed or later.
//   - QuoteID, when set, references a Quote whose BookingRequestID is ID.
//   - At most one Proposal ever holds status accepted.
//
// Version implements optimistic concurrency: every write conditions on
// the version it read and bumps it, so concurrent read-modify-write
// cycles cannot silently overwrite each other's list appends.
type BookingRequest struct {
	ID string `json:"id"`

	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	WorkshopID   string `json:"workshop_id"`
	WorkshopName string `json:"workshop_name,omitempty"`
	MechanicID   string `json:"mechanic_id,omitempty"`

	Vehicle VehicleRef `json:"vehicle"`

	Type               BookingType `json:"type"`
	Service            ServiceRef  `json:"service"`
	ProblemDescription string      `json:"problem_description,omitempty"`
	Urgency            Urgency     `json:"urgency"`

	// PreferredDates are advisory candidate dates from the customer (0-3).
	PreferredDates []time.Time `json:"preferred_dates,omitempty"`

	Proposals []Proposal `json:"proposals"`
	Messages  []Message  `json:"messages"`

	Status       BookingStatus `json:"status"`
	SelectedDate *time.Time    `json:"selected_date,omitempty"`

	// QuoteID and QuotedPrice are a denormalized cache of the linked quote.
	QuoteID     string  `json:"quote_id,omitempty"`
	QuotedPrice float64 `json:"quoted_price,omitempty"`

	Notifications NotificationFlags `json:"notifications"`

	Version int64 `json:"version"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// UnreadMessageCount counts messages sent by someone else that the given
// user has not read yet.
func (b BookingRequest) UnreadMessageCount(userID string) int {
	n := 0
	for _, m := range b.Messages {
		if m.SenderID != userID && !m.IsRead {
			n++
		}
	}
	return n
}

// ProposalByID returns the proposal with the given id and whether it exists.
func (b BookingRequest) ProposalByID(proposalID string) (Proposal, bool) {
	for _, p := range b.Proposals {
		if p.ID == proposalID {
			return p, true
		}
	}
	return Proposal{}, false
}
