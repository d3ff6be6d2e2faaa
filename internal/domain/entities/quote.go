package entities

import (
	"math"
	"time"
)

// QuoteStatus is the lifecycle of a quote.
//
// Lifecycle: draft → sent → approved|rejected. A revision is a new
// Quote entity (starting at draft) rather than a mutation of history.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// DefaultVATRate is the VAT percentage applied when the caller supplies none.
const DefaultVATRate = 22.0

// ServiceLine is one labor item on a quote.
type ServiceLine struct {
	Name      string  `json:"name"`
	LaborCost float64 `json:"labor_cost"`
}

// PartLine is one spare-part item on a quote. Total is always recomputed
// from UnitPrice and Quantity, never trusted from the caller.
type PartLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// AdditionalCost is a named extra charge (disposal fee, towing, etc).
type AdditionalCost struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Quote is one versioned, itemized cost offer tied to a BookingRequest.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_request_id-index): booking_request_id
//   - GSI2 (workshop_id-index): workshop_id
//
// Aggregate fields (LaborCost, PartsCost, Subtotal, VATAmount,
// TotalCost) are derived; Recalculate is the only writer.
type Quote struct {
	ID               string `json:"id"`
	BookingRequestID string `json:"booking_request_id"`
	WorkshopID       string `json:"workshop_id"`
	CustomerID       string `json:"customer_id"`

	// QuoteNumber is a human-readable sequence number, best-effort unique.
	QuoteNumber string `json:"quote_number,omitempty"`

	Services        []ServiceLine    `json:"services"`
	Parts           []PartLine       `json:"parts"`
	AdditionalCosts []AdditionalCost `json:"additional_costs"`

	LaborCost float64 `json:"labor_cost"`
	PartsCost float64 `json:"parts_cost"`
	Subtotal  float64 `json:"subtotal"`
	VATRate   float64 `json:"vat_rate"`
	VATAmount float64 `json:"vat_amount"`
	TotalCost float64 `json:"total_cost"`

	Notes string `json:"notes,omitempty"`

	Status QuoteStatus `json:"status"`

	// RevisionNumber starts at 0; a revision is original+1 and links back
	// through PreviousQuoteID, forming the audit chain.
	RevisionNumber  int    `json:"revision_number"`
	PreviousQuoteID string `json:"previous_quote_id,omitempty"`

	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	Version int64 `json:"version"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
}

// Round2 rounds a monetary amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalculate recomputes every derived cost field from the line items
// and VATRate:
//
//	subtotal  = laborCost + partsCost + Σ additionalCosts
//	vatAmount = round2(subtotal * vatRate / 100)
//	totalCost = round2(subtotal + vatAmount)
//
// A quote with no service lines keeps its bare LaborCost (labor-only
// quotes created without itemization).
func (q *Quote) Recalculate() {
	if len(q.Services) > 0 {
		labor := 0.0
		for _, s := range q.Services {
			labor += s.LaborCost
		}
		q.LaborCost = Round2(labor)
	} else {
		q.LaborCost = Round2(q.LaborCost)
	}

	if len(q.Parts) > 0 {
		parts := 0.0
		for i := range q.Parts {
			q.Parts[i].Total = Round2(q.Parts[i].UnitPrice * float64(q.Parts[i].Quantity))
			parts += q.Parts[i].Total
		}
		q.PartsCost = Round2(parts)
	} else {
		q.PartsCost = Round2(q.PartsCost)
	}

	extra := 0.0
	for _, c := range q.AdditionalCosts {
		extra += c.Amount
	}

	q.Subtotal = Round2(q.LaborCost + q.PartsCost + extra)
	q.VATAmount = Round2(q.Subtotal * q.VATRate / 100)
	q.TotalCost = Round2(q.Subtotal + q.VATAmount)
}

// IsExpired reports whether the quote's validity window has passed.
// A quote without ValidUntil never expires.
func (q Quote) IsExpired(now time.Time) bool {
	return q.ValidUntil != nil && now.After(*q.ValidUntil)
}
