package response

import (
	"time"

	"mecanica_agenda/internal/domain/entities"
)

type QuoteResponse struct {
	ID               string `json:"id"`
	BookingRequestID string `json:"booking_request_id"`
	WorkshopID       string `json:"workshop_id"`
	CustomerID       string `json:"customer_id,omitempty"`
	QuoteNumber      string `json:"quote_number,omitempty"`

	Services        []entities.ServiceLine    `json:"services"`
	Parts           []entities.PartLine       `json:"parts"`
	AdditionalCosts []entities.AdditionalCost `json:"additional_costs"`

	LaborCost float64 `json:"labor_cost"`
	PartsCost float64 `json:"parts_cost"`
	Subtotal  float64 `json:"subtotal"`
	VATRate   float64 `json:"vat_rate"`
	VATAmount float64 `json:"vat_amount"`
	TotalCost float64 `json:"total_cost"`

	Notes string `json:"notes,omitempty"`

	Status          string `json:"status"`
	RevisionNumber  int    `json:"revision_number"`
	PreviousQuoteID string `json:"previous_quote_id,omitempty"`

	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	Expired         bool       `json:"expired"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		BookingRequestID: q.BookingRequestID,
		WorkshopID:       q.WorkshopID,
		CustomerID:       q.CustomerID,
		QuoteNumber:      q.QuoteNumber,
		Services:         q.Services,
		Parts:            q.Parts,
		AdditionalCosts:  q.AdditionalCosts,
		LaborCost:        q.LaborCost,
		PartsCost:        q.PartsCost,
		Subtotal:         q.Subtotal,
		VATRate:          q.VATRate,
		VATAmount:        q.VATAmount,
		TotalCost:        q.TotalCost,
		Notes:            q.Notes,
		Status:           string(q.Status),
		RevisionNumber:   q.RevisionNumber,
		PreviousQuoteID:  q.PreviousQuoteID,
		ValidUntil:       q.ValidUntil,
		Expired:          q.IsExpired(time.Now().UTC()),
		RejectionReason:  q.RejectionReason,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
		SentAt:           q.SentAt,
		ApprovedAt:       q.ApprovedAt,
		RejectedAt:       q.RejectedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
