package response

import (
	"time"

	"mecanica_agenda/internal/domain/entities"
)

type QuotePaymentResponse struct {
	ID               string    `json:"id"`
	QuoteID          string    `json:"quote_id"`
	BookingRequestID string    `json:"booking_request_id,omitempty"`
	Amount           float64   `json:"amount"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		BookingRequestID:   p.BookingRequestID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromQuotePayments(payments []entities.QuotePayment) []QuotePaymentResponse {
	out := make([]QuotePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromQuotePayment(p))
	}
	return out
}
