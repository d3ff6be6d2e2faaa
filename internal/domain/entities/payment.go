package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is a payment taken against an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the original gateway response body (JSON)
// for traceability; ProviderPayload is the parsed representation kept
// alongside for ad-hoc querying.
type QuotePayment struct {
	ID               string        `json:"id"`
	QuoteID          string        `json:"quote_id"`
	BookingRequestID string        `json:"booking_request_id,omitempty"`
	Amount           float64       `json:"amount"`
	Date             time.Time     `json:"date"`
	Status           PaymentStatus `json:"status"`

	ProviderPaymentID  string                 `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
