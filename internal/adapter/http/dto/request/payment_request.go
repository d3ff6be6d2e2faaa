package request

import "encoding/json"

// QuotePaymentCreateRequest is the payload for the create-and-process
// payment route. `provider_payload` is forwarded as-is (raw JSON) to
// support varying Mercado Pago schemas.
type QuotePaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
