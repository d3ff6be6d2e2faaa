package request

type ServiceLineRequest struct {
	Name      string  `json:"name" binding:"required"`
	LaborCost float64 `json:"labor_cost"`
}

type PartLineRequest struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type AdditionalCostRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// CreateQuoteRequest carries line items for a new draft quote. Aggregate
// fields are never accepted from the client; the engine recomputes them.
type CreateQuoteRequest struct {
	BookingRequestID string `json:"booking_request_id" binding:"required"`
	WorkshopID       string `json:"workshop_id"`
	CustomerID       string `json:"customer_id"`

	Services        []ServiceLineRequest    `json:"services"`
	Parts           []PartLineRequest       `json:"parts"`
	AdditionalCosts []AdditionalCostRequest `json:"additional_costs"`

	LaborCost float64  `json:"labor_cost"`
	PartsCost float64  `json:"parts_cost"`
	VATRate   *float64 `json:"vat_rate"`
	Notes     string   `json:"notes"`
}

// UpdateQuoteRequest is a partial mutation; absent fields stay untouched.
type UpdateQuoteRequest struct {
	Services        *[]ServiceLineRequest    `json:"services"`
	Parts           *[]PartLineRequest       `json:"parts"`
	AdditionalCosts *[]AdditionalCostRequest `json:"additional_costs"`

	LaborCost *float64 `json:"labor_cost"`
	PartsCost *float64 `json:"parts_cost"`
	VATRate   *float64 `json:"vat_rate"`
	Notes     *string  `json:"notes"`
}

type SendQuoteRequest struct {
	ValidityDays int `json:"validity_days"`
}

type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}
