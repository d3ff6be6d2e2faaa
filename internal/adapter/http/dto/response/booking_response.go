package response

import (
	"time"

	"mecanica_agenda/internal/domain/entities"
)

type ProposalResponse struct {
	ID            string    `json:"id"`
	ProposedBy    string    `json:"proposed_by"`
	ProposedDate  time.Time `json:"proposed_date"`
	Message       string    `json:"message,omitempty"`
	EstimatedCost float64   `json:"estimated_cost,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	SenderRole  string    `json:"sender_role"`
	Text        string    `json:"text"`
	Attachments []string  `json:"attachments,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingResponse struct {
	ID string `json:"id"`

	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	WorkshopID   string `json:"workshop_id"`
	WorkshopName string `json:"workshop_name,omitempty"`
	MechanicID   string `json:"mechanic_id,omitempty"`

	Vehicle entities.VehicleRef `json:"vehicle"`

	BookingType        string              `json:"booking_type"`
	Service            entities.ServiceRef `json:"service"`
	ProblemDescription string              `json:"problem_description,omitempty"`
	Urgency            string              `json:"urgency"`

	PreferredDates []time.Time `json:"preferred_dates,omitempty"`

	Proposals []ProposalResponse `json:"proposals"`
	Messages  []MessageResponse  `json:"messages"`

	Status       string     `json:"status"`
	SelectedDate *time.Time `json:"selected_date,omitempty"`

	QuoteID     string  `json:"quote_id,omitempty"`
	QuotedPrice float64 `json:"quoted_price,omitempty"`

	UnreadForCustomer int `json:"unread_for_customer"`
	UnreadForWorkshop int `json:"unread_for_workshop"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromBooking(b entities.BookingRequest) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		CustomerName:       b.CustomerName,
		CustomerEmail:      b.CustomerEmail,
		CustomerPhone:      b.CustomerPhone,
		WorkshopID:         b.WorkshopID,
		WorkshopName:       b.WorkshopName,
		MechanicID:         b.MechanicID,
		Vehicle:            b.Vehicle,
		BookingType:        string(b.Type),
		Service:            b.Service,
		ProblemDescription: b.ProblemDescription,
		Urgency:            string(b.Urgency),
		PreferredDates:     b.PreferredDates,
		Status:             string(b.Status),
		SelectedDate:       b.SelectedDate,
		QuoteID:            b.QuoteID,
		QuotedPrice:        b.QuotedPrice,
		UnreadForCustomer:  b.UnreadMessageCount(b.CustomerID),
		UnreadForWorkshop:  b.UnreadMessageCount(b.MechanicID),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
		CompletedAt:        b.CompletedAt,
	}

	resp.Proposals = make([]ProposalResponse, 0, len(b.Proposals))
	for _, p := range b.Proposals {
		resp.Proposals = append(resp.Proposals, ProposalResponse{
			ID:            p.ID,
			ProposedBy:    string(p.ProposedBy),
			ProposedDate:  p.ProposedDate,
			Message:       p.Message,
			EstimatedCost: p.EstimatedCost,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt,
		})
	}

	resp.Messages = make([]MessageResponse, 0, len(b.Messages))
	for _, m := range b.Messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:          m.ID,
			SenderID:    m.SenderID,
			SenderName:  m.SenderName,
			SenderRole:  string(m.SenderRole),
			Text:        m.Text,
			Attachments: m.Attachments,
			IsRead:      m.IsRead,
			CreatedAt:   m.CreatedAt,
		})
	}

	return resp
}

func FromBookings(bookings []entities.BookingRequest) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
