package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrBookingNotFound       = errors.New("booking request not found")
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidBookingID      = errors.New("invalid booking id")
	ErrInvalidCustomer       = errors.New("invalid customer reference")
	ErrInvalidWorkshop       = errors.New("invalid workshop reference")
	ErrMissingServiceInfo    = errors.New("missing catalog service id and problem description")
	ErrInvalidVehicle        = errors.New("invalid vehicle reference")
	ErrTooManyPreferredDates = errors.New("too many preferred dates")
	ErrInvalidProposalDate   = errors.New("invalid proposal date")
	ErrInvalidSenderRole     = errors.New("invalid sender role")
	ErrEmptyMessageText      = errors.New("empty message text")
	ErrUnknownBookingStatus  = errors.New("unknown booking status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrBookingClosed         = errors.New("booking request is closed")
)

const maxPreferredDates = 3

// CreateBookingInput carries the customer-supplied fields for a new
// booking request. Either Service.CatalogID or ProblemDescription must
// be present.
type CreateBookingInput struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	WorkshopID   string
	WorkshopName string
	MechanicID   string

	Vehicle entities.VehicleRef

	Type               entities.BookingType
	Service            entities.ServiceRef
	ProblemDescription string
	Urgency            entities.Urgency
	PreferredDates     []time.Time
}

// ProposalInput carries one candidate date offered by either party.
type ProposalInput struct {
	ProposedBy    entities.SenderRole
	ProposedDate  time.Time
	Message       string
	EstimatedCost float64
}

// MessageInput carries one chat entry for the negotiation thread.
type MessageInput struct {
	SenderID    string
	SenderName  string
	SenderRole  entities.SenderRole
	Text        string
	Attachments []string
}

// IBookingUseCase is the booking negotiation manager: it owns the
// lifecycle of a booking request, its date-proposal exchange and its
// message thread.
type IBookingUseCase interface {
	CreateBookingRequest(ctx context.Context, in CreateBookingInput) (entities.BookingRequest, error)
	GetByID(ctx context.Context, id string) (entities.BookingRequest, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.BookingRequest, error)
	ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.BookingRequest, error)

	AddProposal(ctx context.Context, bookingID string, in ProposalInput) (entities.BookingRequest, error)
	AcceptProposal(ctx context.Context, bookingID, proposalID string) (entities.BookingRequest, error)
	CounterPropose(ctx context.Context, bookingID, rejectedProposalID string, in ProposalInput) (entities.BookingRequest, error)

	AddMessage(ctx context.Context, bookingID string, in MessageInput) (entities.BookingRequest, error)
	MarkMessagesAsRead(ctx context.Context, bookingID, readerID string) (entities.BookingRequest, error)

	UpdateStatus(ctx context.Context, bookingID string, newStatus entities.BookingStatus) (entities.BookingRequest, error)

	OnBookingChange(bookingID string, fn func(entities.BookingRequest)) (cancel func())
	OnCustomerBookingsChange(customerID string, fn func(entities.BookingRequest)) (cancel func())
	OnWorkshopBookingsChange(workshopID string, fn func(entities.BookingRequest)) (cancel func())
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	directory interfaces.IWorkshopDirectory
	events    interfaces.IBookingEvents
	log       zerolog.Logger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	repo interfaces.IBookingRepository,
	directory interfaces.IWorkshopDirectory,
	events interfaces.IBookingEvents,
	log zerolog.Logger,
) *BookingUseCase {
	return &BookingUseCase{repo: repo, directory: directory, events: events, log: log}
}

func (u *BookingUseCase) CreateBookingRequest(ctx context.Context, in CreateBookingInput) (entities.BookingRequest, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.WorkshopID = strings.TrimSpace(in.WorkshopID)
	in.ProblemDescription = strings.TrimSpace(in.ProblemDescription)

	if in.CustomerID == "" {
		return entities.BookingRequest{}, ErrInvalidCustomer
	}
	if in.WorkshopID == "" {
		return entities.BookingRequest{}, ErrInvalidWorkshop
	}
	if strings.TrimSpace(in.Vehicle.Make) == "" || strings.TrimSpace(in.Vehicle.Model) == "" {
		return entities.BookingRequest{}, ErrInvalidVehicle
	}
	if strings.TrimSpace(in.Service.CatalogID) == "" && in.ProblemDescription == "" {
		return entities.BookingRequest{}, ErrMissingServiceInfo
	}
	if len(in.PreferredDates) > maxPreferredDates {
		return entities.BookingRequest{}, ErrTooManyPreferredDates
	}

	if in.Type == "" {
		in.Type = entities.BookingTypeRoutine
	}
	if in.Urgency == "" {
		in.Urgency = entities.UrgencyMedium
	}

	now := time.Now().UTC()
	b := entities.BookingRequest{
		ID:                 uuid.NewString(),
		CustomerID:         in.CustomerID,
		CustomerName:       strings.TrimSpace(in.CustomerName),
		CustomerEmail:      strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:      strings.TrimSpace(in.CustomerPhone),
		WorkshopID:         in.WorkshopID,
		WorkshopName:       strings.TrimSpace(in.WorkshopName),
		MechanicID:         strings.TrimSpace(in.MechanicID),
		Vehicle:            in.Vehicle,
		Type:               in.Type,
		Service:            in.Service,
		ProblemDescription: in.ProblemDescription,
		Urgency:            in.Urgency,
		PreferredDates:     in.PreferredDates,
		Proposals:          []entities.Proposal{},
		Messages:           []entities.Message{},
		Status:             entities.BookingStatusPending,
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	// Counter bump is fire-and-forget: the booking is already committed.
	if u.directory != nil {
		if err := u.directory.IncrementBookingCount(ctx, created.WorkshopID); err != nil {
			u.log.Warn().Err(err).Str("workshop_id", created.WorkshopID).
				Msg("failed to increment workshop booking count")
		}
	}

	u.publish(created)
	return created, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.BookingRequest, error) {
	return u.load(ctx, id)
}

func (u *BookingUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.BookingRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomer
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

func (u *BookingUseCase) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.BookingRequest, error) {
	workshopID = strings.TrimSpace(workshopID)
	if workshopID == "" {
		return nil, ErrInvalidWorkshop
	}
	return u.repo.ListByWorkshopID(ctx, workshopID)
}

// AddProposal appends a pending proposal and moves the booking to
// date_proposed. Appending to a confirmed booking intentionally reopens
// the negotiation; only terminal bookings refuse.
func (u *BookingUseCase) AddProposal(ctx context.Context, bookingID string, in ProposalInput) (entities.BookingRequest, error) {
	if !entities.ValidSenderRole(in.ProposedBy) {
		return entities.BookingRequest{}, ErrInvalidSenderRole
	}
	if in.ProposedDate.IsZero() {
		return entities.BookingRequest{}, ErrInvalidProposalDate
	}

	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.Status.Terminal() {
		return entities.BookingRequest{}, ErrBookingClosed
	}

	now := time.Now().UTC()
	b.Proposals = append(b.Proposals, entities.Proposal{
		ID:            uuid.NewString(),
		ProposedBy:    in.ProposedBy,
		ProposedDate:  in.ProposedDate.UTC(),
		Message:       strings.TrimSpace(in.Message),
		EstimatedCost: in.EstimatedCost,
		Status:        entities.ProposalStatusPending,
		CreatedAt:     now,
	})
	b.Status = entities.BookingStatusDateProposed

	return u.save(ctx, b)
}

// AcceptProposal marks the named proposal accepted and every other
// proposal rejected, regardless of its prior status, then confirms the
// booking on the accepted date.
func (u *BookingUseCase) AcceptProposal(ctx context.Context, bookingID, proposalID string) (entities.BookingRequest, error) {
	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	proposalID = strings.TrimSpace(proposalID)
	accepted := -1
	for i := range b.Proposals {
		if b.Proposals[i].ID == proposalID {
			accepted = i
			break
		}
	}
	if accepted < 0 {
		return entities.BookingRequest{}, ErrProposalNotFound
	}

	for i := range b.Proposals {
		if i == accepted {
			b.Proposals[i].Status = entities.ProposalStatusAccepted
		} else {
			b.Proposals[i].Status = entities.ProposalStatusRejected
		}
	}

	selected := b.Proposals[accepted].ProposedDate
	b.SelectedDate = &selected
	b.Status = entities.BookingStatusConfirmed

	return u.save(ctx, b)
}

// CounterPropose marks the named proposal counter_proposed (it stays in
// the list) and appends a new pending proposal in the same write. The
// booking's top-level status is left untouched.
func (u *BookingUseCase) CounterPropose(ctx context.Context, bookingID, rejectedProposalID string, in ProposalInput) (entities.BookingRequest, error) {
	if !entities.ValidSenderRole(in.ProposedBy) {
		return entities.BookingRequest{}, ErrInvalidSenderRole
	}
	if in.ProposedDate.IsZero() {
		return entities.BookingRequest{}, ErrInvalidProposalDate
	}

	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	rejectedProposalID = strings.TrimSpace(rejectedProposalID)
	found := false
	for i := range b.Proposals {
		if b.Proposals[i].ID == rejectedProposalID {
			b.Proposals[i].Status = entities.ProposalStatusCounterProposed
			found = true
			break
		}
	}
	if !found {
		return entities.BookingRequest{}, ErrProposalNotFound
	}

	b.Proposals = append(b.Proposals, entities.Proposal{
		ID:            uuid.NewString(),
		ProposedBy:    in.ProposedBy,
		ProposedDate:  in.ProposedDate.UTC(),
		Message:       strings.TrimSpace(in.Message),
		EstimatedCost: in.EstimatedCost,
		Status:        entities.ProposalStatusPending,
		CreatedAt:     time.Now().UTC(),
	})

	return u.save(ctx, b)
}

func (u *BookingUseCase) AddMessage(ctx context.Context, bookingID string, in MessageInput) (entities.BookingRequest, error) {
	if !entities.ValidSenderRole(in.SenderRole) {
		return entities.BookingRequest{}, ErrInvalidSenderRole
	}
	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		return entities.BookingRequest{}, ErrEmptyMessageText
	}

	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	b.Messages = append(b.Messages, entities.Message{
		ID:          uuid.NewString(),
		SenderID:    strings.TrimSpace(in.SenderID),
		SenderName:  strings.TrimSpace(in.SenderName),
		SenderRole:  in.SenderRole,
		Text:        in.Text,
		Attachments: in.Attachments,
		IsRead:      false,
		CreatedAt:   time.Now().UTC(),
	})

	return u.save(ctx, b)
}

// MarkMessagesAsRead flips the read flag on every message the reader
// did not send. Idempotent: when nothing changes, no write happens.
func (u *BookingUseCase) MarkMessagesAsRead(ctx context.Context, bookingID, readerID string) (entities.BookingRequest, error) {
	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}

	changed := false
	for i := range b.Messages {
		if b.Messages[i].SenderID != readerID && !b.Messages[i].IsRead {
			b.Messages[i].IsRead = true
			changed = true
		}
	}
	if !changed {
		return b, nil
	}

	return u.save(ctx, b)
}

// UpdateStatus performs a workflow-driven transition (mechanic starts or
// finishes the work, either party cancels or rejects). The transition
// table is enforced; illegal moves fail with ErrInvalidTransition.
func (u *BookingUseCase) UpdateStatus(ctx context.Context, bookingID string, newStatus entities.BookingStatus) (entities.BookingRequest, error) {
	if !entities.ValidBookingStatus(newStatus) {
		return entities.BookingRequest{}, ErrUnknownBookingStatus
	}

	b, err := u.load(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if !entities.CanTransition(b.Status, newStatus) {
		return entities.BookingRequest{}, ErrInvalidTransition
	}

	b.Status = newStatus
	if newStatus == entities.BookingStatusCompleted {
		now := time.Now().UTC()
		b.CompletedAt = &now
	}

	return u.save(ctx, b)
}

func (u *BookingUseCase) OnBookingChange(bookingID string, fn func(entities.BookingRequest)) func() {
	return u.events.SubscribeBooking(bookingID, fn)
}

func (u *BookingUseCase) OnCustomerBookingsChange(customerID string, fn func(entities.BookingRequest)) func() {
	return u.events.SubscribeCustomer(customerID, fn)
}

func (u *BookingUseCase) OnWorkshopBookingsChange(workshopID string, fn func(entities.BookingRequest)) func() {
	return u.events.SubscribeWorkshop(workshopID, fn)
}

func (u *BookingUseCase) load(ctx context.Context, bookingID string) (entities.BookingRequest, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return entities.BookingRequest{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if b.ID == "" {
		return entities.BookingRequest{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) save(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	b.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.BookingRequest{}, err
	}
	u.publish(updated)
	return updated, nil
}

func (u *BookingUseCase) publish(b entities.BookingRequest) {
	if u.events != nil {
		u.events.Publish(b)
	}
}
