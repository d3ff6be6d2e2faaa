package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
	ErrQuoteNotSent       = errors.New("quote is not in sent status")
	ErrQuoteFinalized     = errors.New("quote is already approved or rejected")
	ErrEmptyQuote         = errors.New("quote has no cost items")
	ErrNegativeQuoteValue = errors.New("negative cost value")
)

const defaultQuoteValidityDays = 30

// CreateQuoteInput carries the line items for a new draft quote. VATRate
// nil means the statutory default applies.
type CreateQuoteInput struct {
	BookingRequestID string
	WorkshopID       string
	CustomerID       string

	Services        []entities.ServiceLine
	Parts           []entities.PartLine
	AdditionalCosts []entities.AdditionalCost

	// LaborCost and PartsCost are only honored when the corresponding
	// itemized list is empty (labor-only or lump-sum quotes).
	LaborCost float64
	PartsCost float64

	VATRate *float64
	Notes   string
}

// QuoteUpdate is a partial quote mutation: nil fields stay untouched.
// Aggregates are always recomputed from the merged values; callers can
// never set subtotal/VAT/total directly.
type QuoteUpdate struct {
	Services        *[]entities.ServiceLine
	Parts           *[]entities.PartLine
	AdditionalCosts *[]entities.AdditionalCost
	LaborCost       *float64
	PartsCost       *float64
	VATRate         *float64
	Notes           *string
}

// IQuoteUseCase is the quote engine: lifecycle and cost arithmetic of a
// quote and its revision chain.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByBookingRequestID(ctx context.Context, bookingRequestID string) ([]entities.Quote, error)

	SendQuote(ctx context.Context, quoteID string, validityDays int) (entities.Quote, error)
	ApproveQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	RejectQuote(ctx context.Context, quoteID, reason string) (entities.Quote, error)

	UpdateQuote(ctx context.Context, quoteID string, updates QuoteUpdate) (entities.Quote, error)
	CreateRevision(ctx context.Context, originalQuoteID string, changes QuoteUpdate) (entities.Quote, error)

	GenerateQuoteNumber(ctx context.Context, workshopID string) string
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	bookingRepo interfaces.IBookingRepository
	events      interfaces.IBookingEvents
	log         zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	bookingRepo interfaces.IBookingRepository,
	events interfaces.IBookingEvents,
	log zerolog.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, bookingRepo: bookingRepo, events: events, log: log}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	in.BookingRequestID = strings.TrimSpace(in.BookingRequestID)
	in.WorkshopID = strings.TrimSpace(in.WorkshopID)
	if in.BookingRequestID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	booking, err := u.bookingRepo.GetByID(ctx, in.BookingRequestID)
	if err != nil {
		return entities.Quote{}, err
	}
	if booking.ID == "" {
		return entities.Quote{}, ErrBookingNotFound
	}
	if in.WorkshopID == "" {
		in.WorkshopID = booking.WorkshopID
	}
	if strings.TrimSpace(in.CustomerID) == "" {
		in.CustomerID = booking.CustomerID
	}

	if err := validateQuoteCosts(in.Services, in.Parts, in.AdditionalCosts, in.LaborCost, in.PartsCost); err != nil {
		return entities.Quote{}, err
	}

	vatRate := entities.DefaultVATRate
	if in.VATRate != nil {
		if *in.VATRate < 0 {
			return entities.Quote{}, ErrNegativeQuoteValue
		}
		vatRate = *in.VATRate
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:               uuid.NewString(),
		BookingRequestID: in.BookingRequestID,
		WorkshopID:       in.WorkshopID,
		CustomerID:       strings.TrimSpace(in.CustomerID),
		QuoteNumber:      u.GenerateQuoteNumber(ctx, in.WorkshopID),
		Services:         in.Services,
		Parts:            in.Parts,
		AdditionalCosts:  in.AdditionalCosts,
		LaborCost:        in.LaborCost,
		PartsCost:        in.PartsCost,
		VATRate:          vatRate,
		Notes:            strings.TrimSpace(in.Notes),
		Status:           entities.QuoteStatusDraft,
		RevisionNumber:   0,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	q.Recalculate()

	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.load(ctx, id)
}

func (u *QuoteUseCase) ListByBookingRequestID(ctx context.Context, bookingRequestID string) ([]entities.Quote, error) {
	bookingRequestID = strings.TrimSpace(bookingRequestID)
	if bookingRequestID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.repo.ListByBookingRequestID(ctx, bookingRequestID)
}

// SendQuote moves the quote to sent, stamps the validity window
// (validityDays <= 0 means the 30-day default) and caches the quote id
// and total on the owning booking, moving it to quote_sent when that
// transition is legal from its current state.
func (u *QuoteUseCase) SendQuote(ctx context.Context, quoteID string, validityDays int) (entities.Quote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusApproved || q.Status == entities.QuoteStatusRejected {
		return entities.Quote{}, ErrQuoteFinalized
	}

	if validityDays <= 0 {
		validityDays = defaultQuoteValidityDays
	}

	now := time.Now().UTC()
	validUntil := now.AddDate(0, 0, validityDays)
	q.Status = entities.QuoteStatusSent
	q.SentAt = &now
	q.ValidUntil = &validUntil
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := u.syncBooking(ctx, updated, entities.BookingStatusQuoteSent); err != nil {
		return entities.Quote{}, err
	}
	return updated, nil
}

// ApproveQuote is a terminal transition from sent. It confirms the
// owning booking, which is how quote approval drives the negotiation
// forward.
func (u *QuoteUseCase) ApproveQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrQuoteNotSent
	}

	now := time.Now().UTC()
	q.Status = entities.QuoteStatusApproved
	q.ApprovedAt = &now
	q.UpdatedAt = now

	updated, err := u.repo.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := u.syncBooking(ctx, updated, entities.BookingStatusConfirmed); err != nil {
		return entities.Quote{}, err
	}
	return updated, nil
}

// RejectQuote is a terminal transition from sent.
func (u *QuoteUseCase) RejectQuote(ctx context.Context, quoteID, reason string) (entities.Quote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusSent {
		return entities.Quote{}, ErrQuoteNotSent
	}

	now := time.Now().UTC()
	q.Status = entities.QuoteStatusRejected
	q.RejectedAt = &now
	q.RejectionReason = strings.TrimSpace(reason)
	q.UpdatedAt = now

	return u.repo.Update(ctx, q)
}

// UpdateQuote merges the changed fields into the current quote and
// recomputes every aggregate from the merged values. Approved and
// rejected quotes are immutable; revise instead.
func (u *QuoteUseCase) UpdateQuote(ctx context.Context, quoteID string, updates QuoteUpdate) (entities.Quote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status == entities.QuoteStatusApproved || q.Status == entities.QuoteStatusRejected {
		return entities.Quote{}, ErrQuoteFinalized
	}

	applyQuoteUpdate(&q, updates)
	if err := validateQuoteCosts(q.Services, q.Parts, q.AdditionalCosts, q.LaborCost, q.PartsCost); err != nil {
		return entities.Quote{}, err
	}
	q.Recalculate()
	q.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, q)
}

// CreateRevision clones the original quote with the changes applied and
// persists it as a new draft entity: revisionNumber+1, previousQuoteId
// set, approval/rejection metadata cleared. The original is left
// untouched, preserving the audit trail.
func (u *QuoteUseCase) CreateRevision(ctx context.Context, originalQuoteID string, changes QuoteUpdate) (entities.Quote, error) {
	original, err := u.load(ctx, originalQuoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	rev := original
	rev.ID = uuid.NewString()
	rev.Status = entities.QuoteStatusDraft
	rev.RevisionNumber = original.RevisionNumber + 1
	rev.PreviousQuoteID = original.ID
	rev.ValidUntil = nil
	rev.RejectionReason = ""
	rev.SentAt = nil
	rev.ApprovedAt = nil
	rev.RejectedAt = nil
	rev.Version = 1
	rev.CreatedAt = now
	rev.UpdatedAt = now

	// Line-item slices must not alias the original's backing arrays.
	rev.Services = append([]entities.ServiceLine(nil), original.Services...)
	rev.Parts = append([]entities.PartLine(nil), original.Parts...)
	rev.AdditionalCosts = append([]entities.AdditionalCost(nil), original.AdditionalCosts...)

	applyQuoteUpdate(&rev, changes)
	if err := validateQuoteCosts(rev.Services, rev.Parts, rev.AdditionalCosts, rev.LaborCost, rev.PartsCost); err != nil {
		return entities.Quote{}, err
	}
	rev.Recalculate()

	return u.repo.Create(ctx, rev)
}

// GenerateQuoteNumber produces a human-readable sequence number scoped
// to the workshop and calendar year. A failed count query downgrades to
// a timestamp-derived number: the number is cosmetic, not a key, so
// this is the one place a store failure is not surfaced.
func (u *QuoteUseCase) GenerateQuoteNumber(ctx context.Context, workshopID string) string {
	prefix := workshopPrefix(workshopID)
	now := time.Now().UTC()

	count, err := u.repo.CountByWorkshopYear(ctx, workshopID, now.Year())
	if err != nil {
		u.log.Warn().Err(err).Str("workshop_id", workshopID).
			Msg("quote count query failed, falling back to timestamp number")
		return fmt.Sprintf("ORC-%s-%d", prefix, now.UnixMilli())
	}
	return fmt.Sprintf("ORC-%s-%d-%04d", prefix, now.Year(), count+1)
}

func (u *QuoteUseCase) load(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// syncBooking refreshes the denormalized quote cache on the owning
// booking and applies the given status when the transition table allows
// it from the booking's current state.
func (u *QuoteUseCase) syncBooking(ctx context.Context, q entities.Quote, status entities.BookingStatus) error {
	b, err := u.bookingRepo.GetByID(ctx, q.BookingRequestID)
	if err != nil {
		return err
	}
	if b.ID == "" {
		return ErrBookingNotFound
	}

	b.QuoteID = q.ID
	b.QuotedPrice = q.TotalCost
	if entities.CanTransition(b.Status, status) {
		b.Status = status
		if status == entities.BookingStatusConfirmed && b.SelectedDate == nil {
			// Quote approval confirms the booking even before a date was
			// negotiated; the accepted proposal path sets SelectedDate.
			for _, p := range b.Proposals {
				if p.Status == entities.ProposalStatusAccepted {
					d := p.ProposedDate
					b.SelectedDate = &d
					break
				}
			}
		}
	}
	b.UpdatedAt = time.Now().UTC()

	updated, err := u.bookingRepo.Update(ctx, b)
	if err != nil {
		return err
	}
	if u.events != nil {
		u.events.Publish(updated)
	}
	return nil
}

func applyQuoteUpdate(q *entities.Quote, up QuoteUpdate) {
	if up.Services != nil {
		q.Services = *up.Services
	}
	if up.Parts != nil {
		q.Parts = *up.Parts
	}
	if up.AdditionalCosts != nil {
		q.AdditionalCosts = *up.AdditionalCosts
	}
	if up.LaborCost != nil {
		q.LaborCost = *up.LaborCost
	}
	if up.PartsCost != nil {
		q.PartsCost = *up.PartsCost
	}
	if up.VATRate != nil {
		q.VATRate = *up.VATRate
	}
	if up.Notes != nil {
		q.Notes = strings.TrimSpace(*up.Notes)
	}
}

func validateQuoteCosts(
	services []entities.ServiceLine,
	parts []entities.PartLine,
	extras []entities.AdditionalCost,
	laborCost, partsCost float64,
) error {
	if laborCost < 0 || partsCost < 0 {
		return ErrNegativeQuoteValue
	}
	for _, s := range services {
		if s.LaborCost < 0 {
			return ErrNegativeQuoteValue
		}
	}
	for _, p := range parts {
		if p.UnitPrice < 0 || p.Quantity < 0 {
			return ErrNegativeQuoteValue
		}
	}
	for _, c := range extras {
		if c.Amount < 0 {
			return ErrNegativeQuoteValue
		}
	}
	if len(services) == 0 && len(parts) == 0 && len(extras) == 0 && laborCost == 0 && partsCost == 0 {
		return ErrEmptyQuote
	}
	return nil
}

func workshopPrefix(workshopID string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(workshopID) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= 4 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "WS"
	}
	return b.String()
}
