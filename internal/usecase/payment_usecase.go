package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrPaymentNotFound            = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrQuoteNotApproved           = errors.New("quote not approved")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase takes a payment against an approved quote through the
// external gateway and persists the outcome.
type IPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	log       zerolog.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	log zerolog.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, log: log}
}

// CreateAndApprove charges the approved quote's total through the
// gateway. The stored quote is the source of truth for the amount:
// whatever the caller put in transaction_amount is overwritten.
func (u *PaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayUnavailable
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.QuotePayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = q.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Quote %s", q.QuoteNumber)
	}
	req["transaction_amount"] = q.TotalCost
	if payload, err = json.Marshal(req); err != nil {
		return entities.QuotePayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", q.ID).Msg("payment gateway call failed")
		switch {
		case isGatewayUnauthorized(err):
			return entities.QuotePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.QuotePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.QuotePayment{}, err
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("quote_id", q.ID).Msg("provider response is not parseable JSON")
	}

	p := entities.QuotePayment{
		ID:                 providerID,
		QuoteID:            q.ID,
		BookingRequestID:   q.BookingRequestID,
		Amount:             q.TotalCost,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPaymentID:  providerID,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	u.log.Info().Str("quote_id", q.ID).Str("payment_id", created.ID).
		Str("status", string(created.Status)).Msg("quote payment processed")
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// The Mercado Pago SDK surfaces provider rejections as opaque errors
// carrying the HTTP status; string matching is the best available
// discriminator.
func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "400") || strings.Contains(msg, "bad request")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized")
}
