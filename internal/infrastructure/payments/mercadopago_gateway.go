package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoGateway processes quote payments through the Mercado Pago
// SDK. The raw provider response is returned alongside the parsed id
// and status so the caller can persist it for audit.
type MercadoPagoGateway struct {
	client payment.Client
	log    zerolog.Logger
}

func NewMercadoPagoGateway(accessToken string, log zerolog.Logger) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Msg("mercado pago create failed")
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info().Int("provider_payment_id", resp.ID).Str("provider_status", resp.Status).
		Msg("mercado pago payment created")

	return fmt.Sprintf("%d", resp.ID), resp.Status, raw, nil
}
