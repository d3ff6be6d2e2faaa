package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"mecanica_agenda/internal/domain/entities"
	mock_interfaces "mecanica_agenda/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "q-1", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_QuoteChecks(t *testing.T) {
	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway, zerolog.Nop())

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway, zerolog.Nop())

		_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unauthorized", errors.New("api error 401 unauthorized"), ErrPaymentGatewayUnauthorized},
		{"bad request", errors.New("api error 400 bad request"), ErrPaymentGatewayBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

			quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, TotalCost: 100}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)
			uc := NewPaymentUseCase(nil, quoteRepo, gateway, zerolog.Nop())

			_, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("opaque gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, TotalCost: 100}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))
		uc := NewPaymentUseCase(nil, quoteRepo, gateway, zerolog.Nop())

		if _, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`)); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
		ID: "q-1", BookingRequestID: "bk-1", QuoteNumber: "ORC-WS1-2026-0001",
		Status: entities.QuoteStatusApproved, TotalCost: 214.72,
	}, nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("gateway payload is not json: %v", err)
			}
			if req["transaction_amount"] != 214.72 {
				t.Fatalf("amount must come from the stored quote, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "q-1" {
				t.Fatalf("expected external_reference backfilled, got %v", req["external_reference"])
			}
			return "mp-123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
			return p, nil
		})
	uc := NewPaymentUseCase(repo, quoteRepo, gateway, zerolog.Nop())

	// Caller-supplied amount is overwritten.
	p, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "mp-123" || p.ProviderPaymentID != "mp-123" {
		t.Fatalf("unexpected payment id: %+v", p)
	}
	if p.Status != entities.PaymentStatusApproved {
		t.Fatalf("expected approved, got %s", p.Status)
	}
	if p.QuoteID != "q-1" || p.BookingRequestID != "bk-1" || p.Amount != 214.72 {
		t.Fatalf("unexpected payment: %+v", p)
	}
}

func TestPaymentUseCase_CreateAndApprove_DeniedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved, TotalCost: 50}, nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-9", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
			return p, nil
		})
	uc := NewPaymentUseCase(repo, quoteRepo, gateway, zerolog.Nop())

	p, err := uc.CreateAndApprove(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != entities.PaymentStatusDenied {
		t.Fatalf("expected denied, got %s", p.Status)
	}
}

func TestPaymentUseCase_GetAndList(t *testing.T) {
	t.Run("get empty id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("get zero value means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.QuotePayment{}, nil)
		uc := NewPaymentUseCase(repo, nil, nil, zerolog.Nop())

		if _, err := uc.GetByID(context.Background(), "pay-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("list empty quote id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, zerolog.Nop())
		if _, err := uc.ListByQuoteID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})
}
