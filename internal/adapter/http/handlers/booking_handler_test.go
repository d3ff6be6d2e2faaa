package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mecanica_agenda/internal/adapter/http/handlers/mocks"
	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/usecase"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing workshop id fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"customer_id":"cust-1","vehicle":{"make":"Fiat","model":"Punto"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBookingRequest(gomock.Any(), gomock.Any()).Return(entities.BookingRequest{}, usecase.ErrMissingServiceInfo)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"customer_id":"cust-1","workshop_id":"ws-1","vehicle":{"make":"Fiat","model":"Punto"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		now := time.Now().UTC()
		uc.EXPECT().CreateBookingRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateBookingInput) (entities.BookingRequest, error) {
				if in.CustomerID != "cust-1" || in.Vehicle.Make != "Fiat" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.BookingRequest{
					ID: "bk-1", CustomerID: in.CustomerID, WorkshopID: in.WorkshopID,
					Status: entities.BookingStatusPending, CreatedAt: now, UpdatedAt: now,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(`{"customer_id":"cust-1","workshop_id":"ws-1","vehicle":{"make":"Fiat","model":"Punto"},"problem_description":"noise"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "bk-1" || body["status"] != "pending" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_GetAndLists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		uc.EXPECT().GetByID(gomock.Any(), "bk-404").Return(entities.BookingRequest{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:customer_id/bookings", h.ListCustomerBookings)

		uc.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.BookingRequest{{ID: "bk-1"}, {ID: "bk-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/cust-1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected two bookings, got %s", w.Body.String())
		}
	})
}

func TestBookingHandler_Proposals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add proposal success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/proposals", h.AddProposal)

		uc.EXPECT().AddProposal(gomock.Any(), "bk-1", gomock.Any()).Return(entities.BookingRequest{ID: "bk-1", Status: entities.BookingStatusDateProposed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/proposals", bytes.NewBufferString(`{"proposed_by":"mechanic","proposed_date":"2026-09-10T14:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept on closed booking conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:booking_id/proposals/accept", h.AcceptProposal)

		uc.EXPECT().AcceptProposal(gomock.Any(), "bk-1", "p-1").Return(entities.BookingRequest{}, usecase.ErrBookingClosed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/bk-1/proposals/accept", bytes.NewBufferString(`{"proposal_id":"p-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("counter proposal success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/proposals/counter", h.CounterPropose)

		uc.EXPECT().CounterPropose(gomock.Any(), "bk-1", "p-1", gomock.Any()).Return(entities.BookingRequest{ID: "bk-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/proposals/counter", bytes.NewBufferString(`{"rejected_proposal_id":"p-1","proposal":{"proposed_by":"user","proposed_date":"2026-09-12T09:00:00Z"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("version conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/bookings/:booking_id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusCancelled).Return(entities.BookingRequest{}, interfaces.ErrVersionConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/bk-1/status", bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapBookingError(t *testing.T) {
	if got := mapBookingError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrInvalidSenderRole); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBookingError(usecase.ErrBookingClosed); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBookingError(interfaces.ErrVersionConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBookingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
