package handlers

import (
	"errors"
	"net/http"

	request "mecanica_agenda/internal/adapter/http/dto/request"
	response "mecanica_agenda/internal/adapter/http/dto/response"
	"mecanica_agenda/internal/usecase"
	"mecanica_agenda/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler exposes quote payment collection over HTTP.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.QuotePaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreateAndApprove(c.Request.Context(), c.Param("quote_id"), payload.ProviderPayload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotePayment(payment))
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(payment))
}

func (h *PaymentHandler) ListQuotePayments(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote must be approved before payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("GATEWAY_REJECTED", "Payment provider rejected the request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAUTHORIZED", "Payment provider credentials rejected", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
