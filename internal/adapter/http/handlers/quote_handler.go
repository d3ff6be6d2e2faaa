package handlers

import (
	"errors"
	"net/http"

	request "mecanica_agenda/internal/adapter/http/dto/request"
	response "mecanica_agenda/internal/adapter/http/dto/response"
	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/metrics"
	"mecanica_agenda/internal/usecase"
	"mecanica_agenda/internal/usecase/interfaces"
	"mecanica_agenda/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler exposes the quote engine over HTTP.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), usecase.CreateQuoteInput{
		BookingRequestID: payload.BookingRequestID,
		WorkshopID:       payload.WorkshopID,
		CustomerID:       payload.CustomerID,
		Services:         toServiceLines(payload.Services),
		Parts:            toPartLines(payload.Parts),
		AdditionalCosts:  toAdditionalCosts(payload.AdditionalCosts),
		LaborCost:        payload.LaborCost,
		PartsCost:        payload.PartsCost,
		VATRate:          payload.VATRate,
		Notes:            payload.Notes,
	})
	metrics.IncQuoteOp("create", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ListBookingQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListByBookingRequestID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.SendQuote(c.Request.Context(), c.Param("quote_id"), payload.ValidityDays)
	metrics.IncQuoteOp("send", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	quote, err := h.usecase.ApproveQuote(c.Request.Context(), c.Param("quote_id"))
	metrics.IncQuoteOp("approve", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.RejectQuote(c.Request.Context(), c.Param("quote_id"), payload.Reason)
	metrics.IncQuoteOp("reject", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateQuote(c.Request.Context(), c.Param("quote_id"), toQuoteUpdate(payload))
	metrics.IncQuoteOp("update", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) CreateRevision(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	quote, err := h.usecase.CreateRevision(c.Request.Context(), c.Param("quote_id"), toQuoteUpdate(payload))
	metrics.IncQuoteOp("revise", err)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func toServiceLines(in []request.ServiceLineRequest) []entities.ServiceLine {
	if in == nil {
		return nil
	}
	out := make([]entities.ServiceLine, len(in))
	for i, s := range in {
		out[i] = entities.ServiceLine{Name: s.Name, LaborCost: s.LaborCost}
	}
	return out
}

func toPartLines(in []request.PartLineRequest) []entities.PartLine {
	if in == nil {
		return nil
	}
	out := make([]entities.PartLine, len(in))
	for i, p := range in {
		out[i] = entities.PartLine{Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice}
	}
	return out
}

func toAdditionalCosts(in []request.AdditionalCostRequest) []entities.AdditionalCost {
	if in == nil {
		return nil
	}
	out := make([]entities.AdditionalCost, len(in))
	for i, a := range in {
		out[i] = entities.AdditionalCost{Name: a.Name, Amount: a.Amount}
	}
	return out
}

func toQuoteUpdate(payload request.UpdateQuoteRequest) usecase.QuoteUpdate {
	up := usecase.QuoteUpdate{
		LaborCost: payload.LaborCost,
		PartsCost: payload.PartsCost,
		VATRate:   payload.VATRate,
		Notes:     payload.Notes,
	}
	if payload.Services != nil {
		services := toServiceLines(*payload.Services)
		up.Services = &services
	}
	if payload.Parts != nil {
		parts := toPartLines(*payload.Parts)
		up.Parts = &parts
	}
	if payload.AdditionalCosts != nil {
		extras := toAdditionalCosts(*payload.AdditionalCosts)
		up.AdditionalCosts = &extras
	}
	return up
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidQuoteInput),
		errors.Is(err, usecase.ErrEmptyQuote),
		errors.Is(err, usecase.ErrNegativeQuoteValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotSent),
		errors.Is(err, usecase.ErrQuoteFinalized):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATE", "Operation not allowed in the quote's current status", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The quote changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
