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

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler exposes the booking negotiation operations over HTTP.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateBookingRequest(c.Request.Context(), usecase.CreateBookingInput{
		CustomerID:    payload.CustomerID,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		WorkshopID:    payload.WorkshopID,
		WorkshopName:  payload.WorkshopName,
		MechanicID:    payload.MechanicID,
		Vehicle: entities.VehicleRef{
			Make:     payload.Vehicle.Make,
			Model:    payload.Vehicle.Model,
			Year:     payload.Vehicle.Year,
			Plate:    payload.Vehicle.Plate,
			Odometer: payload.Vehicle.Odometer,
		},
		Type: entities.BookingType(payload.BookingType),
		Service: entities.ServiceRef{
			CatalogID: payload.Service.CatalogID,
			Name:      payload.Service.Name,
			Category:  payload.Service.Category,
		},
		ProblemDescription: payload.ProblemDescription,
		Urgency:            entities.Urgency(payload.Urgency),
		PreferredDates:     payload.PreferredDates,
	})
	metrics.IncBookingOp("create", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.usecase.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	bookings, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) ListWorkshopBookings(c *gin.Context) {
	bookings, err := h.usecase.ListByWorkshopID(c.Request.Context(), c.Param("workshop_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) AddProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.AddProposal(c.Request.Context(), c.Param("booking_id"), usecase.ProposalInput{
		ProposedBy:    entities.SenderRole(payload.ProposedBy),
		ProposedDate:  payload.ProposedDate,
		Message:       payload.Message,
		EstimatedCost: payload.EstimatedCost,
	})
	metrics.IncBookingOp("add_proposal", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) AcceptProposal(c *gin.Context) {
	var payload request.AcceptProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.AcceptProposal(c.Request.Context(), c.Param("booking_id"), payload.ProposalID)
	metrics.IncBookingOp("accept_proposal", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) CounterPropose(c *gin.Context) {
	var payload request.CounterProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CounterPropose(c.Request.Context(), c.Param("booking_id"), payload.RejectedProposalID, usecase.ProposalInput{
		ProposedBy:    entities.SenderRole(payload.Proposal.ProposedBy),
		ProposedDate:  payload.Proposal.ProposedDate,
		Message:       payload.Proposal.Message,
		EstimatedCost: payload.Proposal.EstimatedCost,
	})
	metrics.IncBookingOp("counter_propose", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) AddMessage(c *gin.Context) {
	var payload request.MessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.AddMessage(c.Request.Context(), c.Param("booking_id"), usecase.MessageInput{
		SenderID:    payload.SenderID,
		SenderName:  payload.SenderName,
		SenderRole:  entities.SenderRole(payload.SenderRole),
		Text:        payload.Text,
		Attachments: payload.Attachments,
	})
	metrics.IncBookingOp("add_message", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) MarkMessagesRead(c *gin.Context) {
	var payload request.MarkMessagesReadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.MarkMessagesAsRead(c.Request.Context(), c.Param("booking_id"), payload.ReaderID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("booking_id"), entities.BookingStatus(payload.Status))
	metrics.IncBookingOp("update_status", err)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidWorkshop),
		errors.Is(err, usecase.ErrInvalidVehicle),
		errors.Is(err, usecase.ErrMissingServiceInfo),
		errors.Is(err, usecase.ErrTooManyPreferredDates),
		errors.Is(err, usecase.ErrInvalidProposalDate),
		errors.Is(err, usecase.ErrInvalidSenderRole),
		errors.Is(err, usecase.ErrEmptyMessageText),
		errors.Is(err, usecase.ErrUnknownBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, usecase.ErrBookingClosed):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The booking changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
