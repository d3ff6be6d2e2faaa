package handlers

import (
	"io"
	"net/http"

	response "mecanica_agenda/internal/adapter/http/dto/response"
	"mecanica_agenda/internal/domain/entities"
	"mecanica_agenda/internal/metrics"
	"mecanica_agenda/internal/usecase"
	"mecanica_agenda/pkg"

	"github.com/gin-gonic/gin"
)

// streamBuffer bounds how many pending change events a slow client can
// hold before newer ones are dropped. Every event carries the full
// booking snapshot, so a drop only costs an intermediate state.
const streamBuffer = 16

// StreamHandler pushes booking change notifications to clients over
// Server-Sent Events. Subscriptions are in-process: each API instance
// only sees the writes it performed itself.
type StreamHandler struct {
	usecase usecase.IBookingUseCase
}

func NewStreamHandler(uc usecase.IBookingUseCase) *StreamHandler {
	return &StreamHandler{usecase: uc}
}

// StreamBooking streams every change to one booking request.
func (h *StreamHandler) StreamBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	if _, err := h.usecase.GetByID(c.Request.Context(), bookingID); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.stream(c, func(fn func(entities.BookingRequest)) func() {
		return h.usecase.OnBookingChange(bookingID, fn)
	})
}

// StreamCustomerBookings streams changes to any booking owned by the
// customer.
func (h *StreamHandler) StreamCustomerBookings(c *gin.Context) {
	customerID := c.Param("customer_id")
	if customerID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.stream(c, func(fn func(entities.BookingRequest)) func() {
		return h.usecase.OnCustomerBookingsChange(customerID, fn)
	})
}

// StreamWorkshopBookings streams changes to any booking addressed to
// the workshop.
func (h *StreamHandler) StreamWorkshopBookings(c *gin.Context) {
	workshopID := c.Param("workshop_id")
	if workshopID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.stream(c, func(fn func(entities.BookingRequest)) func() {
		return h.usecase.OnWorkshopBookingsChange(workshopID, fn)
	})
}

func (h *StreamHandler) stream(c *gin.Context, subscribe func(func(entities.BookingRequest)) func()) {
	events := make(chan entities.BookingRequest, streamBuffer)
	cancel := subscribe(func(b entities.BookingRequest) {
		// The hub calls this under its lock; never block it.
		select {
		case events <- b:
		default:
		}
	})
	defer cancel()

	metrics.StreamOpened()
	defer metrics.StreamClosed()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case b := <-events:
			c.SSEvent("booking", response.FromBooking(b))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
