package routes

import (
	"mecanica_agenda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings  = "/bookings"
	PathCustomers = "/customers"
	PathWorkshops = "/workshops"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, quoteHandler *handlers.QuoteHandler, streamHandler *handlers.StreamHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.PATCH("/:booking_id/status", bookingHandler.UpdateStatus)

		bookings.POST("/:booking_id/proposals", bookingHandler.AddProposal)
		bookings.PATCH("/:booking_id/proposals/accept", bookingHandler.AcceptProposal)
		bookings.POST("/:booking_id/proposals/counter", bookingHandler.CounterPropose)

		bookings.POST("/:booking_id/messages", bookingHandler.AddMessage)
		bookings.PATCH("/:booking_id/messages/read", bookingHandler.MarkMessagesRead)

		bookings.GET("/:booking_id/quotes", quoteHandler.ListBookingQuotes)
		bookings.GET("/:booking_id/events", streamHandler.StreamBooking)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("/:customer_id/bookings", bookingHandler.ListCustomerBookings)
		customers.GET("/:customer_id/booking-events", streamHandler.StreamCustomerBookings)
	}

	workshops := rg.Group(PathWorkshops)
	{
		workshops.GET("/:workshop_id/bookings", bookingHandler.ListWorkshopBookings)
		workshops.GET("/:workshop_id/booking-events", streamHandler.StreamWorkshopBookings)
	}
}
