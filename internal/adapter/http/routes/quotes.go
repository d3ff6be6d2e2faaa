package routes

import (
	"mecanica_agenda/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.PaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id", quoteHandler.UpdateQuote)

		quotes.PATCH("/:quote_id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.POST("/:quote_id/revisions", quoteHandler.CreateRevision)

		quotes.POST("/:quote_id/payments", paymentHandler.CreatePayment)
		quotes.GET("/:quote_id/payments", paymentHandler.ListQuotePayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
