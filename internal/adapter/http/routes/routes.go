package routes

import (
	"os"
	"strconv"

	_ "mecanica_agenda/docs" // This will be auto-generated
	"mecanica_agenda/internal/adapter/http/handlers"
	repository2 "mecanica_agenda/internal/adapter/persistence/repository"
	"mecanica_agenda/internal/events"
	"mecanica_agenda/internal/infrastructure/database"
	"mecanica_agenda/internal/infrastructure/payments"
	"mecanica_agenda/internal/logging"
	"mecanica_agenda/internal/metrics"
	"mecanica_agenda/internal/usecase"
	"mecanica_agenda/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	log := logging.New()
	metrics.Register()

	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(log)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(log zerolog.Logger) {
	ddb := database.ConnectDynamoDB(log)

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)
	directory := repository2.NewWorkshopDynamoDirectory(ddb)

	hub := events.NewBookingHub()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), log)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, directory, hub, log)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, bookingRepo, hub, log)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway, log)

	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	streamHandler := handlers.NewStreamHandler(bookingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, quoteHandler, streamHandler)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
}

func setMiddlewares(log zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}
