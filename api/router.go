package api

import (
	_ "embed"
	"net/http"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/Domenick1991/flightdesk/internal/validate"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//go:embed openapi.json
var openAPISpec []byte

// NewRouter builds the HTTP API over engine. Flight reads are public;
// customer and booking data and anything that changes the desk require the
// staff credential. New flights must satisfy the rules of desk.
func NewRouter(engine reservation.UseCase, auth Authenticator, desk config.DeskConfig, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", openAPISpec)
	})
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/openapi.json"))))

	staff := StaffAuth(auth)
	mount := func(path string, register func(public, staff *gin.RouterGroup)) {
		public := router.Group(path)
		register(public, public.Group("", staff))
	}
	mount("/flights", NewFlightHandler(engine, validate.NewRules(desk)).Register)
	mount("/customers", NewCustomerHandler(engine).Register)
	mount("/bookings", NewBookingHandler(engine).Register)

	return router
}
