package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service reservation.UseCase
}

type createBookingRequest struct {
	FlightNo   string `json:"flight_no" binding:"required"`
	PassportNo string `json:"passport_no" binding:"required"`
	Class      string `json:"travel_class" binding:"required"`
}

func NewBookingHandler(service reservation.UseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the ledger on staff only; bookings carry passenger details.
func (h *BookingHandler) Register(_, staff *gin.RouterGroup) {
	staff.GET("", h.list)
	staff.POST("", h.create)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	class, err := domain.ParseTravelClass(req.Class)
	if err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.BookFlight(c.Request.Context(), booking.BookFlightInput{
		FlightNo:   req.FlightNo,
		PassportNo: req.PassportNo,
		Class:      class,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// list returns the ledger grouped by departure date.
func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, domain.GroupByDepartureDate(bookings))
}
