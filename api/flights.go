package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/Domenick1991/flightdesk/internal/service/reservation"
	"github.com/Domenick1991/flightdesk/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FlightHandler struct {
	service reservation.UseCase
	rules   validate.Rules
}

type createFlightRequest struct {
	Number        string          `json:"flight_no" binding:"required"`
	Origin        string          `json:"origin" binding:"required"`
	Destination   string          `json:"destination" binding:"required"`
	DepartureDate string          `json:"departure_date" binding:"required"`
	DepartureTime string          `json:"departure_time" binding:"required"`
	EconomySeats  int             `json:"economy_seats" binding:"gte=0"`
	BusinessSeats int             `json:"business_seats" binding:"gte=0"`
	EconomyFare   decimal.Decimal `json:"economy_fare"`
	BusinessFare  decimal.Decimal `json:"business_fare"`
}

func NewFlightHandler(service reservation.UseCase, rules validate.Rules) *FlightHandler {
	return &FlightHandler{service: service, rules: rules}
}

// Register mounts the read routes on public and the write routes on staff.
func (h *FlightHandler) Register(public, staff *gin.RouterGroup) {
	public.GET("", h.list)
	public.GET("/search", h.search)
	public.GET("/:number", h.get)
	staff.POST("", h.create)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	number, origin, destination, err := h.rules.Flight(req.Number, req.Origin, req.Destination)
	if err != nil {
		badRequest(c, err)
		return
	}
	date, err := domain.ParseDate(req.DepartureDate)
	if err != nil {
		badRequest(c, err)
		return
	}
	clock, err := domain.ParseClock(req.DepartureTime)
	if err != nil {
		badRequest(c, err)
		return
	}
	if req.EconomyFare.IsNegative() || req.BusinessFare.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fares must not be negative"})
		return
	}

	flight, err := h.service.AddFlight(c.Request.Context(), flights.AddFlightInput{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureDate: date,
		DepartureTime: clock,
		EconomySeats:  req.EconomySeats,
		BusinessSeats: req.BusinessSeats,
		EconomyFare:   req.EconomyFare,
		BusinessFare:  req.BusinessFare,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetFlight(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) search(c *gin.Context) {
	criteria, err := searchCriteria(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	views, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// searchCriteria reads the optional date, time, destination and class
// query parameters. Absent parameters match anything.
func searchCriteria(c *gin.Context) (domain.SearchCriteria, error) {
	var (
		criteria domain.SearchCriteria
		err      error
	)
	if v := c.Query("date"); v != "" {
		if criteria.Date, err = domain.ParseDate(v); err != nil {
			return criteria, err
		}
	}
	if v := c.Query("time"); v != "" {
		if criteria.Time, err = domain.ParseClock(v); err != nil {
			return criteria, err
		}
	}
	if v := c.Query("class"); v != "" {
		if criteria.Class, err = domain.ParseTravelClass(v); err != nil {
			return criteria, err
		}
	}
	criteria.Destination = c.Query("destination")
	return criteria, nil
}
