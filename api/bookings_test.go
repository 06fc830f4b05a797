package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingHandler_create(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		result   *domain.Booking
		err      error
		wantCode int
	}{
		{
			name:     "booked",
			body:     `{"flight_no":"JFK001","passport_no":"N1","travel_class":"Economy"}`,
			result:   &domain.Booking{ID: "B001", FlightNo: "JFK001", Class: domain.ClassEconomy, Fare: decimal.NewFromInt(500)},
			wantCode: http.StatusCreated,
		},
		{
			name:     "class full",
			body:     `{"flight_no":"JFK001","passport_no":"N1","travel_class":"economy"}`,
			err:      fmt.Errorf("flight JFK001: %w", domain.ErrCapacityExceeded),
			wantCode: http.StatusConflict,
		},
		{
			name:     "unknown customer",
			body:     `{"flight_no":"JFK001","passport_no":"N1","travel_class":"economy"}`,
			err:      fmt.Errorf("customer N1: %w", domain.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockUseCase{}
			handler := NewBookingHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			mockService.On("BookFlight", c.Request.Context(), booking.BookFlightInput{
				FlightNo: "JFK001", PassportNo: "N1", Class: domain.ClassEconomy,
			}).Return(tt.result, tt.err)

			handler.create(c)

			assert.Equal(t, tt.wantCode, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_createRejectsClass(t *testing.T) {
	mockService := &MockUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/bookings",
		strings.NewReader(`{"flight_no":"JFK001","passport_no":"N1","travel_class":"first"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "BookFlight", mock.Anything, mock.Anything)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/bookings", nil)

	at := time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)
	mockService.On("ListBookings", c.Request.Context()).Return([]domain.Booking{
		{ID: "B001", DepartureDate: "2024-01-02", BookedAt: at},
		{ID: "B002", DepartureDate: "2024-01-01", BookedAt: at},
		{ID: "B003", DepartureDate: "2024-01-02", BookedAt: at},
	}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var groups []domain.BookingGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, domain.Date("2024-01-02"), groups[0].DepartureDate)
	require.Len(t, groups[0].Bookings, 2)
	assert.Equal(t, "B003", groups[0].Bookings[1].ID)
	assert.Equal(t, domain.Date("2024-01-01"), groups[1].DepartureDate)

	mockService.AssertExpectations(t)
}
