package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Booking is an append-only ledger entry. Flight and customer details are
// copied at booking time so the record stays stable on its own.
type Booking struct {
	ID            string          `json:"booking_id"`
	FlightNo      string          `json:"flight_no"`
	CustomerID    string          `json:"customer_id"`
	PassportNo    string          `json:"passport_no"`
	CustomerName  string          `json:"customer_name"`
	Class         TravelClass     `json:"travel_class"`
	Fare          decimal.Decimal `json:"fare"`
	DepartureDate Date            `json:"departure_date"`
	DepartureTime Clock           `json:"departure_time"`
	Destination   string          `json:"destination"`
	BookedAt      time.Time       `json:"booked_at"`
}

// BookingID formats the n-th booking identifier: B001, B002, ... B1000.
func BookingID(n int) string {
	return fmt.Sprintf("B%03d", n)
}

type BookingGroup struct {
	DepartureDate Date      `json:"departure_date"`
	Bookings      []Booking `json:"bookings"`
}

// GroupByDepartureDate keeps dates in order of first appearance and
// bookings in ledger order within each date.
func GroupByDepartureDate(bookings []Booking) []BookingGroup {
	groups := make([]BookingGroup, 0)
	index := make(map[Date]int)
	for _, b := range bookings {
		i, ok := index[b.DepartureDate]
		if !ok {
			i = len(groups)
			index[b.DepartureDate] = i
			groups = append(groups, BookingGroup{DepartureDate: b.DepartureDate})
		}
		groups[i].Bookings = append(groups[i].Bookings, b)
	}
	return groups
}
