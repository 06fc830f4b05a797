package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventBookingCreated = "booking_created"

// BookingEvent is published for every committed booking. EventID is unique
// per publication so consumers can drop redeliveries.
type BookingEvent struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	BookingID     string    `json:"booking_id"`
	FlightNo      string    `json:"flight_no"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	Phone         string    `json:"phone"`
	Class         string    `json:"travel_class"`
	Fare          string    `json:"fare"`
	DepartureDate string    `json:"departure_date"`
	DepartureTime string    `json:"departure_time"`
	Destination   string    `json:"destination"`
	BookedAt      time.Time `json:"booked_at"`
}

func DecodeBookingEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event at offset %d: %w", msg.Offset, err)
	}
	return event, nil
}
