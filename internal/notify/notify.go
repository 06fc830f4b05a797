package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers booking confirmations to the customer's phone. Delivery
// is a log line until an SMS gateway is configured.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(_ context.Context, event kafka.BookingEvent) error {
	if event.Phone == "" {
		return errors.New("booking event has no phone number")
	}
	s.logger.Info("sms sent",
		zap.String("to", event.Phone),
		zap.String("event_id", event.EventID),
		zap.String("text", Message(event)),
	)
	return nil
}

func Message(event kafka.BookingEvent) string {
	return fmt.Sprintf("CloudFare Airlines: booking %s confirmed for %s, flight %s to %s on %s at %s (%s, $%s).",
		event.BookingID, event.CustomerName, event.FlightNo, event.Destination,
		event.DepartureDate, event.DepartureTime, event.Class, event.Fare)
}
