package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/shopspring/decimal"
)

// DefaultSeed is the starting inventory: three JFK departures the day
// after now.
func DefaultSeed(now time.Time) []flights.AddFlightInput {
	tomorrow := domain.DateOf(now.AddDate(0, 0, 1))
	mk := func(number, destination string, at domain.Clock) flights.AddFlightInput {
		return flights.AddFlightInput{
			Number:        number,
			Origin:        "JFK",
			Destination:   destination,
			DepartureDate: tomorrow,
			DepartureTime: at,
			EconomySeats:  20,
			BusinessSeats: 20,
			EconomyFare:   decimal.NewFromInt(500),
			BusinessFare:  decimal.NewFromInt(1000),
		}
	}
	return []flights.AddFlightInput{
		mk("JFK001", "Orlando", "06:30"),
		mk("JFK002", "Miami", "14:00"),
		mk("JFK003", "Los Angeles", "20:30"),
	}
}

func Seed(ctx context.Context, engine UseCase, inventory []flights.AddFlightInput) error {
	for _, input := range inventory {
		if _, err := engine.AddFlight(ctx, input); err != nil {
			return fmt.Errorf("seed flight %s: %w", input.Number, err)
		}
	}
	return nil
}
