package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/shopspring/decimal"
)

const (
	defaultEconomySeats  = 70
	defaultBusinessSeats = 30
)

var (
	defaultEconomyFare  = decimal.NewFromInt(500)
	defaultBusinessFare = decimal.NewFromInt(1000)
)

func parseDate(in string) (domain.Date, error) {
	d, err := domain.ParseDate(in)
	if err != nil {
		return "", errors.New("Invalid date format. Please use YYYY-MM-DD")
	}
	return d, nil
}

func parseClock(in string) (domain.Clock, error) {
	c, err := domain.ParseClock(in)
	if err != nil {
		return "", errors.New("Invalid time format. Please use HH:MM")
	}
	return c, nil
}

func parseClass(in string) (domain.TravelClass, error) {
	c, err := domain.ParseTravelClass(in)
	if err != nil {
		return "", errors.New("Invalid class. Must be 'Economy' or 'Business'")
	}
	return c, nil
}

// optional lets an empty answer through as the zero value.
func optional[T ~string](parse func(string) (T, error)) func(string) (T, error) {
	return func(in string) (T, error) {
		if strings.TrimSpace(in) == "" {
			return "", nil
		}
		return parse(in)
	}
}

func (s *Session) addFlight(ctx context.Context) error {
	s.header("Add Flight Details")

	var (
		in  flights.AddFlightInput
		err error
	)
	in.Number, err = ask(ctx, s, "Flight No ("+s.rules.Origin()+"xxx): ", func(line string) (string, error) {
		number, err := s.rules.FlightNumber(line)
		if err != nil {
			return "", err
		}
		if _, err := s.engine.GetFlight(ctx, number); err == nil {
			return "", errors.New("Flight number already exists!")
		}
		return number, nil
	})
	if err != nil {
		return err
	}
	if in.Origin, err = ask(ctx, s, "Departure From (must be "+s.rules.Origin()+"): ", s.rules.Departure); err != nil {
		return err
	}
	if in.Destination, err = ask(ctx, s, "Arrival To ("+strings.Join(s.rules.Destinations(), "/")+"): ", s.rules.Destination); err != nil {
		return err
	}
	if in.DepartureDate, err = ask(ctx, s, "Departure Date (YYYY-MM-DD): ", parseDate); err != nil {
		return err
	}
	if in.DepartureTime, err = ask(ctx, s, "Departure Time (HH:MM): ", parseClock); err != nil {
		return err
	}
	if in.EconomySeats, err = ask(ctx, s, "Economy class seats (default 70): ", func(l string) (int, error) { return seats(l, defaultEconomySeats) }); err != nil {
		return err
	}
	if in.BusinessSeats, err = ask(ctx, s, "Business class seats (default 30): ", func(l string) (int, error) { return seats(l, defaultBusinessSeats) }); err != nil {
		return err
	}
	if in.EconomyFare, err = ask(ctx, s, "Economy class fare (default $500): $", func(l string) (decimal.Decimal, error) { return fare(l, defaultEconomyFare) }); err != nil {
		return err
	}
	if in.BusinessFare, err = ask(ctx, s, "Business class fare (default $1000): $", func(l string) (decimal.Decimal, error) { return fare(l, defaultBusinessFare) }); err != nil {
		return err
	}

	ok, err := s.confirm(ctx, "Add this flight? (Yes/No): ")
	if err != nil {
		return err
	}
	if !ok {
		s.printf("Flight addition cancelled.\n")
		return nil
	}

	if _, err := s.engine.AddFlight(ctx, in); err != nil {
		s.report(err)
		return nil
	}
	s.printf("Flight added successfully!\n")
	return nil
}

func (s *Session) searchFlights(ctx context.Context) error {
	for {
		s.header("Search Available Flights")

		var (
			c   domain.SearchCriteria
			err error
		)
		if c.Date, err = ask(ctx, s, "Departure Date (YYYY-MM-DD, press Enter to skip): ", optional(parseDate)); err != nil {
			return err
		}
		if c.Time, err = ask(ctx, s, "Departure Time (HH:MM, press Enter to skip): ", optional(parseClock)); err != nil {
			return err
		}
		if c.Destination, err = ask(ctx, s, "Destination ("+strings.Join(s.rules.Destinations(), "/")+", press Enter to skip): ", optional(s.rules.Destination)); err != nil {
			return err
		}
		if c.Class, err = ask(ctx, s, "Class (Economy/Business, press Enter to skip): ", optional(parseClass)); err != nil {
			return err
		}

		views, err := s.engine.Search(ctx, c)
		switch {
		case err != nil:
			s.report(err)
		case len(views) == 0:
			s.printf("\nNo flights found matching your criteria.\n")
		default:
			s.printf("\nAvailable Flights:\n")
			renderFlights(s.out, views)
		}

		again, err := s.confirm(ctx, "\nSearch again? (Yes/No): ")
		if err != nil || !again {
			return err
		}
	}
}
