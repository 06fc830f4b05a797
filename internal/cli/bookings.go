package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
)

var errCancelled = errors.New("cancelled by operator")

func isExit(line string) bool {
	return strings.EqualFold(line, "exit")
}

func (s *Session) bookFlight(ctx context.Context) error {
	s.header("Book a Flight")

	flight, err := s.pickFlight(ctx)
	if err == nil {
		var customer *domain.Customer
		customer, err = s.pickCustomer(ctx)
		if err == nil {
			err = s.completeBooking(ctx, flight, customer)
		}
	}
	if errors.Is(err, errCancelled) {
		s.printf("Booking cancelled.\n")
		return nil
	}
	return err
}

func (s *Session) pickFlight(ctx context.Context) (*domain.Flight, error) {
	for {
		line, err := s.prompt(ctx, "Flight No (or 'exit' to cancel): ")
		if err != nil {
			return nil, err
		}
		if isExit(line) {
			return nil, errCancelled
		}
		flight, err := s.engine.GetFlight(ctx, strings.ToUpper(line))
		if err == nil {
			return flight, nil
		}

		s.printf("Flight not found! Available flights:\n")
		all, err := s.engine.ListFlights(ctx)
		if err != nil {
			s.report(err)
			continue
		}
		for _, f := range all {
			s.printf("%s - %s (%s %s)\n", f.Number, f.Destination, f.DepartureDate, f.DepartureTime)
		}
	}
}

func (s *Session) pickCustomer(ctx context.Context) (*domain.Customer, error) {
	for {
		line, err := s.prompt(ctx, "Passport Number (or 'exit' to cancel): ")
		if err != nil {
			return nil, err
		}
		if isExit(line) {
			return nil, errCancelled
		}
		customer, err := s.engine.FindCustomer(ctx, line)
		if err == nil {
			return customer, nil
		}
		s.printf("Customer not found! Please register first or try another passport number.\n")
	}
}

func (s *Session) completeBooking(ctx context.Context, flight *domain.Flight, customer *domain.Customer) error {
	class, err := ask(ctx, s, "Class (Economy/Business): ", parseClass)
	if err != nil {
		return err
	}
	if flight.IsFull(class) {
		s.printf("No %s seats available on this flight!\n", class)
		return nil
	}

	s.printf("\nBooking Summary:\n%s\n", rule("-", 40))
	s.printf("Flight: %s to %s\n", flight.Number, flight.Destination)
	s.printf("Date: %s at %s\n", flight.DepartureDate, flight.DepartureTime)
	s.printf("Passenger: %s (%s)\n", customer.Name, customer.PassportNo)
	s.printf("Class: %s\n", class.Title())
	s.printf("Fare: $%s\n%s\n", flight.Fares.Of(class).StringFixed(2), rule("-", 40))

	ok, err := s.confirm(ctx, "\nConfirm booking? (Yes/No): ")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	b, err := s.engine.BookFlight(ctx, booking.BookFlightInput{
		FlightNo:   flight.Number,
		PassportNo: customer.PassportNo,
		Class:      class,
	})
	if err != nil {
		s.report(err)
		return nil
	}
	s.printf("\nBooking confirmed! Booking ID: %s\n", b.ID)
	return nil
}

func (s *Session) viewBookings(ctx context.Context) error {
	s.header("View Bookings")

	bookings, err := s.engine.ListBookings(ctx)
	if err != nil {
		s.report(err)
		return nil
	}
	if len(bookings) == 0 {
		s.printf("No bookings found.\n")
		return nil
	}
	renderBookings(s.out, domain.GroupByDepartureDate(bookings))
	return nil
}

// report prints an engine failure. The session carries on afterwards.
func (s *Session) report(err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		s.printf("Already exists: %v\n", err)
	case errors.Is(err, domain.ErrNotFound):
		s.printf("Not found: %v\n", err)
	case errors.Is(err, domain.ErrCapacityExceeded):
		s.printf("No seats available in that class on this flight!\n")
	default:
		s.printf("An error occurred: %v\n", err)
	}
}
