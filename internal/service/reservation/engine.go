package reservation

import (
	"context"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/customers"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
)

// UseCase is everything the terminal session and the HTTP API may ask of
// the reservation desk.
type UseCase interface {
	AddFlight(ctx context.Context, input flights.AddFlightInput) (*domain.Flight, error)
	GetFlight(ctx context.Context, number string) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightView, error)
	RegisterCustomer(ctx context.Context, input customers.RegisterCustomerInput) (*domain.Customer, error)
	FindCustomer(ctx context.Context, passportNo string) (*domain.Customer, error)
	BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

// Engine owns the flight, customer and booking stores for the life of the
// process. Operations run one at a time; reads may overlap each other.
type Engine struct {
	mu        sync.RWMutex
	flights   flights.FlightUseCase
	customers customers.CustomerUseCase
	bookings  booking.BookingUseCase
}

func NewEngine(f flights.FlightUseCase, c customers.CustomerUseCase, b booking.BookingUseCase) *Engine {
	return &Engine{flights: f, customers: c, bookings: b}
}

func (e *Engine) AddFlight(ctx context.Context, input flights.AddFlightInput) (*domain.Flight, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.flights.AddFlight(ctx, input)
}

func (e *Engine) GetFlight(ctx context.Context, number string) (*domain.Flight, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.flights.GetByNumber(ctx, number)
}

func (e *Engine) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.flights.List(ctx)
}

func (e *Engine) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightView, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.flights.Search(ctx, criteria)
}

func (e *Engine) RegisterCustomer(ctx context.Context, input customers.RegisterCustomerInput) (*domain.Customer, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.customers.Register(ctx, input)
}

func (e *Engine) FindCustomer(ctx context.Context, passportNo string) (*domain.Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.customers.FindByPassport(ctx, passportNo)
}

func (e *Engine) BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Booking, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bookings.BookFlight(ctx, input)
}

func (e *Engine) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bookings.ListBookings(ctx)
}

var _ UseCase = (*Engine)(nil)
