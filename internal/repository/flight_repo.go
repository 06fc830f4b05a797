package repository

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type FlightRepository interface {
	Add(flight domain.Flight) (domain.Flight, error)
	GetByNumber(number string) (domain.Flight, error)
	ReserveSeat(number string, class domain.TravelClass) (domain.Flight, error)
	List() []domain.Flight
}

// MemoryFlightRepository is the flight catalog. Booked counts change only
// through ReserveSeat.
type MemoryFlightRepository struct {
	mu      sync.RWMutex
	flights []domain.Flight
	index   map[string]int
}

func NewFlightRepository() *MemoryFlightRepository {
	return &MemoryFlightRepository{index: make(map[string]int)}
}

func (r *MemoryFlightRepository) Add(flight domain.Flight) (domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[flight.Number]; ok {
		return domain.Flight{}, fmt.Errorf("flight %s: %w", flight.Number, domain.ErrDuplicateKey)
	}
	flight.Booked = domain.SeatCount{}
	r.index[flight.Number] = len(r.flights)
	r.flights = append(r.flights, flight)
	return flight, nil
}

func (r *MemoryFlightRepository) GetByNumber(number string) (domain.Flight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[number]
	if !ok {
		return domain.Flight{}, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}
	return r.flights[i], nil
}

// ReserveSeat takes one seat of class on the flight and returns the flight as
// it stands right after the reservation. A full class is left untouched.
func (r *MemoryFlightRepository) ReserveSeat(number string, class domain.TravelClass) (domain.Flight, error) {
	if !class.Valid() {
		return domain.Flight{}, domain.ErrInvalidClass
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[number]
	if !ok {
		return domain.Flight{}, fmt.Errorf("flight %s: %w", number, domain.ErrNotFound)
	}
	f := &r.flights[i]
	if f.Booked.Of(class) >= f.Seats.Of(class) {
		return domain.Flight{}, fmt.Errorf("flight %s %s: %w", number, class, domain.ErrCapacityExceeded)
	}
	f.Booked = f.Booked.Add(class, 1)
	return *f, nil
}

func (r *MemoryFlightRepository) List() []domain.Flight {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out
}

var _ FlightRepository = (*MemoryFlightRepository)(nil)
