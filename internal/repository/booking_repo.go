package repository

import (
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type BookingRepository interface {
	Append(booking domain.Booking) domain.Booking
	List() []domain.Booking
}

// MemoryBookingRepository is the append-only booking ledger.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []domain.Booking
}

func NewBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{}
}

// Append assigns the next sequential booking ID and stores the booking.
// IDs are never reused because entries are never removed.
func (r *MemoryBookingRepository) Append(booking domain.Booking) domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = domain.BookingID(len(r.bookings) + 1)
	r.bookings = append(r.bookings, booking)
	return booking
}

func (r *MemoryBookingRepository) List() []domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
