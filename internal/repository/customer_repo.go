package repository

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

type CustomerRepository interface {
	Register(customer domain.Customer) (domain.Customer, error)
	FindByPassport(passportNo string) (domain.Customer, error)
}

type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []domain.Customer
	ids       map[string]struct{}
}

func NewCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{ids: make(map[string]struct{})}
}

func (r *MemoryCustomerRepository) Register(customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[customer.ID]; ok {
		return domain.Customer{}, fmt.Errorf("customer %s: %w", customer.ID, domain.ErrDuplicateKey)
	}
	r.ids[customer.ID] = struct{}{}
	r.customers = append(r.customers, customer)
	return customer, nil
}

// FindByPassport returns the earliest registered customer holding passportNo.
// Passport numbers are not unique across customers.
func (r *MemoryCustomerRepository) FindByPassport(passportNo string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.PassportNo == passportNo {
			return c, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer with passport %s: %w", passportNo, domain.ErrNotFound)
}

var _ CustomerRepository = (*MemoryCustomerRepository)(nil)
