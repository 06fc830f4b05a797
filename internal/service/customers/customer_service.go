package customers

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"go.uber.org/zap"
)

type CustomerUseCase interface {
	Register(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error)
	FindByPassport(ctx context.Context, passportNo string) (*domain.Customer, error)
}

type RegisterCustomerInput struct {
	ID         string
	Name       string
	PassportNo string
	Address    string
	Phone      string
}

type CustomerService struct {
	repo   repository.CustomerRepository
	logger *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Register(_ context.Context, input RegisterCustomerInput) (*domain.Customer, error) {
	c, err := s.repo.Register(domain.Customer{
		ID:         input.ID,
		Name:       input.Name,
		PassportNo: input.PassportNo,
		Address:    input.Address,
		Phone:      input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	s.logger.Info("customer registered", zap.String("customer_id", c.ID))
	return &c, nil
}

func (s *CustomerService) FindByPassport(_ context.Context, passportNo string) (*domain.Customer, error) {
	c, err := s.repo.FindByPassport(passportNo)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

var _ CustomerUseCase = (*CustomerService)(nil)
