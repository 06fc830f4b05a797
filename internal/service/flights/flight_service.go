package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightView, error)
}

// FlightCache holds the published flight board.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// AddFlightInput carries already validated values; format checks belong
// to the caller.
type AddFlightInput struct {
	Number        string
	Origin        string
	Destination   string
	DepartureDate domain.Date
	DepartureTime domain.Clock
	EconomySeats  int
	BusinessSeats int
	EconomyFare   decimal.Decimal
	BusinessFare  decimal.Decimal
}

type FlightService struct {
	repo   repository.FlightRepository
	cache  FlightCache
	logger *zap.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithLogger(logger *zap.Logger) FlightServiceOption {
	return func(s *FlightService) {
		s.logger = logger
	}
}

func NewFlightService(repo repository.FlightRepository, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	added, err := s.repo.Add(domain.Flight{
		Number:        input.Number,
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		DepartureTime: input.DepartureTime,
		Seats:         domain.SeatCount{Economy: input.EconomySeats, Business: input.BusinessSeats},
		Fares:         domain.Fares{Economy: input.EconomyFare, Business: input.BusinessFare},
	})
	if err != nil {
		return nil, fmt.Errorf("add flight: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info("flight added",
		zap.String("flight_no", added.Number),
		zap.String("destination", added.Destination),
		zap.String("departure_date", string(added.DepartureDate)),
	)
	return &added, nil
}

func (s *FlightService) GetByNumber(_ context.Context, number string) (*domain.Flight, error) {
	f, err := s.repo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List serves the flight board, reading through the cache when one is set.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("flight cache read failed", zap.Error(err))
		}
	}

	flights := s.repo.List()
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.logger.Warn("flight cache write failed", zap.Error(err))
		}
	}
	return flights, nil
}

// Search always reads the catalog directly so availability is never stale.
func (s *FlightService) Search(_ context.Context, criteria domain.SearchCriteria) ([]domain.FlightView, error) {
	if criteria.Class != "" && !criteria.Class.Valid() {
		return nil, domain.ErrInvalidClass
	}
	return Search(s.repo.List(), criteria), nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.logger.Warn("flight cache invalidation failed", zap.Error(err))
	}
}

var _ FlightUseCase = (*FlightService)(nil)
