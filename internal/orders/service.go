package orders

import (
	"context"
	"fmt"
	"time"
)

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Order, error)
	Create(ctx context.Context, order Order) error
	SetStatus(ctx context.Context, id string, status Status) error
	MaxSequence(ctx context.Context) (int, error)
}

// Bumper invalidates downstream caches after a mutation.
type Bumper interface {
	Bump(ctx context.Context) error
}

// Service coordinates order operations.
type Service struct {
	repo  RepositoryPort
	cache Bumper
	clock func() time.Time
}

// NewService builds a Service.
func NewService(repo RepositoryPort, cache Bumper) *Service {
	return &Service{repo: repo, cache: cache, clock: time.Now}
}

// WithClock overrides the clock, for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// List returns all orders, newest date first.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// Create stores a new order exactly as submitted.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (Order, error) {
	order := Order{
		ID:      req.ID,
		Date:    req.Date,
		Dealer:  req.Dealer,
		Product: req.Product,
		Qty:     req.Qty,
		Amount:  req.Amount,
		Status:  req.Status,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return Order{}, err
	}
	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			return order, err
		}
	}
	return order, nil
}

// SetStatus transitions an order to the given status.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	if s.cache != nil {
		return s.cache.Bump(ctx)
	}
	return nil
}

// NextID computes the next free order id: one past the highest numeric suffix
// across existing orders, floored at SequenceFloor. The year prefix follows
// the current calendar year.
func (s *Service) NextID(ctx context.Context) (string, error) {
	maxSeq, err := s.repo.MaxSequence(ctx)
	if err != nil {
		return "", err
	}
	if maxSeq < SequenceFloor {
		maxSeq = SequenceFloor
	}
	return fmt.Sprintf("ORD-%d-%d", s.clock().Year(), maxSeq+1), nil
}
