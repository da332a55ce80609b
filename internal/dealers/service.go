package dealers

import "context"

// RepositoryPort abstracts repository usage for the service.
type RepositoryPort interface {
	List(ctx context.Context) ([]Dealer, error)
	Create(ctx context.Context, dealer Dealer) error
}

// Bumper invalidates downstream caches after a mutation.
type Bumper interface {
	Bump(ctx context.Context) error
}

// Service coordinates dealer operations.
type Service struct {
	repo  RepositoryPort
	cache Bumper
}

// NewService builds a Service.
func NewService(repo RepositoryPort, cache Bumper) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns all dealers.
func (s *Service) List(ctx context.Context) ([]Dealer, error) {
	return s.repo.List(ctx)
}

// Create registers a new dealer.
func (s *Service) Create(ctx context.Context, req CreateDealerRequest) (Dealer, error) {
	dealer := Dealer{
		Code:     req.Code,
		Name:     req.Name,
		Region:   req.Region,
		City:     req.City,
		Contact:  req.Contact,
		YTDSales: req.YTDSales,
	}
	if err := s.repo.Create(ctx, dealer); err != nil {
		return Dealer{}, err
	}
	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			return dealer, err
		}
	}
	return dealer, nil
}
