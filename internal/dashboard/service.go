package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vst-mis/vst-mis/internal/catalog"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/production"
)

// KPIPort reads the KPI snapshot rows.
type KPIPort interface {
	Snapshot(ctx context.Context) (KPI, error)
}

// Lister ports over the collection services the bundle draws from.
type (
	OrderLister      interface{ List(ctx context.Context) ([]orders.Order, error) }
	DealerLister     interface{ List(ctx context.Context) ([]dealers.Dealer, error) }
	InventoryLister  interface{ List(ctx context.Context) ([]inventory.Item, error) }
	ProductLister    interface{ List(ctx context.Context) ([]catalog.Product, error) }
	ProductionLister interface{ List(ctx context.Context) ([]production.Run, error) }
)

// Service assembles the dashboard bundle.
type Service struct {
	orders     OrderLister
	dealers    DealerLister
	inventory  InventoryLister
	products   ProductLister
	production ProductionLister
	kpi        KPIPort
	cache      *Cache
}

// NewService constructs a Service.
func NewService(
	orderSvc OrderLister,
	dealerSvc DealerLister,
	inventorySvc InventoryLister,
	productRepo ProductLister,
	productionRepo ProductionLister,
	kpi KPIPort,
	cache *Cache,
) *Service {
	return &Service{
		orders:     orderSvc,
		dealers:    dealerSvc,
		inventory:  inventorySvc,
		products:   productRepo,
		production: productionRepo,
		kpi:        kpi,
		cache:      cache,
	}
}

// Bundle returns the full dashboard payload, served from the versioned cache
// when fresh.
func (s *Service) Bundle(ctx context.Context) (Bundle, error) {
	key, err := s.cache.BuildKey(ctx)
	if err != nil {
		return s.assemble(ctx)
	}
	var bundle Bundle
	err = s.cache.FetchJSON(ctx, key, &bundle, func(ctx context.Context) (interface{}, error) {
		return s.assemble(ctx)
	})
	return bundle, err
}

// Warm assembles the bundle and stores it under the current version.
func (s *Service) Warm(ctx context.Context) error {
	key, err := s.cache.BuildKey(ctx)
	if err != nil {
		return err
	}
	var bundle Bundle
	return s.cache.FetchJSON(ctx, key, &bundle, func(ctx context.Context) (interface{}, error) {
		return s.assemble(ctx)
	})
}

func (s *Service) assemble(ctx context.Context) (Bundle, error) {
	bundle := Bundle{
		Utilization:  utilization,
		MonthlyTrend: monthlyTrend,
		ProductMix:   productMix,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bundle.Orders, err = s.orders.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Dealers, err = s.dealers.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Inventory, err = s.inventory.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Products, err = s.products.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.Production, err = s.production.List(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bundle.KPI, err = s.kpi.Snapshot(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Bundle{}, err
	}

	// activeDealers tracks the live dealer count, not the stored snapshot.
	bundle.KPI.ActiveDealers = len(bundle.Dealers)
	return bundle, nil
}
