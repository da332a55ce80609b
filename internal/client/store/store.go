// Package store holds the session's working copy of every collection and
// coordinates optimistic mutations against the remote API.
//
// Each mutation follows one protocol: build the intended record, attempt the
// remote write, then reconcile. A confirmed write merges the server state; a
// transport failure applies the intended record locally and flags the
// notification as offline; an explicit server rejection leaves the store
// untouched. The store is single-writer: callers serialize mutations, and
// every mutation is followed by a synchronous notify pass for the affected
// sections.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vst-mis/vst-mis/internal/catalog"
	"github.com/vst-mis/vst-mis/internal/client/gateway"
	"github.com/vst-mis/vst-mis/internal/dashboard"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/production"
)

// Section names a slice of the store that views subscribe to.
type Section string

// Store sections.
const (
	SectionOrders    Section = "orders"
	SectionDealers   Section = "dealers"
	SectionInventory Section = "inventory"
	SectionDashboard Section = "dashboard"
)

// Notification kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Notification is a user-facing toast.
type Notification struct {
	Kind    string
	Message string
	Offline bool
}

// Notifier receives user-facing notifications.
type Notifier func(Notification)

// OutcomeKind classifies how a mutation resolved.
type OutcomeKind int

const (
	// Confirmed means the server acknowledged the write and its state was
	// merged.
	Confirmed OutcomeKind = iota
	// AppliedLocally means the server was unreachable and the intended
	// record was applied to the store anyway.
	AppliedLocally
	// Rejected means the server refused the write and the store is
	// unchanged.
	Rejected
)

// Outcome is the result of one optimistic mutation.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Err     error
}

// Gateway is the remote API surface the store mutates through.
type Gateway interface {
	FetchAll(ctx context.Context) (dashboard.Bundle, error)
	CreateOrder(ctx context.Context, order orders.Order) (orders.Order, error)
	SetOrderStatus(ctx context.Context, id string, status orders.Status) error
	AdjustStock(ctx context.Context, sku string, delta int) (int, error)
	CreateDealer(ctx context.Context, dealer dealers.Dealer) (dealers.Dealer, error)
	NextOrderID(ctx context.Context) (string, error)
}

// Store owns the session's collections. It is not safe for concurrent
// mutation; the host drives it from a single goroutine.
type Store struct {
	Orders       []orders.Order
	Dealers      []dealers.Dealer
	Inventory    []inventory.Item
	Products     []catalog.Product
	Production   []production.Run
	KPI          dashboard.KPI
	MonthlyTrend []dashboard.MonthlySales
	ProductMix   []dashboard.MixSlice
	Utilization  dashboard.Utilization

	gw          Gateway
	subscribers []func(Section)
	notifier    Notifier
}

// New constructs an empty Store around the gateway.
func New(gw Gateway) *Store {
	return &Store{gw: gw}
}

// Subscribe registers an observer invoked synchronously for every section a
// mutation touches.
func (s *Store) Subscribe(fn func(Section)) {
	s.subscribers = append(s.subscribers, fn)
}

// SetNotifier registers the toast sink.
func (s *Store) SetNotifier(fn Notifier) {
	s.notifier = fn
}

// Load replaces every collection with a fresh server snapshot.
func (s *Store) Load(ctx context.Context) error {
	bundle, err := s.gw.FetchAll(ctx)
	if err != nil {
		return err
	}
	s.Orders = bundle.Orders
	s.Dealers = bundle.Dealers
	s.Inventory = bundle.Inventory
	s.Products = bundle.Products
	s.Production = bundle.Production
	s.KPI = bundle.KPI
	s.MonthlyTrend = bundle.MonthlyTrend
	s.ProductMix = bundle.ProductMix
	s.Utilization = bundle.Utilization
	s.publish(SectionOrders, SectionDealers, SectionInventory, SectionDashboard)
	return nil
}

// CreateOrder submits a new order. The intended record is prepended on
// confirmation and on transport failure alike; a rejection leaves the list
// unchanged.
func (s *Store) CreateOrder(ctx context.Context, order orders.Order) Outcome {
	created, err := s.gw.CreateOrder(ctx, order)
	return s.reconcile(err, mutation{
		sections: []Section{SectionOrders, SectionDashboard},
		success:  "Order " + order.ID + " created",
		fallback: "Failed to create order",
		confirm: func() {
			s.Orders = append([]orders.Order{created}, s.Orders...)
		},
		local: func() {
			s.Orders = append([]orders.Order{order}, s.Orders...)
		},
	})
}

// SetOrderStatus moves an order to a new status.
func (s *Store) SetOrderStatus(ctx context.Context, id string, status orders.Status) Outcome {
	apply := func() {
		for i := range s.Orders {
			if s.Orders[i].ID == id {
				s.Orders[i].Status = status
				return
			}
		}
	}
	err := s.gw.SetOrderStatus(ctx, id, status)
	return s.reconcile(err, mutation{
		sections: []Section{SectionOrders, SectionDashboard},
		success:  "Order status updated to " + string(status),
		fallback: "Update failed",
		confirm:  apply,
		local:    apply,
	})
}

// AdjustStock applies a signed delta to an SKU. The server's stock value wins
// on confirmation; the offline path clamps at zero with the same semantics.
// Status is recomputed in both paths.
func (s *Store) AdjustStock(ctx context.Context, sku string, delta int) Outcome {
	item := s.findItem(sku)
	if item == nil {
		msg := "SKU not found"
		s.emit(Notification{Kind: KindError, Message: msg})
		return Outcome{Kind: Rejected, Message: msg, Err: inventory.ErrUnknownSKU}
	}
	stock, err := s.gw.AdjustStock(ctx, sku, delta)
	return s.reconcile(err, mutation{
		sections: []Section{SectionInventory, SectionDashboard},
		success:  "Stock updated: " + item.Name,
		fallback: "Update failed",
		confirm: func() {
			item.Stock = stock
			item.Refresh()
		},
		local: func() {
			next := item.Stock + delta
			if next < 0 {
				next = 0
			}
			item.Stock = next
			item.Refresh()
		},
	})
}

// AddDealer registers a dealer, assigning the next DLR code from the current
// dealer count.
func (s *Store) AddDealer(ctx context.Context, dealer dealers.Dealer) Outcome {
	dealer.Code = fmt.Sprintf("DLR-%03d", len(s.Dealers)+1)
	created, err := s.gw.CreateDealer(ctx, dealer)
	return s.reconcile(err, mutation{
		sections: []Section{SectionDealers, SectionDashboard},
		success:  "Dealer " + dealer.Code + " added",
		fallback: "Failed to add dealer",
		confirm: func() {
			s.Dealers = append(s.Dealers, created)
		},
		local: func() {
			s.Dealers = append(s.Dealers, dealer)
		},
	})
}

// NextOrderID asks the server for the next free id, falling back to a local
// scan of the loaded orders when the server is unreachable.
func (s *Store) NextOrderID(ctx context.Context, year int) (string, error) {
	id, err := s.gw.NextOrderID(ctx)
	if err == nil {
		return id, nil
	}
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		return "", err
	}
	maxSeq := orders.SequenceFloor
	for _, o := range s.Orders {
		parts := strings.Split(o.ID, "-")
		if len(parts) != 3 {
			continue
		}
		if seq, convErr := strconv.Atoi(parts[2]); convErr == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("ORD-%d-%d", year, maxSeq+1), nil
}

type mutation struct {
	sections []Section
	success  string
	fallback string
	confirm  func()
	local    func()
}

// reconcile is the single decision point for every optimistic mutation.
func (s *Store) reconcile(err error, m mutation) Outcome {
	var statusErr *gateway.StatusError
	switch {
	case err == nil:
		m.confirm()
		s.publish(m.sections...)
		s.emit(Notification{Kind: KindSuccess, Message: m.success})
		return Outcome{Kind: Confirmed, Message: m.success}

	case errors.As(err, &statusErr):
		msg := statusErr.Message
		if msg == "" {
			msg = m.fallback
		}
		s.emit(Notification{Kind: KindError, Message: msg})
		return Outcome{Kind: Rejected, Message: msg, Err: err}

	default:
		m.local()
		s.publish(m.sections...)
		msg := m.success + " (offline)"
		s.emit(Notification{Kind: KindSuccess, Message: msg, Offline: true})
		return Outcome{Kind: AppliedLocally, Message: msg, Err: err}
	}
}

func (s *Store) findItem(sku string) *inventory.Item {
	for i := range s.Inventory {
		if s.Inventory[i].SKU == sku {
			return &s.Inventory[i]
		}
	}
	return nil
}

func (s *Store) publish(sections ...Section) {
	for _, fn := range s.subscribers {
		for _, section := range sections {
			fn(section)
		}
	}
}

func (s *Store) emit(n Notification) {
	if s.notifier != nil {
		s.notifier(n)
	}
}
