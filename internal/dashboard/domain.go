// Package dashboard assembles the full MIS data bundle served to clients.
package dashboard

import (
	"github.com/vst-mis/vst-mis/internal/catalog"
	"github.com/vst-mis/vst-mis/internal/dealers"
	"github.com/vst-mis/vst-mis/internal/inventory"
	"github.com/vst-mis/vst-mis/internal/orders"
	"github.com/vst-mis/vst-mis/internal/production"
)

// KPI is the headline metric block. Revenue is in ₹ crore.
type KPI struct {
	Revenue         int64 `json:"revenue"`
	UnitsYTD        int64 `json:"unitsYTD"`
	ActiveDealers   int   `json:"activeDealers"`
	CapacityPercent int64 `json:"capacityPercent"`
}

// MonthlySales is one point of the six-month sales series.
type MonthlySales struct {
	Month string `json:"month"`
	Units int    `json:"units"`
}

// MixSlice is one slice of the product-mix pie, value in percent.
type MixSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Utilization is plant capacity utilisation by line, in percent.
type Utilization struct {
	Tillers  int `json:"tillers"`
	Tractors int `json:"tractors"`
}

// Bundle is the complete dashboard payload returned by GET /api/data.
type Bundle struct {
	Orders       []orders.Order    `json:"orders"`
	Dealers      []dealers.Dealer  `json:"dealers"`
	Inventory    []inventory.Item  `json:"inventory"`
	Products     []catalog.Product `json:"products"`
	Production   []production.Run  `json:"production"`
	Utilization  Utilization       `json:"productionUtilization"`
	KPI          KPI               `json:"kpi"`
	MonthlyTrend []MonthlySales    `json:"monthlySales"`
	ProductMix   []MixSlice        `json:"productMix"`
}

// Fixed reference series. The dashboards render these as-is; they are not yet
// derived from live orders.
var (
	defaultKPI = KPI{Revenue: 1247, UnitsYTD: 42850, CapacityPercent: 78}

	monthlyTrend = []MonthlySales{
		{Month: "Aug", Units: 3200},
		{Month: "Sep", Units: 3580},
		{Month: "Oct", Units: 4100},
		{Month: "Nov", Units: 3850},
		{Month: "Dec", Units: 4200},
		{Month: "Jan", Units: 4550},
	}

	productMix = []MixSlice{
		{Name: "Power Tillers", Value: 62, Color: "#2d7a2d"},
		{Name: "Tractors", Value: 28, Color: "#3d9a3d"},
		{Name: "Implements", Value: 10, Color: "#6bb86b"},
	}

	utilization = Utilization{Tillers: 82, Tractors: 72}
)
