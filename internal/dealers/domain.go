// Package dealers manages the dealer network records.
package dealers

import "errors"

// Region enumerates the sales regions.
type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
	RegionEast  Region = "East"
	RegionWest  Region = "West"
)

// Dealer is a network partner. Records are append-only: there is no edit or
// delete surface in this system.
type Dealer struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Region   Region `json:"region"`
	City     string `json:"city"`
	Contact  string `json:"contact"`
	YTDSales int64  `json:"ytdSales"`
}

// ErrDuplicateCode indicates an insert against an existing dealer code.
var ErrDuplicateCode = errors.New("dealers: code already exists")
