// Package orders manages sales orders and their status lifecycle.
package orders

import "errors"

// Status enumerates order states. Pending → Dispatched → Delivered is the
// expected progression but transitions are not enforced.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusDispatched Status = "Dispatched"
	StatusDelivered  Status = "Delivered"
)

// Order is a sales order. Dealer and product are denormalized name references;
// amount is computed client-side from unit price × qty and stored as sent.
type Order struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Dealer  string `json:"dealer"`
	Product string `json:"product"`
	Qty     int    `json:"qty"`
	Amount  int64  `json:"amount"`
	Status  Status `json:"status"`
}

// SequenceFloor is the lowest order sequence ever issued; next-order-id never
// goes below SequenceFloor+1 even on an empty collection.
const SequenceFloor = 1842

var (
	// ErrUnknownOrder indicates a status change against a missing order id.
	ErrUnknownOrder = errors.New("orders: order not found")
	// ErrDuplicateID indicates an insert against an existing order id.
	ErrDuplicateID = errors.New("orders: id already exists")
)
