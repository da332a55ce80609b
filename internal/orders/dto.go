package orders

// CreateOrderRequest is the POST /api/orders payload. The amount is trusted as
// sent; the server does not recompute it from the product's unit price.
type CreateOrderRequest struct {
	ID      string `json:"id" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Dealer  string `json:"dealer" validate:"required"`
	Product string `json:"product" validate:"required"`
	Qty     int    `json:"qty" validate:"required,gt=0"`
	Amount  int64  `json:"amount" validate:"gte=0"`
	Status  Status `json:"status" validate:"required,oneof=Pending Dispatched Delivered"`
}

// SetStatusRequest is the PATCH /api/orders/{id}/status payload.
type SetStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=Pending Dispatched Delivered"`
}

// StatusResponse confirms a status transition.
type StatusResponse struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// NextIDResponse carries the next free order id.
type NextIDResponse struct {
	NextID string `json:"nextId"`
}
