package dealers

// CreateDealerRequest is the POST /api/dealers payload. YTDSales defaults to
// zero when omitted.
type CreateDealerRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Region   Region `json:"region" validate:"required,oneof=North South East West"`
	City     string `json:"city" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	YTDSales int64  `json:"ytdSales" validate:"gte=0"`
}
