package models

// SummaryReport is the admin console's stats strip.
type SummaryReport struct {
	TotalUsers      int `json:"total_users"`
	PendingUsers    int `json:"pending_users"`
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
	TotalRevenue    int `json:"total_revenue"`
}

type ProductCreate struct {
	Name              string `json:"name" binding:"required"`
	Brand             string `json:"brand" binding:"required"`
	Description       string `json:"description"`
	BasePriceDealer   int    `json:"base_price_dealer"`
	BasePriceRetailer int    `json:"base_price_retailer"`
	BasePriceCustomer int    `json:"base_price_customer"`
	MinQuantity       int    `json:"min_quantity"`
	StockAvailable    int    `json:"stock_available"`
	ImageURL          string `json:"image_url"`
}

// ProductUpdate carries only the fields being changed; toggling the active
// flag is an update with just is_active set.
type ProductUpdate struct {
	Name              *string `json:"name,omitempty"`
	Brand             *string `json:"brand,omitempty"`
	Description       *string `json:"description,omitempty"`
	BasePriceDealer   *int    `json:"base_price_dealer,omitempty"`
	BasePriceRetailer *int    `json:"base_price_retailer,omitempty"`
	BasePriceCustomer *int    `json:"base_price_customer,omitempty"`
	StockAvailable    *int    `json:"stock_available,omitempty"`
	IsActive          *bool   `json:"is_active,omitempty"`
}
