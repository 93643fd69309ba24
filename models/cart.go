package models

type CartItem struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	PricePerBag int    `json:"price_per_bag"`
}

// Cart is always the backend's copy; the gateway re-fetches it after every
// mutation instead of merging locally.
type Cart struct {
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

type CartItemAdd struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}
