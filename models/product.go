package models

// Bulk ordering rules for cement bags. The backend enforces them
// authoritatively; the gateway refuses obviously bad quantities before a
// request ever fires.
const (
	MinOrderQuantity = 100
	QuantityStep     = 50
)

type Product struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Brand             string `json:"brand"`
	Description       string `json:"description,omitempty"`
	BasePriceDealer   int    `json:"base_price_dealer"`
	BasePriceRetailer int    `json:"base_price_retailer"`
	BasePriceCustomer int    `json:"base_price_customer"`
	UserPrice         int    `json:"user_price,omitempty"`
	MinQuantity       int    `json:"min_quantity"`
	StockAvailable    int    `json:"stock_available"`
	ImageURL          string `json:"image_url,omitempty"`
	IsActive          bool   `json:"is_active"`
}

// ValidQuantity reports whether q satisfies the bulk rules: at least
// MinOrderQuantity bags, in increments of QuantityStep.
func ValidQuantity(q int) bool {
	return q >= MinOrderQuantity && q%QuantityStep == 0
}

// IncrementQuantity steps a product card's counter up.
func IncrementQuantity(q int) int {
	return q + QuantityStep
}

// DecrementQuantity steps the counter down, clamped so it never goes below
// the minimum. Decrementing at the floor is a no-op.
func DecrementQuantity(q int) int {
	if q-QuantityStep < MinOrderQuantity {
		return MinOrderQuantity
	}
	return q - QuantityStep
}
