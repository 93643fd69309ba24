package models

type Address struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"is_default"`
}

type AddressCreate struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	IsDefault    bool   `json:"is_default"`
}

// DefaultAddress picks the checkout's initial selection: the address flagged
// default, else the first one.
func DefaultAddress(addrs []Address) (Address, bool) {
	if len(addrs) == 0 {
		return Address{}, false
	}
	for _, a := range addrs {
		if a.IsDefault {
			return a, true
		}
	}
	return addrs[0], true
}
