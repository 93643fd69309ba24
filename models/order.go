package models

import "math"

type PaymentMethod string

const (
	PaymentUPI          PaymentMethod = "UPI"
	PaymentCard         PaymentMethod = "CARD"
	PaymentNetbanking   PaymentMethod = "NETBANKING"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentCOD          PaymentMethod = "COD"
)

// PaymentMethods returns the methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentUPI, PaymentCard, PaymentNetbanking, PaymentBankTransfer, PaymentCOD}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentReceived PaymentStatus = "RECEIVED"
	PaymentFailed   PaymentStatus = "FAILED"
)

type OrderStatus string

const (
	OrderPending         OrderStatus = "PENDING"
	OrderPaymentReceived OrderStatus = "PAYMENT_RECEIVED"
	OrderAssigned        OrderStatus = "ASSIGNED"
	OrderOutForDelivery  OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

const (
	GSTRate           = 0.18
	CardSurchargeRate = 0.02
)

type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PricePerBag int    `json:"price_per_bag"`
	TotalPrice  int    `json:"total_price"`
}

type Order struct {
	ID                string        `json:"id"`
	OrderNumber       string        `json:"order_number"`
	Items             []OrderItem   `json:"items"`
	Subtotal          int           `json:"subtotal"`
	GSTAmount         int           `json:"gst_amount"`
	SurchargeAmount   int           `json:"surcharge_amount"`
	TotalAmount       int           `json:"total_amount"`
	PaymentMethod     PaymentMethod `json:"payment_method,omitempty"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	OrderStatus       OrderStatus   `json:"order_status"`
	DeliveryAddressID string        `json:"delivery_address_id"`
	DriverName        string        `json:"driver_name,omitempty"`
	DriverMobile      string        `json:"driver_mobile,omitempty"`
	VehicleNumber     string        `json:"vehicle_number,omitempty"`
	InvoiceURL        string        `json:"invoice_url,omitempty"`
}

// HasDriverInfo reports whether the delivery assignment block should render.
func (o Order) HasDriverInfo() bool {
	return o.DriverName != "" || o.DriverMobile != "" || o.VehicleNumber != ""
}

type OrderCreate struct {
	DeliveryAddressID string        `json:"delivery_address_id"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
}

type OrderUpdate struct {
	PaymentStatus *PaymentStatus `json:"payment_status,omitempty"`
	OrderStatus   *OrderStatus   `json:"order_status,omitempty"`
	DriverName    *string        `json:"driver_name,omitempty"`
	DriverMobile  *string        `json:"driver_mobile,omitempty"`
	VehicleNumber *string        `json:"vehicle_number,omitempty"`
}

// Quote is the checkout total breakdown for one payment method.
type Quote struct {
	PaymentMethod PaymentMethod `json:"payment_method"`
	Subtotal      int           `json:"subtotal"`
	GSTAmount     int           `json:"gst_amount"`
	Surcharge     int           `json:"surcharge_amount"`
	TotalAmount   int           `json:"total_amount"`
}

// QuoteFor computes the displayed total for a subtotal and payment method.
// GST and the card surcharge are each rounded to the nearest rupee on their
// own; the total is the sum of the rounded components. Recomputing from a
// combined 20% rate gives different figures for some subtotals, so the
// per-component rounding is load-bearing.
func QuoteFor(subtotal int, method PaymentMethod) Quote {
	gst := int(math.Round(float64(subtotal) * GSTRate))
	surcharge := 0
	if method == PaymentCard {
		surcharge = int(math.Round(float64(subtotal) * CardSurchargeRate))
	}
	return Quote{
		PaymentMethod: method,
		Subtotal:      subtotal,
		GSTAmount:     gst,
		Surcharge:     surcharge,
		TotalAmount:   subtotal + gst + surcharge,
	}
}
