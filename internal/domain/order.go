package domain

import "time"

// Order is the repository-facing view of a purchase order with its
// denormalized customer, employee and shipper references.
type Order struct {
	ID              int64
	Customer        Customer
	Employee        Employee
	Shipper         Shipper
	OrderDate       time.Time
	RequiredDate    time.Time
	ShippedDate     *time.Time
	Freight         float64
	ShipName        string
	ShippingAddress ShippingAddress
	Details         []OrderDetail
}

// OrderDetail is one product line item. It never exists outside its order.
// Discount is a fraction of the unit price; bounds are not enforced here.
type OrderDetail struct {
	Product   Product
	UnitPrice float64
	Quantity  int64
	Discount  float64
}
