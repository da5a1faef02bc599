package dto

import "time"

// The JSON field names below preserve the wire contract of the original
// Northwind orders API; existing clients bind on them.

// BriefOrder is the flat order view used for list responses and for
// create/update request bodies. On read paths OrderDetails is always empty.
type BriefOrder struct {
	ID             int64              `json:"Id"`
	CustomerID     string             `json:"CustomerId"`
	EmployeeID     int64              `json:"EmployeeId"`
	ShipperID      int64              `json:"ShipperId"`
	OrderDate      time.Time          `json:"OrderDate"`
	RequiredDate   time.Time          `json:"RequiredDate"`
	ShippedDate    *time.Time         `json:"ShippedDate"`
	Freight        float64            `json:"Freight"`
	ShipName       string             `json:"ShipName"`
	ShipAddress    string             `json:"ShipAddress"`
	ShipCity       string             `json:"ShipCity"`
	ShipRegion     string             `json:"ShipRegion"`
	ShipPostalCode string             `json:"ShipPostalCode"`
	ShipCountry    string             `json:"ShipCountry"`
	OrderDetails   []BriefOrderDetail `json:"OrderDetails"`
}

// BriefOrderDetail carries a line item by product id only.
type BriefOrderDetail struct {
	ProductID int64   `json:"ProductId"`
	UnitPrice float64 `json:"UnitPrice"`
	Quantity  int64   `json:"Quantity"`
	Discount  float64 `json:"Discount"`
}

// FullOrder is the nested order view returned for single-order reads.
type FullOrder struct {
	ID              int64             `json:"Id"`
	Customer        Customer          `json:"Customer"`
	Employee        Employee          `json:"Employee"`
	Shipper         Shipper           `json:"Shipper"`
	OrderDate       time.Time         `json:"OrderDate"`
	RequiredDate    time.Time         `json:"RequiredDate"`
	ShippedDate     *time.Time        `json:"ShippedDate"`
	Freight         float64           `json:"Freight"`
	ShipName        string            `json:"ShipName"`
	ShippingAddress ShippingAddress   `json:"ShippingAddress"`
	OrderDetails    []FullOrderDetail `json:"OrderDetails"`
}

// Customer is the nested customer sub-object of a full order.
type Customer struct {
	Code        string `json:"Code"`
	CompanyName string `json:"CompanyName"`
}

// Employee is the nested employee sub-object of a full order.
type Employee struct {
	ID        int64  `json:"Id"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Country   string `json:"Country"`
}

// Shipper is the nested shipper sub-object of a full order.
type Shipper struct {
	ID          int64  `json:"Id"`
	CompanyName string `json:"CompanyName"`
}

// ShippingAddress is the nested ship-to address of a full order.
type ShippingAddress struct {
	Address    string `json:"Address"`
	City       string `json:"City"`
	Region     string `json:"Region"`
	PostalCode string `json:"PostalCode"`
	Country    string `json:"Country"`
}

// FullOrderDetail expands a line item with the product's denormalized
// category and supplier display names.
type FullOrderDetail struct {
	ProductID           int64   `json:"ProductId"`
	ProductName         string  `json:"ProductName"`
	CategoryID          int64   `json:"CategoryId"`
	CategoryName        string  `json:"CategoryName"`
	SupplierID          int64   `json:"SupplierId"`
	SupplierCompanyName string  `json:"SupplierCompanyName"`
	UnitPrice           float64 `json:"UnitPrice"`
	Quantity            int64   `json:"Quantity"`
	Discount            float64 `json:"Discount"`
}

// AddOrder is the response body for a successful order creation.
type AddOrder struct {
	OrderID int64 `json:"OrderId"`
}
