package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order mirrors the Orders table. ShipVia is the physical column backing
// the shipper reference.
type Order struct {
	bun.BaseModel `bun:"table:Orders,alias:o"`

	ID             int64      `bun:"OrderID,pk,autoincrement"`
	CustomerID     string     `bun:"CustomerID"`
	EmployeeID     int64      `bun:"EmployeeID"`
	ShipVia        int64      `bun:"ShipVia"`
	OrderDate      time.Time  `bun:"OrderDate"`
	RequiredDate   time.Time  `bun:"RequiredDate"`
	ShippedDate    *time.Time `bun:"ShippedDate"`
	Freight        float64    `bun:"Freight"`
	ShipName       string     `bun:"ShipName"`
	ShipAddress    string     `bun:"ShipAddress"`
	ShipCity       string     `bun:"ShipCity"`
	ShipRegion     string     `bun:"ShipRegion,nullzero"`
	ShipPostalCode string     `bun:"ShipPostalCode"`
	ShipCountry    string     `bun:"ShipCountry"`

	Customer *Customer      `bun:"rel:belongs-to,join:CustomerID=CustomerID"`
	Employee *Employee      `bun:"rel:belongs-to,join:EmployeeID=EmployeeID"`
	Shipper  *Shipper       `bun:"rel:belongs-to,join:ShipVia=ShipperID"`
	Details  []*OrderDetail `bun:"rel:has-many,join:OrderID=OrderID"`
}

// OrderDetail mirrors the OrderDetails table; the key is composite
// (OrderID, ProductID).
type OrderDetail struct {
	bun.BaseModel `bun:"table:OrderDetails,alias:od"`

	OrderID   int64   `bun:"OrderID,pk"`
	ProductID int64   `bun:"ProductID,pk"`
	UnitPrice float64 `bun:"UnitPrice"`
	Quantity  int64   `bun:"Quantity"`
	Discount  float64 `bun:"Discount"`

	Order   *Order   `bun:"rel:belongs-to,join:OrderID=OrderID"`
	Product *Product `bun:"rel:belongs-to,join:ProductID=ProductID"`
}
