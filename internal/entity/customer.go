package entity

import "github.com/uptrace/bun"

// Customer mirrors the Customers table; the primary key is the short
// alphanumeric customer code.
type Customer struct {
	bun.BaseModel `bun:"table:Customers,alias:c"`

	CustomerID  string `bun:"CustomerID,pk"`
	CompanyName string `bun:"CompanyName"`
}
