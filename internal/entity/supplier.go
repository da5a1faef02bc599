package entity

import "github.com/uptrace/bun"

// Supplier mirrors the Suppliers table.
type Supplier struct {
	bun.BaseModel `bun:"table:Suppliers,alias:s"`

	SupplierID  int64  `bun:"SupplierID,pk,autoincrement"`
	CompanyName string `bun:"CompanyName"`
}
