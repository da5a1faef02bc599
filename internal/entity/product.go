package entity

import "github.com/uptrace/bun"

// Product mirrors the Products table.
type Product struct {
	bun.BaseModel `bun:"table:Products,alias:p"`

	ProductID   int64  `bun:"ProductID,pk,autoincrement"`
	ProductName string `bun:"ProductName"`
	SupplierID  int64  `bun:"SupplierID"`
	CategoryID  int64  `bun:"CategoryID"`

	Supplier *Supplier `bun:"rel:belongs-to,join:SupplierID=SupplierID"`
	Category *Category `bun:"rel:belongs-to,join:CategoryID=CategoryID"`
}
