package entity

import "github.com/uptrace/bun"

// Shipper mirrors the Shippers table.
type Shipper struct {
	bun.BaseModel `bun:"table:Shippers,alias:sh"`

	ShipperID   int64  `bun:"ShipperID,pk,autoincrement"`
	CompanyName string `bun:"CompanyName"`
}
