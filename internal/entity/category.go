package entity

import "github.com/uptrace/bun"

// Category mirrors the Categories table.
type Category struct {
	bun.BaseModel `bun:"table:Categories,alias:cat"`

	CategoryID   int64  `bun:"CategoryID,pk,autoincrement"`
	CategoryName string `bun:"CategoryName"`
}
