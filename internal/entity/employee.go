package entity

import "github.com/uptrace/bun"

// Employee mirrors the Employees table.
type Employee struct {
	bun.BaseModel `bun:"table:Employees,alias:e"`

	EmployeeID int64  `bun:"EmployeeID,pk,autoincrement"`
	FirstName  string `bun:"FirstName"`
	LastName   string `bun:"LastName"`
	Country    string `bun:"Country"`
}
