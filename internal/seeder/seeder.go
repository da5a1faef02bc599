package seeder

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Additional-Code/northwind/internal/database"
	"github.com/Additional-Code/northwind/internal/entity"
)

// Seeder loads the classic Northwind reference rows for local/dev setups.
// Every insert is idempotent.
type Seeder struct {
	db     *bun.DB
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, logger: logger}
}

// All seeds reference data and sample orders in dependency order.
func (s *Seeder) All(ctx context.Context) error {
	if err := s.Reference(ctx); err != nil {
		return err
	}
	return s.Orders(ctx)
}

// Reference seeds customers, employees, shippers, suppliers, categories and
// products.
func (s *Seeder) Reference(ctx context.Context) error {
	customers := []entity.Customer{
		{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"},
		{CustomerID: "ANATR", CompanyName: "Ana Trujillo Emparedados y helados"},
		{CustomerID: "BERGS", CompanyName: "Berglunds snabbkop"},
	}
	for i := range customers {
		if _, err := s.db.NewInsert().Model(&customers[i]).
			On("CONFLICT (\"CustomerID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	employees := []entity.Employee{
		{EmployeeID: 1, FirstName: "Nancy", LastName: "Davolio", Country: "USA"},
		{EmployeeID: 2, FirstName: "Andrew", LastName: "Fuller", Country: "USA"},
	}
	for i := range employees {
		if _, err := s.db.NewInsert().Model(&employees[i]).
			On("CONFLICT (\"EmployeeID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	shippers := []entity.Shipper{
		{ShipperID: 1, CompanyName: "Speedy Express"},
		{ShipperID: 2, CompanyName: "United Package"},
	}
	for i := range shippers {
		if _, err := s.db.NewInsert().Model(&shippers[i]).
			On("CONFLICT (\"ShipperID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	suppliers := []entity.Supplier{
		{SupplierID: 1, CompanyName: "Exotic Liquids"},
		{SupplierID: 2, CompanyName: "New Orleans Cajun Delights"},
	}
	for i := range suppliers {
		if _, err := s.db.NewInsert().Model(&suppliers[i]).
			On("CONFLICT (\"SupplierID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	categories := []entity.Category{
		{CategoryID: 1, CategoryName: "Beverages"},
		{CategoryID: 2, CategoryName: "Condiments"},
	}
	for i := range categories {
		if _, err := s.db.NewInsert().Model(&categories[i]).
			On("CONFLICT (\"CategoryID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	products := []entity.Product{
		{ProductID: 1, ProductName: "Chai", SupplierID: 1, CategoryID: 1},
		{ProductID: 2, ProductName: "Chang", SupplierID: 1, CategoryID: 1},
		{ProductID: 3, ProductName: "Aniseed Syrup", SupplierID: 2, CategoryID: 2},
	}
	for i := range products {
		if _, err := s.db.NewInsert().Model(&products[i]).
			On("CONFLICT (\"ProductID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded reference data")
	}
	return nil
}

// Orders seeds two sample orders with detail lines if they are missing.
func (s *Seeder) Orders(ctx context.Context) error {
	orderDate := time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC)

	orders := []entity.Order{
		{
			ID: 1, CustomerID: "ALFKI", EmployeeID: 1, ShipVia: 1,
			OrderDate: orderDate, RequiredDate: orderDate.AddDate(0, 0, 28),
			Freight: 32.38, ShipName: "Alfreds Futterkiste",
			ShipAddress: "Obere Str. 57", ShipCity: "Berlin",
			ShipPostalCode: "12209", ShipCountry: "Germany",
		},
		{
			ID: 2, CustomerID: "ANATR", EmployeeID: 2, ShipVia: 2,
			OrderDate: orderDate.AddDate(0, 0, 1), RequiredDate: orderDate.AddDate(0, 0, 29),
			Freight: 11.61, ShipName: "Ana Trujillo Emparedados y helados",
			ShipAddress: "Avda. de la Constitucion 2222", ShipCity: "Mexico D.F.",
			ShipRegion: "DF", ShipPostalCode: "05021", ShipCountry: "Mexico",
		},
	}
	for i := range orders {
		if _, err := s.db.NewInsert().Model(&orders[i]).
			On("CONFLICT (\"OrderID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	details := []entity.OrderDetail{
		{OrderID: 1, ProductID: 1, UnitPrice: 18, Quantity: 10, Discount: 0},
		{OrderID: 1, ProductID: 3, UnitPrice: 10, Quantity: 4, Discount: 0.05},
		{OrderID: 2, ProductID: 2, UnitPrice: 19, Quantity: 6, Discount: 0},
	}
	for i := range details {
		if _, err := s.db.NewInsert().Model(&details[i]).
			On("CONFLICT (\"OrderID\", \"ProductID\") DO NOTHING").
			Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded orders", zap.Int("count", len(orders)))
	}
	return nil
}
