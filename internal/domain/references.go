package domain

// Employee references the employee who took the order.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Country   string
}

// Shipper references the company shipping the order.
type Shipper struct {
	ID          int64
	CompanyName string
}

// Product references a catalog product with denormalized supplier and
// category display names. Write paths populate only the ID.
type Product struct {
	ID           int64
	Name         string
	SupplierID   int64
	SupplierName string
	CategoryID   int64
	CategoryName string
}
