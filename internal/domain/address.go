package domain

// ShippingAddress is an immutable value; two addresses are equal when all
// fields match. Region is empty when the address has no region.
type ShippingAddress struct {
	Address    string
	City       string
	Region     string
	PostalCode string
	Country    string
}
