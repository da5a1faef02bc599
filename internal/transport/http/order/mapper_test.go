package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/dto"
)

func fullDomainOrder() domain.Order {
	shipped := time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC)
	return domain.Order{
		ID:           1,
		Customer:     domain.Customer{Code: "ALFKI", CompanyName: "Alfreds Futterkiste"},
		Employee:     domain.Employee{ID: 5, FirstName: "Steven", LastName: "Buchanan", Country: "UK"},
		Shipper:      domain.Shipper{ID: 3, CompanyName: "Federal Shipping"},
		OrderDate:    time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
		RequiredDate: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		ShippedDate:  &shipped,
		Freight:      32.38,
		ShipName:     "Alfreds Futterkiste",
		ShippingAddress: domain.ShippingAddress{
			Address: "Obere Str. 57", City: "Berlin", PostalCode: "12209", Country: "Germany",
		},
		Details: []domain.OrderDetail{
			{
				Product: domain.Product{
					ID: 11, Name: "Queso Cabrales",
					SupplierID: 5, SupplierName: "Cooperativa de Quesos",
					CategoryID: 4, CategoryName: "Dairy Products",
				},
				UnitPrice: 14, Quantity: 12, Discount: 0,
			},
			{
				Product:   domain.Product{ID: 42, Name: "Singaporean Hokkien Fried Mee", SupplierID: 20, CategoryID: 5},
				UnitPrice: 9.8, Quantity: 10, Discount: 0.05,
			},
		},
	}
}

func TestToBriefOrderDropsDetails(t *testing.T) {
	brief := ToBriefOrder(fullDomainOrder())

	assert.Equal(t, int64(1), brief.ID)
	assert.Equal(t, "ALFKI", brief.CustomerID)
	assert.Equal(t, int64(5), brief.EmployeeID)
	assert.Equal(t, int64(3), brief.ShipperID)
	assert.Equal(t, "Obere Str. 57", brief.ShipAddress)
	assert.Equal(t, "Berlin", brief.ShipCity)

	// The brief view never carries line items, even when the source does.
	require.NotNil(t, brief.OrderDetails)
	assert.Empty(t, brief.OrderDetails)
}

func TestToFullOrderNestsGraph(t *testing.T) {
	full := ToFullOrder(fullDomainOrder())

	assert.Equal(t, "ALFKI", full.Customer.Code)
	assert.Equal(t, "Alfreds Futterkiste", full.Customer.CompanyName)
	assert.Equal(t, "Buchanan", full.Employee.LastName)
	assert.Equal(t, "Federal Shipping", full.Shipper.CompanyName)
	assert.Equal(t, "12209", full.ShippingAddress.PostalCode)

	require.Len(t, full.OrderDetails, 2)
	first := full.OrderDetails[0]
	assert.Equal(t, int64(11), first.ProductID)
	assert.Equal(t, "Queso Cabrales", first.ProductName)
	assert.Equal(t, "Dairy Products", first.CategoryName)
	assert.Equal(t, "Cooperativa de Quesos", first.SupplierCompanyName)
	assert.Equal(t, int64(12), first.Quantity)
	assert.Equal(t, 0.05, full.OrderDetails[1].Discount)
}

func TestToDomainOrderBuildsStubs(t *testing.T) {
	shipped := time.Date(2024, time.July, 9, 0, 0, 0, 0, time.UTC)
	payload := dto.BriefOrder{
		ID:             7,
		CustomerID:     "BERGS",
		EmployeeID:     2,
		ShipperID:      1,
		OrderDate:      time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
		RequiredDate:   time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		ShippedDate:    &shipped,
		Freight:        11.61,
		ShipName:       "Berglunds snabbkop",
		ShipAddress:    "Berguvsvagen 8",
		ShipCity:       "Lulea",
		ShipRegion:     "BD",
		ShipPostalCode: "S-958 22",
		ShipCountry:    "Sweden",
		OrderDetails: []dto.BriefOrderDetail{
			{ProductID: 11, UnitPrice: 14, Quantity: 12, Discount: 0.1},
		},
	}

	order := ToDomainOrder(payload)

	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, domain.CustomerCode("BERGS"), order.Customer.Code)
	// Stub references carry identities only; display fields come from the
	// store on the read path.
	assert.Empty(t, order.Customer.CompanyName)
	assert.Empty(t, order.Shipper.CompanyName)
	assert.Equal(t, domain.ShippingAddress{
		Address: "Berguvsvagen 8", City: "Lulea", Region: "BD",
		PostalCode: "S-958 22", Country: "Sweden",
	}, order.ShippingAddress)

	require.Len(t, order.Details, 1)
	assert.Equal(t, int64(11), order.Details[0].Product.ID)
	assert.Empty(t, order.Details[0].Product.Name)
	assert.Equal(t, 0.1, order.Details[0].Discount)
}

func TestBriefRoundTripKeepsWriteFields(t *testing.T) {
	source := fullDomainOrder()
	rebuilt := ToDomainOrder(ToBriefOrder(source))

	assert.Equal(t, source.ID, rebuilt.ID)
	assert.Equal(t, source.Customer.Code, rebuilt.Customer.Code)
	assert.Equal(t, source.Freight, rebuilt.Freight)
	assert.Equal(t, source.ShippingAddress, rebuilt.ShippingAddress)
	// Detail lines never survive the brief view.
	assert.Empty(t, rebuilt.Details)
}
