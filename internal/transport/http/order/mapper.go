package order

import (
	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/dto"
)

// ToBriefOrder flattens an order to the list-row view. The detail collection
// is always empty on this path, even when the source carries lines.
func ToBriefOrder(order domain.Order) dto.BriefOrder {
	return dto.BriefOrder{
		ID:             order.ID,
		CustomerID:     order.Customer.Code.String(),
		EmployeeID:     order.Employee.ID,
		ShipperID:      order.Shipper.ID,
		OrderDate:      order.OrderDate,
		RequiredDate:   order.RequiredDate,
		ShippedDate:    order.ShippedDate,
		Freight:        order.Freight,
		ShipName:       order.ShipName,
		ShipAddress:    order.ShippingAddress.Address,
		ShipCity:       order.ShippingAddress.City,
		ShipRegion:     order.ShippingAddress.Region,
		ShipPostalCode: order.ShippingAddress.PostalCode,
		ShipCountry:    order.ShippingAddress.Country,
		OrderDetails:   []dto.BriefOrderDetail{},
	}
}

// ToBriefOrders maps a page of orders to the list view.
func ToBriefOrders(orders []domain.Order) []dto.BriefOrder {
	briefs := make([]dto.BriefOrder, 0, len(orders))
	for _, order := range orders {
		briefs = append(briefs, ToBriefOrder(order))
	}
	return briefs
}

// ToFullOrder nests customer, employee, shipper and address sub-objects and
// expands every detail line with its denormalized product display fields.
func ToFullOrder(order domain.Order) dto.FullOrder {
	full := dto.FullOrder{
		ID: order.ID,
		Customer: dto.Customer{
			Code:        order.Customer.Code.String(),
			CompanyName: order.Customer.CompanyName,
		},
		Employee: dto.Employee{
			ID:        order.Employee.ID,
			FirstName: order.Employee.FirstName,
			LastName:  order.Employee.LastName,
			Country:   order.Employee.Country,
		},
		Shipper: dto.Shipper{
			ID:          order.Shipper.ID,
			CompanyName: order.Shipper.CompanyName,
		},
		OrderDate:    order.OrderDate,
		RequiredDate: order.RequiredDate,
		ShippedDate:  order.ShippedDate,
		Freight:      order.Freight,
		ShipName:     order.ShipName,
		ShippingAddress: dto.ShippingAddress{
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			Region:     order.ShippingAddress.Region,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		OrderDetails: make([]dto.FullOrderDetail, 0, len(order.Details)),
	}

	for _, detail := range order.Details {
		full.OrderDetails = append(full.OrderDetails, dto.FullOrderDetail{
			ProductID:           detail.Product.ID,
			ProductName:         detail.Product.Name,
			CategoryID:          detail.Product.CategoryID,
			CategoryName:        detail.Product.CategoryName,
			SupplierID:          detail.Product.SupplierID,
			SupplierCompanyName: detail.Product.SupplierName,
			UnitPrice:           detail.UnitPrice,
			Quantity:            detail.Quantity,
			Discount:            detail.Discount,
		})
	}
	return full
}

// ToDomainOrder rebuilds a domain order from a brief payload. References are
// id/code-only stubs; display fields come from the store on the read path.
func ToDomainOrder(payload dto.BriefOrder) domain.Order {
	order := domain.Order{
		ID:           payload.ID,
		Customer:     domain.Customer{Code: domain.CustomerCode(payload.CustomerID)},
		Employee:     domain.Employee{ID: payload.EmployeeID},
		Shipper:      domain.Shipper{ID: payload.ShipperID},
		OrderDate:    payload.OrderDate,
		RequiredDate: payload.RequiredDate,
		ShippedDate:  payload.ShippedDate,
		Freight:      payload.Freight,
		ShipName:     payload.ShipName,
		ShippingAddress: domain.ShippingAddress{
			Address:    payload.ShipAddress,
			City:       payload.ShipCity,
			Region:     payload.ShipRegion,
			PostalCode: payload.ShipPostalCode,
			Country:    payload.ShipCountry,
		},
	}

	for _, detail := range payload.OrderDetails {
		order.Details = append(order.Details, domain.OrderDetail{
			Product:   domain.Product{ID: detail.ProductID},
			UnitPrice: detail.UnitPrice,
			Quantity:  detail.Quantity,
			Discount:  detail.Discount,
		})
	}
	return order
}
