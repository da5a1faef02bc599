package order

import (
	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/entity"
)

// orderToDomain flattens a loaded order row and its relations into the
// repository model. Relations that were not loaded become id-only stubs.
func orderToDomain(row *entity.Order) domain.Order {
	order := domain.Order{
		ID:           row.ID,
		OrderDate:    row.OrderDate,
		RequiredDate: row.RequiredDate,
		ShippedDate:  row.ShippedDate,
		Freight:      row.Freight,
		ShipName:     row.ShipName,
		ShippingAddress: domain.ShippingAddress{
			Address:    row.ShipAddress,
			City:       row.ShipCity,
			Region:     row.ShipRegion,
			PostalCode: row.ShipPostalCode,
			Country:    row.ShipCountry,
		},
		Customer: domain.Customer{Code: domain.CustomerCode(row.CustomerID)},
		Employee: domain.Employee{ID: row.EmployeeID},
		Shipper:  domain.Shipper{ID: row.ShipVia},
	}

	if row.Customer != nil {
		order.Customer.CompanyName = row.Customer.CompanyName
	}
	if row.Employee != nil {
		order.Employee.FirstName = row.Employee.FirstName
		order.Employee.LastName = row.Employee.LastName
		order.Employee.Country = row.Employee.Country
	}
	if row.Shipper != nil {
		order.Shipper.CompanyName = row.Shipper.CompanyName
	}

	for _, detail := range row.Details {
		order.Details = append(order.Details, detailToDomain(detail))
	}
	return order
}

func detailToDomain(row *entity.OrderDetail) domain.OrderDetail {
	detail := domain.OrderDetail{
		Product:   domain.Product{ID: row.ProductID},
		UnitPrice: row.UnitPrice,
		Quantity:  row.Quantity,
		Discount:  row.Discount,
	}
	if row.Product != nil {
		detail.Product.Name = row.Product.ProductName
		detail.Product.SupplierID = row.Product.SupplierID
		detail.Product.CategoryID = row.Product.CategoryID
		if row.Product.Supplier != nil {
			detail.Product.SupplierName = row.Product.Supplier.CompanyName
		}
		if row.Product.Category != nil {
			detail.Product.CategoryName = row.Product.Category.CategoryName
		}
	}
	return detail
}

// orderToRow maps a domain order onto its table row. Only foreign keys are
// written; display fields live in the referenced tables.
func orderToRow(order domain.Order) *entity.Order {
	return &entity.Order{
		ID:             order.ID,
		CustomerID:     order.Customer.Code.String(),
		EmployeeID:     order.Employee.ID,
		ShipVia:        order.Shipper.ID,
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
	}
}

func detailsToRows(orderID int64, details []domain.OrderDetail) []*entity.OrderDetail {
	if len(details) == 0 {
		return nil
	}
	rows := make([]*entity.OrderDetail, 0, len(details))
	for _, detail := range details {
		rows = append(rows, &entity.OrderDetail{
			OrderID:   orderID,
			ProductID: detail.Product.ID,
			UnitPrice: detail.UnitPrice,
			Quantity:  detail.Quantity,
			Discount:  detail.Discount,
		})
	}
	return rows
}
