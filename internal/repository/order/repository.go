package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/northwind/internal/database"
	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/northwind/repository/order")

// ErrNotFound is returned when no order matches the requested id.
var ErrNotFound = errors.New("order not found")

// ErrInvalidPage is returned for negative skip or non-positive count.
var ErrInvalidPage = errors.New("invalid page parameters")

// Repository is the storage contract for orders. Implementations must keep
// each mutating operation atomic: an order and its detail lines are written
// or removed as one unit.
type Repository interface {
	// GetOrder loads one order with its customer, employee, shipper and the
	// full detail/product/supplier/category graph.
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	// GetOrders returns a page of orders in ascending id order with the
	// customer/employee/shipper references loaded and details omitted.
	GetOrders(ctx context.Context, skip, count int) ([]domain.Order, error)
	// AddOrder persists a new order plus its detail lines and returns the
	// store-assigned id.
	AddOrder(ctx context.Context, order domain.Order) (int64, error)
	// RemoveOrder deletes an order and all of its detail lines.
	RemoveOrder(ctx context.Context, id int64) error
	// UpdateOrder replaces the scalar fields of an existing order and
	// wholesale-replaces its detail lines.
	UpdateOrder(ctx context.Context, order domain.Order) error
}

// BunRepository implements Repository on top of the configured bun
// connections, reads going to the replica and writes to the primary.
type BunRepository struct {
	writer *bun.DB
	reader *bun.DB
}

var _ Repository = (*BunRepository)(nil)

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *BunRepository {
	return &BunRepository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// GetOrder fetches one order with its whole reference graph eagerly loaded.
func (r *BunRepository) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	row := &entity.Order{ID: id}
	err := r.reader.NewSelect().
		Model(row).
		WherePK().
		Relation("Customer").
		Relation("Employee").
		Relation("Shipper").
		Relation("Details", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("? ASC", bun.Ident("ProductID"))
		}).
		Relation("Details.Product").
		Relation("Details.Product.Supplier").
		Relation("Details.Product.Category").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return domain.Order{}, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return domain.Order{}, fmt.Errorf("select order: %w", err)
	}
	return orderToDomain(row), nil
}

// GetOrders returns a page of orders ordered by ascending id. Detail lines
// are intentionally not loaded; the brief view never needs them.
func (r *BunRepository) GetOrders(ctx context.Context, skip, count int) ([]domain.Order, error) {
	if skip < 0 || count <= 0 {
		return nil, fmt.Errorf("%w: skip=%d count=%d", ErrInvalidPage, skip, count)
	}

	ctx, span := repoTracer.Start(ctx, "OrderRepository.GetOrders", trace.WithAttributes(
		attribute.Int("page.skip", skip),
		attribute.Int("page.count", count),
	))
	defer span.End()

	var rows []entity.Order
	err := r.reader.NewSelect().
		Model(&rows).
		Relation("Customer").
		Relation("Employee").
		Relation("Shipper").
		OrderExpr("? ASC", bun.Ident("o.OrderID")).
		Offset(skip).
		Limit(count).
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("select orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, orderToDomain(&rows[i]))
	}
	return orders, nil
}

// AddOrder inserts the order and its detail lines in one transaction and
// returns the assigned id.
func (r *BunRepository) AddOrder(ctx context.Context, order domain.Order) (int64, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.AddOrder")
	defer span.End()

	row := orderToRow(order)
	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		details := detailsToRows(row.ID, order.Details)
		if len(details) > 0 {
			if _, err := tx.NewInsert().Model(&details).Exec(ctx); err != nil {
				return fmt.Errorf("insert order details: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return 0, err
	}

	span.SetAttributes(attribute.Int64("order.id", row.ID))
	return row.ID, nil
}

// RemoveOrder deletes the order row and its detail lines in one transaction.
func (r *BunRepository) RemoveOrder(ctx context.Context, id int64) error {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.RemoveOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*entity.OrderDetail)(nil)).
			Where("? = ?", bun.Ident("OrderID"), id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete order details: %w", err)
		}

		res, err := tx.NewDelete().
			Model(&entity.Order{ID: id}).
			WherePK().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
	}
	return err
}

// UpdateOrder replaces the scalar fields of an existing order and swaps its
// detail set for the supplied one (delete-all-then-reinsert).
func (r *BunRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.UpdateOrder", trace.WithAttributes(attribute.Int64("order.id", order.ID)))
	defer span.End()

	row := orderToRow(order)
	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		// Existence is established with a select inside the transaction.
		// The update's RowsAffected cannot be used here: the MySQL driver
		// reports changed rows, so a matched-but-unchanged row counts as 0.
		exists, err := tx.NewSelect().
			Model((*entity.Order)(nil)).
			Where("? = ?", bun.Ident("OrderID"), order.ID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		if _, err := tx.NewUpdate().
			Model(row).
			Column(
				"CustomerID", "EmployeeID", "ShipVia",
				"OrderDate", "RequiredDate", "ShippedDate",
				"Freight", "ShipName",
				"ShipAddress", "ShipCity", "ShipRegion", "ShipPostalCode", "ShipCountry",
			).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*entity.OrderDetail)(nil)).
			Where("? = ?", bun.Ident("OrderID"), order.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete order details: %w", err)
		}

		details := detailsToRows(order.ID, order.Details)
		if len(details) > 0 {
			if _, err := tx.NewInsert().Model(&details).Exec(ctx); err != nil {
				return fmt.Errorf("insert order details: %w", err)
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
	}
	return err
}
