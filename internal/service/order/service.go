package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/northwind/internal/cache"
	"github.com/Additional-Code/northwind/internal/config"
	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/messaging"
	repo "github.com/Additional-Code/northwind/internal/repository/order"
	"github.com/Additional-Code/northwind/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/northwind/service/order")

// Event types published on the bus after successful mutations.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderRemoved = "order.removed"
)

// OrderEvent is emitted after an order mutation commits.
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Service orchestrates order operations: repository access, the full-order
// read cache, and lifecycle events.
type Service struct {
	repo      repo.Repository
	cache     cache.Store
	cacheTTL  time.Duration
	logger    *zap.Logger
	publisher messaging.Client
	events    bool
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository repo.Repository
	Cache      cache.Store
	Config     config.Config
	Logger     *zap.Logger
	Publisher  messaging.Client
}

// NewService wires a new Service instance.
func NewService(p Params) *Service {
	return &Service{
		repo:      p.Repository,
		cache:     p.Cache,
		cacheTTL:  p.Config.Cache.DefaultTTL,
		logger:    p.Logger,
		publisher: p.Publisher,
		events:    p.Config.Messaging.Enabled,
	}
}

// Get retrieves a single order with its full reference graph, consulting the
// cache first.
func (s *Service) Get(ctx context.Context, id int64) (domain.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if order, err := s.getFromCache(ctx, id); err == nil {
		return order, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		if s.logger != nil {
			s.logger.Warn("orders cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return domain.Order{}, errorbank.NotFound("order not found", errorbank.WithDetail("id", id))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return domain.Order{}, errorbank.Internal("failed to load order", errorbank.WithCause(err))
	}

	if err := s.storeInCache(ctx, order); err != nil {
		if s.logger != nil {
			s.logger.Warn("orders cache write failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	return order, nil
}

// List returns a page of orders without detail lines, ordered by id.
func (s *Service) List(ctx context.Context, skip, count int) ([]domain.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List", trace.WithAttributes(
		attribute.Int("page.skip", skip),
		attribute.Int("page.count", count),
	))
	defer span.End()

	orders, err := s.repo.GetOrders(ctx, skip, count)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidPage) {
			return nil, errorbank.BadRequest("invalid skip or count", errorbank.WithCause(err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return nil, errorbank.Internal("failed to list orders", errorbank.WithCause(err))
	}
	return orders, nil
}

// Create persists a new order with its detail lines and returns the new id.
func (s *Service) Create(ctx context.Context, order domain.Order) (int64, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Create")
	defer span.End()

	id, err := s.repo.AddOrder(ctx, order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return 0, errorbank.Internal("failed to create order", errorbank.WithCause(err))
	}
	span.SetAttributes(attribute.Int64("order.id", id))

	s.publishEvent(ctx, EventOrderCreated, id)
	return id, nil
}

// Update replaces an existing order's scalar fields and its detail set.
func (s *Service) Update(ctx context.Context, order domain.Order) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.id", order.ID)))
	defer span.End()

	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found", errorbank.WithDetail("id", order.ID))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to update order", errorbank.WithCause(err))
	}

	s.dropFromCache(ctx, order.ID)
	s.publishEvent(ctx, EventOrderUpdated, order.ID)
	return nil
}

// Remove deletes an order and all of its detail lines.
func (s *Service) Remove(ctx context.Context, id int64) error {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Remove", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := s.repo.RemoveOrder(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errorbank.NotFound("order not found", errorbank.WithDetail("id", id))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "repository error")
		return errorbank.Internal("failed to remove order", errorbank.WithCause(err))
	}

	s.dropFromCache(ctx, id)
	s.publishEvent(ctx, EventOrderRemoved, id)
	return nil
}

func (s *Service) publishEvent(ctx context.Context, eventType string, id int64) {
	if !s.events || s.publisher == nil {
		return
	}
	event := OrderEvent{
		Type:       eventType,
		OrderID:    id,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("marshal order event", zap.String("type", eventType), zap.Error(err))
		}
		return
	}
	if err := s.publisher.Publish(ctx, []byte(fmt.Sprintf("order-%d", id)), payload); err != nil {
		if s.logger != nil {
			s.logger.Error("publish order event", zap.String("type", eventType), zap.Int64("id", id), zap.Error(err))
		}
	}
}

func (s *Service) cacheKey(id int64) string {
	return fmt.Sprintf("orders:%d", id)
}

func (s *Service) getFromCache(ctx context.Context, id int64) (domain.Order, error) {
	if s.cache == nil {
		return domain.Order{}, cache.ErrCacheMiss
	}
	bytes, err := s.cache.Get(ctx, s.cacheKey(id))
	if err != nil {
		return domain.Order{}, err
	}
	var order domain.Order
	if err := json.Unmarshal(bytes, &order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (s *Service) storeInCache(ctx context.Context, order domain.Order) error {
	if s.cache == nil {
		return nil
	}
	bytes, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, s.cacheKey(order.ID), bytes, s.cacheTTL)
}

func (s *Service) dropFromCache(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
		if s.logger != nil {
			s.logger.Warn("orders cache delete failed", zap.Int64("id", id), zap.Error(err))
		}
	}
}
