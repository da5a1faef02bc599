package order

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Additional-Code/northwind/internal/config"
	"github.com/Additional-Code/northwind/internal/dto"
	"github.com/Additional-Code/northwind/internal/presentation/http/response"
	service "github.com/Additional-Code/northwind/internal/service/order"
	"github.com/Additional-Code/northwind/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/Additional-Code/northwind/transport/http/order")

// Handler exposes order endpoints over HTTP.
type Handler struct {
	svc       *service.Service
	logger    *zap.Logger
	pageCount int
}

// NewHandler constructs an order Handler.
func NewHandler(svc *service.Service, cfg config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		svc:       svc,
		logger:    logger,
		pageCount: cfg.API.DefaultPageSize,
	}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/api/orders")
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:orderId", h.get)
	g.PUT("/:orderId", h.update)
	g.DELETE("/:orderId", h.remove)
}

func (h *Handler) get(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid order id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.get", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	order, err := h.svc.Get(ctx, id)
	if err != nil {
		h.logFailure("get order", id, err)
		return b.WithError(err).Build()
	}

	return b.WithData(ToFullOrder(order)).Build()
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid skip", errorbank.WithCause(err))).Build()
	}
	count, err := queryInt(c, "count", h.pageCount)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid count", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.list", trace.WithAttributes(
		attribute.Int("page.skip", skip),
		attribute.Int("page.count", count),
	))
	defer span.End()

	orders, err := h.svc.List(ctx, skip, count)
	if err != nil {
		h.logFailure("list orders", 0, err)
		return b.WithError(err).Build()
	}

	return b.WithData(ToBriefOrders(orders)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.BriefOrder
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create")
	defer span.End()

	id, err := h.svc.Create(ctx, ToDomainOrder(payload))
	if err != nil {
		h.logFailure("add order", 0, err)
		return b.WithError(err).Build()
	}

	return b.WithData(dto.AddOrder{OrderID: id}).Build()
}

func (h *Handler) update(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid order id", errorbank.WithCause(err))).Build()
	}

	var payload dto.BriefOrder
	if err := c.Bind(&payload); err != nil {
		return b.WithError(errorbank.BadRequest("invalid payload", errorbank.WithCause(err))).Build()
	}
	// The path parameter wins over any id in the body.
	payload.ID = id

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.update", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := h.svc.Update(ctx, ToDomainOrder(payload)); err != nil {
		h.logFailure("update order", id, err)
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusNoContent).Build()
}

func (h *Handler) remove(c echo.Context) error {
	b := response.New(c)

	id, err := strconv.ParseInt(c.Param("orderId"), 10, 64)
	if err != nil {
		return b.WithError(errorbank.BadRequest("invalid order id", errorbank.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.remove", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	if err := h.svc.Remove(ctx, id); err != nil {
		h.logFailure("remove order", id, err)
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusNoContent).Build()
}

// logFailure records unexpected failures with operation context; expected
// domain failures (not found, bad request) stay at debug level.
func (h *Handler) logFailure(op string, id int64, err error) {
	if h.logger == nil {
		return
	}
	fields := []zap.Field{zap.Error(err)}
	if id != 0 {
		fields = append(fields, zap.Int64("order_id", id))
	}
	if errorbank.From(err).Kind() == errorbank.KindInternal {
		h.logger.Error(op+" failed", fields...)
		return
	}
	h.logger.Debug(op+" rejected", fields...)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
