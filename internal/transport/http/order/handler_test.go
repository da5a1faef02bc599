package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Additional-Code/northwind/internal/config"
	"github.com/Additional-Code/northwind/internal/domain"
	"github.com/Additional-Code/northwind/internal/dto"
	repo "github.com/Additional-Code/northwind/internal/repository/order"
	ordersvc "github.com/Additional-Code/northwind/internal/service/order"
)

type stubRepo struct {
	orders map[int64]domain.Order
	nextID int64
}

func newStubRepo(orders ...domain.Order) *stubRepo {
	s := &stubRepo{orders: make(map[int64]domain.Order), nextID: 1}
	for _, o := range orders {
		s.orders[o.ID] = o
		if o.ID >= s.nextID {
			s.nextID = o.ID + 1
		}
	}
	return s
}

func (s *stubRepo) GetOrder(_ context.Context, id int64) (domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return domain.Order{}, repo.ErrNotFound
	}
	return order, nil
}

func (s *stubRepo) GetOrders(_ context.Context, skip, count int) ([]domain.Order, error) {
	if skip < 0 || count <= 0 {
		return nil, repo.ErrInvalidPage
	}
	var out []domain.Order
	for id := int64(1); id < s.nextID && len(out) < count; id++ {
		order, ok := s.orders[id]
		if !ok {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (s *stubRepo) AddOrder(_ context.Context, order domain.Order) (int64, error) {
	order.ID = s.nextID
	s.nextID++
	s.orders[order.ID] = order
	return order.ID, nil
}

func (s *stubRepo) RemoveOrder(_ context.Context, id int64) error {
	if _, ok := s.orders[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *stubRepo) UpdateOrder(_ context.Context, order domain.Order) error {
	if _, ok := s.orders[order.ID]; !ok {
		return repo.ErrNotFound
	}
	s.orders[order.ID] = order
	return nil
}

func storedOrder(id int64) domain.Order {
	return domain.Order{
		ID:           id,
		Customer:     domain.Customer{Code: "ALFKI", CompanyName: "Alfreds Futterkiste"},
		Employee:     domain.Employee{ID: 1, FirstName: "Nancy", LastName: "Davolio", Country: "USA"},
		Shipper:      domain.Shipper{ID: 1, CompanyName: "Speedy Express"},
		OrderDate:    time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC),
		RequiredDate: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		Freight:      32.38,
		ShipName:     "Alfreds Futterkiste",
		ShippingAddress: domain.ShippingAddress{
			Address: "Obere Str. 57", City: "Berlin", PostalCode: "12209", Country: "Germany",
		},
		Details: []domain.OrderDetail{
			{Product: domain.Product{ID: 1, Name: "Chai", CategoryName: "Beverages"}, UnitPrice: 18, Quantity: 10},
			{Product: domain.Product{ID: 2, Name: "Chang", CategoryName: "Beverages"}, UnitPrice: 19, Quantity: 5},
		},
	}
}

func newTestRouter(t *testing.T, orders ...domain.Order) *echo.Echo {
	t.Helper()

	cfg := config.Config{}
	cfg.API.DefaultPageSize = 10

	svc := ordersvc.NewService(ordersvc.Params{
		Repository: newStubRepo(orders...),
		Config:     cfg,
		Logger:     zap.NewNop(),
	})

	e := echo.New()
	Register(e, NewHandler(svc, cfg, zap.NewNop()))
	return e
}

func do(e *echo.Echo, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHandlerGet(t *testing.T) {
	t.Run("returns the full order graph", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var full dto.FullOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
		assert.Equal(t, int64(1), full.ID)
		assert.Equal(t, "ALFKI", full.Customer.Code)
		assert.Equal(t, "Speedy Express", full.Shipper.CompanyName)
		require.Len(t, full.OrderDetails, 2)
		assert.Equal(t, "Chai", full.OrderDetails[0].ProductName)
	})

	t.Run("missing order is 404", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders/999", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not_found", body.Error.Kind)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders/first", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerList(t *testing.T) {
	t.Run("returns brief orders without details", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1), storedOrder(2))

		rec := do(e, http.MethodGet, "/api/orders?skip=0&count=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var briefs []dto.BriefOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &briefs))
		require.Len(t, briefs, 1)
		assert.Equal(t, int64(1), briefs[0].ID)
		assert.Equal(t, "ALFKI", briefs[0].CustomerID)
		assert.Empty(t, briefs[0].OrderDetails)
	})

	t.Run("skip paginates", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1), storedOrder(2))

		rec := do(e, http.MethodGet, "/api/orders?skip=1&count=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var briefs []dto.BriefOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &briefs))
		require.Len(t, briefs, 1)
		assert.Equal(t, int64(2), briefs[0].ID)
	})

	t.Run("negative skip is 400", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders?skip=-1", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "bad_request", body.Error.Kind)
	})

	t.Run("zero count is 400", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders?count=0", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric paging is 400", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodGet, "/api/orders?skip=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlerCreate(t *testing.T) {
	e := newTestRouter(t, storedOrder(1), storedOrder(2))

	payload := ToBriefOrder(storedOrder(0))
	payload.OrderDetails = []dto.BriefOrderDetail{
		{ProductID: 1, UnitPrice: 18, Quantity: 10},
	}

	rec := do(e, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var created dto.AddOrder
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(3), created.OrderID)

	rec = do(e, http.MethodGet, "/api/orders/3", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerUpdate(t *testing.T) {
	t.Run("replaces the order", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		payload := ToBriefOrder(storedOrder(1))
		payload.ShipCity = "Hamburg"

		rec := do(e, http.MethodPut, "/api/orders/1", payload)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, http.MethodGet, "/api/orders/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var full dto.FullOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
		assert.Equal(t, "Hamburg", full.ShippingAddress.City)
	})

	t.Run("replaces the detail set even when scalar fields are unchanged", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		// Identical scalar columns; only the line items shrink from 2 to 1.
		payload := ToBriefOrder(storedOrder(1))
		payload.OrderDetails = []dto.BriefOrderDetail{
			{ProductID: 3, UnitPrice: 10, Quantity: 4, Discount: 0.05},
		}

		rec := do(e, http.MethodPut, "/api/orders/1", payload)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, http.MethodGet, "/api/orders/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var full dto.FullOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
		require.Len(t, full.OrderDetails, 1)
		assert.Equal(t, int64(3), full.OrderDetails[0].ProductID)
	})

	t.Run("path id wins over body id", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1), storedOrder(2))

		payload := ToBriefOrder(storedOrder(2))
		payload.ShipName = "Renamed"

		rec := do(e, http.MethodPut, "/api/orders/1", payload)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, http.MethodGet, "/api/orders/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var full dto.FullOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
		assert.Equal(t, "Renamed", full.ShipName)
	})

	t.Run("missing order is 404", func(t *testing.T) {
		e := newTestRouter(t)

		rec := do(e, http.MethodPut, "/api/orders/42", ToBriefOrder(storedOrder(42)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandlerRemove(t *testing.T) {
	t.Run("deletes the order", func(t *testing.T) {
		e := newTestRouter(t, storedOrder(1))

		rec := do(e, http.MethodDelete, "/api/orders/1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(e, http.MethodGet, "/api/orders/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing order is 404", func(t *testing.T) {
		e := newTestRouter(t)

		rec := do(e, http.MethodDelete, "/api/orders/42", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
