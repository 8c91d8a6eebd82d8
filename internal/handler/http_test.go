package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/StefanMagureanu25/AWBD/internal/entities"
	"github.com/StefanMagureanu25/AWBD/internal/handler"
	mocks "github.com/StefanMagureanu25/AWBD/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	orders   *mocks.MockOrderService
	products *mocks.MockProductService
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	t.Helper()
	m := handlerMocks{
		orders:   mocks.NewMockOrderService(t),
		products: mocks.NewMockProductService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.orders, m.products)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func testOrder(t *testing.T) entities.Order {
	t.Helper()
	order := entities.NewOrder("order-1", "ORD-AB12CD34", "user-1")
	price, err := entities.MoneyFromString("19.99")
	require.NoError(t, err)
	qty, err := entities.NewQuantity(2)
	require.NoError(t, err)
	_, err = order.AddItem("item-1", "product-1", qty, price)
	require.NoError(t, err)
	return order
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(testOrder(t), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-AB12CD34"`,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m.orders)

			res, body := doRequest(t, r, http.MethodGet, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			CreateOrder(mock.Anything, "user-1", "1 Main St", "", "").
			Return(entities.NewOrder("order-1", "ORD-AB12CD34", "user-1"), nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/",
			`{"user_id":"user-1","shipping_address":"1 Main St"}`)

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"status":"PENDING"`)
		assert.Contains(t, body, `"total_amount":"0.00"`)
	})

	t.Run("missing user_id", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodPost, "/orders/", `{}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodPost, "/orders/", `{not json`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().AddItem(mock.Anything, "order-1", "product-1", 2).
			Return(testOrder(t), nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/order-1/items",
			`{"product_id":"product-1","quantity":2}`)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"total_amount":"39.98"`)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().AddItem(mock.Anything, "order-1", "product-1", 5).
			Return(entities.Order{}, &entities.InsufficientStockError{
				ProductID: "product-1", Available: 2, Requested: 5,
			}).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/order-1/items",
			`{"product_id":"product-1","quantity":5}`)

		assert.Equal(t, http.StatusConflict, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Equal(t, "insufficient stock", resp["message"])
		assert.Equal(t, "product-1", resp["product_id"])
		assert.Equal(t, float64(2), resp["available"])
		assert.Equal(t, float64(5), resp["requested"])
	})

	t.Run("zero quantity rejected by validation", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodPost, "/orders/order-1/items",
			`{"product_id":"product-1","quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_ConfirmOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		confirmed := testOrder(t)
		require.NoError(t, confirmed.Confirm())
		m.orders.EXPECT().ConfirmOrder(mock.Anything, "order-1").Return(confirmed, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/order-1/confirm", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"status":"CONFIRMED"`)
	})

	t.Run("invalid transition", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().ConfirmOrder(mock.Anything, "order-1").
			Return(entities.Order{}, &entities.InvalidTransitionError{
				From: entities.StatusDelivered, Event: entities.EventConfirm,
			}).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/order-1/confirm", "")

		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, "invalid order transition")
	})
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	r, m := newTestRouter(t)
	cancelled := testOrder(t)
	require.NoError(t, cancelled.Cancel())
	m.orders.EXPECT().CancelOrder(mock.Anything, "order-1").Return(cancelled, nil).Once()

	res, body := doRequest(t, r, http.MethodPost, "/orders/order-1/cancel", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"status":"CANCELLED"`)
	assert.Contains(t, body, `"cancelled_at"`)
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	r, m := newTestRouter(t)
	m.orders.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil).Once()

	res, _ := doRequest(t, r, http.MethodDelete, "/orders/order-1", "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{testOrder(t)}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:   "by user",
			target: "/orders/?user_id=user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrdersByUser(mock.Anything, "user-1").Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "by status",
			target: "/orders/?status=PENDING",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrdersByStatus(mock.Anything, entities.StatusPending).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "unknown status",
			target:       "/orders/?status=BOGUS",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "recent with default limit",
			target: "/orders/",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListRecentOrders(mock.Anything, 20).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "recent with explicit limit",
			target: "/orders/?limit=5",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListRecentOrders(mock.Anything, 5).Return(orders, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "invalid limit",
			target:       "/orders/?limit=zero",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m.orders)

			res, _ := doRequest(t, r, http.MethodGet, tc.target, "")
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHTTPHandler_UpdateShippingAddress(t *testing.T) {
	r, m := newTestRouter(t)
	updated := testOrder(t)
	updated.ShippingAddress = "2 Side St"
	m.orders.EXPECT().UpdateShippingAddress(mock.Anything, "order-1", "2 Side St").
		Return(updated, nil).Once()

	res, body := doRequest(t, r, http.MethodPut, "/orders/order-1/shipping-address",
		`{"address":"2 Side St"}`)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"shipping_address":"2 Side St"`)
}

func TestHTTPHandler_CreateProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, m := newTestRouter(t)
		price, err := entities.MoneyFromString("19.99")
		require.NoError(t, err)
		product, err := entities.NewProduct("product-1", "Widget", "", price, 25)
		require.NoError(t, err)

		m.products.EXPECT().
			CreateProduct(mock.Anything, "Widget", "", mock.Anything, 25).
			Return(product, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/products/",
			`{"name":"Widget","price":"19.99","stock_quantity":25}`)

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"price":"19.99"`)
		assert.Contains(t, body, `"stock_quantity":25`)
	})

	t.Run("invalid price", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, body := doRequest(t, r, http.MethodPost, "/products/",
			`{"name":"Widget","price":"free","stock_quantity":25}`)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "invalid price")
	})

	t.Run("negative price", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodPost, "/products/",
			`{"name":"Widget","price":"-5","stock_quantity":25}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_AvailableStock(t *testing.T) {
	r, m := newTestRouter(t)
	m.products.EXPECT().AvailableStock(mock.Anything, "product-1").Return(7, nil).Once()

	res, body := doRequest(t, r, http.MethodGet, "/products/product-1/stock", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"available":7`)
}

func TestHTTPHandler_Restock(t *testing.T) {
	r, m := newTestRouter(t)
	price, err := entities.MoneyFromString("19.99")
	require.NoError(t, err)
	product, err := entities.NewProduct("product-1", "Widget", "", price, 40)
	require.NoError(t, err)

	m.products.EXPECT().Restock(mock.Anything, "product-1", 40).Return(nil).Once()
	m.products.EXPECT().GetProduct(mock.Anything, "product-1").Return(product, nil).Once()

	res, body := doRequest(t, r, http.MethodPut, "/products/product-1/stock",
		`{"stock_quantity":40}`)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"stock_quantity":40`)
}

func TestHTTPHandler_Stats(t *testing.T) {
	t.Run("revenue", func(t *testing.T) {
		r, m := newTestRouter(t)
		total, err := entities.MoneyFromString("1234.56")
		require.NoError(t, err)
		m.orders.EXPECT().Revenue(mock.Anything, mock.MatchedBy(func(f entities.RevenueFilter) bool {
			return f.Status == entities.StatusDelivered && f.UserID == ""
		})).Return(total, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/stats/revenue?status=DELIVERED", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"total":"1234.56"`)
	})

	t.Run("revenue with date range", func(t *testing.T) {
		r, m := newTestRouter(t)
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		m.orders.EXPECT().Revenue(mock.Anything, mock.MatchedBy(func(f entities.RevenueFilter) bool {
			return f.From != nil && f.From.Equal(from) && f.To == nil
		})).Return(entities.ZeroMoney(), nil).Once()

		res, _ := doRequest(t, r, http.MethodGet,
			"/stats/revenue?status=DELIVERED&from=2025-01-01T00:00:00Z", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("revenue with bad timestamp", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodGet,
			"/stats/revenue?status=DELIVERED&from=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("revenue with unknown status", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, _ := doRequest(t, r, http.MethodGet, "/stats/revenue?status=BOGUS", "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("average order value", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().AverageOrderValue(mock.Anything, mock.Anything).Return(int64(42), nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/stats/average-order-value?status=DELIVERED", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"average":42`)
	})

	t.Run("count by status", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().CountByStatus(mock.Anything, entities.StatusPending).Return(int64(7), nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/stats/orders/count?status=PENDING", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"count":7`)
	})
}
