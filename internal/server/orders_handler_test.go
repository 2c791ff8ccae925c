package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/orders"
	"github.com/Mayank9336/TheVarches/internal/store"
)

const orderBody = `{
	"customer_name": "Ada Lovelace",
	"customer_email": "ada@example.com",
	"shipping_address": "12 Analytical Row",
	"items": [{"sketch_id": 1, "quantity": 2}]
}`

func TestCreateOrderSuccess(t *testing.T) {
	var got orders.CreateOrderInput
	f := &fakes{
		placeOrder: func(in orders.CreateOrderInput) (orders.Confirmation, error) {
			got = in
			return orders.Confirmation{
				OrderNumber: "TV-9F86D081",
				OrderID:     7,
				Total:       decimal.RequireFromString("170.00"),
			}, nil
		},
	}
	s := newTestServer(t, f)

	w := doJSON(s, http.MethodPost, "/api/orders", orderBody, "")
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, "Ada Lovelace", got.CustomerName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(1), got.Items[0].SketchID)
	assert.Equal(t, 2, got.Items[0].Quantity)

	assert.Contains(t, w.Body.String(), `"order_number":"TV-9F86D081"`)
	assert.Contains(t, w.Body.String(), `"order_id":7`)
	assert.Contains(t, w.Body.String(), `"total":"170"`)
}

func TestCreateOrderErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", &orders.ValidationError{Field: "customer_email"}, http.StatusBadRequest},
		{"item not found", &orders.ItemNotFoundError{SketchID: 9}, http.StatusBadRequest},
		{"insufficient stock", &orders.InsufficientStockError{SketchID: 1, Title: "Sketch A"}, http.StatusConflict},
		{"persistence", errors.New("failed to persist order: connection lost"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakes{
				placeOrder: func(orders.CreateOrderInput) (orders.Confirmation, error) {
					return orders.Confirmation{}, tt.err
				},
			}
			s := newTestServer(t, f)

			w := doJSON(s, http.MethodPost, "/api/orders", orderBody, "")
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestCreateOrderRejectsMalformedJSON(t *testing.T) {
	s := newTestServer(t, &fakes{})
	w := doJSON(s, http.MethodPost, "/api/orders", `{"items": `, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersRequiresAuth(t *testing.T) {
	f := &fakes{
		listOrders: func() ([]models.Order, error) {
			return []models.Order{{OrderNumber: "TV-00000001", SketchTitles: "Sketch A"}}, nil
		},
	}
	s := newTestServer(t, f)

	w := doJSON(s, http.MethodGet, "/api/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(s, http.MethodGet, "/api/orders", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(s, http.MethodGet, "/api/orders", "", adminToken(t, s))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TV-00000001")
}

func TestRequireAdminRejectsNonAdminRole(t *testing.T) {
	s := newTestServer(t, &fakes{})
	token, err := s.tokens.Issue(2, "customer")
	require.NoError(t, err)

	w := doJSON(s, http.MethodGet, "/api/orders", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOrder(t *testing.T) {
	f := &fakes{
		getOrder: func(id int64) (models.Order, error) {
			if id != 5 {
				return models.Order{}, store.ErrNotFound
			}
			return models.Order{
				ID:          5,
				OrderNumber: "TV-ABCDEF01",
				Items: []models.OrderItem{
					{SketchID: 1, Quantity: 2, Title: "Sketch A"},
				},
			}, nil
		},
	}
	s := newTestServer(t, f)
	token := adminToken(t, s)

	w := doJSON(s, http.MethodGet, "/api/orders/5", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TV-ABCDEF01")
	assert.Contains(t, w.Body.String(), "Sketch A")

	w = doJSON(s, http.MethodGet, "/api/orders/6", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(s, http.MethodGet, "/api/orders/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		current   string
		statusErr error
		updateErr error
		wantCode  int
	}{
		{"legal transition", `{"status":"processing"}`, models.StatusPending, nil, nil, http.StatusOK},
		{"cancel from pending", `{"status":"cancelled"}`, models.StatusPending, nil, nil, http.StatusOK},
		{"illegal jump", `{"status":"shipped"}`, models.StatusPending, nil, nil, http.StatusUnprocessableEntity},
		{"terminal state", `{"status":"processing"}`, models.StatusShipped, nil, nil, http.StatusUnprocessableEntity},
		{"unknown status", `{"status":"delivered"}`, models.StatusPending, nil, nil, http.StatusBadRequest},
		{"missing status", `{}`, models.StatusPending, nil, nil, http.StatusBadRequest},
		{"order not found", `{"status":"processing"}`, "", store.ErrNotFound, nil, http.StatusNotFound},
		{"concurrent transition", `{"status":"processing"}`, models.StatusPending, nil, store.ErrConflict, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakes{
				getOrderStatus: func(int64) (string, error) {
					return tt.current, tt.statusErr
				},
				updateOrderStatus: func(id int64, from, to string) error {
					assert.Equal(t, tt.current, from)
					return tt.updateErr
				},
			}
			s := newTestServer(t, f)

			w := doJSON(s, http.MethodPut, "/api/orders/1/status", tt.body, adminToken(t, s))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
