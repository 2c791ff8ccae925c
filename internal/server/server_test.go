package server

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Mayank9336/TheVarches/internal/auth"
	"github.com/Mayank9336/TheVarches/internal/config"
	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/orders"
	"github.com/Mayank9336/TheVarches/internal/store"
)

// fakes implements every storage interface the handlers use; tests fill in
// only the functions a route touches.
type fakes struct {
	listSketches      func(store.SketchFilter) ([]models.Sketch, int, error)
	getSketch         func(int64) (models.Sketch, error)
	createSketch      func(models.Sketch) (models.Sketch, error)
	updateSketch      func(models.Sketch) (models.Sketch, error)
	deleteSketch      func(int64) error
	listCategories    func() ([]models.Category, error)
	listOrders        func() ([]models.Order, error)
	getOrder          func(int64) (models.Order, error)
	getOrderStatus    func(int64) (string, error)
	updateOrderStatus func(int64, string, string) error
	createInquiry     func(models.Inquiry) (int64, error)
	listInquiries     func() ([]models.Inquiry, error)
	adminByEmail      func(string) (models.User, error)
	stats             func() (models.Stats, error)
	placeOrder        func(orders.CreateOrderInput) (orders.Confirmation, error)
}

func (f *fakes) ListSketches(_ context.Context, filter store.SketchFilter) ([]models.Sketch, int, error) {
	return f.listSketches(filter)
}
func (f *fakes) GetSketch(_ context.Context, id int64) (models.Sketch, error) {
	return f.getSketch(id)
}
func (f *fakes) CreateSketch(_ context.Context, sk models.Sketch) (models.Sketch, error) {
	return f.createSketch(sk)
}
func (f *fakes) UpdateSketch(_ context.Context, sk models.Sketch) (models.Sketch, error) {
	return f.updateSketch(sk)
}
func (f *fakes) DeleteSketch(_ context.Context, id int64) error { return f.deleteSketch(id) }
func (f *fakes) ListCategories(_ context.Context) ([]models.Category, error) {
	return f.listCategories()
}
func (f *fakes) ListOrders(_ context.Context) ([]models.Order, error) { return f.listOrders() }
func (f *fakes) GetOrder(_ context.Context, id int64) (models.Order, error) {
	return f.getOrder(id)
}
func (f *fakes) GetOrderStatus(_ context.Context, id int64) (string, error) {
	return f.getOrderStatus(id)
}
func (f *fakes) UpdateOrderStatus(_ context.Context, id int64, from, to string) error {
	return f.updateOrderStatus(id, from, to)
}
func (f *fakes) CreateInquiry(_ context.Context, in models.Inquiry) (int64, error) {
	return f.createInquiry(in)
}
func (f *fakes) ListInquiries(_ context.Context) ([]models.Inquiry, error) {
	return f.listInquiries()
}
func (f *fakes) AdminByEmail(_ context.Context, email string) (models.User, error) {
	return f.adminByEmail(email)
}
func (f *fakes) Stats(_ context.Context) (models.Stats, error) { return f.stats() }
func (f *fakes) PlaceOrder(_ context.Context, in orders.CreateOrderInput) (orders.Confirmation, error) {
	return f.placeOrder(in)
}

func newTestServer(t *testing.T, f *fakes) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		router: gin.New(),
		cfg: &config.Config{
			Upload: config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
		},
		tokens:    auth.NewTokenIssuer("test-secret", time.Hour),
		catalog:   f,
		orders:    f,
		inquiries: f,
		users:     f,
		stats:     f,
		placer:    f,
	}
	s.setupRoutes()
	return s
}

func doJSON(s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.tokens.Issue(1, "admin")
	require.NoError(t, err)
	return token
}
