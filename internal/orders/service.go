package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mayank9336/TheVarches/internal/models"
)

// CatalogLine is the slice of a sketch the assembly algorithm needs:
// current price, available stock and a title for error messages.
type CatalogLine struct {
	ID       int64
	Title    string
	Price    decimal.Decimal
	StockQty int
}

// NewOrder carries the fields of an order row to be persisted.
type NewOrder struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	TotalAmount     decimal.Decimal
	Status          string
}

// NewOrderItem carries one validated order line with its snapshotted price.
type NewOrderItem struct {
	SketchID        int64
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// Store is the storage capability order assembly runs against. PersistOrder
// must commit the order row, every item row and every stock decrement as a
// single transaction, decrementing stock only where enough remains, and
// report StockConflictError when any guarded decrement matches no row.
type Store interface {
	SketchForOrder(ctx context.Context, id int64) (CatalogLine, error)
	PersistOrder(ctx context.Context, order NewOrder, items []NewOrderItem) (int64, error)
}

type ItemInput struct {
	SketchID int64 `json:"sketch_id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	Notes           string      `json:"notes"`
	Items           []ItemInput `json:"items"`
}

// Confirmation is what a successful order placement returns to the customer.
type Confirmation struct {
	OrderNumber string          `json:"order_number"`
	OrderID     int64           `json:"order_id"`
	Total       decimal.Decimal `json:"total"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// How many times to regenerate an order number on a duplicate-key insert.
const maxNumberAttempts = 3

// PlaceOrder runs the order assembly algorithm: validate the request,
// price every line against the live catalog, then persist the order, its
// items and the stock decrements atomically. All checks happen before any
// write, so a failure on a later item never leaves earlier writes behind.
func (s *Service) PlaceOrder(ctx context.Context, in CreateOrderInput) (Confirmation, error) {
	if field := missingField(in); field != "" {
		return Confirmation{}, &ValidationError{Field: field}
	}

	total := decimal.Zero
	items := make([]NewOrderItem, 0, len(in.Items))
	titles := make(map[int64]string, len(in.Items))

	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return Confirmation{}, &ValidationError{Field: "items"}
		}

		line, err := s.store.SketchForOrder(ctx, it.SketchID)
		if errors.Is(err, ErrSketchNotFound) {
			return Confirmation{}, &ItemNotFoundError{SketchID: it.SketchID}
		}
		if err != nil {
			return Confirmation{}, fmt.Errorf("failed to look up sketch %d: %w", it.SketchID, err)
		}
		if it.Quantity > line.StockQty {
			return Confirmation{}, &InsufficientStockError{SketchID: it.SketchID, Title: line.Title}
		}

		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		titles[it.SketchID] = line.Title
		items = append(items, NewOrderItem{
			SketchID:        it.SketchID,
			Quantity:        it.Quantity,
			PriceAtPurchase: line.Price,
		})
	}

	order := NewOrder{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		TotalAmount:     total,
		Status:          models.StatusPending,
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		order.OrderNumber = NewOrderNumber()

		orderID, err := s.store.PersistOrder(ctx, order, items)
		if err == nil {
			return Confirmation{OrderNumber: order.OrderNumber, OrderID: orderID, Total: total}, nil
		}
		if errors.Is(err, ErrDuplicateOrderNumber) {
			continue
		}

		// The in-transaction guard re-checks stock; a concurrent order may
		// have taken it since the pre-check above.
		var conflict *StockConflictError
		if errors.As(err, &conflict) {
			return Confirmation{}, &InsufficientStockError{
				SketchID: conflict.SketchID,
				Title:    titles[conflict.SketchID],
			}
		}
		return Confirmation{}, fmt.Errorf("failed to persist order: %w", err)
	}

	return Confirmation{}, fmt.Errorf("failed to allocate a unique order number after %d attempts", maxNumberAttempts)
}

func missingField(in CreateOrderInput) string {
	switch {
	case strings.TrimSpace(in.CustomerName) == "":
		return "customer_name"
	case strings.TrimSpace(in.CustomerEmail) == "":
		return "customer_email"
	case strings.TrimSpace(in.ShippingAddress) == "":
		return "shipping_address"
	case len(in.Items) == 0:
		return "items"
	}
	return ""
}
