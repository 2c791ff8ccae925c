package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/orders"
)

// PersistOrder writes the order row, all item rows and all stock decrements
// as one transaction. The decrement is guarded by stock_qty >= quantity, so
// a concurrent order that already took the stock makes the whole transaction
// roll back with a StockConflictError instead of overselling.
func (s *Store) PersistOrder(ctx context.Context, o orders.NewOrder, items []orders.NewOrderItem) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_number, customer_name, customer_email, customer_phone,
			shipping_address, total_amount, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.OrderNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ShippingAddress, o.TotalAmount, o.Status, o.Notes)
	if isMySQLErr(err, mysqlErrDuplicateEntry) {
		return 0, orders.ErrDuplicateOrderNumber
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, sketch_id, quantity, price_at_purchase)
			VALUES (?, ?, ?, ?)`,
			orderID, it.SketchID, it.Quantity, it.PriceAtPurchase); err != nil {
			return 0, fmt.Errorf("failed to insert order item: %w", err)
		}

		dec, err := tx.ExecContext(ctx,
			`UPDATE sketches SET stock_qty = stock_qty - ? WHERE id = ? AND stock_qty >= ?`,
			it.Quantity, it.SketchID, it.Quantity)
		if err != nil {
			return 0, fmt.Errorf("failed to decrement stock: %w", err)
		}
		if n, _ := dec.RowsAffected(); n == 0 {
			return 0, &orders.StockConflictError{SketchID: it.SketchID}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

func scanOrder(row interface{ Scan(...any) error }, extra ...any) (models.Order, error) {
	var o models.Order
	dest := []any{&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ShippingAddress, &o.TotalAmount, &o.Status, &o.Notes, &o.CreatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Order{}, err
	}
	return o, nil
}

const orderColumns = `o.id, o.order_number, o.customer_name, o.customer_email,
	COALESCE(o.customer_phone, ''), o.shipping_address, o.total_amount, o.status,
	COALESCE(o.notes, ''), o.created_at`

// ListOrders returns every order newest first, each carrying a concatenated
// list of the sketch titles it contains.
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+`,
			COALESCE(GROUP_CONCAT(s.title SEPARATOR ', '), '') AS sketch_titles
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		LEFT JOIN sketches s ON oi.sketch_id = s.id
		GROUP BY o.id
		ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	out := []models.Order{}
	for rows.Next() {
		var titles string
		o, err := scanOrder(rows, &titles)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.SketchTitles = titles
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetOrder returns one order with its line items, each joined with the
// sketch title and image for display.
func (s *Store) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = ?`, id)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.sketch_id, oi.quantity, oi.price_at_purchase,
			s.title, COALESCE(s.image_url, '')
		FROM order_items oi
		JOIN sketches s ON oi.sketch_id = s.id
		WHERE oi.order_id = ?`, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.SketchID, &it.Quantity,
			&it.PriceAtPurchase, &it.Title, &it.ImageURL); err != nil {
			return models.Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

// GetOrderStatus returns the current status of an order.
func (s *Store) GetOrderStatus(ctx context.Context, id int64) (string, error) {
	var status string
	err := s.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE id = ?`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get order status: %w", err)
	}
	return status, nil
}

// UpdateOrderStatus moves an order from one status to another. The write is
// conditional on the expected current status so a concurrent transition
// surfaces as ErrConflict instead of silently winning.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, from, to string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ? AND status = ?`, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrConflict
	}
	return nil
}
