package orders

import (
	"errors"
	"fmt"
)

// Sentinel errors a Store implementation reports back to the service.
var (
	// ErrSketchNotFound is returned by Store.SketchForOrder when the
	// requested sketch does not exist.
	ErrSketchNotFound = errors.New("sketch not found")

	// ErrDuplicateOrderNumber is returned by Store.PersistOrder when the
	// generated order number collides with an existing one.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// StockConflictError is returned by Store.PersistOrder when the guarded
// stock decrement for a sketch matches no row, meaning a concurrent order
// took the remaining stock between the pre-check and the write.
type StockConflictError struct {
	SketchID int64
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock conflict on sketch %d", e.SketchID)
}

// ValidationError reports a missing or invalid required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid field: %s", e.Field)
}

// ItemNotFoundError reports an order line referencing an unknown sketch.
type ItemNotFoundError struct {
	SketchID int64
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("sketch %d not found", e.SketchID)
}

// InsufficientStockError reports a requested quantity exceeding available
// stock. Title is carried for user-facing display.
type InsufficientStockError struct {
	SketchID int64
	Title    string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s is out of stock", e.Title)
}
