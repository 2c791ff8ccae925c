package orders

import (
	"strings"

	"github.com/google/uuid"
)

const orderNumberPrefix = "TV-"

// NewOrderNumber generates a human-readable order number like TV-9F86D081:
// the prefix plus the first group of a random UUID, uppercased. The token
// space (16^8) makes collisions practically impossible; the unique key on
// orders.order_number plus a bounded retry covers the remainder.
func NewOrderNumber() string {
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return orderNumberPrefix + strings.ToUpper(token)
}
