package store

import (
	"context"
	"fmt"

	"github.com/Mayank9336/TheVarches/internal/models"
)

// Stats aggregates the admin dashboard counters. Revenue excludes
// cancelled orders.
func (s *Store) Stats(ctx context.Context) (models.Stats, error) {
	var st models.Stats

	counts := []struct {
		query string
		dest  any
	}{
		{`SELECT COUNT(*) FROM sketches`, &st.TotalSketches},
		{`SELECT COUNT(*) FROM orders`, &st.TotalOrders},
		{`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status != 'cancelled'`, &st.TotalRevenue},
		{`SELECT COUNT(*) FROM inquiries`, &st.TotalInquiries},
	}

	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return models.Stats{}, fmt.Errorf("failed to aggregate stats: %w", err)
		}
	}
	return st, nil
}
