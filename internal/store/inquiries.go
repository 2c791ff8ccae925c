package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Mayank9336/TheVarches/internal/models"
)

// CreateInquiry records a customer inquiry, optionally tied to a sketch.
func (s *Store) CreateInquiry(ctx context.Context, in models.Inquiry) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO inquiries (name, email, message, sketch_id) VALUES (?, ?, ?, ?)`,
		in.Name, in.Email, in.Message, in.SketchID)
	if err != nil {
		return 0, fmt.Errorf("failed to create inquiry: %w", err)
	}
	return res.LastInsertId()
}

// ListInquiries returns all inquiries newest first with the referenced
// sketch title joined in where present.
func (s *Store) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.email, i.message, i.sketch_id, i.created_at,
			COALESCE(s.title, '') AS sketch_title
		FROM inquiries i
		LEFT JOIN sketches s ON i.sketch_id = s.id
		ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	out := []models.Inquiry{}
	for rows.Next() {
		var in models.Inquiry
		var sketchID sql.NullInt64
		if err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Message, &sketchID,
			&in.CreatedAt, &in.SketchTitle); err != nil {
			return nil, err
		}
		if sketchID.Valid {
			in.SketchID = &sketchID.Int64
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
