package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/orders"
)

// SketchFilter mirrors the catalog listing query parameters.
type SketchFilter struct {
	CategorySlug string
	FeaturedOnly bool
	Search       string
	Sort         string
	Order        string
	Limit        int
	Page         int
}

// Sort columns clients may request; anything else falls back to created_at.
var validSorts = map[string]bool{
	"price":      true,
	"created_at": true,
	"title":      true,
}

func (f SketchFilter) normalized() SketchFilter {
	if !validSorts[f.Sort] {
		f.Sort = "created_at"
	}
	if f.Order != "ASC" {
		f.Order = "DESC"
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return f
}

const sketchColumns = `s.id, s.title, COALESCE(s.description, ''), s.price, s.category_id,
	COALESCE(s.image_url, ''), COALESCE(s.thumbnail_url, ''), COALESCE(s.medium, ''),
	COALESCE(s.dimensions, ''), s.is_original, s.stock_qty, s.is_featured,
	COALESCE(s.tags, ''), s.created_at, COALESCE(c.name, ''), COALESCE(c.slug, '')`

func buildSketchListQuery(f SketchFilter) (string, []any) {
	f = f.normalized()

	var sb strings.Builder
	sb.WriteString(`SELECT ` + sketchColumns + `
		FROM sketches s
		LEFT JOIN categories c ON s.category_id = c.id
		WHERE 1=1`)
	var args []any

	if f.CategorySlug != "" {
		sb.WriteString(` AND c.slug = ?`)
		args = append(args, f.CategorySlug)
	}
	if f.FeaturedOnly {
		sb.WriteString(` AND s.is_featured = TRUE`)
	}
	if f.Search != "" {
		sb.WriteString(` AND (s.title LIKE ? OR s.description LIKE ? OR s.tags LIKE ?)`)
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	// Sort column and direction come from a whitelist, never from the client
	sb.WriteString(fmt.Sprintf(` ORDER BY s.%s %s LIMIT ? OFFSET ?`, f.Sort, f.Order))
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	return sb.String(), args
}

func buildSketchCountQuery(f SketchFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT COUNT(*)
		FROM sketches s
		LEFT JOIN categories c ON s.category_id = c.id
		WHERE 1=1`)
	var args []any

	if f.CategorySlug != "" {
		sb.WriteString(` AND c.slug = ?`)
		args = append(args, f.CategorySlug)
	}
	if f.FeaturedOnly {
		sb.WriteString(` AND s.is_featured = TRUE`)
	}
	if f.Search != "" {
		sb.WriteString(` AND (s.title LIKE ? OR s.description LIKE ? OR s.tags LIKE ?)`)
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	return sb.String(), args
}

func scanSketch(row interface{ Scan(...any) error }) (models.Sketch, error) {
	var s models.Sketch
	var categoryID sql.NullInt64
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &categoryID,
		&s.ImageURL, &s.ThumbnailURL, &s.Medium, &s.Dimensions, &s.IsOriginal,
		&s.StockQty, &s.IsFeatured, &s.Tags, &s.CreatedAt, &s.CategoryName, &s.CategorySlug)
	if err != nil {
		return models.Sketch{}, err
	}
	if categoryID.Valid {
		s.CategoryID = &categoryID.Int64
	}
	return s, nil
}

// ListSketches returns one page of the catalog plus the unpaginated total.
func (s *Store) ListSketches(ctx context.Context, f SketchFilter) ([]models.Sketch, int, error) {
	query, args := buildSketchListQuery(f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sketches: %w", err)
	}
	defer rows.Close()

	sketches := []models.Sketch{}
	for rows.Next() {
		sk, err := scanSketch(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan sketch: %w", err)
		}
		sketches = append(sketches, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := buildSketchCountQuery(f)
	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sketches: %w", err)
	}

	return sketches, total, nil
}

// GetSketch returns one sketch with its category joined in.
func (s *Store) GetSketch(ctx context.Context, id int64) (models.Sketch, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+sketchColumns+`
		FROM sketches s
		LEFT JOIN categories c ON s.category_id = c.id
		WHERE s.id = ?`, id)

	sk, err := scanSketch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sketch{}, ErrNotFound
	}
	if err != nil {
		return models.Sketch{}, fmt.Errorf("failed to get sketch: %w", err)
	}
	return sk, nil
}

// CreateSketch inserts a new catalog item and returns it re-read.
func (s *Store) CreateSketch(ctx context.Context, sk models.Sketch) (models.Sketch, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO sketches (title, description, price, category_id, image_url, thumbnail_url,
			medium, dimensions, is_original, stock_qty, is_featured, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sk.Title, sk.Description, sk.Price, sk.CategoryID, sk.ImageURL, sk.ThumbnailURL,
		sk.Medium, sk.Dimensions, sk.IsOriginal, sk.StockQty, sk.IsFeatured, sk.Tags)
	if err != nil {
		return models.Sketch{}, fmt.Errorf("failed to create sketch: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Sketch{}, err
	}
	return s.GetSketch(ctx, id)
}

// UpdateSketch overwrites every mutable column of a sketch.
func (s *Store) UpdateSketch(ctx context.Context, sk models.Sketch) (models.Sketch, error) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE sketches SET title=?, description=?, price=?, category_id=?, image_url=?,
			thumbnail_url=?, medium=?, dimensions=?, is_original=?, stock_qty=?, is_featured=?, tags=?
		WHERE id=?`,
		sk.Title, sk.Description, sk.Price, sk.CategoryID, sk.ImageURL, sk.ThumbnailURL,
		sk.Medium, sk.Dimensions, sk.IsOriginal, sk.StockQty, sk.IsFeatured, sk.Tags, sk.ID)
	if err != nil {
		return models.Sketch{}, fmt.Errorf("failed to update sketch: %w", err)
	}
	// Re-read reports ErrNotFound for an unknown id
	return s.GetSketch(ctx, sk.ID)
}

// DeleteSketch removes a catalog item. A sketch referenced by an order line
// is protected by the order_items foreign key and reports ErrConflict.
func (s *Store) DeleteSketch(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sketches WHERE id = ?`, id)
	if isMySQLErr(err, mysqlErrRowIsReferenced) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to delete sketch: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, slug, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// SketchForOrder is the point lookup order assembly validates against.
func (s *Store) SketchForOrder(ctx context.Context, id int64) (orders.CatalogLine, error) {
	var line orders.CatalogLine
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, price, stock_qty FROM sketches WHERE id = ?`, id).
		Scan(&line.ID, &line.Title, &line.Price, &line.StockQty)
	if errors.Is(err, sql.ErrNoRows) {
		return orders.CatalogLine{}, orders.ErrSketchNotFound
	}
	if err != nil {
		return orders.CatalogLine{}, fmt.Errorf("failed to look up sketch: %w", err)
	}
	return line, nil
}
