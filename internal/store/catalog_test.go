package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSketchListQueryDefaults(t *testing.T) {
	query, args := buildSketchListQuery(SketchFilter{})

	assert.Contains(t, query, "ORDER BY s.created_at DESC")
	assert.Contains(t, query, "LIMIT ? OFFSET ?")
	assert.NotContains(t, query, "c.slug = ?")
	assert.NotContains(t, query, "s.is_featured = TRUE")
	assert.NotContains(t, query, "LIKE")
	// default page 1 of 20
	assert.Equal(t, []any{20, 0}, args)
}

func TestBuildSketchListQueryAllFilters(t *testing.T) {
	query, args := buildSketchListQuery(SketchFilter{
		CategorySlug: "portraits",
		FeaturedOnly: true,
		Search:       "graphite",
		Sort:         "price",
		Order:        "ASC",
		Limit:        5,
		Page:         3,
	})

	assert.Contains(t, query, "c.slug = ?")
	assert.Contains(t, query, "s.is_featured = TRUE")
	assert.Contains(t, query, "s.title LIKE ? OR s.description LIKE ? OR s.tags LIKE ?")
	assert.Contains(t, query, "ORDER BY s.price ASC")
	assert.Equal(t, []any{"portraits", "%graphite%", "%graphite%", "%graphite%", 5, 10}, args)
}

func TestBuildSketchListQueryRejectsUnknownSort(t *testing.T) {
	// A hostile sort value never reaches the SQL text
	query, _ := buildSketchListQuery(SketchFilter{Sort: "price; DROP TABLE sketches", Order: "ASC"})
	assert.Contains(t, query, "ORDER BY s.created_at ASC")
	assert.NotContains(t, query, "DROP TABLE")

	query, _ = buildSketchListQuery(SketchFilter{Sort: "title", Order: "sideways"})
	assert.Contains(t, query, "ORDER BY s.title DESC")
}

func TestBuildSketchCountQueryMatchesListFilters(t *testing.T) {
	f := SketchFilter{CategorySlug: "landscapes", FeaturedOnly: true, Search: "ink"}

	query, args := buildSketchCountQuery(f)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(query), "SELECT COUNT(*)"))
	assert.Contains(t, query, "c.slug = ?")
	assert.Contains(t, query, "s.is_featured = TRUE")
	assert.Equal(t, []any{"landscapes", "%ink%", "%ink%", "%ink%"}, args)

	// No pagination on the count side
	assert.NotContains(t, query, "LIMIT")
	assert.NotContains(t, query, "OFFSET")
}
