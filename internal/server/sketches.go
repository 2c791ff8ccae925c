package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Mayank9336/TheVarches/internal/models"
	"github.com/Mayank9336/TheVarches/internal/store"
)

func (s *Server) listSketches(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := store.SketchFilter{
		CategorySlug: c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
		Search:       c.Query("search"),
		Sort:         c.DefaultQuery("sort", "created_at"),
		Order:        c.DefaultQuery("order", "DESC"),
		Limit:        limit,
		Page:         page,
	}

	sketches, total, err := s.catalog.ListSketches(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sketches": sketches,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (s *Server) getSketch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sketch id"})
		return
	}

	sketch, err := s.catalog.GetSketch(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sketch not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sketch)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

type sketchRequest struct {
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	CategoryID   *int64           `json:"category_id"`
	ImageURL     string           `json:"image_url"`
	ThumbnailURL string           `json:"thumbnail_url"`
	Medium       string           `json:"medium"`
	Dimensions   string           `json:"dimensions"`
	IsOriginal   *bool            `json:"is_original"`
	StockQty     *int             `json:"stock_qty"`
	IsFeatured   *bool            `json:"is_featured"`
	Tags         string           `json:"tags"`
}

func (r sketchRequest) toModel() models.Sketch {
	sk := models.Sketch{
		Title:        r.Title,
		Description:  r.Description,
		Price:        *r.Price,
		CategoryID:   r.CategoryID,
		ImageURL:     r.ImageURL,
		ThumbnailURL: r.ThumbnailURL,
		Medium:       r.Medium,
		Dimensions:   r.Dimensions,
		IsOriginal:   true,
		StockQty:     1,
		Tags:         r.Tags,
	}
	if r.IsOriginal != nil {
		sk.IsOriginal = *r.IsOriginal
	}
	if r.StockQty != nil {
		sk.StockQty = *r.StockQty
	}
	if r.IsFeatured != nil {
		sk.IsFeatured = *r.IsFeatured
	}
	return sk
}

func (s *Server) createSketch(c *gin.Context) {
	var req sketchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and price are required"})
		return
	}

	sketch, err := s.catalog.CreateSketch(c.Request.Context(), req.toModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sketch)
}

func (s *Server) updateSketch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sketch id"})
		return
	}

	var req sketchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and price are required"})
		return
	}

	sk := req.toModel()
	sk.ID = id
	sketch, err := s.catalog.UpdateSketch(c.Request.Context(), sk)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sketch not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sketch)
}

func (s *Server) deleteSketch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sketch id"})
		return
	}

	err = s.catalog.DeleteSketch(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Sketch not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Sketch is referenced by existing orders"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Sketch deleted successfully"})
	}
}
