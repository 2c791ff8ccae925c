package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mayank9336/TheVarches/internal/models"
)

type inquiryRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"required"`
	SketchID *int64 `json:"sketch_id"`
}

func (s *Server) createInquiry(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required"})
		return
	}

	_, err := s.inquiries.CreateInquiry(c.Request.Context(), models.Inquiry{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		SketchID: req.SketchID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Inquiry sent successfully! We will get back to you soon."})
}

func (s *Server) listInquiries(c *gin.Context) {
	list, err := s.inquiries.ListInquiries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
