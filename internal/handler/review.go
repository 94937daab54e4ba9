package handler

import (
	"net/http"
	"time"

	"bookscan/internal/middleware"
	"bookscan/internal/model"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrMsgEmptyTitle is returned when book_name is missing or blank
	ErrMsgEmptyTitle = "Please enter a book name"
)

// HandleGenerateReview categorizes and reviews the posted book title
func (h *Handler) HandleGenerateReview(c *gin.Context) {
	startTime := time.Now()
	logger := log.WithField("request_id", c.GetString(middleware.RequestIDKey))

	var req model.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("[REVIEW] Malformed request body: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	title := req.Title()
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgEmptyTitle})
		return
	}

	if h.reviewer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is not available"})
		return
	}

	result := h.reviewer.Review(c.Request.Context(), title)

	logger.WithFields(log.Fields{
		"title":    title,
		"category": result.Category,
		"success":  result.Succeeded,
	}).Infof("[PERF] Review completed in %v", time.Since(startTime))

	c.JSON(http.StatusOK, result.ToResponse())
}
