package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HandleIndex renders the search form
func (h *Handler) HandleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Service": ServiceName,
	})
}

// HandleReviewPage renders the display page for /review/*book_name
func (h *Handler) HandleReviewPage(c *gin.Context) {
	bookName := strings.TrimPrefix(c.Param("book_name"), "/")
	c.HTML(http.StatusOK, "review.html", gin.H{
		"Service":  ServiceName,
		"BookName": bookName,
	})
}
