package handler

import (
	"context"

	"bookscan/internal/model"
)

// ReviewService produces a categorized review for a title
type ReviewService interface {
	Review(ctx context.Context, title string) model.ReviewResult
}

// Handler serves the BookScan routes
type Handler struct {
	reviewer ReviewService
}

// New creates a Handler. A nil reviewer leaves the service up but not ready.
func New(reviewer ReviewService) *Handler {
	return &Handler{reviewer: reviewer}
}
