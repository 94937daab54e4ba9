package model

import "strings"

// Category is the closed fiction/non-fiction classification of a book
type Category string

const (
	CategoryFiction    Category = "Fiction"
	CategoryNonFiction Category = "Non-Fiction"
	CategoryUnknown    Category = "Unknown"
)

// ReviewRequest is the body of POST /generate_review
type ReviewRequest struct {
	BookName string `json:"book_name"`
}

// Title returns the book name with surrounding whitespace removed
func (r ReviewRequest) Title() string {
	return strings.TrimSpace(r.BookName)
}

// ReviewResult is assembled fresh for every request and never stored
type ReviewResult struct {
	BookTitle   string
	Category    Category
	ReviewText  string
	Succeeded   bool
	FailureCode string
}

// ReviewResponse is the JSON shape returned to clients
type ReviewResponse struct {
	BookName  string   `json:"book_name"`
	Category  Category `json:"category"`
	Review    string   `json:"review"`
	Success   bool     `json:"success"`
	ErrorCode string   `json:"error_code,omitempty"`
}

func (r *ReviewResult) ToResponse() ReviewResponse {
	return ReviewResponse{
		BookName:  r.BookTitle,
		Category:  r.Category,
		Review:    r.ReviewText,
		Success:   r.Succeeded,
		ErrorCode: r.FailureCode,
	}
}
