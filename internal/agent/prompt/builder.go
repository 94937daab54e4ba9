package prompt

import (
	"fmt"

	"bookscan/internal/agent/sanitize"
)

// Builder constructs prompts for the reviewer
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildReviewPrompt creates the review generation prompt for a title
func (b *Builder) BuildReviewPrompt(title string) string {
	return fmt.Sprintf(ReviewPromptTemplate, sanitize.Title(title))
}

// BuildCategoryPrompt creates the fiction/non-fiction prompt for a title
func (b *Builder) BuildCategoryPrompt(title string) string {
	return fmt.Sprintf(CategoryPromptTemplate, sanitize.Title(title))
}
