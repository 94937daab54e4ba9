package response

import (
	"strings"

	"bookscan/internal/model"
)

// ParseCategory maps a raw categorization answer onto a Category.
// Only an exact "Fiction" or "Non-Fiction" (surrounding whitespace ignored) is accepted;
// anything else, including verbose or differently cased answers, is Unknown.
func ParseCategory(raw string) model.Category {
	switch model.Category(strings.TrimSpace(raw)) {
	case model.CategoryFiction:
		return model.CategoryFiction
	case model.CategoryNonFiction:
		return model.CategoryNonFiction
	}
	return model.CategoryUnknown
}

// HasText reports whether the model produced anything besides whitespace
func HasText(raw string) bool {
	return strings.TrimSpace(raw) != ""
}
