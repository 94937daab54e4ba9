package response

import (
	"testing"

	"bookscan/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Category
	}{
		{"Fiction", model.CategoryFiction},
		{"  Non-Fiction\n", model.CategoryNonFiction},
		{"Unknown", model.CategoryUnknown},
		{"fiction", model.CategoryUnknown},
		{"Fiction.", model.CategoryUnknown},
		{`"Fiction"`, model.CategoryUnknown},
		{"It is Fiction", model.CategoryUnknown},
		{"", model.CategoryUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.raw), "raw=%q", tt.raw)
	}
}

func TestHasText(t *testing.T) {
	assert.True(t, HasText("review"))
	assert.False(t, HasText(" \n\t"))
	assert.False(t, HasText(""))
}
