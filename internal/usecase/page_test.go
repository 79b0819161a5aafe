package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		page       Page
		want       Page
		wantOffset int
	}{
		{name: "zero value", page: Page{}, want: Page{Number: 1, Size: DefaultPageSize}, wantOffset: 0},
		{name: "third page", page: Page{Number: 3, Size: 10}, want: Page{Number: 3, Size: 10}, wantOffset: 20},
		{name: "oversized", page: Page{Number: 2, Size: 1000}, want: Page{Number: 2, Size: MaxPageSize}, wantOffset: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Normalize())
			assert.Equal(t, tt.wantOffset, tt.page.Offset())
		})
	}
}
