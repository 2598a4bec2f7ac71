package database

import (
	"math"
	"strconv"
	"testing"

	"github.com/rpupo63/cms-admin-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		want      Page
		wantField string
	}{
		{name: "defaults", want: Page{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "25", want: Page{Page: 3, Limit: 25}},
		{name: "large limit allowed", limit: "5000", want: Page{Page: 1, Limit: 5000}},
		{name: "non numeric page", page: "abc", wantField: "page"},
		{name: "zero page", page: "0", wantField: "page"},
		{name: "negative limit", limit: "-5", wantField: "limit"},
		{name: "fractional limit", limit: "2.5", wantField: "limit"},
		{name: "first page of huge limit", page: "1", limit: strconv.Itoa(math.MaxInt), want: Page{Page: 1, Limit: math.MaxInt}},
		{name: "offset overflow", page: "3", limit: strconv.Itoa(math.MaxInt), wantField: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.page, tt.limit)
			if tt.wantField != "" {
				require.Error(t, err)
				assert.True(t, errs.IsInvalidFieldError(err))
				var apiErr *errs.ApiErr
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, tt.wantField, apiErr.Field)
				assert.Equal(t, 400, apiErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Page{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, Page{}.Offset())
	assert.Equal(t, math.MaxInt, Page{Page: 3, Limit: math.MaxInt}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 0, TotalPages(25, 0))
}
