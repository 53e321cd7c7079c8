package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, DefaultPage, NormalizePage(0))
	assert.Equal(t, DefaultPage, NormalizePage(-3))
	assert.Equal(t, 1, NormalizePage(1))
	assert.Equal(t, 42, NormalizePage(42))
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, NormalizeLimit(0))
	assert.Equal(t, DefaultLimit, NormalizeLimit(-1))
	assert.Equal(t, 1, NormalizeLimit(1))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit))
	assert.Equal(t, MaxLimit, NormalizeLimit(MaxLimit+500))
}

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name       string
		totalItems int64
		page       int
		limit      int
		expected   Pagination
	}{
		{
			name:       "first page of two",
			totalItems: 3,
			page:       1,
			limit:      2,
			expected: Pagination{
				TotalItems:  3,
				CurrentPage: 1,
				TotalPages:  2,
				HasNextPage: true,
				HasPrevPage: false,
			},
		},
		{
			name:       "last page of two",
			totalItems: 3,
			page:       2,
			limit:      2,
			expected: Pagination{
				TotalItems:  3,
				CurrentPage: 2,
				TotalPages:  2,
				HasNextPage: false,
				HasPrevPage: true,
			},
		},
		{
			name:       "exact division",
			totalItems: 20,
			page:       1,
			limit:      10,
			expected: Pagination{
				TotalItems:  20,
				CurrentPage: 1,
				TotalPages:  2,
				HasNextPage: true,
				HasPrevPage: false,
			},
		},
		{
			name:       "no records",
			totalItems: 0,
			page:       1,
			limit:      10,
			expected: Pagination{
				TotalItems:  0,
				CurrentPage: 1,
				TotalPages:  0,
				HasNextPage: false,
				HasPrevPage: false,
			},
		},
		{
			name:       "middle page",
			totalItems: 35,
			page:       2,
			limit:      10,
			expected: Pagination{
				TotalItems:  35,
				CurrentPage: 2,
				TotalPages:  4,
				HasNextPage: true,
				HasPrevPage: true,
			},
		},
		{
			name:       "page beyond the end",
			totalItems: 5,
			page:       9,
			limit:      10,
			expected: Pagination{
				TotalItems:  5,
				CurrentPage: 9,
				TotalPages:  1,
				HasNextPage: false,
				HasPrevPage: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewPagination(tc.totalItems, tc.page, tc.limit))
		})
	}
}
