package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	assert.True(t, matchesSearch("", "anything"))
	assert.True(t, matchesSearch("john", "John Banda", "GRD2026001"))
	assert.True(t, matchesSearch("JOHN", "johnson@university.ac"))
	assert.True(t, matchesSearch("2026", "John Banda", "GRD2026001"))
	assert.False(t, matchesSearch("mary", "John Banda", "GRD2026001"))
}

func TestPaginateBounds(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	page, pagination := paginate(rows, 1, 2)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 5, pagination.TotalCount)

	page, _ = paginate(rows, 3, 2)
	assert.Equal(t, []int{5}, page)

	// Out of range pages come back empty, not as an error.
	page, pagination = paginate(rows, 9, 2)
	assert.Empty(t, page)
	assert.Equal(t, 9, pagination.Page)

	// Invalid paging falls back to defaults.
	page, pagination = paginate(rows, 0, -1)
	assert.Len(t, page, 5)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
}

func TestIntersectVisible(t *testing.T) {
	visible := map[string]struct{}{"a": {}, "b": {}}

	out := intersectVisible([]string{"a", "c", "b", "a"}, visible)
	assert.Equal(t, []string{"a", "b"}, out)

	assert.Empty(t, intersectVisible(nil, visible))
	assert.Empty(t, intersectVisible([]string{"x"}, visible))
}
