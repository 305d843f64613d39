package service

import (
	"strings"

	"github.com/gradpoint/gms-api/internal/models"
)

// matchesSearch reports whether any of the whitelisted fields contains the
// term, case-insensitively. An empty term matches everything. Each screen
// enumerates its own field whitelist at the call site; the match itself is
// never generic over the whole record.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// paginate slices rows for the requested page and returns the pagination
// envelope. Out-of-range pages return an empty slice, not an error.
func paginate[T any](rows []T, page, size int) ([]T, *models.Pagination) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(rows)}

	start := (page - 1) * size
	if start >= len(rows) {
		return []T{}, pagination
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-start)
	copy(out, rows[start:end])
	return out, pagination
}

// intersectVisible returns the members of ids whose records are in the
// visible set. Bulk actions act on selection ∩ visible rows, never the full
// dataset; ids filtered out of view are dropped here.
func intersectVisible(ids []string, visible map[string]struct{}) []string {
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := visible[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
