package state

import (
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// Filter returns the records whose first name, last name, or email contains
// the query, case-insensitively. An empty query passes the collection
// through unchanged. The result is recomputed on every call, never cached.
func Filter(users []models.User, query string) []models.User {
	if query == "" {
		return users
	}

	q := strings.ToLower(query)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), q) ||
			strings.Contains(strings.ToLower(u.LastName), q) ||
			strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

// Paginate returns the 1-based page of the sequence and the total page
// count, ceil(len/size). An empty sequence has 0 pages; a page index past
// the end yields an empty page.
func Paginate(users []models.User, page, size int) ([]models.User, int) {
	if size <= 0 {
		return []models.User{}, 0
	}

	totalPages := (len(users) + size - 1) / size
	if page < 1 || page > totalPages {
		return []models.User{}, totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > len(users) {
		end = len(users)
	}
	return users[start:end], totalPages
}
