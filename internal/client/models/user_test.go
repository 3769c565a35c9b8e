package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserFields_Merge_PartialUpdate(t *testing.T) {
	prev := User{
		ID:        7,
		FirstName: "Eve",
		LastName:  "Holt",
		Email:     "eve.holt@example.org",
		Avatar:    "https://example.org/7.jpg",
	}

	got := UserFields{Email: "eve@example.org"}.Merge(prev)

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Eve", got.FirstName, "omitted field must keep prior value")
	assert.Equal(t, "Holt", got.LastName)
	assert.Equal(t, "eve@example.org", got.Email)
	assert.Equal(t, prev.Avatar, got.Avatar)
}

func TestUserFields_Merge_Empty(t *testing.T) {
	prev := User{ID: 1, FirstName: "Bob"}
	assert.Equal(t, prev, UserFields{}.Merge(prev))
}
