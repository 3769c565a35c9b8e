// Package models defines the data types shared by the userdir client layers.
package models

import "fmt"

// User is one record of the remote directory. ID is the unique key within
// the collection; no two records share an id at any time.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

// UserFields is the mutable part of a User, used for create and update
// payloads. On update, an empty field means "not supplied": the record keeps
// its prior value for that field.
type UserFields struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// Merge returns a copy of u with the supplied fields applied.
func (f UserFields) Merge(u User) User {
	if f.FirstName != "" {
		u.FirstName = f.FirstName
	}
	if f.LastName != "" {
		u.LastName = f.LastName
	}
	if f.Email != "" {
		u.Email = f.Email
	}
	if f.Avatar != "" {
		u.Avatar = f.Avatar
	}
	return u
}

// String renders a one-line human-readable form used by the CLI list view.
func (u User) String() string {
	return fmt.Sprintf("#%d %s %s <%s>", u.ID, u.FirstName, u.LastName, u.Email)
}
