// Package common defines shared constants and sentinel errors used across
// userdir components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote call errors.
	ErrRemoteCallFailed = errors.New("API call failed")
	ErrUnauthorized     = errors.New("unauthorized")

	// Auth errors (transport succeeded but the contract was not honored).
	ErrNoToken = errors.New("login failed: no token received")

	// Token store errors.
	ErrTokenNotFound = errors.New("token not found")
)
