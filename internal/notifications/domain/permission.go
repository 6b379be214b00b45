// Package domain models the user's notification permission.
package domain

import (
	"errors"
	"strings"
)

// Permission is the user's standing answer to "may the app notify you".
type Permission string

const (
	// PermissionDefault means the user has never been asked.
	PermissionDefault Permission = "default"
	// PermissionGranted means reminders may be delivered.
	PermissionGranted Permission = "granted"
	// PermissionDenied means the user declined; reminders are suppressed.
	PermissionDenied Permission = "denied"
)

// ErrInvalidPermission is returned for an unrecognized permission value.
var ErrInvalidPermission = errors.New("invalid notification permission")

// ParsePermission parses a permission from its stored form. Unknown values
// fall back to PermissionDefault with ErrInvalidPermission.
func ParsePermission(s string) (Permission, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PermissionDefault), "":
		return PermissionDefault, nil
	case string(PermissionGranted):
		return PermissionGranted, nil
	case string(PermissionDenied):
		return PermissionDenied, nil
	default:
		return PermissionDefault, ErrInvalidPermission
	}
}

// CanNotify reports whether reminders may be delivered.
func (p Permission) CanNotify() bool {
	return p == PermissionGranted
}

func (p Permission) String() string {
	return string(p)
}
