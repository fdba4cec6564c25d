// Package models defines the record shapes displayed by the admin console
// views. All fields are already normalized: fetchers fill defaults for
// optional backend fields before records reach this layer's consumers.
package models

// User statuses as reported by the users service.
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// UserRecord is one row of the users view.
type UserRecord struct {
	ID          string
	Email       string
	Name        string
	Role        string
	Status      string
	JoinedAt    string
	ReviewCount int
}
