package model

import (
	"time"
)

// User represents a user of the legal practice
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	BarNumber    string    `json:"bar_number,omitempty"`
	BarState     string    `json:"bar_state,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// User role constants
const (
	RoleAdmin     = "admin"
	RolePartner   = "partner"
	RoleAttorney  = "attorney"
	RoleParalegal = "paralegal"
	RoleSecretary = "secretary"
	RoleClient    = "client"
	RoleGuest     = "guest"
)

// ValidRole reports whether role is one of the known user roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RolePartner, RoleAttorney, RoleParalegal, RoleSecretary, RoleClient, RoleGuest:
		return true
	}
	return false
}
