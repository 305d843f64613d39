package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole represents the available administrative roles.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPERADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleOfficer    UserRole = "OFFICER"
	RoleViewer     UserRole = "VIEWER"
)

// User represents a dashboard operator account.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserFilter captures filtering criteria for listing users. Search matches
// full name and email.
type UserFilter struct {
	Role     UserRole
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

// JWTClaims carries the authenticated identity through requests.
type JWTClaims struct {
	UserID string   `json:"uid"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
