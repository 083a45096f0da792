package models

import "time"

// Subscription plans. Every account is on exactly one of these.
const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// User represents a user account in the system. PasswordHash is a
// bcrypt hash and is never serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Company      *string   `json:"company"`
	Plan         string    `json:"plan"` // starter, professional, enterprise
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InsertUser is the client-settable shape for registration. The store
// assigns id and createdAt; the password arrives in the clear and is
// hashed before it ever reaches the store.
type InsertUser struct {
	Username  string  `json:"username" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Company   *string `json:"company"`
	Plan      string  `json:"plan" validate:"omitempty,oneof=starter professional enterprise"`
	IsActive  *bool   `json:"isActive"`
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Company   *string `json:"company"`
	Plan      *string `json:"plan" validate:"omitempty,oneof=starter professional enterprise"`
	IsActive  *bool   `json:"isActive"`
}
