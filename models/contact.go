package models

import "time"

// Contact represents a reachable person on one platform. PlatformID is
// the platform-specific handle (phone number, username, channel id).
type Contact struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	Platform   string    `json:"platform"`
	PlatformID string    `json:"platformId"`
	Tags       []string  `json:"tags"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InsertContact is the client-settable shape for contact creation.
type InsertContact struct {
	UserID     int      `json:"userId" validate:"required"`
	FirstName  string   `json:"firstName" validate:"required"`
	LastName   string   `json:"lastName" validate:"required"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Phone      *string  `json:"phone"`
	Platform   string   `json:"platform" validate:"required,oneof=whatsapp instagram facebook telegram sms tiktok youtube"`
	PlatformID string   `json:"platformId" validate:"required"`
	Tags       []string `json:"tags"`
	IsActive   *bool    `json:"isActive"`
}

// ContactUpdate is a partial update; nil fields are left untouched.
// Providing tags replaces the whole list.
type ContactUpdate struct {
	FirstName  *string   `json:"firstName"`
	LastName   *string   `json:"lastName"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	Phone      *string   `json:"phone"`
	Platform   *string   `json:"platform" validate:"omitempty,oneof=whatsapp instagram facebook telegram sms tiktok youtube"`
	PlatformID *string   `json:"platformId"`
	Tags       *[]string `json:"tags"`
	IsActive   *bool     `json:"isActive"`
}
