package models

import "time"

// Campaign lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// CampaignStatuses lists every status in display order.
var CampaignStatuses = []string{
	StatusDraft,
	StatusScheduled,
	StatusActive,
	StatusPaused,
	StatusCompleted,
	StatusFailed,
}

// CampaignStats is an open-ended metric→count mapping attached to a
// campaign. The named readers default missing keys to zero so display
// code never has to probe the map.
type CampaignStats map[string]int

func (s CampaignStats) Sent() int      { return s["sent"] }
func (s CampaignStats) Delivered() int { return s["delivered"] }
func (s CampaignStats) Opened() int    { return s["opened"] }
func (s CampaignStats) Clicked() int   { return s["clicked"] }

// Campaign represents a messaging campaign owned by a user. SentAt is
// set only by a send operation, which this system does not implement.
type Campaign struct {
	ID             int           `json:"id"`
	UserID         int           `json:"userId"`
	Name           string        `json:"name"`
	Platform       string        `json:"platform"`
	Status         string        `json:"status"` // draft, scheduled, active, paused, completed, failed
	TargetAudience *string       `json:"targetAudience"`
	Message        string        `json:"message"`
	ScheduledAt    *time.Time    `json:"scheduledAt"`
	SentAt         *time.Time    `json:"sentAt"`
	Stats          CampaignStats `json:"stats"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// InsertCampaign is the client-settable shape for campaign creation.
// id, createdAt, sentAt and stats are server-assigned and cannot be
// supplied here.
type InsertCampaign struct {
	UserID         int        `json:"userId" validate:"required"`
	Name           string     `json:"name" validate:"required"`
	Platform       string     `json:"platform" validate:"required,oneof=whatsapp instagram facebook telegram sms tiktok youtube"`
	Status         string     `json:"status" validate:"omitempty,oneof=draft scheduled active paused completed failed"`
	TargetAudience *string    `json:"targetAudience"`
	Message        string     `json:"message" validate:"required"`
	ScheduledAt    *time.Time `json:"scheduledAt"`
}

// CampaignUpdate is a partial update; nil fields are left untouched.
type CampaignUpdate struct {
	Name           *string        `json:"name"`
	Platform       *string        `json:"platform" validate:"omitempty,oneof=whatsapp instagram facebook telegram sms tiktok youtube"`
	Status         *string        `json:"status" validate:"omitempty,oneof=draft scheduled active paused completed failed"`
	TargetAudience *string        `json:"targetAudience"`
	Message        *string        `json:"message"`
	ScheduledAt    *time.Time     `json:"scheduledAt"`
	Stats          *CampaignStats `json:"stats"`
}
