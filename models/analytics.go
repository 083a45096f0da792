package models

import "time"

// Analytics is a single metric observation (e.g. "sent", "delivered",
// "impressions") attributed to a user and optionally a campaign.
type Analytics struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	CampaignID *int      `json:"campaignId"`
	Platform   string    `json:"platform"`
	Metric     string    `json:"metric"`
	Value      int       `json:"value"`
	Date       time.Time `json:"date"`
}

// InsertAnalytics is the client-settable shape for recording an event.
// The store assigns id and date.
type InsertAnalytics struct {
	UserID     int    `json:"userId" validate:"required"`
	CampaignID *int   `json:"campaignId"`
	Platform   string `json:"platform" validate:"required,oneof=whatsapp instagram facebook telegram sms tiktok youtube"`
	Metric     string `json:"metric" validate:"required"`
	Value      *int   `json:"value" validate:"required"`
}
