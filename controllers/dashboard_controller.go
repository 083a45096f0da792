package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

// AvgEngagementRate is a documented placeholder. The original system
// shipped this constant instead of deriving the rate from analytics,
// and no formula was ever specified, so it stays a constant here.
const AvgEngagementRate = 0.245

type DashboardController struct {
	Store  *store.Store
	Logger *logrus.Logger
}

func NewDashboardController(s *store.Store, logger *logrus.Logger) *DashboardController {
	return &DashboardController{
		Store:  s,
		Logger: logger,
	}
}

// DashboardStats is the aggregate the dashboard cards render.
type DashboardStats struct {
	TotalCampaigns    int            `json:"totalCampaigns"`
	ActiveCampaigns   int            `json:"activeCampaigns"`
	TotalContacts     int            `json:"totalContacts"`
	ActiveContacts    int            `json:"activeContacts"`
	TotalMessagesSent int            `json:"totalMessagesSent"`
	AvgEngagementRate float64        `json:"avgEngagementRate"`
	Platforms         map[string]int `json:"platforms"`
}

// GetDashboardStats aggregates three independent store reads. The
// reads are not atomic with respect to concurrent writes, which is
// acceptable for display-only counts.
func (dc *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	userID := utils.QueryUserID(c)
	stats := ComputeDashboardStats(dc.Store, userID)
	return c.JSON(stats)
}

// ComputeDashboardStats builds the dashboard aggregate for one user.
// Shared with the server-rendered dashboard page.
func ComputeDashboardStats(s *store.Store, userID int) DashboardStats {
	campaigns := s.GetCampaigns(userID)
	contacts := s.GetContacts(userID)
	analytics := s.GetAnalytics(userID)

	stats := DashboardStats{
		TotalCampaigns:    len(campaigns),
		TotalContacts:     len(contacts),
		AvgEngagementRate: AvgEngagementRate,
		Platforms:         make(map[string]int),
	}

	for _, campaign := range campaigns {
		if campaign.Status == models.StatusActive {
			stats.ActiveCampaigns++
		}
	}
	for _, contact := range contacts {
		if contact.IsActive {
			stats.ActiveContacts++
		}
	}
	for _, event := range analytics {
		if event.Metric == "sent" {
			stats.TotalMessagesSent += event.Value
		}
	}

	// Per-platform campaign counts over the fixed dashboard subset.
	for _, platform := range models.DashboardPlatforms {
		stats.Platforms[platform] = 0
	}
	for _, campaign := range campaigns {
		if _, ok := stats.Platforms[campaign.Platform]; ok {
			stats.Platforms[campaign.Platform]++
		}
	}

	return stats
}
