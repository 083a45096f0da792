package web

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	controller "marketpro/controllers"
	"marketpro/models"
)

// Home renders the landing page with the platform catalog.
func (h *Handler) Home(c *fiber.Ctx) error {
	return h.render(c, "home", "home", fiber.Map{
		"Platforms": models.Platforms,
	})
}

// Dashboard renders the stat cards, the per-platform campaign counts
// and the most recent campaigns.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	stats := controller.ComputeDashboardStats(h.Store, demoUserID)

	campaigns := h.Store.GetCampaigns(demoUserID)
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID > campaigns[j].ID })
	if len(campaigns) > 3 {
		campaigns = campaigns[:3]
	}

	type platformCount struct {
		Name  string
		Count int
	}
	var platformCounts []platformCount
	for _, info := range models.Platforms {
		if count, ok := stats.Platforms[info.Key]; ok {
			platformCounts = append(platformCounts, platformCount{info.Name, count})
		}
	}

	return h.render(c, "dashboard", "dashboard", fiber.Map{
		"Stats":             stats,
		"RecentCampaigns":   campaigns,
		"PlatformCounts":    platformCounts,
		"EngagementDisplay": fmt.Sprintf("%.1f%%", stats.AvgEngagementRate*100),
	})
}

// Campaigns renders the campaign list with server-side search and
// platform/status filters.
func (h *Handler) Campaigns(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	platform := c.Query("platform")
	status := c.Query("status")

	var filtered []models.Campaign
	for _, campaign := range h.Store.GetCampaigns(demoUserID) {
		if query != "" && !containsFold(campaign.Name, query) && !containsFold(campaign.Message, query) {
			continue
		}
		if platform != "" && campaign.Platform != platform {
			continue
		}
		if status != "" && campaign.Status != status {
			continue
		}
		filtered = append(filtered, campaign)
	}

	return h.render(c, "campaigns", "campaigns", fiber.Map{
		"Campaigns": filtered,
		"Query":     query,
		"Platform":  platform,
		"Status":    status,
		"Platforms": models.Platforms,
		"Statuses":  models.CampaignStatuses,
	})
}

// Contacts renders the contact list with search and platform filter.
func (h *Handler) Contacts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	platform := c.Query("platform")

	var filtered []models.Contact
	for _, contact := range h.Store.GetContacts(demoUserID) {
		if query != "" && !contactMatches(contact, query) {
			continue
		}
		if platform != "" && contact.Platform != platform {
			continue
		}
		filtered = append(filtered, contact)
	}

	return h.render(c, "contacts", "contacts", fiber.Map{
		"Contacts":  filtered,
		"Query":     query,
		"Platform":  platform,
		"Platforms": models.Platforms,
	})
}

// Analytics renders the event table and per-campaign stat summaries.
func (h *Handler) Analytics(c *fiber.Ctx) error {
	platform := c.Query("platform")

	var events []models.Analytics
	if platform != "" {
		events = h.Store.GetAnalyticsByPlatform(demoUserID, platform)
	} else {
		events = h.Store.GetAnalytics(demoUserID)
	}

	// Campaign names for event attribution.
	names := make(map[int]string)
	type campaignSummary struct {
		Name      string
		Platform  string
		Sent      int
		Delivered int
		Opened    int
		Clicked   int
	}
	var summaries []campaignSummary
	for _, campaign := range h.Store.GetCampaigns(demoUserID) {
		names[campaign.ID] = campaign.Name
		summaries = append(summaries, campaignSummary{
			Name:      campaign.Name,
			Platform:  campaign.Platform,
			Sent:      campaign.Stats.Sent(),
			Delivered: campaign.Stats.Delivered(),
			Opened:    campaign.Stats.Opened(),
			Clicked:   campaign.Stats.Clicked(),
		})
	}

	type eventRow struct {
		models.Analytics
		CampaignName string
	}
	var rows []eventRow
	for _, event := range events {
		row := eventRow{Analytics: event}
		if event.CampaignID != nil {
			row.CampaignName = names[*event.CampaignID]
		}
		rows = append(rows, row)
	}

	return h.render(c, "analytics", "analytics", fiber.Map{
		"Events":    rows,
		"Summaries": summaries,
		"Platform":  platform,
		"Platforms": models.Platforms,
	})
}

// Pricing renders the static plan catalog.
func (h *Handler) Pricing(c *fiber.Ctx) error {
	return h.render(c, "pricing", "pricing", fiber.Map{
		"Plans": models.PricingPlans,
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func contactMatches(contact models.Contact, query string) bool {
	if containsFold(contact.FirstName+" "+contact.LastName, query) {
		return true
	}
	if contact.Email != nil && containsFold(*contact.Email, query) {
		return true
	}
	if contact.Phone != nil && containsFold(*contact.Phone, query) {
		return true
	}
	return containsFold(contact.PlatformID, query)
}
