package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketpro/models"
	"marketpro/utils"
)

// DemoPassword is the plaintext password of the seeded demo account.
const DemoPassword = "password"

// Seed loads the fixed demo data set: one user, three campaigns, two
// contacts and three analytics events. Counters continue past the
// seeded ids so later creates never collide with them.
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.users[1] = models.User{
		ID:           1,
		Username:     "demo",
		Email:        "demo@marketpro.com",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "User",
		Company:      utils.Pointer("MarketPro Inc"),
		Plan:         models.PlanProfessional,
		IsActive:     true,
		CreatedAt:    now,
	}
	s.nextUserID = 2

	campaigns := []models.Campaign{
		{
			ID:             1,
			UserID:         1,
			Name:           "Summer Sale WhatsApp Campaign",
			Platform:       models.PlatformWhatsApp,
			Status:         models.StatusActive,
			TargetAudience: utils.Pointer("Premium customers"),
			Message:        "Exclusive Summer Sale! Get 50% off on all premium products. Limited time offer!",
			ScheduledAt:    utils.Pointer(now),
			SentAt:         utils.Pointer(now),
			Stats:          models.CampaignStats{"sent": 1250, "delivered": 1200, "opened": 980, "clicked": 245},
			CreatedAt:      now,
		},
		{
			ID:             2,
			UserID:         1,
			Name:           "Instagram Story Promotion",
			Platform:       models.PlatformInstagram,
			Status:         models.StatusCompleted,
			TargetAudience: utils.Pointer("Young professionals"),
			Message:        "Check out our latest collection! Swipe up for exclusive deals.",
			ScheduledAt:    utils.Pointer(now),
			SentAt:         utils.Pointer(now),
			Stats:          models.CampaignStats{"sent": 5000, "delivered": 4800, "opened": 3200, "clicked": 640},
			CreatedAt:      now,
		},
		{
			ID:             3,
			UserID:         1,
			Name:           "Facebook Lead Generation",
			Platform:       models.PlatformFacebook,
			Status:         models.StatusDraft,
			TargetAudience: utils.Pointer("Business owners"),
			Message:        "Transform your business with our marketing automation platform.",
			ScheduledAt:    utils.Pointer(now.Add(24 * time.Hour)),
			Stats:          models.CampaignStats{},
			CreatedAt:      now,
		},
	}
	for _, campaign := range campaigns {
		s.campaigns[campaign.ID] = campaign
	}
	s.nextCampaignID = 4

	contacts := []models.Contact{
		{
			ID:         1,
			UserID:     1,
			FirstName:  "John",
			LastName:   "Smith",
			Email:      utils.Pointer("john.smith@example.com"),
			Phone:      utils.Pointer("+1234567890"),
			Platform:   models.PlatformWhatsApp,
			PlatformID: "1234567890",
			Tags:       []string{"premium", "active"},
			IsActive:   true,
			CreatedAt:  now,
		},
		{
			ID:         2,
			UserID:     1,
			FirstName:  "Sarah",
			LastName:   "Johnson",
			Email:      utils.Pointer("sarah.johnson@example.com"),
			Phone:      utils.Pointer("+1234567891"),
			Platform:   models.PlatformInstagram,
			PlatformID: "sarah_johnson_insta",
			Tags:       []string{"influencer", "partnership"},
			IsActive:   true,
			CreatedAt:  now,
		},
	}
	for _, contact := range contacts {
		s.contacts[contact.ID] = contact
	}
	s.nextContactID = 3

	events := []models.Analytics{
		{ID: 1, UserID: 1, CampaignID: utils.Pointer(1), Platform: models.PlatformWhatsApp, Metric: "sent", Value: 1250, Date: now},
		{ID: 2, UserID: 1, CampaignID: utils.Pointer(1), Platform: models.PlatformWhatsApp, Metric: "delivered", Value: 1200, Date: now},
		{ID: 3, UserID: 1, CampaignID: utils.Pointer(2), Platform: models.PlatformInstagram, Metric: "impressions", Value: 15000, Date: now},
	}
	for _, event := range events {
		s.analytics[event.ID] = event
	}
	s.nextAnalyticsID = 4

	return nil
}
