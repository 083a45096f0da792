package store_test

import (
	"reflect"
	"testing"

	"marketpro/models"
	"marketpro/store"
	"marketpro/utils"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	if err := s.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return s
}

func TestCreateCampaignDefaults(t *testing.T) {
	s := store.New()

	campaign := s.CreateCampaign(models.InsertCampaign{
		UserID:   1,
		Name:     "First",
		Platform: models.PlatformWhatsApp,
		Message:  "hello",
	})

	if campaign.ID != 1 {
		t.Errorf("expected id 1, got %d", campaign.ID)
	}
	if campaign.Status != models.StatusDraft {
		t.Errorf("expected draft status, got %q", campaign.Status)
	}
	if campaign.Stats == nil || len(campaign.Stats) != 0 {
		t.Errorf("expected empty stats, got %v", campaign.Stats)
	}
	if campaign.SentAt != nil {
		t.Errorf("expected nil sentAt, got %v", campaign.SentAt)
	}
	if campaign.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	second := s.CreateCampaign(models.InsertCampaign{
		UserID:   1,
		Name:     "Second",
		Platform: models.PlatformSMS,
		Message:  "hi",
		Status:   models.StatusActive,
	})
	if second.ID != 2 {
		t.Errorf("expected id 2, got %d", second.ID)
	}
	if second.Status != models.StatusActive {
		t.Errorf("expected provided status kept, got %q", second.Status)
	}
}

func TestCampaignIDsNeverReused(t *testing.T) {
	s := store.New()

	first := s.CreateCampaign(models.InsertCampaign{UserID: 1, Name: "a", Platform: "sms", Message: "m"})
	if !s.DeleteCampaign(first.ID) {
		t.Fatal("delete of existing campaign returned false")
	}

	second := s.CreateCampaign(models.InsertCampaign{UserID: 1, Name: "b", Platform: "sms", Message: "m"})
	if second.ID <= first.ID {
		t.Errorf("expected id above %d after delete, got %d", first.ID, second.ID)
	}
}

func TestUpdateCampaignPartial(t *testing.T) {
	s := store.New()
	created := s.CreateCampaign(models.InsertCampaign{
		UserID:   1,
		Name:     "Before",
		Platform: models.PlatformWhatsApp,
		Message:  "hello",
	})

	// Empty patch is a no-op.
	unchanged, ok := s.UpdateCampaign(created.ID, models.CampaignUpdate{})
	if !ok {
		t.Fatal("update of existing campaign reported not found")
	}
	if !reflect.DeepEqual(created, unchanged) {
		t.Errorf("empty update changed the campaign: %+v vs %+v", created, unchanged)
	}

	// Single-field patch changes only that field.
	updated, ok := s.UpdateCampaign(created.ID, models.CampaignUpdate{Name: utils.Pointer("After")})
	if !ok {
		t.Fatal("update reported not found")
	}
	if updated.Name != "After" {
		t.Errorf("expected name updated, got %q", updated.Name)
	}
	expected := created
	expected.Name = "After"
	expected.Stats = updated.Stats
	if !reflect.DeepEqual(expected, updated) {
		t.Errorf("unexpected fields changed: %+v vs %+v", expected, updated)
	}
}

func TestUpdateMissingCampaign(t *testing.T) {
	s := store.New()
	if _, ok := s.UpdateCampaign(42, models.CampaignUpdate{Name: utils.Pointer("x")}); ok {
		t.Error("expected not found for missing campaign")
	}
}

func TestDeleteCampaign(t *testing.T) {
	s := store.New()
	created := s.CreateCampaign(models.InsertCampaign{UserID: 1, Name: "a", Platform: "sms", Message: "m"})

	if !s.DeleteCampaign(created.ID) {
		t.Error("expected delete of existing campaign to return true")
	}
	if _, ok := s.GetCampaign(created.ID); ok {
		t.Error("expected campaign gone after delete")
	}
	if s.DeleteCampaign(created.ID) {
		t.Error("expected delete of absent campaign to return false")
	}
}

func TestCampaignRoundTrip(t *testing.T) {
	s := store.New()
	created := s.CreateCampaign(models.InsertCampaign{
		UserID:         1,
		Name:           "rt",
		Platform:       models.PlatformTelegram,
		Message:        "m",
		TargetAudience: utils.Pointer("everyone"),
	})

	got, ok := s.GetCampaign(created.ID)
	if !ok {
		t.Fatal("round-trip get reported not found")
	}
	if !reflect.DeepEqual(created, got) {
		t.Errorf("round-trip mismatch: %+v vs %+v", created, got)
	}
}

func TestCreateUserDefaults(t *testing.T) {
	s := store.New()
	user := s.CreateUser(models.InsertUser{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}, "hash")

	if user.ID != 1 {
		t.Errorf("expected id 1, got %d", user.ID)
	}
	if user.Plan != models.PlanStarter {
		t.Errorf("expected starter plan default, got %q", user.Plan)
	}
	if !user.IsActive {
		t.Error("expected isActive default true")
	}
	if user.PasswordHash != "hash" {
		t.Errorf("expected stored hash, got %q", user.PasswordHash)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	s := store.New()
	created := s.CreateUser(models.InsertUser{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}, "hash")

	// Empty patch is a no-op.
	unchanged, ok := s.UpdateUser(created.ID, models.UserUpdate{})
	if !ok {
		t.Fatal("update of existing user reported not found")
	}
	if !reflect.DeepEqual(created, unchanged) {
		t.Errorf("empty update changed the user: %+v vs %+v", created, unchanged)
	}

	// Single-field patch changes only that field.
	updated, ok := s.UpdateUser(created.ID, models.UserUpdate{Plan: utils.Pointer(models.PlanEnterprise)})
	if !ok {
		t.Fatal("update reported not found")
	}
	if updated.Plan != models.PlanEnterprise {
		t.Errorf("expected plan updated, got %q", updated.Plan)
	}
	expected := created
	expected.Plan = models.PlanEnterprise
	if !reflect.DeepEqual(expected, updated) {
		t.Errorf("unexpected fields changed: %+v vs %+v", expected, updated)
	}
	if updated.PasswordHash != "hash" {
		t.Errorf("expected hash untouched, got %q", updated.PasswordHash)
	}
}

func TestUpdateMissingUser(t *testing.T) {
	s := store.New()
	if _, ok := s.UpdateUser(42, models.UserUpdate{Username: utils.Pointer("x")}); ok {
		t.Error("expected not found for missing user")
	}
}

func TestCreateContactDefaults(t *testing.T) {
	s := store.New()
	contact := s.CreateContact(models.InsertContact{
		UserID:     1,
		FirstName:  "Bob",
		LastName:   "Jones",
		Platform:   models.PlatformSMS,
		PlatformID: "+15550001",
	})

	if contact.Tags == nil || len(contact.Tags) != 0 {
		t.Errorf("expected empty tag list, got %v", contact.Tags)
	}
	if !contact.IsActive {
		t.Error("expected isActive default true")
	}

	inactive := s.CreateContact(models.InsertContact{
		UserID:     1,
		FirstName:  "Carol",
		LastName:   "King",
		Platform:   models.PlatformSMS,
		PlatformID: "+15550002",
		IsActive:   utils.Pointer(false),
	})
	if inactive.IsActive {
		t.Error("expected explicit isActive false to be kept")
	}
}

func TestSeededData(t *testing.T) {
	s := seededStore(t)

	campaigns := s.GetCampaigns(1)
	if len(campaigns) != 3 {
		t.Fatalf("expected 3 seeded campaigns, got %d", len(campaigns))
	}
	wantPlatforms := []string{models.PlatformWhatsApp, models.PlatformInstagram, models.PlatformFacebook}
	wantStatuses := []string{models.StatusActive, models.StatusCompleted, models.StatusDraft}
	for i, campaign := range campaigns {
		if campaign.ID != i+1 {
			t.Errorf("campaign %d: expected id %d, got %d", i, i+1, campaign.ID)
		}
		if campaign.Platform != wantPlatforms[i] {
			t.Errorf("campaign %d: expected platform %q, got %q", i, wantPlatforms[i], campaign.Platform)
		}
		if campaign.Status != wantStatuses[i] {
			t.Errorf("campaign %d: expected status %q, got %q", i, wantStatuses[i], campaign.Status)
		}
	}

	contacts := s.GetContacts(1)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 seeded contacts, got %d", len(contacts))
	}
	for _, contact := range contacts {
		if !contact.IsActive {
			t.Errorf("contact %d: expected active", contact.ID)
		}
	}

	if _, ok := s.GetUserByEmail("demo@marketpro.com"); !ok {
		t.Error("expected seeded demo user by email")
	}
	if _, ok := s.GetUserByUsername("demo"); !ok {
		t.Error("expected seeded demo user by username")
	}

	sent := 0
	for _, event := range s.GetAnalytics(1) {
		if event.Metric == "sent" {
			sent += event.Value
		}
	}
	if sent != 1250 {
		t.Errorf("expected seeded sent total 1250, got %d", sent)
	}

	// Seeded ids are reserved; the next create continues past them.
	campaign := s.CreateCampaign(models.InsertCampaign{UserID: 1, Name: "n", Platform: "sms", Message: "m"})
	if campaign.ID != 4 {
		t.Errorf("expected next campaign id 4, got %d", campaign.ID)
	}
}

func TestAnalyticsFilters(t *testing.T) {
	s := seededStore(t)

	whatsapp := s.GetAnalyticsByPlatform(1, models.PlatformWhatsApp)
	if len(whatsapp) != 2 {
		t.Errorf("expected 2 whatsapp events, got %d", len(whatsapp))
	}
	for _, event := range whatsapp {
		if event.Platform != models.PlatformWhatsApp {
			t.Errorf("unexpected platform %q", event.Platform)
		}
	}

	byCampaign := s.GetAnalyticsByCampaign(1)
	if len(byCampaign) != 2 {
		t.Errorf("expected 2 events for campaign 1, got %d", len(byCampaign))
	}

	if events := s.GetAnalyticsByCampaign(99); len(events) != 0 {
		t.Errorf("expected no events for unknown campaign, got %d", len(events))
	}
}

func TestCreateAnalyticsStampsDate(t *testing.T) {
	s := store.New()
	event := s.CreateAnalytics(models.InsertAnalytics{
		UserID:   1,
		Platform: models.PlatformSMS,
		Metric:   "sent",
		Value:    utils.Pointer(7),
	})

	if event.ID != 1 {
		t.Errorf("expected id 1, got %d", event.ID)
	}
	if event.Value != 7 {
		t.Errorf("expected value 7, got %d", event.Value)
	}
	if event.Date.IsZero() {
		t.Error("expected date to be stamped")
	}
}
