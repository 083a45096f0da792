package store

import (
	"sort"
	"time"

	"marketpro/models"
)

// GetAnalytics returns every analytics event recorded for the user,
// ordered by id.
func (s *Store) GetAnalytics(userID int) []models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Analytics
	for _, event := range s.analytics {
		if event.UserID == userID {
			out = append(out, event)
		}
	}
	sortAnalytics(out)
	return out
}

// GetAnalyticsByPlatform filters the user's events by platform.
func (s *Store) GetAnalyticsByPlatform(userID int, platform string) []models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Analytics
	for _, event := range s.analytics {
		if event.UserID == userID && event.Platform == platform {
			out = append(out, event)
		}
	}
	sortAnalytics(out)
	return out
}

// GetAnalyticsByCampaign returns every event attributed to the
// campaign, regardless of owner.
func (s *Store) GetAnalyticsByCampaign(campaignID int) []models.Analytics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Analytics
	for _, event := range s.analytics {
		if event.CampaignID != nil && *event.CampaignID == campaignID {
			out = append(out, event)
		}
	}
	sortAnalytics(out)
	return out
}

// CreateAnalytics records a new event. The store stamps the date.
func (s *Store) CreateAnalytics(insert models.InsertAnalytics) models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value int
	if insert.Value != nil {
		value = *insert.Value
	}
	event := models.Analytics{
		ID:         s.nextAnalyticsID,
		UserID:     insert.UserID,
		CampaignID: insert.CampaignID,
		Platform:   insert.Platform,
		Metric:     insert.Metric,
		Value:      value,
		Date:       time.Now(),
	}

	s.nextAnalyticsID++
	s.analytics[event.ID] = event
	return event
}

func sortAnalytics(events []models.Analytics) {
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
}
