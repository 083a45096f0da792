package store

import (
	"sort"
	"time"

	"marketpro/models"
)

// GetCampaigns returns every campaign owned by the user, ordered by id.
func (s *Store) GetCampaigns(userID int) []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Campaign
	for _, campaign := range s.campaigns {
		if campaign.UserID == userID {
			out = append(out, cloneCampaign(campaign))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetCampaign returns the campaign with the given id.
func (s *Store) GetCampaign(id int) (models.Campaign, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaign, ok := s.campaigns[id]
	if !ok {
		return models.Campaign{}, false
	}
	return cloneCampaign(campaign), true
}

// CreateCampaign stores a new campaign. Status defaults to draft,
// stats start empty and sentAt stays unset until a send operation
// fills it in.
func (s *Store) CreateCampaign(insert models.InsertCampaign) models.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign := models.Campaign{
		ID:             s.nextCampaignID,
		UserID:         insert.UserID,
		Name:           insert.Name,
		Platform:       insert.Platform,
		Status:         insert.Status,
		TargetAudience: insert.TargetAudience,
		Message:        insert.Message,
		ScheduledAt:    insert.ScheduledAt,
		Stats:          models.CampaignStats{},
		CreatedAt:      time.Now(),
	}
	if campaign.Status == "" {
		campaign.Status = models.StatusDraft
	}

	s.nextCampaignID++
	s.campaigns[campaign.ID] = campaign
	return cloneCampaign(campaign)
}

// UpdateCampaign merges the non-nil fields of the patch onto the
// stored campaign. Providing stats replaces the whole map.
func (s *Store) UpdateCampaign(id int, patch models.CampaignUpdate) (models.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[id]
	if !ok {
		return models.Campaign{}, false
	}

	if patch.Name != nil {
		campaign.Name = *patch.Name
	}
	if patch.Platform != nil {
		campaign.Platform = *patch.Platform
	}
	if patch.Status != nil {
		campaign.Status = *patch.Status
	}
	if patch.TargetAudience != nil {
		campaign.TargetAudience = patch.TargetAudience
	}
	if patch.Message != nil {
		campaign.Message = *patch.Message
	}
	if patch.ScheduledAt != nil {
		campaign.ScheduledAt = patch.ScheduledAt
	}
	if patch.Stats != nil {
		campaign.Stats = *patch.Stats
	}

	s.campaigns[id] = campaign
	return cloneCampaign(campaign), true
}

// DeleteCampaign removes the campaign if present. The id is never
// handed out again.
func (s *Store) DeleteCampaign(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[id]; !ok {
		return false
	}
	delete(s.campaigns, id)
	return true
}

// cloneCampaign copies the stats map so callers cannot mutate stored
// state behind the lock.
func cloneCampaign(c models.Campaign) models.Campaign {
	stats := make(models.CampaignStats, len(c.Stats))
	for k, v := range c.Stats {
		stats[k] = v
	}
	c.Stats = stats
	return c
}
