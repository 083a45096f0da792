package store

import (
	"sort"
	"time"

	"marketpro/models"
)

// GetContacts returns every contact owned by the user, ordered by id.
func (s *Store) GetContacts(userID int) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Contact
	for _, contact := range s.contacts {
		if contact.UserID == userID {
			out = append(out, cloneContact(contact))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetContact returns the contact with the given id.
func (s *Store) GetContact(id int) (models.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, ok := s.contacts[id]
	if !ok {
		return models.Contact{}, false
	}
	return cloneContact(contact), true
}

// CreateContact stores a new contact. Tags default to an empty list
// and isActive to true when omitted.
func (s *Store) CreateContact(insert models.InsertContact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact := models.Contact{
		ID:         s.nextContactID,
		UserID:     insert.UserID,
		FirstName:  insert.FirstName,
		LastName:   insert.LastName,
		Email:      insert.Email,
		Phone:      insert.Phone,
		Platform:   insert.Platform,
		PlatformID: insert.PlatformID,
		Tags:       insert.Tags,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if contact.Tags == nil {
		contact.Tags = []string{}
	}
	if insert.IsActive != nil {
		contact.IsActive = *insert.IsActive
	}

	s.nextContactID++
	s.contacts[contact.ID] = contact
	return cloneContact(contact)
}

// UpdateContact merges the non-nil fields of the patch onto the stored
// contact. Providing tags replaces the whole list.
func (s *Store) UpdateContact(id int, patch models.ContactUpdate) (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact, ok := s.contacts[id]
	if !ok {
		return models.Contact{}, false
	}

	if patch.FirstName != nil {
		contact.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		contact.LastName = *patch.LastName
	}
	if patch.Email != nil {
		contact.Email = patch.Email
	}
	if patch.Phone != nil {
		contact.Phone = patch.Phone
	}
	if patch.Platform != nil {
		contact.Platform = *patch.Platform
	}
	if patch.PlatformID != nil {
		contact.PlatformID = *patch.PlatformID
	}
	if patch.Tags != nil {
		contact.Tags = *patch.Tags
	}
	if patch.IsActive != nil {
		contact.IsActive = *patch.IsActive
	}

	s.contacts[id] = contact
	return cloneContact(contact), true
}

// DeleteContact removes the contact if present.
func (s *Store) DeleteContact(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		return false
	}
	delete(s.contacts, id)
	return true
}

func cloneContact(c models.Contact) models.Contact {
	tags := make([]string, len(c.Tags))
	copy(tags, c.Tags)
	c.Tags = tags
	return c
}
