package store

import (
	"sync"
	"time"

	"marketpro/models"
)

// Store owns the authoritative in-memory collections for all four
// entity types. Identifiers are per-collection monotonic counters starting at
// 1 and are never reused, even after deletes. A single RWMutex guards
// every collection; fiber handles requests concurrently.
type Store struct {
	mu sync.RWMutex

	users     map[int]models.User
	campaigns map[int]models.Campaign
	contacts  map[int]models.Contact
	analytics map[int]models.Analytics

	nextUserID      int
	nextCampaignID  int
	nextContactID   int
	nextAnalyticsID int
}

// New returns an empty store. Call Seed to load the demo data set.
func New() *Store {
	return &Store{
		users:           make(map[int]models.User),
		campaigns:       make(map[int]models.Campaign),
		contacts:        make(map[int]models.Contact),
		analytics:       make(map[int]models.Analytics),
		nextUserID:      1,
		nextCampaignID:  1,
		nextContactID:   1,
		nextAnalyticsID: 1,
	}
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

// GetUserByUsername scans for a user with the given username.
func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return models.User{}, false
}

// GetUserByEmail scans for a user with the given email.
func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new user. PasswordHash on the insert shape must
// already be hashed; the store never sees a plaintext password.
func (s *Store) CreateUser(insert models.InsertUser, passwordHash string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:           s.nextUserID,
		Username:     insert.Username,
		Email:        insert.Email,
		PasswordHash: passwordHash,
		FirstName:    insert.FirstName,
		LastName:     insert.LastName,
		Company:      insert.Company,
		Plan:         insert.Plan,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if user.Plan == "" {
		user.Plan = models.PlanStarter
	}
	if insert.IsActive != nil {
		user.IsActive = *insert.IsActive
	}

	s.nextUserID++
	s.users[user.ID] = user
	return user
}

// UpdateUser merges the non-nil fields of the patch onto the stored
// user. Uniqueness of username/email is not re-checked here.
func (s *Store) UpdateUser(id int, patch models.UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Company != nil {
		user.Company = patch.Company
	}
	if patch.Plan != nil {
		user.Plan = *patch.Plan
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	s.users[id] = user
	return user, true
}
