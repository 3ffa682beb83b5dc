package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"starryNight/domain"
	"starryNight/pkg/logger"
	"starryNight/pkg/utils"
)

// StorageKey is the single key the store persists under.
const StorageKey = "starry-night-recommendations"

// maxEventHistory bounds the in-memory interaction history.
const maxEventHistory = 100

// Storage is the durable key/value backend. Values are opaque strings.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// persistedState is the subset of the store that survives restarts.
// Events and the recommendation cache are deliberately volatile.
type persistedState struct {
	SessionID       string                  `json:"sessionId"`
	UserID          string                  `json:"userId,omitempty"`
	Preferences     *domain.UserPreferences `json:"preferences"`
	PrivacySettings domain.PrivacySettings  `json:"privacySettings"`
}

// Store holds one visitor's session: interaction history, taste
// profile, consent flags and the recommendation cache. All methods are
// safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	storage Storage
	now     func() time.Time

	sessionID   string
	userID      string
	events      []domain.UserEvent
	preferences *domain.UserPreferences
	privacy     domain.PrivacySettings
	cache       *domain.RecommendationCache
}

func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		now:     time.Now,
	}
}

func generateSessionID(now time.Time) string {
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), utils.RandBase36(9))
}

// DefaultPrivacySettings starts fully enabled; users opt out.
func DefaultPrivacySettings(sessionID string) domain.PrivacySettings {
	return domain.PrivacySettings{
		SessionID:              sessionID,
		PersonalizationEnabled: true,
		TrackingEnabled:        true,
		AnalyticsEnabled:       true,
	}
}

// DefaultPreferences is the cold-start taste profile.
func DefaultPreferences(sessionID string, now time.Time) domain.UserPreferences {
	millis := now.UnixMilli()
	return domain.UserPreferences{
		SessionID:        sessionID,
		CategoryAffinity: map[string]float64{},
		PriceRange: domain.PriceRange{
			Min:     0,
			Max:     500000,
			Average: 150000,
		},
		ColorPreferences: []string{},
		StyleAffinity:    map[string]float64{},
		EraAffinity:      map[string]float64{},
		FavoriteArtists:  []string{},
		FirstSeen:        millis,
		LastSeen:         millis,
		UpdatedAt:        millis,
	}
}

// Load restores a persisted session, or initializes a fresh one when
// nothing is stored or the stored blob is unreadable.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if ok {
		var state persistedState
		if err := json.Unmarshal([]byte(raw), &state); err == nil && state.SessionID != "" {
			s.mu.Lock()
			s.sessionID = state.SessionID
			s.userID = state.UserID
			s.preferences = state.Preferences
			s.privacy = state.PrivacySettings
			s.events = nil
			s.cache = nil
			s.mu.Unlock()
			return nil
		}
		logger.Warn("discarding unreadable session state")
	}

	s.InitializeSession(ctx)

	return nil
}

// InitializeSession starts a new session: fresh id, empty history,
// default preferences and privacy settings. Returns the new id.
func (s *Store) InitializeSession(ctx context.Context) string {
	s.mu.Lock()

	sessionID := generateSessionID(s.now())
	prefs := DefaultPreferences(sessionID, s.now())

	s.sessionID = sessionID
	s.events = nil
	s.cache = nil
	s.preferences = &prefs
	s.privacy = DefaultPrivacySettings(sessionID)

	s.mu.Unlock()

	s.persist(ctx)

	return sessionID
}

func (s *Store) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Store) SetUserID(ctx context.Context, userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()

	s.persist(ctx)
}

// TrackEvent appends to the interaction history unless tracking is
// disabled. History is capped to the most recent entries.
func (s *Store) TrackEvent(event domain.UserEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.privacy.TrackingEnabled {
		return
	}

	s.events = append(s.events, event)
	if len(s.events) > maxEventHistory {
		s.events = s.events[len(s.events)-maxEventHistory:]
	}
}

func (s *Store) ClearEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

func (s *Store) Events() []domain.UserEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.UserEvent, len(s.events))
	copy(out, s.events)

	return out
}

func (s *Store) EventsByType(eventType domain.EventType) []domain.UserEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.UserEvent
	for _, e := range s.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}

	return out
}

func (s *Store) Preferences() *domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.preferences == nil {
		return nil
	}

	prefs := *s.preferences

	return &prefs
}

func (s *Store) SetPreferences(ctx context.Context, preferences domain.UserPreferences) {
	s.mu.Lock()
	s.preferences = &preferences
	s.mu.Unlock()

	s.persist(ctx)
}

// UpdateCategoryAffinity sets the absolute affinity for one category
// and stamps updatedAt. No-op before preferences exist.
func (s *Store) UpdateCategoryAffinity(ctx context.Context, category string, score float64) {
	s.mu.Lock()

	if s.preferences == nil {
		s.mu.Unlock()
		return
	}

	if s.preferences.CategoryAffinity == nil {
		s.preferences.CategoryAffinity = map[string]float64{}
	}
	s.preferences.CategoryAffinity[category] = score
	s.preferences.UpdatedAt = s.now().UnixMilli()

	s.mu.Unlock()

	s.persist(ctx)
}

// UpdatePriceRange replaces the observed price band. The average is
// derived, not tracked.
func (s *Store) UpdatePriceRange(ctx context.Context, min, max float64) {
	s.mu.Lock()

	if s.preferences == nil {
		s.mu.Unlock()
		return
	}

	s.preferences.PriceRange = domain.PriceRange{
		Min:     min,
		Max:     max,
		Average: (min + max) / 2,
	}
	s.preferences.UpdatedAt = s.now().UnixMilli()

	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Store) SetRecommendationCache(cache domain.RecommendationCache) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = &cache
}

func (s *Store) ClearRecommendationCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}

func (s *Store) RecommendationCache() *domain.RecommendationCache {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		return nil
	}

	cache := *s.cache

	return &cache
}

func (s *Store) IsCacheValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache == nil {
		return false
	}

	return s.now().UnixMilli() < s.cache.ExpiresAt
}

// SetPrivacySettings merges a partial consent update and stamps
// consentUpdatedAt. The first update also stamps consentGivenAt.
func (s *Store) SetPrivacySettings(ctx context.Context, update domain.PrivacyUpdate) {
	s.mu.Lock()

	if update.PersonalizationEnabled != nil {
		s.privacy.PersonalizationEnabled = *update.PersonalizationEnabled
	}
	if update.TrackingEnabled != nil {
		s.privacy.TrackingEnabled = *update.TrackingEnabled
	}
	if update.AnalyticsEnabled != nil {
		s.privacy.AnalyticsEnabled = *update.AnalyticsEnabled
	}

	millis := s.now().UnixMilli()
	if s.privacy.ConsentGivenAt == 0 {
		s.privacy.ConsentGivenAt = millis
	}
	s.privacy.ConsentUpdatedAt = millis

	s.mu.Unlock()

	s.persist(ctx)
}

func (s *Store) PrivacySettings() domain.PrivacySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.privacy
}

func (s *Store) IsTrackingEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.privacy.TrackingEnabled
}

func (s *Store) IsPersonalizationEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.privacy.PersonalizationEnabled
}

// persist writes the durable subset. Best effort: a failed write keeps
// the in-memory state authoritative.
func (s *Store) persist(ctx context.Context) {
	s.mu.Lock()
	state := persistedState{
		SessionID:       s.sessionID,
		UserID:          s.userID,
		Preferences:     s.preferences,
		PrivacySettings: s.privacy,
	}
	s.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		logger.Error("failed to marshal session state", err.Error())
		return
	}

	if err := s.storage.Set(ctx, StorageKey, string(raw)); err != nil {
		logger.Warn("failed to persist session state", "error", err.Error())
	}
}
