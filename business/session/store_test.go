package session

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starryNight/domain"
	"starryNight/internal/repository/memory"
)

var sessionIDPattern = regexp.MustCompile(`^session_\d+_[0-9a-z]{9}$`)

func boolPtr(b bool) *bool { return &b }

func TestInitializeSessionResetsState(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())

	first := store.InitializeSession(ctx)
	assert.Regexp(t, sessionIDPattern, first)

	store.TrackEvent(domain.UserEvent{EventType: domain.EventPageView, Timestamp: 1, SessionID: first})
	require.Len(t, store.Events(), 1)

	second := store.InitializeSession(ctx)
	assert.NotEqual(t, first, second)
	assert.Empty(t, store.Events())

	prefs := store.Preferences()
	require.NotNil(t, prefs)
	assert.Equal(t, second, prefs.SessionID)
	assert.Equal(t, domain.PriceRange{Min: 0, Max: 500000, Average: 150000}, prefs.PriceRange)

	privacy := store.PrivacySettings()
	assert.True(t, privacy.TrackingEnabled)
	assert.True(t, privacy.PersonalizationEnabled)
	assert.True(t, privacy.AnalyticsEnabled)
}

func TestTrackEventRespectsPrivacy(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())
	store.InitializeSession(ctx)

	store.SetPrivacySettings(ctx, domain.PrivacyUpdate{TrackingEnabled: boolPtr(false)})
	store.TrackEvent(domain.UserEvent{EventType: domain.EventPageView, Timestamp: 1, SessionID: store.SessionID()})

	assert.Empty(t, store.Events())
}

func TestTrackEventCapsHistory(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())
	store.InitializeSession(ctx)

	for i := 0; i < maxEventHistory+20; i++ {
		store.TrackEvent(domain.UserEvent{
			EventType: domain.EventPageView,
			Timestamp: int64(i),
			SessionID: store.SessionID(),
			PageURL:   fmt.Sprintf("/page/%d", i),
		})
	}

	events := store.Events()
	require.Len(t, events, maxEventHistory)
	// Oldest entries are dropped first.
	assert.Equal(t, int64(20), events[0].Timestamp)
}

func TestEventsByType(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())
	store.InitializeSession(ctx)

	store.TrackEvent(domain.UserEvent{EventType: domain.EventPageView, Timestamp: 1, SessionID: store.SessionID()})
	store.TrackEvent(domain.UserEvent{EventType: domain.EventArtworkClick, Timestamp: 2, SessionID: store.SessionID()})
	store.TrackEvent(domain.UserEvent{EventType: domain.EventPageView, Timestamp: 3, SessionID: store.SessionID()})

	assert.Len(t, store.EventsByType(domain.EventPageView), 2)
	assert.Len(t, store.EventsByType(domain.EventPurchase), 0)
}

func TestPreferenceUpdatesStampUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())

	// Before a session exists there are no preferences to update.
	store.UpdateCategoryAffinity(ctx, "Modern", 0.8)
	assert.Nil(t, store.Preferences())

	store.InitializeSession(ctx)

	later := time.Now().Add(time.Hour)
	store.now = func() time.Time { return later }

	store.UpdateCategoryAffinity(ctx, "Modern", 0.8)
	prefs := store.Preferences()
	require.NotNil(t, prefs)
	assert.Equal(t, 0.8, prefs.CategoryAffinity["Modern"])
	assert.Equal(t, later.UnixMilli(), prefs.UpdatedAt)

	store.UpdatePriceRange(ctx, 100, 300)
	prefs = store.Preferences()
	assert.Equal(t, domain.PriceRange{Min: 100, Max: 300, Average: 200}, prefs.PriceRange)
}

func TestCacheValidity(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())
	store.InitializeSession(ctx)

	assert.False(t, store.IsCacheValid())

	now := time.Now()
	store.now = func() time.Time { return now }
	store.SetRecommendationCache(domain.RecommendationCache{
		SessionID: store.SessionID(),
		CachedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(5 * time.Minute).UnixMilli(),
	})
	assert.True(t, store.IsCacheValid())

	store.now = func() time.Time { return now.Add(6 * time.Minute) }
	assert.False(t, store.IsCacheValid())

	store.ClearRecommendationCache()
	assert.Nil(t, store.RecommendationCache())
}

func TestPrivacyPartialUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())
	store.InitializeSession(ctx)

	store.SetPrivacySettings(ctx, domain.PrivacyUpdate{AnalyticsEnabled: boolPtr(false)})

	privacy := store.PrivacySettings()
	assert.False(t, privacy.AnalyticsEnabled)
	assert.True(t, privacy.TrackingEnabled)
	assert.True(t, privacy.PersonalizationEnabled)
	require.NotZero(t, privacy.ConsentGivenAt)
	assert.Equal(t, privacy.ConsentGivenAt, privacy.ConsentUpdatedAt)

	given := privacy.ConsentGivenAt
	store.now = func() time.Time { return time.Now().Add(time.Hour) }
	store.SetPrivacySettings(ctx, domain.PrivacyUpdate{TrackingEnabled: boolPtr(false)})

	privacy = store.PrivacySettings()
	assert.Equal(t, given, privacy.ConsentGivenAt)
	assert.Greater(t, privacy.ConsentUpdatedAt, given)
	assert.False(t, store.IsTrackingEnabled())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := memory.NewStorage()

	first := NewStore(storage)
	sessionID := first.InitializeSession(ctx)
	first.SetUserID(ctx, "user-7")
	first.UpdateCategoryAffinity(ctx, "Abstract", 0.6)
	first.TrackEvent(domain.UserEvent{EventType: domain.EventPageView, Timestamp: 1, SessionID: sessionID})

	second := NewStore(storage)
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, sessionID, second.SessionID())
	assert.Equal(t, "user-7", second.UserID())

	prefs := second.Preferences()
	require.NotNil(t, prefs)
	assert.Equal(t, 0.6, prefs.CategoryAffinity["Abstract"])

	// Events are volatile and never restored.
	assert.Empty(t, second.Events())
}

func TestLoadWithoutPersistedStateInitializes(t *testing.T) {
	ctx := context.Background()
	store := NewStore(memory.NewStorage())

	require.NoError(t, store.Load(ctx))
	assert.Regexp(t, sessionIDPattern, store.SessionID())
	require.NotNil(t, store.Preferences())
}
