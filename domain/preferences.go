package domain

// PriceRange tracks a user's observed price comfort zone.
type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// UserPreferences is the evolving per-session taste profile.
// Affinity scores are normalized 0-1. Timestamps are epoch milliseconds.
type UserPreferences struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`

	CategoryAffinity map[string]float64 `json:"categoryAffinity"`
	PriceRange       PriceRange         `json:"priceRange"`
	ColorPreferences []string           `json:"colorPreferences"`
	StyleAffinity    map[string]float64 `json:"styleAffinity"`
	EraAffinity      map[string]float64 `json:"eraAffinity"`
	FavoriteArtists  []string           `json:"favoriteArtists"`

	PurchaseFrequency      float64 `json:"purchaseFrequency"`
	AverageSessionDuration float64 `json:"averageSessionDuration"`
	TotalSpent             float64 `json:"totalSpent"`

	FirstSeen int64 `json:"firstSeen"`
	LastSeen  int64 `json:"lastSeen"`
	UpdatedAt int64 `json:"updatedAt"`
}

// PrivacySettings is the per-session consent record. All flags default
// to enabled; users opt out.
type PrivacySettings struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`

	PersonalizationEnabled bool `json:"personalizationEnabled"`
	TrackingEnabled        bool `json:"trackingEnabled"`
	AnalyticsEnabled       bool `json:"analyticsEnabled"`

	ConsentGivenAt   int64 `json:"consentGivenAt,omitempty"`
	ConsentUpdatedAt int64 `json:"consentUpdatedAt,omitempty"`
}

// PrivacyUpdate carries a partial consent change; nil fields keep the
// current value.
type PrivacyUpdate struct {
	PersonalizationEnabled *bool `json:"personalizationEnabled,omitempty"`
	TrackingEnabled        *bool `json:"trackingEnabled,omitempty"`
	AnalyticsEnabled       *bool `json:"analyticsEnabled,omitempty"`
}
