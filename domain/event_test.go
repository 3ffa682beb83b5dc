package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRequiredCommon(t *testing.T) {
	event := UserEvent{EventType: EventPageView, Timestamp: 1, SessionID: "s"}
	assert.True(t, event.HasRequiredCommon())

	assert.False(t, UserEvent{Timestamp: 1, SessionID: "s"}.HasRequiredCommon())
	assert.False(t, UserEvent{EventType: EventPageView, SessionID: "s"}.HasRequiredCommon())
	assert.False(t, UserEvent{EventType: EventPageView, Timestamp: 1}.HasRequiredCommon())
}

func TestValidatePerType(t *testing.T) {
	base := UserEvent{Timestamp: 1, SessionID: "s"}

	cases := []struct {
		name    string
		mutate  func(e *UserEvent)
		wantErr bool
	}{
		{"page view with url", func(e *UserEvent) {
			e.EventType = EventPageView
			e.PageURL = "/gallery"
		}, false},
		{"page view without url", func(e *UserEvent) {
			e.EventType = EventPageView
		}, true},
		{"scroll depth in range", func(e *UserEvent) {
			e.EventType = EventScrollDepth
			e.PageURL = "/gallery"
			e.Depth = 60
			e.MaxDepth = 80
		}, false},
		{"scroll depth out of range", func(e *UserEvent) {
			e.EventType = EventScrollDepth
			e.PageURL = "/gallery"
			e.Depth = 120
		}, true},
		{"click without context", func(e *UserEvent) {
			e.EventType = EventArtworkClick
			e.ArtworkID = "1"
		}, true},
		{"click complete", func(e *UserEvent) {
			e.EventType = EventArtworkClick
			e.ArtworkID = "1"
			e.Context = ClickContextGallery
		}, false},
		{"hover needs positive duration", func(e *UserEvent) {
			e.EventType = EventArtworkHover
			e.ArtworkID = "1"
		}, true},
		{"cart needs quantity", func(e *UserEvent) {
			e.EventType = EventAddToCart
			e.ArtworkID = "1"
		}, true},
		{"purchase needs artworks", func(e *UserEvent) {
			e.EventType = EventPurchase
			e.OrderID = "order-1"
		}, true},
		{"purchase complete", func(e *UserEvent) {
			e.EventType = EventPurchase
			e.OrderID = "order-1"
			e.ArtworkIDs = []string{"1"}
		}, false},
		{"search needs query", func(e *UserEvent) {
			e.EventType = EventSearchQuery
		}, true},
		{"unknown type", func(e *UserEvent) {
			e.EventType = EventType("mystery")
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := base
			tc.mutate(&event)

			err := event.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
