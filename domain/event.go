package domain

import "fmt"

// EventType discriminates UserEvent variants.
type EventType string

const (
	EventPageView       EventType = "page_view"
	EventArtworkClick   EventType = "artwork_click"
	EventArtworkHover   EventType = "artwork_hover"
	EventScrollDepth    EventType = "scroll_depth"
	EventAddToCart      EventType = "add_to_cart"
	EventRemoveFromCart EventType = "remove_from_cart"
	EventPurchase       EventType = "purchase"
	EventWishlistAdd    EventType = "wishlist_add"
	EventWishlistRemove EventType = "wishlist_remove"
	EventSearchQuery    EventType = "search_query"
	EventCategoryView   EventType = "category_view"
	EventArtistView     EventType = "artist_view"
)

// ClickContext is the UI surface an artwork click came from.
type ClickContext string

const (
	ClickContextHomepage       ClickContext = "homepage"
	ClickContextGallery        ClickContext = "gallery"
	ClickContextRecommendation ClickContext = "recommendation"
	ClickContextSearch         ClickContext = "search"
	ClickContextArtistPage     ClickContext = "artist_page"
)

// UserEvent is one interaction event. EventType decides which of the
// variant fields are required; Validate enforces that per type.
// Timestamp is epoch milliseconds.
type UserEvent struct {
	EventType EventType `json:"eventType"`
	Timestamp int64     `json:"timestamp"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId,omitempty"`

	// page_view / scroll_depth
	PageURL  string `json:"pageUrl,omitempty"`
	Referrer string `json:"referrer,omitempty"`
	Depth    int    `json:"depth,omitempty"`
	MaxDepth int    `json:"maxDepth,omitempty"`

	// artwork_click / artwork_hover / cart / wishlist
	ArtworkID    string       `json:"artworkId,omitempty"`
	ArtworkTitle string       `json:"artworkTitle,omitempty"`
	Category     string       `json:"category,omitempty"`
	Price        float64      `json:"price,omitempty"`
	Position     int          `json:"position,omitempty"`
	Context      ClickContext `json:"context,omitempty"`
	Duration     int64        `json:"duration,omitempty"`
	Quantity     int          `json:"quantity,omitempty"`

	// purchase
	OrderID     string   `json:"orderId,omitempty"`
	ArtworkIDs  []string `json:"artworkIds,omitempty"`
	TotalAmount float64  `json:"totalAmount,omitempty"`
	ItemCount   int      `json:"itemCount,omitempty"`

	// search_query
	Query        string `json:"query,omitempty"`
	ResultsCount int    `json:"resultsCount,omitempty"`

	// category_view / artist_view
	CategoryID   string `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	ArtistID     string `json:"artistId,omitempty"`
	ArtistName   string `json:"artistName,omitempty"`
}

// HasRequiredCommon reports whether the fields every event must carry
// (eventType, timestamp, sessionId) are present. The collector rejects a
// whole batch on the first event failing this check.
func (e UserEvent) HasRequiredCommon() bool {
	return e.EventType != "" && e.Timestamp != 0 && e.SessionID != ""
}

// Validate checks the common fields plus the variant fields the event
// type requires. The switch is exhaustive over EventType so adding a
// variant forces a decision here.
func (e UserEvent) Validate() error {
	if !e.HasRequiredCommon() {
		return fmt.Errorf("event must have eventType, timestamp, and sessionId")
	}

	switch e.EventType {
	case EventPageView:
		if e.PageURL == "" {
			return fmt.Errorf("%s: pageUrl is required", e.EventType)
		}
	case EventScrollDepth:
		if e.PageURL == "" {
			return fmt.Errorf("%s: pageUrl is required", e.EventType)
		}
		if e.Depth < 0 || e.Depth > 100 || e.MaxDepth < 0 || e.MaxDepth > 100 {
			return fmt.Errorf("%s: depth values must be within 0-100", e.EventType)
		}
	case EventArtworkClick:
		if e.ArtworkID == "" {
			return fmt.Errorf("%s: artworkId is required", e.EventType)
		}
		if e.Context == "" {
			return fmt.Errorf("%s: context is required", e.EventType)
		}
	case EventArtworkHover:
		if e.ArtworkID == "" {
			return fmt.Errorf("%s: artworkId is required", e.EventType)
		}
		if e.Duration <= 0 {
			return fmt.Errorf("%s: duration must be positive", e.EventType)
		}
	case EventAddToCart, EventRemoveFromCart:
		if e.ArtworkID == "" {
			return fmt.Errorf("%s: artworkId is required", e.EventType)
		}
		if e.Quantity <= 0 {
			return fmt.Errorf("%s: quantity must be positive", e.EventType)
		}
	case EventWishlistAdd, EventWishlistRemove:
		if e.ArtworkID == "" {
			return fmt.Errorf("%s: artworkId is required", e.EventType)
		}
	case EventPurchase:
		if e.OrderID == "" {
			return fmt.Errorf("%s: orderId is required", e.EventType)
		}
		if len(e.ArtworkIDs) == 0 {
			return fmt.Errorf("%s: artworkIds must be non-empty", e.EventType)
		}
	case EventSearchQuery:
		if e.Query == "" {
			return fmt.Errorf("%s: query is required", e.EventType)
		}
	case EventCategoryView:
		if e.CategoryID == "" {
			return fmt.Errorf("%s: categoryId is required", e.EventType)
		}
	case EventArtistView:
		if e.ArtistID == "" {
			return fmt.Errorf("%s: artistId is required", e.EventType)
		}
	default:
		return fmt.Errorf("unknown event type: %s", e.EventType)
	}

	return nil
}
