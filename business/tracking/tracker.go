package tracking

import (
	"context"
	"time"

	"starryNight/business/session"
	"starryNight/domain"
	"starryNight/pkg/logger"
)

// Tracker builds typed events for one session and feeds them into the
// queue. Every Track method checks the session's consent flags first;
// with tracking disabled no event is constructed at all.
type Tracker struct {
	session *session.Store
	queue   *Queue
	failed  FailedEventStore
	sender  Sender
	now     func() time.Time
}

func NewTracker(store *session.Store, queue *Queue, sender Sender, failed FailedEventStore) *Tracker {
	return &Tracker{
		session: store,
		queue:   queue,
		failed:  failed,
		sender:  sender,
		now:     time.Now,
	}
}

// RetryFailedEvents drains the failed-event store and attempts one
// redelivery. Events that fail again go back to the store. Called once
// per tracker initialization, not on a schedule.
func (t *Tracker) RetryFailedEvents(ctx context.Context) {
	events, err := t.failed.Drain(ctx)
	if err != nil {
		logger.Warn("failed to drain undelivered events", "error", err.Error())
		return
	}
	if len(events) == 0 {
		return
	}

	if err := t.sender.Send(ctx, events); err != nil {
		logger.Warn("redelivery failed, preserving events", "count", len(events), "error", err.Error())
		if storeErr := t.failed.Append(ctx, events); storeErr != nil {
			logger.Error("failed to preserve events after redelivery", storeErr.Error())
		}
		return
	}

	logger.Info("redelivered previously failed events", "count", len(events))
}

// Flush forces delivery of everything pending.
func (t *Tracker) Flush(ctx context.Context) error {
	return t.queue.Flush(ctx)
}

func (t *Tracker) baseEvent(eventType domain.EventType) domain.UserEvent {
	return domain.UserEvent{
		EventType: eventType,
		Timestamp: t.now().UnixMilli(),
		SessionID: t.session.SessionID(),
		UserID:    t.session.UserID(),
	}
}

func (t *Tracker) submit(event domain.UserEvent) {
	t.session.TrackEvent(event)
	t.queue.Add(event)
	EventsQueuedTotal.WithLabelValues(string(event.EventType)).Inc()
}

func (t *Tracker) TrackPageView(pageURL, referrer string) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventPageView)
	event.PageURL = pageURL
	event.Referrer = referrer
	t.submit(event)
}

func (t *Tracker) TrackArtworkClick(artworkID, artworkTitle, category string, price float64, position int, context domain.ClickContext) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventArtworkClick)
	event.ArtworkID = artworkID
	event.ArtworkTitle = artworkTitle
	event.Category = category
	event.Price = price
	event.Position = position
	event.Context = context
	t.submit(event)
}

func (t *Tracker) TrackArtworkHover(artworkID string, duration int64) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventArtworkHover)
	event.ArtworkID = artworkID
	event.Duration = duration
	t.submit(event)
}

func (t *Tracker) TrackScrollDepth(pageURL string, depth, maxDepth int) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventScrollDepth)
	event.PageURL = pageURL
	event.Depth = depth
	event.MaxDepth = maxDepth
	t.submit(event)
}

func (t *Tracker) TrackAddToCart(artworkID string, price float64, quantity int) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventAddToCart)
	event.ArtworkID = artworkID
	event.Price = price
	event.Quantity = quantity
	t.submit(event)
}

func (t *Tracker) TrackRemoveFromCart(artworkID string, price float64, quantity int) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventRemoveFromCart)
	event.ArtworkID = artworkID
	event.Price = price
	event.Quantity = quantity
	t.submit(event)
}

func (t *Tracker) TrackPurchase(orderID string, artworkIDs []string, totalAmount float64, itemCount int) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventPurchase)
	event.OrderID = orderID
	event.ArtworkIDs = artworkIDs
	event.TotalAmount = totalAmount
	event.ItemCount = itemCount
	t.submit(event)
}

func (t *Tracker) TrackWishlistAdd(artworkID string) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventWishlistAdd)
	event.ArtworkID = artworkID
	t.submit(event)
}

func (t *Tracker) TrackWishlistRemove(artworkID string) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventWishlistRemove)
	event.ArtworkID = artworkID
	t.submit(event)
}

func (t *Tracker) TrackSearch(query string, resultsCount int) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventSearchQuery)
	event.Query = query
	event.ResultsCount = resultsCount
	t.submit(event)
}

func (t *Tracker) TrackCategoryView(categoryID, categoryName string) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventCategoryView)
	event.CategoryID = categoryID
	event.CategoryName = categoryName
	t.submit(event)
}

func (t *Tracker) TrackArtistView(artistID, artistName string) {
	if !t.session.IsTrackingEnabled() {
		return
	}

	event := t.baseEvent(domain.EventArtistView)
	event.ArtistID = artistID
	event.ArtistName = artistName
	t.submit(event)
}
