package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"starryNight/business/session"
	"starryNight/business/tracking"
	"starryNight/domain"
	redisRepo "starryNight/internal/repository/redis"
	"starryNight/pkg/config"
	"starryNight/pkg/database/redis"
	"starryNight/pkg/logger"
)

// tracker-sim drives the client-side tracking pipeline against a
// running collector: it restores (or creates) a session, replays a
// short browsing journey, and flushes the queue. Useful for smoke
// testing the batching and retry path end to end.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	redisClient, err := redis.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redis.CloseRedisClient(redisClient)

	ctx := context.Background()

	store := session.NewStore(redisRepo.NewStorage(redisClient, "starry-night"))
	if err := store.Load(ctx); err != nil {
		logger.Fatal("Failed to load session", "error", err)
	}
	logger.Info("Session ready", "session_id", store.SessionID())

	sender := tracking.NewHTTPSender(cfg.Tracking.CollectorURL, 10*time.Second)
	failedStore := redisRepo.NewFailedEventRepository(redisClient, cfg.Tracking.RetryCap)
	queue := tracking.NewQueue(sender, failedStore, cfg.Tracking.MaxQueueSize, cfg.Tracking.BatchInterval)

	tracker := tracking.NewTracker(store, queue, sender, failedStore)
	tracker.RetryFailedEvents(ctx)

	// A short browsing journey.
	tracker.TrackPageView("/", "")
	tracker.TrackPageView("/gallery", "/")
	tracker.TrackScrollDepth("/gallery", 60, 80)
	tracker.TrackArtworkClick("1", "Starry Night", "Modern", 125000, 1, domain.ClickContextGallery)
	tracker.TrackArtworkHover("6", 2300)
	tracker.TrackSearch("van gogh", 1)
	tracker.TrackWishlistAdd("1")
	tracker.TrackAddToCart("1", 125000, 1)

	store.UpdateCategoryAffinity(ctx, "Modern", 0.8)

	if err := tracker.Flush(ctx); err != nil {
		logger.Warn("Flush failed, events preserved for retry", "error", err.Error())
		return
	}

	logger.Info("Journey delivered", "events_recorded", len(store.Events()))

	// Warm the client-side recommendation cache.
	result, err := fetchRecommendations(ctx, cfg, store.SessionID())
	if err != nil {
		logger.Warn("Failed to fetch recommendations", "error", err.Error())
		return
	}

	now := time.Now()
	store.SetRecommendationCache(domain.RecommendationCache{
		SessionID: store.SessionID(),
		Homepage:  result,
		CachedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(cfg.Tracking.CacheTTL).UnixMilli(),
	})
	logger.Info("Recommendation cache warmed",
		"count", len(result.Recommendations),
		"algorithm", result.Metadata.Algorithm,
		"valid", store.IsCacheValid(),
	)
}

// fetchRecommendations asks the API for homepage recommendations. The
// endpoint lives next to the collector.
func fetchRecommendations(ctx context.Context, cfg *config.Config, sessionID string) (*domain.RecommendationResponse, error) {
	base := strings.TrimSuffix(cfg.Tracking.CollectorURL, "/tracking")
	url := fmt.Sprintf("%s/recommendations?sessionId=%s&context=homepage", base, sessionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recommendations responded with status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool                           `json:"success"`
		Data    *domain.RecommendationResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if !envelope.Success || envelope.Data == nil {
		return nil, fmt.Errorf("recommendations request was not successful")
	}

	return envelope.Data, nil
}
