package recommend

import "starryNight/domain"

// Pairwise similarity weights. Scores are additive, so the reachable
// values are sums of subsets of {0.5, 0.3, 0.2}.
const (
	categoryWeight   = 0.5
	eraWeight        = 0.3
	priceWeight      = 0.2
	priceBandPercent = 0.3
)

// Trending decay. The i-th featured artwork (0-based) scores
// trendingBase - i*trendingStep.
const (
	trendingBase = 0.8
	trendingStep = 0.05
)

// similarity scores a candidate against the reference artwork.
func similarity(reference, candidate domain.Artwork) float64 {
	score := 0.0

	if candidate.Category == reference.Category {
		score += categoryWeight
	}

	if candidate.Era == reference.Era {
		score += eraWeight
	}

	// Price proximity is relative to the reference price, so the
	// relation is not symmetric between the two artworks.
	if reference.Price > 0 {
		diff := candidate.Price - reference.Price
		if diff < 0 {
			diff = -diff
		}
		if diff/reference.Price < priceBandPercent {
			score += priceWeight
		}
	}

	return score
}

func summarize(a domain.Artwork) domain.ArtworkSummary {
	return domain.ArtworkSummary{
		ID:       a.ID,
		Title:    a.Title,
		Artist:   a.Artist,
		ArtistID: a.ArtistID,
		Category: a.Category,
		Price:    a.Price,
		ImageURL: a.ImageURL,
		Featured: a.Featured,
	}
}
