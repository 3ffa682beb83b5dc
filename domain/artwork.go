package domain

import "time"

// Artwork is a catalog record. The catalog is a read-only external
// collaborator; the API never mutates it.
type Artwork struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Artist          string   `json:"artist"`
	ArtistID        string   `json:"artistId"`
	Category        string   `json:"category"`
	Era             string   `json:"era"`
	Price           float64  `json:"price"`
	ImageURL        string   `json:"imageUrl"`
	Description     string   `json:"description"`
	Year            int      `json:"year"`
	Medium          string   `json:"medium"`
	Dimensions      string   `json:"dimensions"`
	Featured        bool     `json:"featured"`
	InStock         bool     `json:"inStock"`
	Tags            []string `json:"tags,omitempty"`
	ColorPalette    []string `json:"colorPalette,omitempty"`
	PopularityScore int      `json:"popularityScore,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Count       int    `json:"count"`
}

type Artist struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"imageUrl"`
	Era          string   `json:"era"`
	StyleTags    []string `json:"styleTags,omitempty"`
	ArtworkCount int      `json:"artworkCount"`
	Featured     bool     `json:"featured"`
}

// CuratedCollection groups artworks under an editorial theme.
type CuratedCollection struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Theme         string    `json:"theme"`
	ArtworkIDs    []string  `json:"artworkIds"`
	CoverImageURL string    `json:"coverImageUrl"`
	CuratorName   string    `json:"curatorName"`
	Featured      bool      `json:"featured"`
	PublishedAt   time.Time `json:"publishedAt"`
}
