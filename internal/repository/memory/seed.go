package memory

import (
	"time"

	"starryNight/domain"
)

// Seed catalog. Stands in for the marketplace catalog service; the
// tracking/recommendation core only ever reads it.

func SeedArtworks() []domain.Artwork {
	return []domain.Artwork{
		{
			ID:              "1",
			Slug:            "starry-night",
			Title:           "Starry Night",
			Artist:          "Vincent van Gogh",
			ArtistID:        "van-gogh",
			Category:        "Modern",
			Era:             "Post-Impressionism",
			Price:           125000,
			ImageURL:        "/images/artworks/starry-night.jpg",
			Description:     "A swirling night sky over a French village",
			Year:            1889,
			Medium:          "Oil on canvas",
			Dimensions:      "73.7 cm x 92.1 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"night", "sky", "landscape", "swirling", "impressionism", "blue"},
			ColorPalette:    []string{"#0B0F1A", "#4F70E8", "#D4AF37"},
			PopularityScore: 95,
		},
		{
			ID:              "2",
			Slug:            "birth-of-venus",
			Title:           "The Birth of Venus",
			Artist:          "Sandro Botticelli",
			ArtistID:        "botticelli",
			Category:        "Renaissance",
			Era:             "Early Renaissance",
			Price:           185000,
			ImageURL:        "/images/artworks/birth-of-venus.jpg",
			Description:     "The goddess Venus emerging from the sea",
			Year:            1485,
			Medium:          "Tempera on canvas",
			Dimensions:      "172.5 cm x 278.9 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"mythology", "goddess", "renaissance", "classical", "beauty"},
			ColorPalette:    []string{"#F5E6C4", "#6FA8FF", "#D4AF37"},
			PopularityScore: 92,
		},
		{
			ID:              "3",
			Slug:            "great-wave",
			Title:           "The Great Wave",
			Artist:          "Katsushika Hokusai",
			ArtistID:        "hokusai",
			Category:        "Ancient",
			Era:             "Edo Period",
			Price:           95000,
			ImageURL:        "/images/artworks/great-wave.jpg",
			Description:     "A powerful wave threatening boats off Kanagawa",
			Year:            1831,
			Medium:          "Woodblock print",
			Dimensions:      "25.7 cm x 37.8 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"ocean", "wave", "japanese", "ukiyo-e", "nature", "blue"},
			ColorPalette:    []string{"#4F70E8", "#F5E6C4", "#0B0F1A"},
			PopularityScore: 88,
		},
		{
			ID:              "4",
			Slug:            "composition-viii",
			Title:           "Composition VIII",
			Artist:          "Wassily Kandinsky",
			ArtistID:        "kandinsky",
			Category:        "Abstract",
			Era:             "Abstract Art",
			Price:           145000,
			ImageURL:        "/images/artworks/composition-viii.jpg",
			Description:     "Geometric shapes in harmonious composition",
			Year:            1923,
			Medium:          "Oil on canvas",
			Dimensions:      "140 cm x 201 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"abstract", "geometric", "colorful", "modern", "shapes"},
			ColorPalette:    []string{"#D4AF37", "#4F70E8", "#0B0F1A"},
			PopularityScore: 85,
		},
		{
			ID:              "5",
			Slug:            "girl-pearl-earring",
			Title:           "Girl with a Pearl Earring",
			Artist:          "Johannes Vermeer",
			ArtistID:        "vermeer",
			Category:        "Renaissance",
			Era:             "Dutch Golden Age",
			Price:           165000,
			ImageURL:        "/images/artworks/girl-pearl-earring.jpg",
			Description:     "A captivating portrait of a young woman",
			Year:            1665,
			Medium:          "Oil on canvas",
			Dimensions:      "44.5 cm x 39 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"portrait", "dutch", "baroque", "pearl", "woman"},
			ColorPalette:    []string{"#0B0F1A", "#D4AF37", "#F5E6C4"},
			PopularityScore: 90,
		},
		{
			ID:              "6",
			Slug:            "the-scream",
			Title:           "The Scream",
			Artist:          "Edvard Munch",
			ArtistID:        "munch",
			Category:        "Modern",
			Era:             "Expressionism",
			Price:           135000,
			ImageURL:        "/images/artworks/the-scream.jpg",
			Description:     "An iconic image of human anxiety",
			Year:            1893,
			Medium:          "Oil, tempera, pastel and crayon on cardboard",
			Dimensions:      "91 cm x 73.5 cm",
			Featured:        true,
			InStock:         true,
			Tags:            []string{"expressionism", "emotion", "anxiety", "modern", "iconic"},
			ColorPalette:    []string{"#4F70E8", "#D4AF37", "#0B0F1A"},
			PopularityScore: 93,
		},
	}
}

func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "medieval", Name: "Medieval", Description: "Sacred art from the Middle Ages", ImageURL: "/images/categories/medieval.jpg", Count: 24},
		{ID: "ancient", Name: "Ancient", Description: "Timeless pieces from ancient civilizations", ImageURL: "/images/categories/ancient.jpg", Count: 18},
		{ID: "renaissance", Name: "Renaissance", Description: "Masterpieces of rebirth and enlightenment", ImageURL: "/images/categories/renaissance.jpg", Count: 32},
		{ID: "modern", Name: "Modern", Description: "Contemporary expressions of art", ImageURL: "/images/categories/modern.jpg", Count: 45},
		{ID: "abstract", Name: "Abstract", Description: "Non-representational artistic expressions", ImageURL: "/images/categories/abstract.jpg", Count: 28},
		{ID: "pastel", Name: "Pastel", Description: "Soft, delicate color compositions", ImageURL: "/images/categories/pastel.jpg", Count: 21},
		{ID: "minimalist", Name: "Minimalist", Description: "Less is more - refined simplicity", ImageURL: "/images/categories/minimalist.jpg", Count: 19},
		{ID: "oil", Name: "Oil Paintings", Description: "Classic oil on canvas masterworks", ImageURL: "/images/categories/oil.jpg", Count: 38},
	}
}

func SeedArtists() []domain.Artist {
	return []domain.Artist{
		{
			ID:           "van-gogh",
			Slug:         "vincent-van-gogh",
			Name:         "Vincent van Gogh",
			Bio:          "Dutch Post-Impressionist painter known for his bold colors and emotional honesty.",
			ImageURL:     "/images/artists/van-gogh.jpg",
			Era:          "Post-Impressionism",
			StyleTags:    []string{"post-impressionism", "expressionism", "landscape", "portrait"},
			ArtworkCount: 12,
			Featured:     true,
		},
		{
			ID:           "botticelli",
			Slug:         "sandro-botticelli",
			Name:         "Sandro Botticelli",
			Bio:          "Italian painter of the Early Renaissance, known for his graceful figures.",
			ImageURL:     "/images/artists/botticelli.jpg",
			Era:          "Early Renaissance",
			StyleTags:    []string{"renaissance", "classical", "mythology", "portrait"},
			ArtworkCount: 8,
			Featured:     true,
		},
		{
			ID:           "hokusai",
			Slug:         "katsushika-hokusai",
			Name:         "Katsushika Hokusai",
			Bio:          "Japanese artist and printmaker of the Edo period, master of ukiyo-e.",
			ImageURL:     "/images/artists/hokusai.jpg",
			Era:          "Edo Period",
			StyleTags:    []string{"ukiyo-e", "woodblock", "landscape", "nature"},
			ArtworkCount: 15,
			Featured:     true,
		},
		{
			ID:           "kandinsky",
			Slug:         "wassily-kandinsky",
			Name:         "Wassily Kandinsky",
			Bio:          "Russian painter and art theorist, pioneer of abstract art.",
			ImageURL:     "/images/artists/kandinsky.jpg",
			Era:          "Abstract Art",
			StyleTags:    []string{"abstract", "geometric", "expressionism", "modernism"},
			ArtworkCount: 10,
			Featured:     false,
		},
	}
}

func SeedCollections() []domain.CuratedCollection {
	return []domain.CuratedCollection{
		{
			ID:            "collection-001",
			Slug:          "winter-serenity-2026",
			Title:         "Winter Serenity",
			Description:   "A curated selection of artworks capturing the quiet beauty and contemplative mood of winter.",
			Theme:         "seasonal",
			ArtworkIDs:    []string{"1", "3", "5"},
			CoverImageURL: "/images/collections/winter-serenity.jpg",
			CuratorName:   "Sarah Mitchell",
			Featured:      true,
			PublishedAt:   time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "collection-002",
			Slug:          "abstract-pioneers",
			Title:         "Abstract Pioneers",
			Description:   "Celebrating the revolutionary artists who broke free from representational art.",
			Theme:         "artistic_movement",
			ArtworkIDs:    []string{"4"},
			CoverImageURL: "/images/collections/abstract-pioneers.jpg",
			CuratorName:   "James Park",
			Featured:      true,
			PublishedAt:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "collection-003",
			Slug:          "emotional-landscapes",
			Title:         "Emotional Landscapes",
			Description:   "Landscapes that transcend mere representation to capture the emotional essence of place.",
			Theme:         "storytelling",
			ArtworkIDs:    []string{"1", "3", "6"},
			CoverImageURL: "/images/collections/emotional-landscapes.jpg",
			CuratorName:   "Sarah Mitchell",
			Featured:      false,
			PublishedAt:   time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:            "collection-004",
			Slug:          "renaissance-masters",
			Title:         "Renaissance Masters",
			Description:   "Works that exemplify the period's mastery of technique, composition, and humanistic ideals.",
			Theme:         "artistic_movement",
			ArtworkIDs:    []string{"2", "5"},
			CoverImageURL: "/images/collections/renaissance-masters.jpg",
			CuratorName:   "James Park",
			Featured:      true,
			PublishedAt:   time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
		},
	}
}
