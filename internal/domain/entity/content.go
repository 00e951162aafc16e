package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentStatus represents the editorial state of an article or guide.
type ContentStatus string

const (
	// ContentStatusDraft means the piece is only visible to its author and admins.
	ContentStatusDraft ContentStatus = "draft"
	// ContentStatusPublished means the piece is publicly visible once its
	// publication time has passed.
	ContentStatusPublished ContentStatus = "published"
	// ContentStatusArchived means the piece has been withdrawn from the public feed.
	ContentStatusArchived ContentStatus = "archived"
)

// String returns the string representation of the ContentStatus.
func (s ContentStatus) String() string {
	return string(s)
}

// IsValid checks if the ContentStatus is a valid value.
func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished, ContentStatusArchived:
		return true
	default:
		return false
	}
}

// ContentType classifies a piece of educational content.
type ContentType string

const (
	ContentTypeArticle     ContentType = "article"
	ContentTypeGuide       ContentType = "guide"
	ContentTypeTip         ContentType = "tip"
	ContentTypeNews        ContentType = "news"
	ContentTypeVideo       ContentType = "video"
	ContentTypeInfographic ContentType = "infographic"
)

// IsValid checks if the ContentType is a valid value.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeGuide, ContentTypeTip,
		ContentTypeNews, ContentTypeVideo, ContentTypeInfographic:
		return true
	default:
		return false
	}
}

// ContentCategories maps category keys to their display labels, used by the
// public taxonomy endpoint and as the allowed set for content categorization.
var ContentCategories = map[string]string{
	"crop_production":     "Crop Production",
	"livestock":           "Livestock",
	"soil_management":     "Soil Management",
	"pest_control":        "Pest Control",
	"irrigation":          "Irrigation",
	"fertilizers":         "Fertilizers",
	"harvesting":          "Harvesting",
	"post_harvest":        "Post Harvest",
	"marketing":           "Marketing",
	"finance":             "Finance",
	"technology":          "Technology",
	"weather":             "Weather",
	"government_programs": "Government Programs",
	"cooperatives":        "Cooperatives",
	"organic_farming":     "Organic Farming",
}

// Content is an educational article, guide, or video authored by an
// extension officer or admin.
type Content struct {
	ID            uuid.UUID     // The unique identifier for the content.
	AuthorID      uuid.UUID     // The authoring user.
	Title         string        // Headline.
	Slug          string        // URL-safe identifier derived from the title.
	Body          string        // Article body or video description.
	Type          ContentType   // Classification of the piece.
	Status        ContentStatus // Editorial state.
	Language      Language      // Language of the body text.
	Category      string        // Topic category, e.g. "crop-management".
	Tags          []string      // Search tags.
	CoverImageURL string        // Optional cover image.
	VideoURL      string        // Optional video link for video content.
	ViewsCount    int           // Raw view counter, incremented on each read.
	PublishedAt   *time.Time    // First publication time; stamped once.
	CreatedAt     time.Time     // Timestamp of creation.
	UpdatedAt     time.Time     // Timestamp of the last modification.
}

// IsVisible reports whether the piece is publicly readable at the given
// instant. Both conditions must hold: the status is published and the
// publication time is not in the future.
func (c *Content) IsVisible(now time.Time) bool {
	return c.Status == ContentStatusPublished &&
		c.PublishedAt != nil &&
		!c.PublishedAt.After(now)
}

// Publish moves the piece to the published state. The publication timestamp
// is stamped on the first publish only, so re-publishing an archived piece
// keeps its original publication time.
func (c *Content) Publish(now time.Time) {
	c.Status = ContentStatusPublished
	if c.PublishedAt == nil {
		t := now
		c.PublishedAt = &t
	}
}

// Archive withdraws the piece from the public feed.
func (c *Content) Archive() {
	c.Status = ContentStatusArchived
}
