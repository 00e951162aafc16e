package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_IsVisible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	draft := &Content{Status: ContentStatusDraft}
	assert.False(t, draft.IsVisible(now))

	published := &Content{Status: ContentStatusPublished, PublishedAt: &past}
	assert.True(t, published.IsVisible(now))

	scheduled := &Content{Status: ContentStatusPublished, PublishedAt: &future}
	assert.False(t, scheduled.IsVisible(now))

	archived := &Content{Status: ContentStatusArchived, PublishedAt: &past}
	assert.False(t, archived.IsVisible(now))

	missingStamp := &Content{Status: ContentStatusPublished}
	assert.False(t, missingStamp.IsVisible(now))
}

func TestContent_Publish_StampsOnce(t *testing.T) {
	content := &Content{Status: ContentStatusDraft}

	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	content.Publish(first)
	require.NotNil(t, content.PublishedAt)
	assert.Equal(t, first, *content.PublishedAt)
	assert.Equal(t, ContentStatusPublished, content.Status)

	content.Archive()
	assert.Equal(t, ContentStatusArchived, content.Status)

	// Re-publishing keeps the original publication time.
	content.Publish(first.Add(30 * 24 * time.Hour))
	assert.Equal(t, first, *content.PublishedAt)
	assert.Equal(t, ContentStatusPublished, content.Status)
}

func TestContentType_IsValid(t *testing.T) {
	valid := []ContentType{
		ContentTypeArticle, ContentTypeGuide, ContentTypeTip,
		ContentTypeNews, ContentTypeVideo, ContentTypeInfographic,
	}
	for _, ct := range valid {
		assert.True(t, ct.IsValid(), string(ct))
	}

	assert.False(t, ContentType("tutorial").IsValid())
	assert.False(t, ContentType("").IsValid())
}

func TestContentCategories_CoverAdvisoryTopics(t *testing.T) {
	for _, key := range []string{"crop_production", "livestock", "pest_control", "organic_farming"} {
		assert.Contains(t, ContentCategories, key)
	}
}
