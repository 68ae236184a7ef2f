// Package videos produces learning-video suggestions for a phrase.
package videos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
)

// Video is a suggested clip that mentions the phrase at Timestamp seconds.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Description string `json:"description"`
	Timestamp   int    `json:"timestamp"`
	Thumbnail   string `json:"thumbnail"`
}

// TimestampLabel formats Timestamp as m:ss.
func (v Video) TimestampLabel() string {
	return FormatTimestamp(v.Timestamp)
}

// EmbedURL plays the clip from the timestamp.
func (v Video) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s?start=%d&autoplay=1", v.ID, v.Timestamp)
}

// WatchURL opens the clip on YouTube at the timestamp.
func (v Video) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s&t=%ds", v.ID, v.Timestamp)
}

// FormatTimestamp renders seconds as m:ss.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

type template struct {
	id          string
	title       string
	channel     string
	description string
	timestamp   int
	thumbnail   string
}

var templates = []template{
	{
		id:          "dQw4w9WgXcQ",
		title:       `English Expressions: "%s" in Real Conversations`,
		channel:     "English Learning Hub",
		description: `Learn how to use "%s" in everyday English conversations with native speakers.`,
		timestamp:   45,
		thumbnail:   "https://images.unsplash.com/photo-1516981442399-5e617b6b9f64?w=320&h=180&fit=crop",
	},
	{
		id:          "abc123def",
		title:       `Grammar Masterclass: Understanding "%s"`,
		channel:     "Grammar Master",
		description: `Deep dive into the grammatical structure and usage of "%s" with examples.`,
		timestamp:   120,
		thumbnail:   "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=320&h=180&fit=crop",
	},
	{
		id:          "xyz789ghi",
		title:       `Pop Songs English: "%s" Analysis`,
		channel:     "K-Pop English",
		description: `Analyzing the phrase "%s" as it appears in popular music and culture.`,
		timestamp:   30,
		thumbnail:   "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=320&h=180&fit=crop",
	},
	{
		id:          "def456abc",
		title:       `Pronunciation Guide: How to Say "%s" Perfectly`,
		channel:     "Pronunciation Pro",
		description: `Perfect your pronunciation of "%s" with phonetic breakdown and practice.`,
		timestamp:   15,
		thumbnail:   "https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=320&h=180&fit=crop",
	},
	{
		id:          "ghi789jkl",
		title:       `Business English: Using "%s" in Professional Settings`,
		channel:     "Business English Pro",
		description: `Learn how to use "%s" appropriately in business and professional contexts.`,
		timestamp:   90,
		thumbnail:   "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=320&h=180&fit=crop",
	},
}

// Source builds suggestions from a fixed set of templates, so the result for
// a phrase is always the same.
type Source struct {
	latency time.Duration
}

// NewSource returns a Source that waits latency before answering.
func NewSource(latency time.Duration) *Source {
	return &Source{latency: latency}
}

// Suggest returns the suggestions for phrase.
func (s *Source) Suggest(ctx context.Context, phrase string) ([]Video, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return nil, fmt.Errorf("empty phrase: %w", lookup.ErrValidationSkip)
	}
	if s != nil && s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Video, len(templates))
	for i, t := range templates {
		out[i] = Video{
			ID:          t.id,
			Title:       fmt.Sprintf(t.title, phrase),
			Channel:     t.channel,
			Description: fmt.Sprintf(t.description, phrase),
			Timestamp:   t.timestamp,
			Thumbnail:   t.thumbnail,
		}
	}
	return out, nil
}
