package videos

import (
	"context"
	"testing"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	got, err := NewSource(0).Suggest(context.Background(), "watch me bring the fire")
	require.NoError(t, err)
	require.Len(t, got, 5)
	first := got[0]
	assert.Equal(t, `English Expressions: "watch me bring the fire" in Real Conversations`, first.Title)
	assert.Equal(t, "English Learning Hub", first.Channel)
	assert.Equal(t, 45, first.Timestamp)
	assert.Equal(t, "0:45", first.TimestampLabel())
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?start=45&autoplay=1", first.EmbedURL())
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=45s", first.WatchURL())
	assert.Equal(t, "2:00", got[1].TimestampLabel())
}

func TestSuggestDeterministic(t *testing.T) {
	a, err := NewSource(0).Suggest(context.Background(), "bring the fire")
	require.NoError(t, err)
	b, err := NewSource(0).Suggest(context.Background(), "bring the fire")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSuggestRejectsBlank(t *testing.T) {
	_, err := NewSource(0).Suggest(context.Background(), " ")
	assert.ErrorIs(t, err, lookup.ErrValidationSkip)
}

func TestSuggestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSource(time.Hour).Suggest(ctx, "phrase")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCarouselWraps(t *testing.T) {
	items, err := NewSource(0).Suggest(context.Background(), "phrase")
	require.NoError(t, err)
	c := NewCarousel(items)
	c.Prev()
	assert.Equal(t, len(items)-1, c.Index(), "first wraps to last")
	c.Next()
	assert.Equal(t, 0, c.Index(), "last wraps to first")
	for range items {
		c.Next()
	}
	assert.Equal(t, 0, c.Index())
	cur, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, items[0].ID, cur.ID)
	assert.True(t, c.Select(2))
	assert.False(t, c.Select(9))
	assert.Equal(t, 2, c.Index())
}

func TestCarouselEmpty(t *testing.T) {
	var c *Carousel
	assert.Equal(t, 0, c.Len())
	empty := NewCarousel(nil)
	empty.Next()
	empty.Prev()
	_, ok := empty.Current()
	assert.False(t, ok)
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "0:00", FormatTimestamp(-5))
	assert.Equal(t, "1:30", FormatTimestamp(90))
	assert.Equal(t, "10:05", FormatTimestamp(605))
}
