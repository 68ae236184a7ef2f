package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(songs []Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.ID
	}
	return out
}

func TestGetPopularSongsTopThree(t *testing.T) {
	c, err := New([]Song{
		{ID: "c", Title: "C", Popularity: 90},
		{ID: "a", Title: "A", Popularity: 95},
		{ID: "d", Title: "D", Popularity: 88},
		{ID: "b", Title: "B", Popularity: 92},
	})
	require.NoError(t, err)

	got, err := c.GetPopularSongs(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestGetPopularSongsLimits(t *testing.T) {
	c := Default()
	all, err := c.GetPopularSongs(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, all, c.Len())

	def, err := c.GetPopularSongs(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, def, DefaultPopularLimit)
	assert.Equal(t, "bts-dynamite", def[0].ID)
	assert.Equal(t, "the-weeknd-blinding-lights", def[1].ID)
}

func TestGetSongByID(t *testing.T) {
	c := Default()
	song, err := c.GetSongByID(context.Background(), DefaultSongID)
	require.NoError(t, err)
	assert.Equal(t, "Dynamite", song.Title)
	assert.Equal(t, "BTS", song.Artist)
	assert.Equal(t, "So watch me bring the fire and set the night alight", song.Lines()[1])

	_, err = c.GetSongByID(context.Background(), "missing")
	assert.ErrorIs(t, err, lookup.ErrNotFound)
}

func TestGetSongByIDReturnsCopy(t *testing.T) {
	c := Default()
	song, err := c.GetSongByID(context.Background(), DefaultSongID)
	require.NoError(t, err)
	song.Genre[0] = "Metal"
	again, err := c.GetSongByID(context.Background(), DefaultSongID)
	require.NoError(t, err)
	assert.Equal(t, "Pop", again.Genre[0])
}

func TestSearchSongsMatchesLyricsCaseInsensitively(t *testing.T) {
	c := Default()
	got, err := c.SearchSongs(context.Background(), Filters{Query: "FIRE"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "bts-dynamite", got[0].ID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Popularity, got[i].Popularity)
	}
}

func TestSearchSongsByTitleAndArtist(t *testing.T) {
	c := Default()
	got, err := c.SearchSongs(context.Background(), Filters{Query: "yellow"})
	require.NoError(t, err)
	assert.Equal(t, []string{"coldplay-yellow"}, ids(got))

	got, err = c.SearchSongs(context.Background(), Filters{Query: "sheeran"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ed-sheeran-shape-of-you"}, ids(got))
}

func TestSearchSongsFilters(t *testing.T) {
	c := Default()
	got, err := c.SearchSongs(context.Background(), Filters{Query: "love", Genre: "soul"})
	require.NoError(t, err)
	assert.Equal(t, []string{"adele-someone-like-you"}, ids(got))

	got, err = c.SearchSongs(context.Background(), Filters{Query: "the", Artist: "dua"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dua-lipa-levitating"}, ids(got))

	got, err = c.SearchSongs(context.Background(), Filters{Query: "the", Language: "korean"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchSongsRejectsBlankQuery(t *testing.T) {
	c := Default()
	_, err := c.SearchSongs(context.Background(), Filters{Query: "   "})
	assert.ErrorIs(t, err, lookup.ErrEmptyQuery)
	assert.ErrorIs(t, err, lookup.ErrValidationSkip)
}

func TestLatencyHonoursCancellation(t *testing.T) {
	c := Default(WithLatency(time.Hour, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.SearchSongs(ctx, Filters{Query: "fire"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.GetSongByID(ctx, DefaultSongID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Song{{ID: "x"}, {ID: "x"}})
	assert.Error(t, err)
	_, err = New([]Song{{Title: "no id"}})
	assert.Error(t, err)
}

func TestGenresAndArtists(t *testing.T) {
	c := Default()
	genres := c.Genres()
	assert.Contains(t, genres, "Disco")
	assert.IsNonDecreasing(t, genres)
	artists := c.Artists()
	assert.Len(t, artists, 10)
	assert.Equal(t, "Adele", artists[0])
}

func TestSuggest(t *testing.T) {
	c := Default()
	got := c.Suggest("dynamte", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "bts-dynamite", got[0].ID)
	assert.Nil(t, c.Suggest("", 3))
	assert.Nil(t, c.Suggest("zzzzqqq", 3))
}

func TestSongHelpers(t *testing.T) {
	song, err := Default().GetSongByID(context.Background(), DefaultSongID)
	require.NoError(t, err)
	assert.Equal(t, "Dynamite - BTS", song.Label())
	assert.Equal(t, "BE · 2020 · Pop, Disco", song.Subtitle())
	assert.Equal(t, "https://open.spotify.com/track/0t1kP63rueHleOhQkYSXFY", song.SpotifyURL())
	assert.Equal(t, "https://www.youtube.com/watch?v=gdZLi9oWNZg", song.YouTubeURL())
	assert.Empty(t, Song{}.SpotifyURL())
}

func TestSQLRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, SaveSQL(ctx, db, Seed()))
	require.NoError(t, db.Close())

	c, err := LoadSQLite(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, len(Seed()), c.Len())

	song, err := c.GetSongByID(ctx, "coldplay-yellow")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alternative Rock", "Pop Rock"}, song.Genre)
	assert.Equal(t, 2000, song.Year)
	assert.Empty(t, song.SpotifyID)

	top, err := c.GetPopularSongs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, DefaultSongID, top[0].ID)
}

func TestLoadSQLiteEmptyTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, SaveSQL(ctx, db, nil))
	require.NoError(t, db.Close())

	_, err = LoadSQLite(ctx, path)
	assert.Error(t, err)
}
