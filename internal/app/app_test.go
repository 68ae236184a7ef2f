package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProvidersDefaultCatalog(t *testing.T) {
	p, err := BuildProviders(context.Background(), Config{})
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Seed()), p.Catalog.Len())

	res, err := p.Dictionary.LookupWord(context.Background(), "Fire")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, p.Cache.Len())
}

func TestBuildProvidersSeedsSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.db")
	p, err := BuildProviders(context.Background(), Config{CatalogDB: path, InitDB: true})
	require.NoError(t, err)
	assert.Equal(t, len(catalog.Seed()), p.Catalog.Len())

	song, err := p.Catalog.GetSongByID(context.Background(), catalog.DefaultSongID)
	require.NoError(t, err)
	assert.Equal(t, "Dynamite", song.Title)
}

func TestBuildProvidersMissingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	_, err := BuildProviders(context.Background(), Config{CatalogDB: path})
	assert.Error(t, err)
}

func TestOptionsCarriesTimings(t *testing.T) {
	cfg := Config{Width: 80, DefaultSong: "x", Timings: Timings{Debounce: 5, ClearDelay: 7}}
	opts := Options(cfg, Providers{})
	assert.Equal(t, 80, opts.Width)
	assert.Equal(t, "x", opts.DefaultSong)
	assert.EqualValues(t, 5, opts.Debounce)
	assert.EqualValues(t, 7, opts.ClearDelay)
	assert.True(t, opts.Animate)
}
