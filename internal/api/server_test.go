package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lyriclang/lyriclang/internal/cache"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/videos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Deps{
		Catalog:    catalog.Default(),
		Dictionary: lexicon.Default(),
		Videos:     videos.NewSource(0),
	})
}

func do(t *testing.T, s *Server, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestPopularSongs(t *testing.T) {
	status, body := do(t, newTestServer(t), http.MethodGet, "/api/songs/popular?limit=3", "")
	require.Equal(t, http.StatusOK, status)

	var songs []catalog.Song
	require.NoError(t, json.Unmarshal(body, &songs))
	require.Len(t, songs, 3)
	assert.Equal(t, catalog.DefaultSongID, songs[0].ID)
	for i := 1; i < len(songs); i++ {
		assert.GreaterOrEqual(t, songs[i-1].Popularity, songs[i].Popularity)
	}
}

func TestSongByID(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, http.MethodGet, "/api/songs/"+catalog.DefaultSongID, "")
	require.Equal(t, http.StatusOK, status)
	var song catalog.Song
	require.NoError(t, json.Unmarshal(body, &song))
	assert.Equal(t, "Dynamite", song.Title)

	status, body = do(t, s, http.MethodGet, "/api/songs/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), `"error"`)
}

func TestSongLines(t *testing.T) {
	status, body := do(t, newTestServer(t), http.MethodGet, "/api/songs/"+catalog.DefaultSongID+"/lines", "")
	require.Equal(t, http.StatusOK, status)

	var lines [][]struct {
		Text string `json:"text"`
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(body, &lines))
	require.Greater(t, len(lines), 1)
	var rebuilt strings.Builder
	for _, seg := range lines[1] {
		rebuilt.WriteString(seg.Text)
	}
	assert.Equal(t, "So watch me bring the fire and set the night alight", rebuilt.String())
	assert.Equal(t, "word", lines[1][0].Kind)
	assert.Equal(t, "whitespace", lines[1][1].Kind)
}

func TestSearchSongs(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, http.MethodPost, "/api/songs/search", `{"query":"dynamite"}`)
	require.Equal(t, http.StatusOK, status)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotEmpty(t, resp.Songs)
	assert.Equal(t, catalog.DefaultSongID, resp.Songs[0].ID)

	status, _ = do(t, s, http.MethodPost, "/api/songs/search", `{"query":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, s, http.MethodPost, "/api/songs/search", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSearchSuggestsOnMiss(t *testing.T) {
	status, body := do(t, newTestServer(t), http.MethodPost, "/api/songs/search", `{"query":"levitatng"}`)
	require.Equal(t, http.StatusOK, status)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Empty(t, resp.Songs)
	assert.Contains(t, resp.DidYouMean, "Levitating")
}

func TestLookupWord(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, http.MethodGet, "/api/words/Fire", "")
	require.Equal(t, http.StatusOK, status)
	var resp struct {
		Word     string            `json:"word"`
		Found    bool              `json:"found"`
		ImageURL string            `json:"imageUrl"`
		Entry    lexicon.Entry     `json:"entry"`
		Variants []lexicon.Variant `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "fire", resp.Word)
	assert.True(t, resp.Found)
	assert.NotEmpty(t, resp.ImageURL)
	assert.Len(t, resp.Variants, 3)

	status, body = do(t, s, http.MethodGet, "/api/words/zyzzyva", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.False(t, resp.Found)
}

func TestSuggestVideos(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, http.MethodGet, "/api/videos?phrase=bring+the+fire", "")
	require.Equal(t, http.StatusOK, status)
	var resp videosResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "bring the fire", resp.Phrase)
	require.Len(t, resp.Videos, 5)
	assert.Contains(t, resp.Videos[0].WatchURL, "youtube.com/watch")

	status, _ = do(t, s, http.MethodGet, "/api/videos?phrase=%20", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCaptureSelection(t *testing.T) {
	s := newTestServer(t)
	status, body := do(t, s, http.MethodPost, "/api/selections", `{"text":"  bring the fire  "}`)
	require.Equal(t, http.StatusOK, status)
	var resp selectionResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "bring the fire", resp.Phrase)
	assert.False(t, resp.Truncated)
	assert.NotEmpty(t, resp.ID)

	status, _ = do(t, s, http.MethodPost, "/api/selections", `{"text":"abc"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	long := strings.Repeat("a", 55)
	status, body = do(t, s, http.MethodPost, "/api/selections", `{"text":"`+long+`"}`)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.True(t, resp.Truncated)
	assert.Equal(t, strings.Repeat("a", 50)+"...", resp.Phrase)
}

func TestCachedWordSurvivesLaterRequests(t *testing.T) {
	s := New(Deps{
		Catalog:    catalog.Default(),
		Dictionary: cache.NewDictionary(cache.New(time.Minute), lexicon.Default()),
		Videos:     videos.NewSource(0),
	})
	wordOf := func(path string) string {
		status, body := do(t, s, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, status)
		var resp struct {
			Word string `json:"word"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		return resp.Word
	}

	require.Equal(t, "light", wordOf("/api/words/light"))
	for i := 0; i < 50; i++ {
		wordOf("/api/words/zzzzz")
		do(t, s, http.MethodGet, "/api/songs/popular", "")
	}
	assert.Equal(t, "light", wordOf("/api/words/light"))
}

type failingDictionary struct{}

func (failingDictionary) LookupWord(context.Context, string) (lexicon.Result, error) {
	return lexicon.Result{}, lookup.ErrTransport
}

func TestTransportFailureIsServiceUnavailable(t *testing.T) {
	s := New(Deps{Catalog: catalog.Default(), Dictionary: failingDictionary{}, Videos: videos.NewSource(0)})
	status, body := do(t, s, http.MethodGet, "/api/words/fire", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, string(body), lookup.ErrTransport.Error())
}

type panickingDictionary struct{}

func (panickingDictionary) LookupWord(context.Context, string) (lexicon.Result, error) {
	panic("boom")
}

func TestPanicIsRecovered(t *testing.T) {
	s := New(Deps{Catalog: catalog.Default(), Dictionary: panickingDictionary{}, Videos: videos.NewSource(0)})
	status, body := do(t, s, http.MethodGet, "/api/words/fire", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, string(body), "boom")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(lookup.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(lookup.ErrEmptyQuery))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(lookup.ErrTransport))
}
