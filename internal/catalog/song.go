// Package catalog holds the song records the reader can display.
package catalog

import (
	"fmt"
	"strings"

	"github.com/lyriclang/lyriclang/internal/lyrics"
)

// Song is a catalog record.
type Song struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	Album      string   `json:"album,omitempty"`
	Year       int      `json:"year,omitempty"`
	Genre      []string `json:"genre"`
	Language   string   `json:"language"`
	Lyrics     string   `json:"lyrics"`
	CoverImage string   `json:"coverImage"`
	PreviewURL string   `json:"previewUrl,omitempty"`
	SpotifyID  string   `json:"spotifyId,omitempty"`
	YouTubeID  string   `json:"youtubeId,omitempty"`
	Popularity int      `json:"popularity"`
}

// Lines returns the lyric rows of the song.
func (s Song) Lines() []string {
	return lyrics.Lines(s.Lyrics)
}

// Label is the one-line description used in lists.
func (s Song) Label() string {
	return fmt.Sprintf("%s - %s", s.Title, s.Artist)
}

// Subtitle joins album, year and genres for headers.
func (s Song) Subtitle() string {
	parts := make([]string, 0, 3)
	if s.Album != "" {
		parts = append(parts, s.Album)
	}
	if s.Year > 0 {
		parts = append(parts, fmt.Sprint(s.Year))
	}
	if len(s.Genre) > 0 {
		parts = append(parts, strings.Join(s.Genre, ", "))
	}
	return strings.Join(parts, " · ")
}

// SpotifyURL links to the track when a Spotify id is known.
func (s Song) SpotifyURL() string {
	if s.SpotifyID == "" {
		return ""
	}
	return "https://open.spotify.com/track/" + s.SpotifyID
}

// YouTubeURL links to the music video when a YouTube id is known.
func (s Song) YouTubeURL() string {
	if s.YouTubeID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + s.YouTubeID
}

func cloneSong(s Song) Song {
	if s.Genre != nil {
		s.Genre = append([]string(nil), s.Genre...)
	}
	return s
}

func cloneSongs(songs []Song) []Song {
	if len(songs) == 0 {
		return nil
	}
	out := make([]Song, len(songs))
	for i, s := range songs {
		out[i] = cloneSong(s)
	}
	return out
}
