package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/lyrics"
	"github.com/lyriclang/lyriclang/internal/selection"
	"github.com/lyriclang/lyriclang/internal/videos"
)

const suggestLimit = 3

type searchResponse struct {
	Songs       []catalog.Song `json:"songs"`
	DidYouMean  []string       `json:"didYouMean,omitempty"`
	ResultCount int            `json:"resultCount"`
}

type wordResponse struct {
	lexicon.Result
	Variants []lexicon.Variant `json:"variants"`
}

type videosResponse struct {
	Phrase string         `json:"phrase"`
	Videos []videoPayload `json:"videos"`
}

type videoPayload struct {
	videos.Video
	EmbedURL       string `json:"embedUrl"`
	WatchURL       string `json:"watchUrl"`
	TimestampLabel string `json:"timestampLabel"`
}

type selectionRequest struct {
	Text string `json:"text"`
}

type selectionResponse struct {
	ID        string `json:"id"`
	Phrase    string `json:"phrase"`
	Truncated bool   `json:"truncated"`
}

func (s *Server) popularSongs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", catalog.DefaultPopularLimit)
	songs, err := s.deps.Catalog.GetPopularSongs(c.UserContext(), limit)
	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(songs)
}

func (s *Server) songByID(c *fiber.Ctx) error {
	song, err := s.deps.Catalog.GetSongByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(song)
}

func (s *Server) songLines(c *fiber.Ctx) error {
	song, err := s.deps.Catalog.GetSongByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return lookupError(c, err)
	}
	lines := song.Lines()
	out := make([][]lyrics.Segment, len(lines))
	for i, line := range lines {
		out[i] = lyrics.Segments(line)
		if out[i] == nil {
			out[i] = []lyrics.Segment{}
		}
	}
	return c.JSON(out)
}

func (s *Server) searchSongs(c *fiber.Ctx) error {
	var f catalog.Filters
	if err := c.BodyParser(&f); err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("decode filters: %w", err))
	}
	songs, err := s.deps.Catalog.SearchSongs(c.UserContext(), f)
	if err != nil {
		return lookupError(c, err)
	}
	resp := searchResponse{Songs: songs, ResultCount: len(songs)}
	if resp.Songs == nil {
		resp.Songs = []catalog.Song{}
	}
	if len(songs) == 0 {
		for _, song := range s.deps.Catalog.Suggest(f.Query, suggestLimit) {
			resp.DidYouMean = append(resp.DidYouMean, song.Title)
		}
	}
	return c.JSON(resp)
}

func (s *Server) lookupWord(c *fiber.Ctx) error {
	word := c.Params("word")
	res, err := s.deps.Dictionary.LookupWord(c.UserContext(), word)
	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(wordResponse{Result: res, Variants: lexicon.Variants(res.Word)})
}

func (s *Server) suggestVideos(c *fiber.Ctx) error {
	phrase := strings.TrimSpace(c.Query("phrase"))
	list, err := s.deps.Videos.Suggest(c.UserContext(), phrase)
	if err != nil {
		return lookupError(c, err)
	}
	resp := videosResponse{Phrase: phrase, Videos: make([]videoPayload, len(list))}
	for i, v := range list {
		resp.Videos[i] = videoPayload{
			Video:          v,
			EmbedURL:       v.EmbedURL(),
			WatchURL:       v.WatchURL(),
			TimestampLabel: v.TimestampLabel(),
		}
	}
	return c.JSON(resp)
}

func (s *Server) captureSelection(c *fiber.Ctx) error {
	var req selectionRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, fmt.Errorf("decode selection: %w", err))
	}
	ev, err := selection.Capture(req.Text, time.Now())
	if errors.Is(err, lookup.ErrValidationSkip) {
		return writeError(c, fiber.StatusUnprocessableEntity, err)
	}
	if err != nil {
		return lookupError(c, err)
	}
	return c.JSON(selectionResponse{
		ID:        ev.ID.String(),
		Phrase:    ev.Text,
		Truncated: ev.Truncated,
	})
}
