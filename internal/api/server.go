// Package api serves the catalog, dictionary and video lookups as JSON.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/lyriclang/lyriclang/internal/catalog"
	"github.com/lyriclang/lyriclang/internal/lexicon"
	"github.com/lyriclang/lyriclang/internal/logging"
	"github.com/lyriclang/lyriclang/internal/logging/events"
	"github.com/lyriclang/lyriclang/internal/lookup"
	"github.com/lyriclang/lyriclang/internal/videos"
	"go.uber.org/zap"
)

// Catalog is the song source behind the /songs routes.
type Catalog interface {
	GetSongByID(ctx context.Context, id string) (catalog.Song, error)
	SearchSongs(ctx context.Context, f catalog.Filters) ([]catalog.Song, error)
	GetPopularSongs(ctx context.Context, limit int) ([]catalog.Song, error)
	Suggest(query string, limit int) []catalog.Song
}

// Dictionary resolves /words lookups.
type Dictionary interface {
	LookupWord(ctx context.Context, word string) (lexicon.Result, error)
}

// VideoSource answers /videos lookups.
type VideoSource interface {
	Suggest(ctx context.Context, phrase string) ([]videos.Video, error)
}

// Deps are the providers the server exposes.
type Deps struct {
	Catalog    Catalog
	Dictionary Dictionary
	Videos     VideoSource
}

// Server wraps the fiber app.
type Server struct {
	app  *fiber.App
	deps Deps
}

// New builds the server and registers every route.
func New(deps Deps) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "lyricsd",
		DisableStartupMessage: true,
		Immutable:             true, // params and queries end up in the lookup cache
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(requestLogger)

	s := &Server{app: app, deps: deps}
	s.registerRoutes(app.Group("/api"))
	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	logging.Logger().Info("http listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func (s *Server) registerRoutes(r fiber.Router) {
	songs := r.Group("/songs")
	songs.Get("/popular", s.popularSongs)
	songs.Post("/search", s.searchSongs)
	songs.Get("/:id", s.songByID)
	songs.Get("/:id/lines", s.songLines)

	r.Get("/words/:word", s.lookupWord)
	r.Get("/videos", s.suggestVideos)
	r.Post("/selections", s.captureSelection)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	events.HTTP.Request(c.Method(), c.Path(), status, time.Since(start))
	return err
}

type errorBody struct {
	Error string `json:"error"`
}

// statusFor maps a lookup failure onto an HTTP status.
func statusFor(err error) int {
	switch lookup.Classify(err) {
	case lookup.ClassNotFound:
		return fiber.StatusNotFound
	case lookup.ClassValidationSkip:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusServiceUnavailable
	}
}

func writeError(c *fiber.Ctx, status int, err error) error {
	if status >= fiber.StatusInternalServerError {
		logging.Error(err)
	}
	return c.Status(status).JSON(errorBody{Error: err.Error()})
}

func lookupError(c *fiber.Ctx, err error) error {
	return writeError(c, statusFor(err), err)
}

// errorHandler renders errors that escape a handler, including recovered
// panics, in the same JSON shape.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return writeError(c, status, err)
}
