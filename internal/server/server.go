// Package server exposes the decoder and renderer over HTTP.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fenboard-go/internal/config"
	"github.com/lgbarn/fenboard-go/internal/fen"
	"github.com/lgbarn/fenboard-go/internal/hashing"
	"github.com/lgbarn/fenboard-go/internal/render"
)

// Server serves the parse and render endpoints.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	decoder  *fen.Decoder
	renderer *render.Renderer
	seen     *hashing.ThreadSafeDuplicateDetector
}

// New creates a server with its routes registered. The renderer follows
// cfg.Render except that colour is never used over HTTP.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		decoder:  cfg.Decode.Decoder(),
		renderer: plainRenderer(cfg.Render),
		seen:     hashing.NewThreadSafeDuplicateDetector(false, cfg.Duplicate.Capacity),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "fenboard",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		BodyLimit:             cfg.Server.BodyLimit,
	})

	s.app.Use(RequestID())
	s.app.Use(RequestLogger(cfg))

	s.app.Get("/healthz", s.health)

	api := s.app.Group("/api")
	api.Post("/parse", s.parse)
	api.Get("/render", s.render)
	api.Get("/stats", s.stats)

	return s
}

func plainRenderer(rc *config.RenderConfig) *render.Renderer {
	opts := []render.Option{render.WithMarker(rc.Marker)}
	if rc.Coordinates {
		opts = append(opts, render.WithCoordinates())
	}
	return render.NewRenderer(opts...)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens on the configured address until ctx is cancelled or the
// listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if s.cfg.Verbosity > 0 {
			fmt.Fprintf(s.cfg.LogFile, "Listening on %s\n", s.cfg.Server.Addr)
		}
		return s.app.Listen(s.cfg.Server.Addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		return s.app.ShutdownWithContext(context.Background())
	})

	return g.Wait()
}
