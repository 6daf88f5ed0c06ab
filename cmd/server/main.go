package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfryer1193/blogrecomenda/blog/application"
	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/dfryer1193/blogrecomenda/blog/persistence"
	"github.com/dfryer1193/blogrecomenda/internal/config"
	"github.com/dfryer1193/blogrecomenda/internal/middleware"
	"github.com/dfryer1193/blogrecomenda/internal/rest"
	"github.com/dfryer1193/blogrecomenda/internal/web"
	"github.com/dfryer1193/blogrecomenda/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const imageRoute = "/images"

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Log)
	gin.SetMode(cfg.Server.GinMode)

	var postRepo domain.PostRepository = persistence.NewDirPostRepository(cfg.Content.Dir, cfg.Content.Pattern)
	if cfg.Content.Cache {
		cached := persistence.NewCachedPostRepository(postRepo)
		go reloadOnHangup(cached)
		postRepo = cached
	}

	router, err := newRouter(cfg, postRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("contentDir", cfg.Content.Dir).
			Bool("cache", cfg.Content.Cache).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

func newRouter(cfg *config.Config, postRepo domain.PostRepository) (*gin.Engine, error) {
	templates, err := web.NewTemplateRegistry()
	if err != nil {
		return nil, err
	}

	store := application.NewPostStore(postRepo)
	details := application.NewPostDetailService(store, application.NewMarkdownRenderer(imageRoute))

	r := gin.New()
	r.HTMLRender = templates
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))

	r.Static(imageRoute, cfg.Content.ImageDir)
	web.NewHandler(store, details, cfg.Site).Register(r)
	rest.NewApi(r, store)

	return r, nil
}

// reloadOnHangup refreshes the post cache each time the process receives SIGHUP
func reloadOnHangup(cache *persistence.CachedPostRepository) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	for range hup {
		if err := cache.Reload(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to reload posts")
			continue
		}
		log.Info().Msg("Posts reloaded")
	}
}
