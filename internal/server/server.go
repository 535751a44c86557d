package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brettvs/showbill/config"
	"github.com/brettvs/showbill/internal/booking"
	"github.com/brettvs/showbill/internal/handlers"
	"github.com/brettvs/showbill/internal/middleware"
	"github.com/brettvs/showbill/internal/store"
)

func Start(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	st := store.New(db)
	service := booking.New(st, logger)
	handler := handlers.New(service, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(logger))
	r.LoadHTMLGlob("web/templates/*.html")

	setupRoutes(r, handler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("listening", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.NewVenueForm)
		venues.POST("/create", h.CreateVenue)
		venues.GET("/:id", h.ShowVenue)
		venues.GET("/:id/edit", h.EditVenueForm)
		venues.POST("/:id/edit", h.EditVenue)
		venues.POST("/:id/delete", h.DeleteVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.NewArtistForm)
		artists.POST("/create", h.CreateArtist)
		artists.GET("/:id", h.ShowArtist)
		artists.GET("/:id/edit", h.EditArtistForm)
		artists.POST("/:id/edit", h.EditArtist)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/create", h.NewShowForm)
		shows.POST("/create", h.CreateShow)
	}

	r.NoRoute(h.NotFound)
}
