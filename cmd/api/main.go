package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mishasvintus/social_network/internal/config"
	"github.com/mishasvintus/social_network/internal/domain"
	"github.com/mishasvintus/social_network/internal/handler"
	"github.com/mishasvintus/social_network/internal/repository"
	"github.com/mishasvintus/social_network/internal/router"
	"github.com/mishasvintus/social_network/internal/seed"
	"github.com/mishasvintus/social_network/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	network := domain.NewNetwork(cfg.Network.MaxUsers, cfg.Network.MaxFollowees)
	networkService, err := service.NewNetworkService(network, cfg.Network.RecommendationCacheSize)
	if err != nil {
		log.Fatalf("Failed to create network service: %v", err)
	}

	if err := seedNetwork(cfg, networkService); err != nil {
		log.Fatalf("Failed to seed network: %v", err)
	}

	userHandler := handler.NewUserHandler(networkService)
	followHandler := handler.NewFollowHandler(networkService)
	networkHandler := handler.NewNetworkHandler(networkService)

	r := router.SetupRoutes(userHandler, followHandler, networkHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server exited")
}

// seedNetwork imports the initial network from Postgres and then from the seed file, when configured.
func seedNetwork(cfg *config.Config, target seed.Target) error {
	if cfg.Database != nil {
		db, err := repository.NewPostgresDB(cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer func() { _ = db.Close() }()

		fixture, err := seed.LoadPostgres(db)
		if err != nil {
			return err
		}
		if err := seed.Apply(fixture, target); err != nil {
			return err
		}
		log.Printf("Seeded %d users and %d follows from database", len(fixture.Users), len(fixture.Follows))
	}

	if cfg.Seed.File != "" {
		fixture, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			return err
		}
		if err := seed.Apply(fixture, target); err != nil {
			return err
		}
		log.Printf("Seeded %d users and %d follows from %s", len(fixture.Users), len(fixture.Follows), cfg.Seed.File)
	}

	return nil
}
