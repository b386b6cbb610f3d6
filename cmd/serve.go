package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/starfolio/internal/analytics"
	"github.com/Zachkp/starfolio/internal/config"
	"github.com/Zachkp/starfolio/internal/contact"
	"github.com/Zachkp/starfolio/internal/content"
	"github.com/Zachkp/starfolio/internal/projects"
	"github.com/Zachkp/starfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// newProjectService builds the listing service. A missing redis falls back to
// the in-process cache.
func newProjectService(cfg *config.Config) (*projects.Service, func(), error) {
	source, err := projects.NewGitHubSource(projects.GitHubOptions{
		Token:        cfg.GitHub.Token,
		Timeout:      cfg.GitHub.Timeout,
		RateInterval: cfg.GitHub.RateInterval,
		BaseURL:      cfg.GitHub.BaseURL,
	})
	if err != nil {
		return nil, nil, err
	}

	var cache projects.Cache = projects.NewMemoryCache()
	closeCache := func() {}
	if cfg.Cache.RedisAddress != "" {
		rc, err := projects.NewRedisCache(cfg.Cache.RedisAddress, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, using in-memory project cache", "address", cfg.Cache.RedisAddress, "error", err)
		} else {
			cache = rc
			closeCache = func() {
				if err := rc.Close(); err != nil {
					slog.Error("redis close error", "error", err)
				}
			}
		}
	}

	svc := projects.NewService(source, cache, projects.ServiceOptions{
		User:    cfg.GitHub.User,
		PerPage: cfg.GitHub.PerPage,
		TTL:     cfg.Cache.TTL,
		Logger:  slog.Default(),
	})
	return svc, closeCache, nil
}

func newSubmitter(cfg config.ContactConfig) contact.Submitter {
	if cfg.Delivery == config.DeliverySMTP {
		return contact.NewSMTPSubmitter(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.To)
	}
	return contact.NewSimulatedSubmitter(cfg.Delay, cfg.SuccessRate)
}

func runServe(cmd *cobra.Command) error {
	cfg, err := setup()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("starting starfolio",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"github_user", cfg.GitHub.User,
		"contact_delivery", cfg.Contact.Delivery,
	)

	site, err := content.Load(cfg.Content.File)
	if err != nil {
		return err
	}

	projectService, closeCache, err := newProjectService(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := server.Options{
		Mode:           cfg.Server.Mode,
		Site:           site,
		Projects:       projectService,
		Retention:      cfg.Analytics.Retention,
		AdminUsername:  cfg.Admin.Username,
		AdminPassword:  cfg.Admin.Password,
		Seed:           cfg.Starfield.Seed,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         slog.Default(),
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	submitter := newSubmitter(cfg.Contact)
	if cfg.Analytics.Enabled {
		store, err := analytics.Open(cfg.Analytics.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		cleaner := analytics.NewCleaner(store, cfg.Analytics.Retention, cfg.Analytics.Interval)
		cleaner.Start(ctx)
		// stop the worker before the deferred store.Close
		defer func() {
			cancel()
			cleaner.Wait()
		}()

		opts.Analytics = store
		opts.Contact = contact.NewService(submitter, store, slog.Default())
		if cfg.UsingDefaultAdminCredentials() {
			slog.Warn("admin login uses default credentials, set ADMIN_USERNAME and ADMIN_PASSWORD")
		}
	} else {
		opts.Contact = contact.NewService(submitter, nil, slog.Default())
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	// tracking writes must land before the store closes, on every return path
	defer srv.Wait()

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr, "seed", opts.Seed)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	srv.Wait()

	slog.Info("starfolio stopped")
	return nil
}
