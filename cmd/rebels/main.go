// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/PinkuChanda/frankfurter-rebels/internal/auth"
	"github.com/PinkuChanda/frankfurter-rebels/internal/cache"
	"github.com/PinkuChanda/frankfurter-rebels/internal/config"
	"github.com/PinkuChanda/frankfurter-rebels/internal/content"
	"github.com/PinkuChanda/frankfurter-rebels/internal/geoip"
	"github.com/PinkuChanda/frankfurter-rebels/internal/handler"
	"github.com/PinkuChanda/frankfurter-rebels/internal/handler/api"
	"github.com/PinkuChanda/frankfurter-rebels/internal/logging"
	"github.com/PinkuChanda/frankfurter-rebels/internal/middleware"
	"github.com/PinkuChanda/frankfurter-rebels/internal/render"
	"github.com/PinkuChanda/frankfurter-rebels/internal/scheduler"
	"github.com/PinkuChanda/frankfurter-rebels/internal/service"
	"github.com/PinkuChanda/frankfurter-rebels/internal/session"
	"github.com/PinkuChanda/frankfurter-rebels/internal/storage"
	"github.com/PinkuChanda/frankfurter-rebels/internal/store"
	"github.com/PinkuChanda/frankfurter-rebels/internal/version"
	"github.com/PinkuChanda/frankfurter-rebels/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

const (
	staticMaxAge  = 31536000 // one year, assets are fingerprinted by deploy
	uploadsMaxAge = 604800
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "rebels - Frankfurter Rebels cricket club website\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_SESSION_SECRET    Session signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_DB_PATH           SQLite database path (default: ./data/rebels.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_ADMIN_EMAIL       Seeded admin account (default: admin@frankfurterrebels.de)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_STORAGE           Upload backend: local|cloudinary (default: local)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_REDIS_URL         Redis URL for the page cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_DO_SEED           Seed starter content on first start (default: false)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_SITE_URL          Public URL for robots.txt and sitemap.xml (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_GEOIP_DB_PATH     GeoLite2-Country database for event metadata (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  REBELS_TRUSTED_PROXY     Read client IPs from proxy headers (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
	if *showVersion {
		_, _ = fmt.Println("rebels " + info.String())
		os.Exit(0)
	}

	if err := run(info); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(info version.Info) error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	isDev := cfg.IsDevelopment()

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(textHandler)
	slog.SetDefault(logger)
	slog.Info("starting rebels", "version", info.Version, "commit", info.GitCommit)

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// From here on WARN and ERROR records also land in the events table.
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if err := store.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	if cfg.DoSeed {
		if err := store.SeedContent(ctx, db); err != nil {
			return fmt.Errorf("seeding content: %w", err)
		}
	}

	sessionManager := session.New(db, isDev)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          isDev,
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	objectStore, err := newObjectStore(cfg, logger)
	if err != nil {
		return err
	}
	if err := objectStore.EnsureBucket(ctx); err != nil {
		// Uploads retry on first use, so a missing bucket is not fatal here.
		slog.Warn("storage bucket not ready", "backend", objectStore.Name(), "error", err)
	}

	pageCache := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: cfg.CacheDuration(),
		MaxEntries: 256,
	})
	defer func() { _ = pageCache.Close() }()

	countries, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		slog.Warn("geoip disabled", "path", cfg.GeoIPDBPath, "error", err)
	}
	defer func() { _ = countries.Close() }()

	codec := auth.NewSessionCodec([]byte(cfg.SessionSecret))
	authSvc := service.NewAuthService(db, codec, logger)
	entities := service.NewEntityService(db)
	events := service.NewEventService(db, logger).WithCountryLookup(countries)
	uploads := service.NewUploadService(objectStore, logger)

	pages := content.NewService(content.EntitySource(entities), pageCache, cfg.CacheDuration(), logger)
	entities.OnChange(pages.Invalidate)

	jobs := scheduler.New(logger)
	if retention := cfg.EventRetention(); retention > 0 {
		if err := jobs.Add("prune-events", "15 3 * * *", scheduler.PruneEvents(events.Prune, retention, logger)); err != nil {
			return err
		}
	}
	if cfg.GeoIPDBPath != "" {
		if err := jobs.Add("reload-geoip", "45 3 * * *", func(context.Context) error { return countries.Reload() }); err != nil {
			return err
		}
	}
	jobs.Start()
	defer jobs.Stop()

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	defer loginProtection.Close()

	apiHandler := api.NewHandler(api.Config{
		Entities:      entities,
		Auth:          authSvc,
		Uploads:       uploads,
		Events:        events,
		Login:         loginProtection,
		Logger:        logger,
		SecureCookies: !isDev,
	})
	resourcesHandler := handler.NewResourcesHandler(entities, uploads, events, renderer)
	adminHandler := handler.NewAdminHandler(resourcesHandler, events, renderer)
	authHandler := handler.NewAuthHandler(authSvc, events, loginProtection, renderer, !isDev)
	frontendHandler := handler.NewFrontendHandler(pages, renderer)
	healthHandler := handler.NewHealthHandler(db)
	seoHandler := handler.NewSEOHandler(cfg.SiteURL, isDev)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustedProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(isDev)))
	r.Use(middleware.RequestPath)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.AdminGate(authSvc))

	r.Get("/health", healthHandler.Health)
	r.Get("/robots.txt", seoHandler.Robots)
	r.Get("/sitemap.xml", seoHandler.Sitemap)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("loading static files: %w", err)
	}
	r.With(middleware.StaticCache(staticMaxAge)).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	if local, ok := objectStore.(*storage.LocalStore); ok {
		r.With(middleware.StaticCache(uploadsMaxAge)).
			Handle(storage.LocalURLPrefix+"*", http.StripPrefix(storage.LocalURLPrefix, http.FileServer(http.Dir(local.Root()))))
	}

	// JSON API, exempt from CSRF
	r.Route("/api", apiHandler.Routes)

	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), isDev)))

		r.Get("/", frontendHandler.Home)
		r.Get("/about", frontendHandler.About)
		r.Get("/team", frontendHandler.Team)
		r.Get("/gallery", frontendHandler.Gallery)
		r.Get("/contact", frontendHandler.Contact)

		r.Route(middleware.AdminPrefix, func(r chi.Router) {
			r.Get(handler.RouteLogin, authHandler.LoginForm)
			r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
			r.Post(handler.RouteLogout, authHandler.Logout)
			r.Post(handler.RoutePassword, authHandler.ChangePassword)
			r.Get(handler.RouteRoot, adminHandler.Dashboard)
			resourcesHandler.Routes(r)
		})
	})

	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // uploads up to 10 MB on slow links
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "storage", objectStore.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// newObjectStore picks the upload backend named by the configuration.
func newObjectStore(cfg *config.Config, logger *slog.Logger) (storage.Store, error) {
	if cfg.UseCloudinary() {
		st, err := storage.NewCloudinaryStore(storage.CloudinaryConfig{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Bucket:    cfg.StorageBucket,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("initializing cloudinary storage: %w", err)
		}
		return st, nil
	}
	return storage.NewLocalStore(cfg.UploadsDir, cfg.StorageBucket, logger), nil
}
