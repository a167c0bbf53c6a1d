package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Wirefill/internal/auth"
	"Wirefill/internal/calc/batch"
	"Wirefill/internal/calc/importer"
	"Wirefill/internal/calc/recommend"
	"Wirefill/internal/calc/report"
	"Wirefill/internal/calc/tables"
	"Wirefill/internal/calc/wireway"
	"Wirefill/internal/config"
	"Wirefill/internal/logger"
	"Wirefill/internal/middleware"
	"Wirefill/internal/notes"
	"Wirefill/internal/notify"
	"Wirefill/internal/repo"
	"Wirefill/internal/web"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// services are the optional collaborators; nil fields disable their routes.
type services struct {
	store    repo.Repository
	notifier notes.Notifier
	// notes is built by HandleList when nil.
	notes *notes.Handler
}

func HandleList(router *mux.Router, cfg *config.Config, svc services) error {
	site := web.Site{
		Owner:        cfg.SiteOwner,
		Tagline:      cfg.SiteTagline,
		Links:        cfg.Links(),
		NotesEnabled: svc.store != nil,
	}
	pages, err := web.NewHandler(site)
	if err != nil {
		return err
	}

	var pinger web.Pinger
	if svc.store != nil {
		pinger = svc.store
	}
	router.HandleFunc("/healthz", web.Health(pinger)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	wirewayH := &wireway.Handler{}
	tablesH := &tables.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}
	recommendH := &recommend.Handler{}

	api.HandleFunc("/wireway/calc", wirewayH.Calc).Methods("POST")
	api.HandleFunc("/wireway/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/wireway/import", importH.Import).Methods("POST")
	api.HandleFunc("/wireway/export.xlsx", importH.Export).Methods("POST")
	api.HandleFunc("/wireway/recommend", recommendH.Conductor).Methods("POST")
	api.HandleFunc("/wireway/report.pdf", reportH.Generate).Methods("GET", "POST")

	api.HandleFunc("/tables/sizes", tablesH.Sizes).Methods("GET")
	api.HandleFunc("/tables/ampacity", tablesH.Ampacity).Methods("GET")
	api.HandleFunc("/tables/diameter", tablesH.Diameter).Methods("GET")
	api.HandleFunc("/tables/correction", tablesH.Correction).Methods("GET")

	if svc.store != nil {
		notesH := svc.notes
		if notesH == nil {
			notesH = notes.NewHandler(svc.store, svc.notifier)
		}
		notesLimiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		api.Handle("/notes", notesLimiter.LimitMiddleware(http.HandlerFunc(notesH.Create))).Methods("POST")

		if cfg.AdminEnabled() {
			authEnv := auth.NewAuthenv([]byte(cfg.TokenKey), cfg.AdminLogin, cfg.AdminPasswordHash, cfg.CookieSecure)
			loginLimiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
			api.Handle("/login", loginLimiter.LimitMiddleware(http.HandlerFunc(authEnv.AuthHandler))).Methods("POST")
			api.HandleFunc("/logout", authEnv.LogoutHandler).Methods("POST")

			admin := api.PathPrefix("/admin").Subrouter()
			admin.Use(authEnv.AuthMiddleware)
			admin.HandleFunc("/notes", notesH.List).Methods("GET")
		}
	}

	router.HandleFunc("/calculator", pages.Calculator).Methods("GET")
	router.HandleFunc("/", pages.Index).Methods("GET")
	return nil
}

func newHandler(cfg *config.Config, svc services) (http.Handler, error) {
	router := mux.NewRouter()
	if err := HandleList(router, cfg, svc); err != nil {
		return nil, err
	}
	var h http.Handler = router
	h = middleware.CORS(cfg.CORSAllowedOrigins)(h)
	h = middleware.Gzip(h)
	h = middleware.LogRequest(h)
	return h, nil
}

func openServices(ctx context.Context, cfg *config.Config) (services, func(), error) {
	var svc services
	closeFn := func() {}

	if cfg.NotesEnabled() {
		db, err := repo.InitDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return svc, closeFn, err
		}
		closeFn = func() { db.Close() }
		pg := repo.NewPostgresNoteDB(db)
		if err := pg.Migrate(ctx); err != nil {
			return svc, closeFn, err
		}
		svc.store = pg
		slog.Info("Notes enabled")
	}
	if cfg.TelegramEnabled() {
		svc.notifier = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	}
	return svc, closeFn, nil
}

// drainNotes waits for note notifications still being delivered.
func drainNotes(ctx context.Context, svc services) error {
	if svc.notes == nil {
		return nil
	}
	return svc.notes.Wait(ctx)
}

func run(ctx context.Context, cfg *config.Config) error {
	svc, closeServices, err := openServices(ctx, cfg)
	defer closeServices()
	if err != nil {
		return err
	}
	if svc.store != nil {
		svc.notes = notes.NewHandler(svc.store, svc.notifier)
	}

	handler, err := newHandler(cfg, svc)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting server", "addr", server.Addr, "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := drainNotes(shutdownCtx, svc); err != nil {
			slog.Warn("Pending note notifications abandoned", "error", err)
		}
		slog.Info("Server stopped")
		return nil
	})
	return g.Wait()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
