// Journal API server. Wires configuration, the database pool, services,
// and handlers together, sets up the chi router and middleware, and runs
// the HTTP server with graceful shutdown.
//
// @title Journal API
// @version 1.0
// @description Personal journal, user management, and game catalog API with JWT authentication.
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/urfave/cli/v2"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
	"github.com/user/journal-go/config"
	"github.com/user/journal-go/db"
	_ "github.com/user/journal-go/docs" // swagger spec registration
	"github.com/user/journal-go/games"
	"github.com/user/journal-go/journal"
	"github.com/user/journal-go/respond"
	"github.com/user/journal-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	setupLogging()

	app := &cli.App{
		Name:  "journal-go",
		Usage: "journal, user management, and game catalog API server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run database migrations and start the HTTP server",
				Action: func(c *cli.Context) error {
					return runServe()
				},
			},
			{
				Name:  "migrate",
				Usage: "run database migrations and exit",
				Action: func(c *cli.Context) error {
					return runMigrate()
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("application failed")
	}
}

// setupLogging configures zerolog from LOG_LEVEL (default info).
func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func runMigrate() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := db.RunMigrations(cfg.Database, cfg.MigrationsPath); err != nil {
		return err
	}
	log.Info().Msg("migrations applied")
	return nil
}

func runServe() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, err := db.NewPool(cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database, cfg.MigrationsPath); err != nil {
		return err
	}

	issuer := auth.NewTokenIssuer(*cfg.Auth)

	authService := auth.NewService(auth.NewPostgresUserRepository(pool), issuer)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewService(users.NewPostgresRepository(pool))
	userHandlers := users.NewHandlers(userService)

	journalService := journal.NewService(journal.NewPostgresRepository(pool))
	journalHandlers := journal.NewHandlers(journalService)

	gameService := games.NewService(games.NewPostgresRepository(pool))
	gameHandlers := games.NewHandlers(gameService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(recoverPanics)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSONMessage(w, http.StatusOK, nil, "Welcome to the Journal API")
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.Authenticate(issuer))

		r.Get("/me", userHandlers.HandleMe())
		r.Get("/me/stats", userHandlers.HandleStats())

		// Admin-only user management.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Get("/", userHandlers.HandleList())
			r.Get("/{id}", userHandlers.HandleGet())
			r.Put("/{id}/role", userHandlers.HandleUpdateRole())
			r.Delete("/{id}", userHandlers.HandleDelete())
		})
	})

	r.Route("/journal-entries", func(r chi.Router) {
		r.Use(auth.Authenticate(issuer))
		journalHandlers.RegisterRoutes(r)
	})

	r.Route("/games", func(r chi.Router) {
		r.Get("/", gameHandlers.HandleList())
		r.Get("/{id}", gameHandlers.HandleGet())

		// Mutating verbs optionally sit behind authentication, controlled
		// by GAMES_WRITE_PROTECTED for open-catalog deployments.
		r.Group(func(r chi.Router) {
			if cfg.Server.GamesWriteProtected {
				r.Use(auth.Authenticate(issuer))
			}
			r.Post("/", gameHandlers.HandleCreate())
			r.Put("/{id}", gameHandlers.HandleUpdate())
			r.Delete("/{id}", gameHandlers.HandleDelete())
		})
	})

	r.NotFound(respond.NotFoundHandler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped gracefully")
	return nil
}

// requestLogger emits one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

// recoverPanics converts handler panics into enveloped 500 responses.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Error().Interface("panic", rvr).Msg("handler panicked")
				respond.Error(w, r, apperror.NewInternalError("Internal server error", nil))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
