// @title                      Clínica API
// @version                    1.0
// @description                Usuarios, médicos, pacientes y consultas con login por token.
// @BasePath                   /api
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-api/internal/adapters/auth/bcrypt"
	"clinica-api/internal/adapters/auth/jwtauth"
	pg "clinica-api/internal/adapters/storage/postgres"
	"clinica-api/internal/platform/config"
	"clinica-api/internal/platform/httpclient"
	"clinica-api/internal/platform/logger"
	"clinica-api/internal/platform/metrics"
	"clinica-api/internal/router"

	"github.com/spf13/pflag"
)

func main() {
	var err error
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		err = runHealthcheck(os.Args[2:])
	} else {
		err = run(os.Args[1:])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var envFile, addr string

	flagSet := pflag.NewFlagSet("api", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "archivo .env opcional")
	flagSet.StringVar(&addr, "addr", "", "dirección de escucha (default :$PORT)")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr()
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
		Env:    cfg.Server.Env,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}
	log.Info("config loaded", cfg.LogFields())

	tokens, err := jwtauth.NewTokenService(jwtauth.Config{
		Key:           cfg.JWT.Key,
		Issuer:        cfg.JWT.Issuer,
		Audience:      cfg.JWT.Audience,
		ExpiryMinutes: cfg.JWT.ExpiryMinutes,
	})
	if err != nil {
		// sin clave no se puede emitir ni validar ningún token
		return fmt.Errorf("token service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Verifier: tokens,
		Issuer:   tokens,
		Hasher:   bcrypt.NewHasher(cfg.BcryptCost),
		Logger:   log,
		Metrics:  metrics.New(cfg.AppName),
	}
	if cfg.Admin.Enabled() {
		opts.Admin = &router.Admin{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: cfg.Admin.Name}
	}

	if cfg.DB.DSN != "" {
		db, err := pg.Open(cfg.DB.DSN, pg.PoolOptions{
			MaxOpenConns:    cfg.DB.MaxOpenConns,
			MaxIdleConns:    cfg.DB.MaxIdleConns,
			ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
			ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		})
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if cfg.DB.AutoSchema {
			if err := pg.EnsureSchema(ctx, db); err != nil {
				return err
			}
			log.Info("schema ensured", nil)
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN vacío: usando storage in-memory", nil)
	}

	h, err := router.NewRouter(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// runHealthcheck: GET <url>/health, exit != 0 si no responde 2xx (probe de contenedor).
func runHealthcheck(args []string) error {
	var baseURL string
	var timeout time.Duration

	flagSet := pflag.NewFlagSet("healthcheck", pflag.ContinueOnError)
	flagSet.StringVar(&baseURL, "url", "", "URL base del servidor (default http://127.0.0.1:$PORT)")
	flagSet.DurationVar(&timeout, "timeout", 3*time.Second, "timeout del request")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://127.0.0.1:" + port
	}

	client, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx, "/health"); err != nil {
		return fmt.Errorf("healthcheck %s: %w", client.BaseURL, err)
	}
	fmt.Println("ok")
	return nil
}
