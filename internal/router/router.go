package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	_ "clinica-api/docs"
	mem "clinica-api/internal/adapters/storage/memory"
	pg "clinica-api/internal/adapters/storage/postgres"
	"clinica-api/internal/domain/consultations"
	"clinica-api/internal/domain/doctors"
	"clinica-api/internal/domain/patients"
	"clinica-api/internal/domain/session"
	"clinica-api/internal/domain/users"
	"clinica-api/internal/middleware"
	"clinica-api/internal/platform/logger"
	"clinica-api/internal/platform/metrics"
	"clinica-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Admin es el usuario inicial; sin él nadie podría hacer login (crear usuarios requiere auth).
type Admin struct {
	Email    string
	Password string
	Name     string
}

type Options struct {
	Verifier auth.AuthVerifier
	Issuer   auth.TokenIssuer
	Hasher   users.PasswordHasher

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => se crea uno propio
	Admin   *Admin           // nil => sin usuario inicial
}

// NewRouter arma la API. Falla si faltan dependencias de auth o si no se puede crear el admin.
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	if opts.Verifier == nil || opts.Issuer == nil || opts.Hasher == nil {
		return nil, errors.New("router: verifier, issuer and hasher are required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New("")
	}

	var (
		userRepo         users.Repository
		doctorRepo       doctors.Repository
		patientRepo      patients.Repository
		consultationRepo consultations.Repository
	)

	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		doctorRepo = pg.NewDoctorsRepo(opts.DB)
		patientRepo = pg.NewPatientsRepo(opts.DB)
		consultationRepo = pg.NewConsultationsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		userRepo = mem.NewUserRepo(store)
		doctorRepo = mem.NewDoctorRepo(store)
		patientRepo = mem.NewPatientRepo(store)
		consultationRepo = mem.NewConsultationRepo(store)
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, opts.Hasher)
	doctorsSvc := doctors.NewService(doctorRepo)
	patientsSvc := patients.NewService(patientRepo)
	consultationsSvc := consultations.NewService(consultationRepo)
	sessionSvc, err := session.NewService(usersSvc, opts.Hasher, opts.Issuer)
	if err != nil {
		return nil, err
	}
	sessionSvc.ObserveWith(opts.Metrics.ObserveLogin)

	if a := opts.Admin; a != nil {
		created, err := usersSvc.EnsureAdmin(ctx, a.Email, a.Password, a.Name)
		if err != nil {
			return nil, fmt.Errorf("ensure admin: %w", err)
		}
		if created {
			opts.Logger.Info("admin user created", map[string]any{"email": users.NormalizeEmail(a.Email)})
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)
	r.Use(opts.Metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.AuthContext(opts.Verifier))

		session.RegisterRoutes(api, sessionSvc)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth)

			// Rutas por módulo
			users.RegisterRoutes(pr, usersSvc)
			doctors.RegisterRoutes(pr, doctorsSvc)
			patients.RegisterRoutes(pr, patientsSvc)
			consultations.RegisterRoutes(pr, consultationsSvc)
		})
	})

	return r, nil
}
