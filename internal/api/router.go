package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/credit-ledger/internal/api/handlers"
	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/config"
	"github.com/baharkarakas/credit-ledger/internal/metrics"
	"github.com/baharkarakas/credit-ledger/internal/middleware"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

const idempotencyTTL = 24 * time.Hour

type RouterDeps struct {
	Cfg          config.Config
	Auth         *middleware.AuthMiddleware
	UserSvc      *services.UserService
	ClientSvc    *services.ClientService
	TxnSvc       *services.TransactionService
	LedgerSvc    *services.LedgerService
	StatementSvc *services.StatementService
	// nil disables Idempotency-Key replay
	Idempotency middleware.IdempotencyStore
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, middleware.Recover, middleware.HTTPMetrics)
	r.Use(middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Idempotency-Hit"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	authH := handlers.NewAuthHandler(d.UserSvc)
	clientH := &handlers.ClientHandler{Clients: d.ClientSvc, Ledger: d.LedgerSvc, Statements: d.StatementSvc}
	txnH := &handlers.TransactionHandler{Txns: d.TxnSvc}
	dashH := &handlers.DashboardHandler{Ledger: d.LedgerSvc}
	idem := middleware.Idempotency(d.Idempotency, idempotencyTTL)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(d.Auth.Auth)

			r.Post("/auth/logout", authH.Logout)
			r.Get("/auth/me", authH.Me)

			r.Get("/dashboard", dashH.Get)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientH.List)
				r.Post("/", clientH.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", clientH.Get)
					r.Put("/", clientH.Update)
					r.Delete("/", clientH.Delete)
					r.Get("/statement.pdf", clientH.Statement)
					r.Get("/transactions", txnH.ListForClient)
					r.With(idem).Post("/transactions", txnH.Create)
				})
			})

			r.Delete("/transactions/{id}", txnH.Delete)
		})
	})

	return r
}
