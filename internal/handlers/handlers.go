package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fitquest/docs"
	"github.com/GlebRadaev/fitquest/internal/config"
	adminhandlers "github.com/GlebRadaev/fitquest/internal/handlers/admin"
	challengehandlers "github.com/GlebRadaev/fitquest/internal/handlers/challenges"
	dashboardhandlers "github.com/GlebRadaev/fitquest/internal/handlers/dashboard"
	goalhandlers "github.com/GlebRadaev/fitquest/internal/handlers/goals"
	ledgerhandlers "github.com/GlebRadaev/fitquest/internal/handlers/ledger"
	profilehandlers "github.com/GlebRadaev/fitquest/internal/handlers/profile"
	rankinghandlers "github.com/GlebRadaev/fitquest/internal/handlers/ranking"
	"github.com/GlebRadaev/fitquest/internal/service"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/ratelimit"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ProfileHandler interface {
	Provision(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type GoalHandler interface {
	CreateGoal(w http.ResponseWriter, r *http.Request)
	ListGoals(w http.ResponseWriter, r *http.Request)
	GetGoal(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)
	GoalProgress(w http.ResponseWriter, r *http.Request)
	CreateMicroGoal(w http.ResponseWriter, r *http.Request)
	DeleteMicroGoal(w http.ResponseWriter, r *http.Request)
	ToggleMicroGoal(w http.ResponseWriter, r *http.Request)
}

type ChallengeHandler interface {
	CreateChallenge(w http.ResponseWriter, r *http.Request)
	CurrentChallenge(w http.ResponseWriter, r *http.Request)
	GetChallenge(w http.ResponseWriter, r *http.Request)
	WeeklyProgress(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	ClaimReward(w http.ResponseWriter, r *http.Request)
}

type RankingHandler interface {
	Ranking(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetLedger(w http.ResponseWriter, r *http.Request)
	AwardXP(w http.ResponseWriter, r *http.Request)
	ListAudit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProfileHandler   ProfileHandler
	LedgerHandler    LedgerHandler
	GoalHandler      GoalHandler
	ChallengeHandler ChallengeHandler
	RankingHandler   RankingHandler
	DashboardHandler DashboardHandler
	AdminHandler     AdminHandler

	identity auth.IdentityProvider
	limiter  *ratelimit.KeyedLimiter
	cfg      *config.Config
}

func New(s *service.Services, identity auth.IdentityProvider, cfg *config.Config) *Handlers {
	v := validate.New()
	return &Handlers{
		ProfileHandler:   profilehandlers.New(s.ProfileService, v),
		LedgerHandler:    ledgerhandlers.New(s.LedgerService),
		GoalHandler:      goalhandlers.New(s.GoalService, v),
		ChallengeHandler: challengehandlers.New(s.ChallengeService, v),
		RankingHandler:   rankinghandlers.New(s.RankingService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
		AdminHandler:     adminhandlers.New(s.LedgerService, s.AuditService, v),

		identity: identity,
		limiter:  ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
		cfg:      cfg,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(h.cfg.StoreTimeout),
		cors.Handler(cors.Options{
			AllowedOrigins: h.cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			ExposedHeaders: []string{"Retry-After"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.identity))

		r.Post("/profile", h.ProfileHandler.Provision)
		r.Get("/profile", h.ProfileHandler.GetProfile)
		r.Get("/ledger", h.LedgerHandler.GetLedger)
		r.Get("/dashboard", h.DashboardHandler.GetDashboard)
		r.Get("/ranking", h.RankingHandler.Ranking)

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.GoalHandler.CreateGoal)
			r.Get("/", h.GoalHandler.ListGoals)
			r.Route("/{goalID}", func(r chi.Router) {
				r.Get("/", h.GoalHandler.GetGoal)
				r.Delete("/", h.GoalHandler.DeleteGoal)
				r.Get("/progress", h.GoalHandler.GoalProgress)
				r.Post("/micro-goals", h.GoalHandler.CreateMicroGoal)
			})
		})
		r.Route("/micro-goals/{microGoalID}", func(r chi.Router) {
			r.Delete("/", h.GoalHandler.DeleteMicroGoal)
			r.With(h.limiter.PerUser).Post("/toggle", h.GoalHandler.ToggleMicroGoal)
		})

		r.Route("/challenges", func(r chi.Router) {
			r.Post("/", h.ChallengeHandler.CreateChallenge)
			r.Get("/current", h.ChallengeHandler.CurrentChallenge)
			r.Route("/{challengeID}", func(r chi.Router) {
				r.Get("/", h.ChallengeHandler.GetChallenge)
				r.Get("/progress", h.ChallengeHandler.WeeklyProgress)
				r.With(h.limiter.PerUser).Post("/check-in", h.ChallengeHandler.CheckIn)
				r.With(h.limiter.PerUser).Post("/claim", h.ChallengeHandler.ClaimReward)
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(
			auth.AuthMiddleware(h.identity),
			auth.AdminOnly(h.cfg.AdminEmail),
		)
		r.Get("/ledger/{userID}", h.AdminHandler.GetLedger)
		r.Post("/ledger/{userID}/xp", h.AdminHandler.AwardXP)
		r.Get("/audit", h.AdminHandler.ListAudit)
	})

	return r
}
