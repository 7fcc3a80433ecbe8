package server

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"roam/internal/handlers"
	authhandlers "roam/internal/handlers/auth"
	matchhandlers "roam/internal/handlers/matches"
	profilehandlers "roam/internal/handlers/profile"
	subhandlers "roam/internal/handlers/subscription"
	swipehandlers "roam/internal/handlers/swipe"
	userhandlers "roam/internal/handlers/user"
	"roam/internal/match"
	"roam/internal/middleware"
	"roam/internal/profile"
	"roam/internal/store"
	"roam/internal/subscription"
	"roam/internal/ws"
)

type Server struct {
	Addr         string
	Store        store.Store
	JWTSecret    string
	TokenTTLDays int
	CORSOrigins  []string
}

func NewServer(addr string, st store.Store, jwtSecret string, tokenTTLDays int, corsOrigins []string) *Server {
	return &Server{
		Addr:         addr,
		Store:        st,
		JWTSecret:    jwtSecret,
		TokenTTLDays: tokenTTLDays,
		CORSOrigins:  corsOrigins,
	}
}

func handlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the full route tree. Split out from Run so tests can mount
// it on httptest servers.
func (s *Server) Router() chi.Router {
	engine := match.NewEngine(s.Store)
	directory := profile.NewDirectory(s.Store)
	ledger := subscription.NewLedger(s.Store)
	hub := ws.NewHub()

	r := chi.NewRouter()
	r.Use(logger.Logger("router", log.StandardLogger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	authRequired := middleware.AuthJWT(s.JWTSecret, s.Store)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Roam API is running\n"))
	})
	r.Get("/health", handlers.HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlerFunc(&authhandlers.RegisterHandler{
			Store: s.Store, JWTSecret: s.JWTSecret, TokenTTLDays: s.TokenTTLDays,
		}))
		r.Post("/login", handlerFunc(&authhandlers.LoginHandler{
			Store: s.Store, JWTSecret: s.JWTSecret, TokenTTLDays: s.TokenTTLDays,
		}))
		r.With(authRequired).Get("/me", handlerFunc(&userhandlers.MeHandler{}))
	})

	r.With(authRequired).Put("/profile", handlerFunc(&profilehandlers.UpdateHandler{Directory: directory}))
	r.With(authRequired).Get("/profiles/discover", handlerFunc(&profilehandlers.DiscoverHandler{Directory: directory}))

	r.With(authRequired).Post("/swipe", handlerFunc(&swipehandlers.SwipeHandler{
		Engine: engine, Store: s.Store, Hub: hub,
	}))
	r.With(authRequired).Get("/matches", handlerFunc(&matchhandlers.ListHandler{Engine: engine}))

	r.Get("/subscriptions", handlerFunc(&subhandlers.PlansHandler{Ledger: ledger}))
	r.With(authRequired).Post("/subscribe/{planId}", handlerFunc(&subhandlers.SubscribeHandler{Ledger: ledger}))

	r.Get("/ws", handlerFunc(&handlers.WSHandler{Hub: hub, Users: s.Store, JWTSecret: s.JWTSecret}))

	return r
}

func (s *Server) Run() error {
	log.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
