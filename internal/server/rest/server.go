// Package rest exposes the vault over HTTP: the auth endpoints, the bearer
// guarded record endpoints and account erasure.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/drivenpass/internal/logging"
	"github.com/dmitrijs2005/drivenpass/internal/server/models"
)

type RESTServer struct {
	address     string
	logger      logging.Logger
	auth        *AuthHandler
	cards       *SecretHandler[*models.Card]
	credentials *SecretHandler[*models.Credential]
	notes       *SecretHandler[*models.Note]
	erase       *EraseHandler
	users       UserGetter
	jwtSecret   []byte
}

func NewRESTServer(
	address string,
	logger logging.Logger,
	auth *AuthHandler,
	cards *SecretHandler[*models.Card],
	credentials *SecretHandler[*models.Credential],
	notes *SecretHandler[*models.Note],
	erase *EraseHandler,
	users UserGetter,
	secretKey string,
) *RESTServer {
	return &RESTServer{
		address:     address,
		logger:      logger.With("module", "rest_server"),
		auth:        auth,
		cards:       cards,
		credentials: credentials,
		notes:       notes,
		erase:       erase,
		users:       users,
		jwtSecret:   []byte(secretKey),
	}
}

// Router assembles the full route tree.
func (s *RESTServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", s.auth.SignUp)
		r.Post("/sign-in", s.auth.SignIn)
	})

	r.Group(func(r chi.Router) {
		r.Use(Guard(s.users, s.jwtSecret))

		mountSecretRoutes(r, "/cards", s.cards)
		mountSecretRoutes(r, "/credentials", s.credentials)
		mountSecretRoutes(r, "/notes", s.notes)

		r.Delete("/erase", s.erase.Erase)
	})

	return r
}

func mountSecretRoutes[T models.Secret](r chi.Router, pattern string, h *SecretHandler[T]) {
	r.Route(pattern, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetOrList)
		r.Delete("/{id}", h.Delete)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
