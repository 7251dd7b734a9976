// Package fakeapi serves a randomuser-compatible API in process so the
// scenario battery can run without network access.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/randomuser/go/internal/models"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

const (
	// Version is reported in info.version.
	Version = "1.4"

	// MaxResults caps results per request, like the public API.
	MaxResults = 5000

	// BasePath is where the users endpoint is mounted.
	BasePath = "/api"

	contentType = "application/json; charset=utf-8"
)

// Server answers users requests.
type Server struct {
	clock  clockwork.Clock
	strict bool
}

// Option configures a Server.
type Option func(*Server)

// WithClock sets the clock used to compute ages.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithStrictParams makes malformed results/page values answer 400 instead of
// falling back to defaults.
func WithStrictParams() Option {
	return func(s *Server) {
		s.strict = true
	}
}

// NewServer returns the routed handler.
func NewServer(opts ...Option) http.Handler {
	s := &Server{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(BasePath, s.handleUsers)
	r.Get(BasePath+"/", s.handleUsers)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}

// usersParams is a parsed users request.
type usersParams struct {
	results int
	page    int
	gender  string
	nats    []string
	seed    string
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	params, err := s.parseParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	gen := NewGenerator(params.seed, params.page, s.clock.Now())
	users := make([]models.User, params.results)
	for i := range users {
		users[i] = gen.User(params.gender, params.nats)
	}

	writeJSON(w, http.StatusOK, models.UserResponse{
		Results: users,
		Info: &models.Info{
			Seed:    params.seed,
			Results: len(users),
			Page:    params.page,
			Version: Version,
		},
	})
}

func (s *Server) parseParams(r *http.Request) (usersParams, error) {
	q := r.URL.Query()
	p := usersParams{results: 1, page: 1}

	if v := q.Get("results"); v != "" {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil || n < 1:
			if s.strict {
				return usersParams{}, fmt.Errorf("invalid results value %q", v)
			}
		case n > MaxResults:
			p.results = MaxResults
		default:
			p.results = n
		}
	}

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			if s.strict {
				return usersParams{}, fmt.Errorf("invalid page value %q", v)
			}
		} else {
			p.page = n
		}
	}

	switch g := strings.ToLower(q.Get("gender")); g {
	case "male", "female":
		p.gender = g
	}

	for _, code := range strings.Split(q.Get("nat"), ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if _, ok := nationalities[code]; ok {
			p.nats = append(p.nats, code)
		}
	}

	p.seed = q.Get("seed")
	if p.seed == "" {
		p.seed = fmt.Sprintf("%016x", rand.Uint64())
	}

	return p, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to write users response")
	}
}
