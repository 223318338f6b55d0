package mockcred

import (
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// Server is a mock credential service for testing.
type Server struct {
	*httptest.Server

	state  *State
	router chi.Router

	// authToken, when non-empty, is required as "Bearer <authToken>" on
	// every request; mismatches get 401.
	authToken string
}

// New creates a new mock credential service backed by a fresh in-memory
// state. The server accepts any Authorization header; use [NewWithToken] to
// enforce one.
func New() *Server {
	return newServer("")
}

// NewWithToken creates a mock credential service that rejects any request
// whose bearer token does not equal token.
func NewWithToken(token string) *Server {
	return newServer(token)
}

func newServer(token string) *Server {
	s := &Server{
		state:     NewState(),
		authToken: token,
	}

	r := chi.NewRouter()
	r.Use(s.authMiddleware)
	r.Route("/api/v1", func(r chi.Router) {
		r.Put("/data", s.handleSetCredential)
		r.Get("/data", s.handleGetCredentials)
		r.Get("/data/{id}", s.handleGetCredentialByID)
		r.Delete("/data", s.handleDeleteCredential)
		r.Get("/permissions", s.handleGetPermissions)
		r.Post("/permissions", s.handleAddPermissions)
	})
	s.router = r

	s.Server = httptest.NewServer(r)
	return s
}

// URL returns the base URL of the running mock server.
func (s *Server) URL() string {
	return s.Server.URL
}
