package demoserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Router wires the store API contract onto a chi mux.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/products", s.handleListProducts)
	r.Get("/products/categories", s.handleListCategories)
	r.Get("/products/category/{category}", s.handleListByCategory)
	r.Get("/products/{id}", s.handleGetProduct)
	r.Get("/users", s.handleListUsers)
	r.Post("/auth/login", s.handleLogin)

	return r
}

// requestLogger logs each request with its correlation id, generating one
// when the client sent none.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", reqID,
			"duration", time.Since(start).String(),
		)
	})
}
