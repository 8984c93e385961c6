package demoserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fakestore/storefront/internal/logging"
	"github.com/fakestore/storefront/internal/models"
)

// Server holds the seed data and configuration behind the handlers.
type Server struct {
	cfg Config
	log logging.Logger
}

func NewServer(cfg Config, log logging.Logger) *Server {
	return &Server{cfg: cfg, log: log.With("component", "demoserver")}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seedProducts)
}

func (s *Server) handleListByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad category")
		return
	}

	products := make([]models.Product, 0)
	for _, p := range seedProducts {
		if strings.EqualFold(p.Category, category) {
			products = append(products, p)
		}
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, seedCategories())
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad product id")
		return
	}

	for _, p := range seedProducts {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	// The public API answers unknown ids with 200 and a null body; the
	// demo mirrors that so clients exercise the same path.
	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users := make([]models.User, 0, len(seedUsers))
	for _, u := range seedUsers {
		users = append(users, u.User)
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request body")
		return
	}

	for _, u := range seedUsers {
		// Credential check is case-sensitive: the directory lookup on the
		// client already canonicalized the username.
		if u.Username == req.Username && u.Password == req.Password {
			token, err := issueToken(s.cfg.JWTSecret, u.Username, s.cfg.TokenTTL)
			if err != nil {
				s.log.Error(r.Context(), "token signing failed", "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"token": token})
			return
		}
	}

	s.log.Warn(r.Context(), "login rejected", "username", req.Username)
	writeError(w, http.StatusUnauthorized, "username or password is incorrect")
}
