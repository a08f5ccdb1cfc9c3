package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/expert-platform/internal/platform/api"
	"github.com/example/expert-platform/internal/platform/auth"
)

// Routes mounts the admin API behind the gate. The caller must have already
// applied a middleware that injects the Principal (auth.RequireUser).
func Routes(r chi.Router, gate *auth.Gate) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(gate.Middleware)
		r.Get("/users", ListUsers())
		r.Get("/whoami", WhoAmI())
	})
}

// ListUsers answers for the admin user listing. Persistence lives elsewhere,
// so the list is always empty here.
func ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := auth.UserIDFromContext(r.Context())
		api.WriteJSON(w, http.StatusOK, map[string]any{
			"requested_by": uid,
			"users":        []any{},
		})
	}
}

func WhoAmI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := auth.PrincipalFromContext(r.Context())
		api.WriteJSON(w, http.StatusOK, map[string]any{"user_id": p.UserID, "role": p.Role})
	}
}
