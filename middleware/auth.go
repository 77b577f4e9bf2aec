package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/nipia/imobiliaria-dashboard/controllers"
	"github.com/nipia/imobiliaria-dashboard/session"
)

// RequireSession gates the admin pages: any cached user may pass, no role
// check here. Role-specific controls are decided per page from the user the
// middleware places in the context.
func RequireSession(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.Read(r)
			if err != nil {
				log.Printf("Unauthenticated request to %s %s", r.Method, r.URL.Path)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), controllers.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
