package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/session"
	"github.com/nipia/imobiliaria-dashboard/views"
)

type Auth struct {
	store    *backend.Store
	sessions *session.Store
	views    *views.Views
}

func NewAuth(store *backend.Store, sessions *session.Store, v *views.Views) *Auth {
	return &Auth{store: store, sessions: sessions, views: v}
}

type loginPage struct {
	Email string
	Error string
}

func (a *Auth) LoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := a.sessions.Read(r); err == nil {
			http.Redirect(w, r, "/imoveis", http.StatusSeeOther)
			return
		}
		a.views.Render(w, "login", views.Page{Title: "Login", Data: loginPage{}})
	}
}

// Login proxies the credentials to the backend and caches the returned user
// record in the session cookie, replacing any prior session.
func (a *Auth) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.PostFormValue("email"))
		password := r.PostFormValue("senha")

		user, err := a.store.Login(r.Context(), email, password)
		if err != nil {
			log.Printf("Login failed for %s: %v", email, err)
			a.views.Render(w, "login", views.Page{
				Title: "Login",
				Data:  loginPage{Email: email, Error: "Email ou senha inválidos"},
			})
			return
		}

		if err := a.sessions.Write(w, *user); err != nil {
			log.Printf("Failed to write session for %s: %v", email, err)
			http.Error(w, "Erro ao iniciar sessão", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/imoveis", http.StatusSeeOther)
	}
}

func (a *Auth) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.sessions.Clear(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
