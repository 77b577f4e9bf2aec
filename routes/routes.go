package routes

import (
	"github.com/gorilla/mux"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/controllers"
	"github.com/nipia/imobiliaria-dashboard/middleware"
	"github.com/nipia/imobiliaria-dashboard/session"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

func Routes(router *mux.Router, store *backend.Store, sessions *session.Store, v *views.Views, flash *toast.Queue) {
	public := controllers.NewPublic(store, sessions, v, flash)
	auth := controllers.NewAuth(store, sessions, v)

	// Public pages
	router.HandleFunc("/", public.Home()).Methods("GET")
	router.HandleFunc("/imovel/{id}", public.Detail()).Methods("GET")
	router.HandleFunc("/api/summaries", public.Summaries()).Methods("GET")
	router.HandleFunc("/login", auth.LoginForm()).Methods("GET")
	router.HandleFunc("/login", auth.Login()).Methods("POST")
	router.HandleFunc("/logout", auth.Logout()).Methods("POST")

	// Admin pages require a session
	authenticated := router.PathPrefix("/").Subrouter()
	authenticated.Use(middleware.RequireSession(sessions))

	mount(authenticated, controllers.Users(store, v, flash))
	mount(authenticated, controllers.Neighborhoods(store, v, flash))
	mount(authenticated, controllers.PropertyTypes(store, v, flash))

	// Properties override list (joined photo fetch), photos override save
	// (multipart upload); both mount by hand
	imoveis := controllers.Properties(store, v, flash)
	authenticated.HandleFunc("/imoveis", imoveis.List()).Methods("GET")
	authenticated.HandleFunc("/imoveis/novo", imoveis.New()).Methods("GET")
	authenticated.HandleFunc("/imoveis/{id}/editar", imoveis.Edit()).Methods("GET")
	authenticated.HandleFunc("/imoveis", imoveis.Save()).Methods("POST")
	authenticated.HandleFunc("/imoveis/{id}/excluir", imoveis.Delete()).Methods("POST")

	fotos := controllers.Photos(store, v, flash)
	authenticated.HandleFunc("/fotos", fotos.List()).Methods("GET")
	authenticated.HandleFunc("/fotos/novo", fotos.New()).Methods("GET")
	authenticated.HandleFunc("/fotos/{id}/editar", fotos.Edit()).Methods("GET")
	authenticated.HandleFunc("/fotos", fotos.Save()).Methods("POST")
	authenticated.HandleFunc("/fotos/{id}/excluir", fotos.Delete()).Methods("POST")

	// Everything else goes back to the marketing home
	router.NotFoundHandler = public.NotFound()
}

func mount[T any](router *mux.Router, c *controllers.Crud[T]) {
	router.HandleFunc("/"+c.Slug, c.List()).Methods("GET")
	router.HandleFunc("/"+c.Slug+"/novo", c.New()).Methods("GET")
	router.HandleFunc("/"+c.Slug+"/{id}/editar", c.Edit()).Methods("GET")
	router.HandleFunc("/"+c.Slug, c.Save()).Methods("POST")
	router.HandleFunc("/"+c.Slug+"/{id}/excluir", c.Delete()).Methods("POST")
}
