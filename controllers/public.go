package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/nipia/imobiliaria-dashboard/backend"
	"github.com/nipia/imobiliaria-dashboard/catalog"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/session"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

// Public serves the marketing pages. They sit outside the session gate, but
// still read the session so the nav reflects a logged-in user.
type Public struct {
	store    *backend.Store
	sessions *session.Store
	views    *views.Views
	flash    *toast.Queue
}

func NewPublic(store *backend.Store, sessions *session.Store, v *views.Views, flash *toast.Queue) *Public {
	return &Public{store: store, sessions: sessions, views: v, flash: flash}
}

func (p *Public) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes := p.flash.Pop(w, r)

		properties, photos, err := p.fetchListings(r)
		var summaries []catalog.Summary
		if err != nil {
			// no partial rendering: one failed fetch empties the page
			log.Printf("Error loading home data: %v", err)
			notes = append(notes, toast.Toast{Type: toast.TypeError, Message: "Erro ao carregar dados. Tente novamente."})
		} else {
			summaries = catalog.Summaries(properties, photos)
		}

		p.views.Render(w, "home", p.page(r, "Início", notes, summaries))
	}
}

func (p *Public) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		var property *models.Property
		var photos []models.Photo
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			var err error
			property, err = p.store.GetProperty(ctx, id)
			if err != nil {
				// some deployments lack the single GET; fall back to the list
				properties, listErr := p.store.ListProperties(ctx)
				if listErr != nil {
					return err
				}
				wanted, _ := strconv.Atoi(id)
				for i := range properties {
					if properties[i].ID == wanted {
						property = &properties[i]
						return nil
					}
				}
				return err
			}
			return nil
		})
		g.Go(func() error {
			var err error
			photos, err = p.store.ListPhotos(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			log.Printf("Error loading property %s: %v", id, err)
			p.flash.Push(w, r, toast.TypeError, "Imóvel não encontrado.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		detail := catalog.BuildDetail(*property, photos)
		p.views.Render(w, "detail", p.page(r, property.Title, p.flash.Pop(w, r), detail))
	}
}

// Summaries is the JSON feed behind the marketing embeds; CORS is applied at
// the server level so external pages can fetch it.
func (p *Public) Summaries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, photos, err := p.fetchListings(r)
		if err != nil {
			log.Printf("Error loading summaries: %v", err)
			http.Error(w, "Erro ao carregar dados", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(catalog.Summaries(properties, photos)); err != nil {
			log.Printf("Failed to encode summaries: %v", err)
		}
	}
}

// NotFound sends unknown paths back to the marketing home.
func (p *Public) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// fetchListings issues the property and photo reads together and fails as a
// unit, the way the pages have always loaded.
func (p *Public) fetchListings(r *http.Request) ([]models.Property, []models.Photo, error) {
	var properties []models.Property
	var photos []models.Photo
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		properties, err = p.store.ListProperties(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		photos, err = p.store.ListPhotos(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return properties, photos, nil
}

func (p *Public) page(r *http.Request, title string, notes []toast.Toast, data any) views.Page {
	page := views.Page{Title: title, Toasts: notes, Data: data}
	if user, err := p.sessions.Read(r); err == nil {
		page.User = user
		page.Caps = models.CapabilitiesFor(user.Role)
	}
	return page
}
