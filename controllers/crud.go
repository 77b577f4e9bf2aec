package controllers

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/nipia/imobiliaria-dashboard/models"
	"github.com/nipia/imobiliaria-dashboard/toast"
	"github.com/nipia/imobiliaria-dashboard/views"
)

type ContextKey string

// UserKey holds the session user placed in the request context by the
// auth middleware.
const UserKey = ContextKey("user")

func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(UserKey).(*models.User)
	return user
}

func capsFor(r *http.Request) models.Capabilities {
	if user := CurrentUser(r); user != nil {
		return models.CapabilitiesFor(user.Role)
	}
	return models.Capabilities{}
}

// Messages are the user-facing notification strings of one resource.
type Messages struct {
	LoadError     string
	CreateSuccess string
	UpdateSuccess string
	SaveError     string
	DeleteSuccess string
	DeleteError   string
}

// Crud is the shared list/form controller. The five admin pages are all the
// same two-state machine (list, form); each instance only supplies the
// resource's fetch, decode and mutation calls plus its strings. Validation
// failures and request failures both end in a toast: validation re-renders
// the form with the draft intact, a failed delete lands back on the list.
type Crud[T any] struct {
	Title string
	Slug  string
	Views *views.Views
	Flash *toast.Queue

	Fetch  func(context.Context) ([]T, error)
	ItemID func(T) string

	// Decode builds the draft from the submitted form and returns the
	// validation messages for missing required fields, checked in order.
	Decode func(url.Values) (T, []string)

	Create func(context.Context, T) error
	Update func(context.Context, string, T) error
	Remove func(context.Context, string) error

	// NewItem seeds the blank form; nil means the zero value.
	NewItem func() T
	// ListView optionally reshapes fetched items for the list template.
	ListView func(context.Context, []T) (any, error)
	// FormView optionally loads extra data the form needs (select options).
	FormView func(context.Context) (map[string]any, error)

	Msg Messages
}

// formPage is what the *_form templates receive in Data.
type formPage struct {
	Item  any
	Extra map[string]any
	IsNew bool
}

func (c *Crud[T]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes := c.Flash.Pop(w, r)

		var data any
		items, err := c.Fetch(r.Context())
		if err == nil {
			data = items
			if c.ListView != nil {
				data, err = c.ListView(r.Context(), items)
			}
		}
		if err != nil {
			log.Printf("Error loading %s: %v", c.Slug, err)
			notes = append(notes, toast.Toast{Type: toast.TypeError, Message: c.Msg.LoadError})
			data = nil
		}

		c.Views.Render(w, c.Slug+"_list", c.page(r, notes, data))
	}
}

func (c *Crud[T]) New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !capsFor(r).CanCreate {
			http.Error(w, "Sem permissão", http.StatusForbidden)
			return
		}
		var item T
		if c.NewItem != nil {
			item = c.NewItem()
		}
		c.renderForm(w, r, c.Flash.Pop(w, r), item, true)
	}
}

func (c *Crud[T]) Edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !capsFor(r).CanEdit {
			http.Error(w, "Sem permissão", http.StatusForbidden)
			return
		}

		id := mux.Vars(r)["id"]
		items, err := c.Fetch(r.Context())
		if err != nil {
			log.Printf("Error loading %s for edit: %v", c.Slug, err)
			c.Flash.Push(w, r, toast.TypeError, c.Msg.LoadError)
			http.Redirect(w, r, "/"+c.Slug, http.StatusSeeOther)
			return
		}
		for _, item := range items {
			if c.ItemID(item) == id {
				c.renderForm(w, r, c.Flash.Pop(w, r), item, false)
				return
			}
		}
		c.Flash.Push(w, r, toast.TypeError, c.Msg.LoadError)
		http.Redirect(w, r, "/"+c.Slug, http.StatusSeeOther)
	}
}

func (c *Crud[T]) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Formulário inválido", http.StatusBadRequest)
			return
		}
		id := r.PostForm.Get("id")

		caps := capsFor(r)
		if (id == "" && !caps.CanCreate) || (id != "" && !caps.CanEdit) {
			http.Error(w, "Sem permissão", http.StatusForbidden)
			return
		}

		item, missing := c.Decode(r.PostForm)
		if len(missing) > 0 {
			// local validation: stay on the form, no backend call
			notes := []toast.Toast{{Type: toast.TypeError, Message: missing[0]}}
			c.renderForm(w, r, notes, item, id == "")
			return
		}

		var err error
		if id == "" {
			err = c.Create(r.Context(), item)
		} else {
			err = c.Update(r.Context(), id, item)
		}
		if err != nil {
			log.Printf("Error saving %s: %v", c.Slug, err)
			notes := []toast.Toast{{Type: toast.TypeError, Message: c.Msg.SaveError}}
			c.renderForm(w, r, notes, item, id == "")
			return
		}

		if id == "" {
			c.Flash.Push(w, r, toast.TypeSuccess, c.Msg.CreateSuccess)
		} else {
			c.Flash.Push(w, r, toast.TypeSuccess, c.Msg.UpdateSuccess)
		}
		http.Redirect(w, r, "/"+c.Slug, http.StatusSeeOther)
	}
}

func (c *Crud[T]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !capsFor(r).CanDelete {
			http.Error(w, "Sem permissão", http.StatusForbidden)
			return
		}

		id := mux.Vars(r)["id"]
		if err := c.Remove(r.Context(), id); err != nil {
			log.Printf("Error deleting %s %s: %v", c.Slug, id, err)
			c.Flash.Push(w, r, toast.TypeError, c.Msg.DeleteError)
		} else {
			c.Flash.Push(w, r, toast.TypeSuccess, c.Msg.DeleteSuccess)
		}
		// the list after a mutation is always a fresh fetch
		http.Redirect(w, r, "/"+c.Slug, http.StatusSeeOther)
	}
}

func (c *Crud[T]) renderForm(w http.ResponseWriter, r *http.Request, notes []toast.Toast, item T, isNew bool) {
	var extra map[string]any
	if c.FormView != nil {
		var err error
		extra, err = c.FormView(r.Context())
		if err != nil {
			log.Printf("Error loading form data for %s: %v", c.Slug, err)
			notes = append(notes, toast.Toast{Type: toast.TypeError, Message: c.Msg.LoadError})
		}
	}
	c.Views.Render(w, c.Slug+"_form", c.page(r, notes, formPage{Item: item, Extra: extra, IsNew: isNew}))
}

func (c *Crud[T]) page(r *http.Request, notes []toast.Toast, data any) views.Page {
	return views.Page{
		Title:  c.Title,
		User:   CurrentUser(r),
		Caps:   capsFor(r),
		Toasts: notes,
		Data:   data,
	}
}
