// Package toast is the transient notification channel shared by every page.
// Messages queue as session flashes across the redirect that follows a
// mutation and are popped exactly once at the next render.
package toast

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sessionName = "imobiliaria_toasts"

const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
)

type Toast struct {
	ID      string
	Type    string
	Message string
}

func init() {
	gob.Register(Toast{})
}

// Queue keeps pending toasts as flash messages in a signed cookie.
type Queue struct {
	store *sessions.CookieStore
}

func NewQueue(key string) *Queue {
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Queue{store: store}
}

// Push appends a message to the pending queue.
func (q *Queue) Push(w http.ResponseWriter, r *http.Request, typ, message string) {
	sess, _ := q.store.Get(r, sessionName)
	sess.AddFlash(Toast{ID: uuid.NewString(), Type: typ, Message: message})
	if err := sess.Save(r, w); err != nil {
		log.Printf("Failed to queue toast: %v", err)
	}
}

// Pop drains the queue. Flashes clear on read and the save rewrites the
// cookie in the same response, so a reload does not replay old notifications.
func (q *Queue) Pop(w http.ResponseWriter, r *http.Request) []Toast {
	sess, _ := q.store.Get(r, sessionName)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		log.Printf("Failed to clear toast queue: %v", err)
	}
	pending := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			pending = append(pending, t)
		}
	}
	return pending
}
