// Package session keeps the authenticated user in a signed cookie. The cookie
// replaces the SPA's localStorage record: it is written once at login, never
// refreshed, and cleared only by logout. Signing makes a forged role claim
// fail verification, but this is still a UX gate, not an authorization layer.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/nipia/imobiliaria-dashboard/models"
)

const cookieName = "imobiliaria_session"

var ErrNoSession = errors.New("no session")

type Claims struct {
	User models.User `json:"user"`
	jwt.StandardClaims
}

type Store struct {
	key []byte
}

func NewStore(key string) *Store {
	return &Store{key: []byte(key)}
}

// Write replaces any prior session with the given user. No ExpiresAt claim:
// sessions live until cleared, matching the behavior the pages expect.
func (s *Store) Write(w http.ResponseWriter, user models.User) error {
	user.Password = ""

	claims := &Claims{
		User: user,
		StandardClaims: jwt.StandardClaims{
			IssuedAt: time.Now().Unix(),
			Issuer:   "imobiliaria-dashboard",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the cached user record, or ErrNoSession when the cookie is
// absent, expired out from under us, or fails verification.
func (s *Store) Read(r *http.Request) (*models.User, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	return &claims.User, nil
}

func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
