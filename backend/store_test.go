package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nipia/imobiliaria-dashboard/models"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestListPhotos_DecodesNestedProperty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathPhotos, r.URL.Path)
		w.Write([]byte(`[{"id":4,"caminho":"/img/4.jpg","capa":true,"ordem":1,"imovel":{"id":9,"titulo":"Casa"}}]`))
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), nil)
	photos, err := store.ListPhotos(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, 9, photos[0].PropertyID())
	assert.True(t, photos[0].Cover)
}

func TestUpdateProperty_PutsToResourcePath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), nil)
	err := store.UpdateProperty(context.Background(), "12", models.Property{ID: 12, Title: "Casa"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, PathProperties+"/12", gotPath)
}

func TestLogin_SendsCredentialsAndReturnsUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathLogin, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":1,"nome":"Admin","email":"admin@nipia.com","role":"admin"}`))
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), nil)
	user, err := store.Login(context.Background(), "admin@nipia.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Admin", user.Name)
}

func TestList_CacheServesRepeatReads(t *testing.T) {
	getCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		getCalls++
		w.Write([]byte(`[{"id":1,"nome":"Centro","cidade":"Maringá","estado":"PR"}]`))
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), newTestCache(t))
	first, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, getCalls)
}

func TestMutationInvalidatesListCache(t *testing.T) {
	created := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			created = true
			w.WriteHeader(http.StatusCreated)
		case created:
			w.Write([]byte(`[{"id":1,"nome":"Centro","cidade":"Maringá","estado":"PR"},{"id":2,"nome":"Zona 7","cidade":"Maringá","estado":"PR"}]`))
		default:
			w.Write([]byte(`[{"id":1,"nome":"Centro","cidade":"Maringá","estado":"PR"}]`))
		}
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), newTestCache(t))

	first, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	err = store.CreateNeighborhood(context.Background(), models.Neighborhood{Name: "Zona 7", City: "Maringá", State: "PR"})
	require.NoError(t, err)

	// the list right after the mutation must already be the backend's new
	// state, never the cached body
	second, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "Zona 7", second[1].Name)
}

func TestDeleteInvalidatesListCache(t *testing.T) {
	deleted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusOK)
		case deleted:
			w.Write([]byte(`[]`))
		default:
			w.Write([]byte(`[{"id":1,"nome":"Centro","cidade":"Maringá","estado":"PR"}]`))
		}
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), newTestCache(t))

	first, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, store.DeleteNeighborhood(context.Background(), "1"))

	second, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestList_AlwaysRefetchesWithoutCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), nil)
	_, err := store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	_, err = store.ListNeighborhoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
