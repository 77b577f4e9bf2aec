package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bairros", r.URL.Path)
		w.Write([]byte(`[{"id":1,"nome":"Centro"}]`))
	}))
	defer srv.Close()

	var out []map[string]any
	err := NewClient(srv.URL).Get(context.Background(), "/api/bairros", &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Centro", out[0]["nome"])
}

func TestDo_FailureCarriesResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("titulo em uso"))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get(context.Background(), "/api/imoveis", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "titulo em uso", err.Error())
}

func TestDo_FailureWithEmptyBodyUsesFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get(context.Background(), "/api/imoveis", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed with status 500")
}

func TestDelete_EmptySuccessBodyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), "/api/bairros/3")
	assert.NoError(t, err)
}

func TestPost_EmptySuccessBodyLeavesTargetZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient(srv.URL).Post(context.Background(), "/api/bairros", map[string]string{"nome": "Centro"}, &out)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpload_SendsMultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "7", r.FormValue("imovelId"))
		assert.Equal(t, "true", r.FormValue("capa"))
		assert.Equal(t, "2", r.FormValue("ordem"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "casa.jpg", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(data))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL), nil)
	err := store.UploadPhoto(context.Background(), strings.NewReader("fake image bytes"), "casa.jpg", "7", true, 2)
	assert.NoError(t, err)
}
