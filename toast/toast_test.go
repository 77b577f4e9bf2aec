package toast

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 && c.Value != "" {
			req.AddCookie(c)
		}
	}
	return req
}

func TestPushThenPop(t *testing.T) {
	q := NewQueue("test-key")

	rec := httptest.NewRecorder()
	q.Push(rec, httptest.NewRequest(http.MethodPost, "/bairros", nil), TypeSuccess, "Bairro cadastrado com sucesso!")

	rec2 := httptest.NewRecorder()
	got := q.Pop(rec2, carryCookies(t, rec, "/bairros"))

	require.Len(t, got, 1)
	assert.Equal(t, TypeSuccess, got[0].Type)
	assert.Equal(t, "Bairro cadastrado com sucesso!", got[0].Message)
	assert.NotEmpty(t, got[0].ID)
}

func TestPop_DrainsQueue(t *testing.T) {
	q := NewQueue("test-key")

	rec := httptest.NewRecorder()
	q.Push(rec, httptest.NewRequest(http.MethodPost, "/bairros", nil), TypeError, "Erro ao salvar bairro. Tente novamente.")

	rec2 := httptest.NewRecorder()
	require.Len(t, q.Pop(rec2, carryCookies(t, rec, "/bairros")), 1)

	// the popping response rewrote the cookie, so the next render sees nothing
	rec3 := httptest.NewRecorder()
	assert.Empty(t, q.Pop(rec3, carryCookies(t, rec2, "/bairros")))
}

func TestPop_EmptyWithoutCookie(t *testing.T) {
	q := NewQueue("test-key")

	rec := httptest.NewRecorder()
	assert.Empty(t, q.Pop(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	// nothing to clear, so no cookie is written either
	assert.Empty(t, rec.Result().Cookies())
}

func TestPush_KeepsEarlierMessages(t *testing.T) {
	q := NewQueue("test-key")

	first := httptest.NewRecorder()
	q.Push(first, httptest.NewRequest(http.MethodPost, "/bairros", nil), TypeInfo, "primeira")

	second := httptest.NewRecorder()
	q.Push(second, carryCookies(t, first, "/bairros"), TypeInfo, "segunda")

	got := q.Pop(httptest.NewRecorder(), carryCookies(t, second, "/bairros"))
	require.Len(t, got, 2)
	assert.Equal(t, "primeira", got[0].Message)
	assert.Equal(t, "segunda", got[1].Message)
}

func TestPop_IgnoresTamperedCookie(t *testing.T) {
	writer := NewQueue("test-key")
	rec := httptest.NewRecorder()
	writer.Push(rec, httptest.NewRequest(http.MethodPost, "/bairros", nil), TypeInfo, "segredo")

	reader := NewQueue("other-key")
	assert.Empty(t, reader.Pop(httptest.NewRecorder(), carryCookies(t, rec, "/bairros")))
}
