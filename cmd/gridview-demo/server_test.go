package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/domonda/go-gridview/config"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	handler, err := newServer(config.Default(), demoUsers(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return handler
}

func get(t *testing.T, handler http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestUsersHandler(t *testing.T) {
	handler := newTestServer(t)

	code, body := get(t, handler, "/users")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "<h1>Users</h1>")
	require.Contains(t, body, `<td data-label="name">Ada Lovelace</td>`)
	require.NotContains(t, body, "Margaret Hamilton", "second page")
	require.Contains(t, body, "Showing <b>1-10</b> of <b>16</b> items.")
	require.Contains(t, body, `href="/users?page=2&amp;pagesize=10"`)
	require.Contains(t, body, `href="/users/view?id=2"`)
	require.Contains(t, body, `href="/users/delete?id=2"`)
	require.NotContains(t, body, `href="/users/delete?id=1"`, "admins can't be deleted")
	require.Contains(t, body, `<form action="/users" method="get">`)
}

func TestUsersHandler_Query(t *testing.T) {
	handler := newTestServer(t)

	t.Run("sorted page", func(t *testing.T) {
		code, body := get(t, handler, "/users?sort=-id&pagesize=5&page=1")
		require.Equal(t, http.StatusOK, code)
		tony := strings.Index(body, "Tony Hoare")
		robert := strings.Index(body, "Robert Griesemer")
		require.True(t, tony >= 0 && robert > tony, "descending by id")
		require.NotContains(t, body, "Ada Lovelace")
		require.Contains(t, body, "Showing <b>1-5</b> of <b>16</b> items.")
	})

	t.Run("page size select", func(t *testing.T) {
		_, body := get(t, handler, "/users?pageSize=20")
		require.Contains(t, body, "Tony Hoare")
		require.Contains(t, body, `<option selected value="20">20</option>`)
	})

	t.Run("filtered", func(t *testing.T) {
		_, body := get(t, handler, "/users?name=rob")
		require.Contains(t, body, "Rob Pike")
		require.Contains(t, body, "Robert Griesemer")
		require.NotContains(t, body, "Ada Lovelace")
		require.Contains(t, body, `value="rob"`)
	})

	t.Run("no results", func(t *testing.T) {
		_, body := get(t, handler, "/users?name=nobody")
		require.Contains(t, body, "No results found.")
	})

	t.Run("german", func(t *testing.T) {
		_, body := get(t, handler, "/users?lang=de")
		require.Contains(t, body, "<h1>Benutzer</h1>")
		require.Contains(t, body, "Zeige <b>1-10</b> von <b>16</b> Einträgen.")
		require.Contains(t, body, "Anmeldungen")
		require.Contains(t, body, `href="/users/view?id=2&amp;lang=de"`)
	})
}

func TestUserHandler(t *testing.T) {
	handler := newTestServer(t)

	code, body := get(t, handler, "/users/view?id=1")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "<h1>User 1</h1>")
	require.Contains(t, body, "<span>Name</span><div>\nAda Lovelace\n</div>")
	require.Contains(t, body, "2024-01-15")

	code, body = get(t, handler, "/users/update?id=2&lang=de")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "<h1>Benutzer 2</h1>")
	require.Contains(t, body, "<span>E-Mail</span>")

	code, _ = get(t, handler, "/users/view?id=99")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, handler, "/users/view?id=x")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteHandler(t *testing.T) {
	handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users/delete?id=2", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/users", rec.Header().Get("Location"))

	_, body := get(t, handler, "/users")
	require.NotContains(t, body, "Alan Turing")
	require.Contains(t, body, "of <b>15</b> items.")

	code, _ := get(t, handler, "/users/delete?id=3")
	require.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestExportHandler(t *testing.T) {
	handler := newTestServer(t)

	_, body := get(t, handler, "/users?sort=-id&name=o")
	require.Contains(t, body, `href="/users/export?name=o&amp;sort=-id"`)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/export?sort=-id&role=admin", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\r\n"), "\r\n")
	require.Len(t, lines, 7)
	require.Equal(t, "ID;Name;Email;Role;Logins;Created", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "16;Tony Hoare;tony.hoare@example.com;admin;"), lines[1])
	require.True(t, strings.HasPrefix(lines[6], "1;Ada Lovelace;"), lines[6])
	require.True(t, strings.HasSuffix(lines[6], ";2024-01-15"), lines[6])
}

func TestRootRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/users", rec.Header().Get("Location"))
}
