package exchange

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestContextAccessors(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/pets/42?limit=10", nil)
	r.SetPathValue("petId", "42")
	r.Header.Set("X-API-Key", "secret")
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})

	req := NewRequestContext(r, []byte("body"))

	assert.Equal(t, "42", req.PathParam("petId"))
	assert.Equal(t, "10", req.QueryParam("limit"))
	assert.Equal(t, "secret", req.Header("X-API-Key"))
	assert.Equal(t, "abc", req.Cookie("session"))
	assert.Equal(t, []byte("body"), req.Body)

	assert.Empty(t, req.PathParam("other"))
	assert.Empty(t, req.QueryParam("other"))
	assert.Empty(t, req.Header("X-Other"))
	assert.Empty(t, req.Cookie("other"))
}

func TestResponseState(t *testing.T) {
	rs := NewResponseState()
	rs.Headers["Content-Type"] = "application/json"
	rs.Halt(http.StatusUnauthorized, `{"error":"nope"}`)

	rec := httptest.NewRecorder()
	rs.WriteToResponseWriter(rec)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `{"error":"nope"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestResponseStateRespond(t *testing.T) {
	rs := NewResponseState()
	rs.Respond(`{"ok":true}`)

	rec := httptest.NewRecorder()
	rs.WriteToResponseWriter(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}
