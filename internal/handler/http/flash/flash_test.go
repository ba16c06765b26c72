package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, Success, "Project deleted successfully")

	set := rec.Result().Cookies()
	require.Len(t, set, 1)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(set[0])
	rec = httptest.NewRecorder()

	m := Pop(rec, req)
	require.NotNil(t, m)
	assert.Equal(t, Message{Kind: Success, Text: "Project deleted successfully"}, *m)
	assert.False(t, m.IsError())

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestPop_NoCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Nil(t, Pop(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Empty(t, rec.Result().Cookies())
}

func TestPop_Garbage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "!!!"})
	rec := httptest.NewRecorder()

	assert.Nil(t, Pop(rec, req))
	assert.Len(t, rec.Result().Cookies(), 1, "bad cookie is still cleared")
}

func TestMessage_IsError(t *testing.T) {
	var m *Message
	assert.False(t, m.IsError())
	assert.True(t, (&Message{Kind: Error}).IsError())
}
