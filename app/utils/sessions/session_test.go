package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieSessionStore_AdminRoundTrip(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, store.SetAdmin(rec, req, "owner"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	next := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	next.AddCookie(cookies[0])
	assert.Equal(t, "owner", store.GetAdmin(next))

	rec = httptest.NewRecorder()
	require.NoError(t, store.ClearSession(rec, next))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestCookieSessionStore_ForeignCookieIsIgnored(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "forged"})
	assert.Equal(t, "", store.GetAdmin(req))
}

func TestCookieSessionStore_DeviceIDIsStable(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))

	rec := httptest.NewRecorder()
	first, err := store.GetDeviceID(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.NoError(t, err)
	require.NotEmpty(t, first)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, deviceCookieName, cookies[0].Name)

	next := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	next.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	again, err := store.GetDeviceID(rec, next)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Empty(t, rec.Result().Cookies())

	rec = httptest.NewRecorder()
	stranger, err := store.GetDeviceID(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.NoError(t, err)
	assert.NotEqual(t, first, stranger)
}

func TestCookieSessionStore_LogoutKeepsDevice(t *testing.T) {
	store := NewCookieSessionStore(false, securecookie.GenerateRandomKey(64))

	rec := httptest.NewRecorder()
	deviceID, err := store.GetDeviceID(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	device := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(device)
	rec = httptest.NewRecorder()
	require.NoError(t, store.ClearSession(rec, req))
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, deviceCookieName, c.Name)
	}

	rec = httptest.NewRecorder()
	again, err := store.GetDeviceID(rec, req)
	require.NoError(t, err)
	assert.Equal(t, deviceID, again)
}
