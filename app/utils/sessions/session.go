package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "figurine-admin"
	deviceCookieName  = "figurine-device"

	adminSessionKey  = "admin"
	deviceSessionKey = "device_id"

	deviceMaxAge = 86400 * 30
)

type SessionStore interface {
	GetAdmin(r *http.Request) string
	SetAdmin(w http.ResponseWriter, r *http.Request, username string) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
	// GetDeviceID returns the id of the visitor's browser, issuing a new one on first visit.
	GetDeviceID(w http.ResponseWriter, r *http.Request) (string, error)
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(secure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(12 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

// getSession always returns a usable session; a cookie that fails to decode yields a new one.
func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	return c.get(r, sessionCookieName)
}

func (c *CookieSessionStore) get(r *http.Request, name string) *sessions.Session {
	session, err := c.store.Get(r, name)
	if err != nil {
		log.Printf("CookieSessionStore.getSession: discarding unreadable session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetAdmin(r *http.Request) string {
	username, ok := c.getSession(r).Values[adminSessionKey].(string)
	if !ok {
		return ""
	}
	return username
}

func (c *CookieSessionStore) SetAdmin(w http.ResponseWriter, r *http.Request, username string) error {
	session := c.getSession(r)
	session.Values[adminSessionKey] = username
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// GetDeviceID keeps the device id in its own long-lived cookie so the cart survives an admin
// logout.
func (c *CookieSessionStore) GetDeviceID(w http.ResponseWriter, r *http.Request) (string, error) {
	session := c.get(r, deviceCookieName)
	if deviceID, ok := session.Values[deviceSessionKey].(string); ok && deviceID != "" {
		return deviceID, nil
	}

	deviceID := uuid.New().String()
	session.Values[deviceSessionKey] = deviceID
	session.Options.MaxAge = deviceMaxAge
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return deviceID, nil
}
