package httpapi

import (
	"net/http"
	"time"

	"recommender/internal/manager"
)

// SessionCookie names the cookie carrying the wizard session id.
const SessionCookie = "recommender_session"

var sessionCookieTTL = 30 * time.Minute

// SetSessionTTL sets the cookie lifetime; it should match the manager's idle TTL.
func SetSessionTTL(d time.Duration) {
	if d > 0 {
		sessionCookieTTL = d
	}
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// clearSessionCookie drops a cookie naming a session that no longer exists.
func clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// viewCookie refreshes the cookie when the read found a live session and
// drops a stale one otherwise.
func viewCookie(w http.ResponseWriter, r *http.Request, snap manager.Snapshot) {
	switch {
	case snap.ID != "":
		setSessionCookie(w, r, snap.ID)
	case sessionID(r) != "":
		clearSessionCookie(w, r)
	}
}

// setSessionCookie refreshes the cookie for id.
func setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
