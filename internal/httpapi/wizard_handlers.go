package httpapi

import (
	"net/http"

	"recommender/internal/manager"
)

// page renders the current step, or the results once the form was submitted.
// A browser without a session sees the first step; the session starts on its
// first post.
func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.View(sessionID(r))
	viewCookie(w, r, snap)
	renderPage(w, http.StatusOK, newPageData(snap, h.svc.Options(), ""))
}

func (h *handlers) next(w http.ResponseWriter, r *http.Request) {
	value, ok := formValue(w, r)
	if !ok {
		return
	}
	snap, err := h.svc.Advance(h.writeID(r), value)
	h.finishStep(w, r, snap, err)
}

func (h *handlers) back(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Back(h.writeID(r))
	h.finishStep(w, r, snap, err)
}

// submit runs the model call inline; the redirect happens once it settles.
// Model failures leave the form in place and are not reported to the browser.
func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	value, ok := formValue(w, r)
	if !ok {
		return
	}
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	snap, err := h.svc.Submit(ctx, h.writeID(r), value)
	h.finishStep(w, r, snap, err)
}

// writeID returns the request's session id, starting a session for a browser
// that has none yet.
func (h *handlers) writeID(r *http.Request) string {
	if id := sessionID(r); id != "" {
		return id
	}
	return h.svc.Ensure("").ID
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Reset(sessionID(r))
	setSessionCookie(w, r, snap.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// finishStep redirects to the page after a successful edit (post/redirect/get)
// and re-renders the current step with a message otherwise.
func (h *handlers) finishStep(w http.ResponseWriter, r *http.Request, snap manager.Snapshot, err error) {
	if err == nil {
		setSessionCookie(w, r, snap.ID)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if manager.IsSessionNotFound(err) {
		// expired or forged; the next post starts a new session
		clearSessionCookie(w, r)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	status := statusFor(err, http.StatusInternalServerError)
	if status >= http.StatusInternalServerError {
		zlog.Error().Err(err).Str("path", r.URL.Path).Msg("wizard step failed")
	}
	if snap.ID == "" {
		snap = h.svc.View(sessionID(r))
	}
	viewCookie(w, r, snap)
	renderPage(w, status, newPageData(snap, h.svc.Options(), stepMessage(err)))
}

func stepMessage(err error) string {
	if manager.IsSubmitInFlight(err) {
		return "Your recommendations are still loading."
	}
	if manager.IsValidation(err) {
		return err.Error()
	}
	return "Something went wrong. Please try again."
}

// formValue parses a bounded form body and returns its "value" field.
func formValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return "", false
	}
	return r.PostFormValue("value"), true
}
