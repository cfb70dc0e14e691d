package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"recommender/internal/validation"
	"recommender/internal/wizard"
	"recommender/pkg/types"
)

// wizardState godoc
//
//	@Summary	Current wizard state for the session cookie
//	@Tags		wizard
//	@Produce	json
//	@Success	200	{object}	types.WizardState
//	@Router		/api/wizard [get]
func (h *handlers) wizardState(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.View(sessionID(r))
	viewCookie(w, r, snap)
	writeJSON(w, http.StatusOK, snap.WizardState())
}

// options godoc
//
//	@Summary	Selectable types, genres and moods
//	@Tags		wizard
//	@Produce	json
//	@Success	200	{object}	types.OptionsResponse
//	@Router		/api/options [get]
func (h *handlers) options(w http.ResponseWriter, r *http.Request) {
	c := h.svc.Options()
	writeJSON(w, http.StatusOK, types.OptionsResponse{Types: c.Types, Genres: c.Genres, Moods: c.Moods})
}

// recommend godoc
//
//	@Summary	Build the prompt and ask the model for recommendations
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.RecommendationRequest	true	"Preferences"
//	@Success	200		{object}	types.RecommendationResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	415		{object}	types.ErrorResponse
//	@Failure	502		{object}	types.ErrorResponse
//	@Failure	503		{object}	types.ErrorResponse
//	@Router		/api/recommendations [post]
func (h *handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validation.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Join server base context with request context so shutdown cancels work too.
	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	res, err := h.svc.Recommend(ctx, wizard.Preferences{Type: req.Type, Favorite: req.Favorite, Genre: req.Genre, Mood: req.Mood})
	if err != nil {
		// If context was canceled (client disconnect), just return.
		if canceled(r) {
			return
		}
		writeJSONError(w, statusFor(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, types.RecommendationResponse{Prompt: res.Prompt, Listing: res.Listing})
}

// decodeJSON checks the content type and decodes a bounded body into v,
// writing the error response itself when it returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		// Oversized bodies also land here; report them as 400 without details.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
