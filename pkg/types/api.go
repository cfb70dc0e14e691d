package types

// WizardState is the JSON projection of a wizard session returned by GET /api/wizard.
type WizardState struct {
	// Media type the user wants recommendations in.
	// example: Movies
	Type string `json:"type" example:"Movies"`
	// Free-text list of favorites.
	// example: Inception
	Favorite string `json:"favorite" example:"Inception"`
	// Preferred genre.
	// example: Sci-Fi
	Genre string `json:"genre" example:"Sci-Fi"`
	// Current mood.
	// example: Excited
	Mood string `json:"mood" example:"Excited"`
	// Current step, 1 through 4.
	// example: 4
	Step int `json:"step" example:"4"`
	// True while a submission is waiting on the model.
	// example: false
	IsLoading bool `json:"isLoading" example:"false"`
	// Text returned by the model after a successful submission.
	// example: 1. Interstellar
	Listing string `json:"listing,omitempty" example:"1. Interstellar"`
	// True once a submission succeeded; the form is hidden from then on.
	// example: true
	FormSubmitted bool `json:"formSubmitted" example:"true"`
	// True when the submit control is enabled.
	// example: true
	CanSubmit bool `json:"canSubmit" example:"true"`
}

// RecommendationRequest is the payload of POST /api/recommendations.
type RecommendationRequest struct {
	// example: Movies
	Type string `json:"type" validate:"required" example:"Movies"`
	// example: Inception
	Favorite string `json:"favorite" validate:"required" example:"Inception"`
	// example: Sci-Fi
	Genre string `json:"genre" validate:"required" example:"Sci-Fi"`
	// example: Excited
	Mood string `json:"mood" validate:"required" example:"Excited"`
}

// RecommendationResponse is returned by POST /api/recommendations.
type RecommendationResponse struct {
	// Prompt sent to the model.
	Prompt string `json:"prompt"`
	// Raw model output.
	// example: 1. Interstellar\n2. Tenet
	Listing string `json:"listing" example:"1. Interstellar\n2. Tenet"`
}

// OptionsResponse lists the selectable values for each select step.
type OptionsResponse struct {
	// example: ["Books","Shows","Movies","Anime"]
	Types []string `json:"types"`
	Genres []string `json:"genres"`
	// example: ["Happy","Sad","Excited","Relaxed"]
	Moods []string `json:"moods"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Model used for recommendations.
	// example: amazon.titan-text-lite-v1
	ModelID string `json:"model_id" example:"amazon.titan-text-lite-v1"`
	// AWS region of the hosted service.
	// example: us-east-1
	Region string `json:"region" example:"us-east-1"`
	// Number of live wizard sessions.
	// example: 3
	Sessions int `json:"sessions" example:"3"`
	// Number of submissions currently waiting on the model.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// Total submissions that produced a listing.
	// example: 12
	SubmissionsOK uint64 `json:"submissions_ok" example:"12"`
	// Total submissions that failed and were swallowed.
	// example: 2
	SubmissionsFailed uint64 `json:"submissions_failed" example:"2"`
	// Total sessions dropped by the idle sweep.
	// example: 5
	EvictionsTotal uint64 `json:"evictions_total" example:"5"`
	// Last submission error observed (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
