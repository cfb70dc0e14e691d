package httpapi

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"github.com/go-chi/chi/v5"

	"recommender/internal/admin"
)

func (h *handlers) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adm == nil {
			writeJSONError(w, http.StatusServiceUnavailable, "admin client not configured")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// listFoundationModels godoc
//
//	@Summary	List foundation models
//	@Tags		admin
//	@Produce	json
//	@Param		provider			query	string	false	"Provider name, e.g. Amazon"
//	@Param		customization_type	query	string	false	"FINE_TUNING, CONTINUED_PRE_TRAINING or DISTILLATION"
//	@Param		output_modality		query	string	false	"TEXT, IMAGE or EMBEDDING"
//	@Param		inference_type		query	string	false	"ON_DEMAND or PROVISIONED"
//	@Success	200	{object}	object
//	@Failure	502	{object}	types.ErrorResponse
//	@Router		/admin/foundation-models [get]
func (h *handlers) listFoundationModels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := &bedrock.ListFoundationModelsInput{
		ByCustomizationType: bedrocktypes.ModelCustomization(q.Get("customization_type")),
		ByOutputModality:    bedrocktypes.ModelModality(q.Get("output_modality")),
		ByInferenceType:     bedrocktypes.InferenceType(q.Get("inference_type")),
	}
	if v := q.Get("provider"); v != "" {
		in.ByProvider = aws.String(v)
	}
	out, err := h.adm.ListFoundationModels(r.Context(), in)
	writeAdminResult(w, r, out, err)
}

// getCustomizationJob godoc
//
//	@Summary	Get a model customization job
//	@Tags		admin
//	@Produce	json
//	@Param		id	path		string	true	"Job name or ARN"
//	@Success	200	{object}	object
//	@Failure	502	{object}	types.ErrorResponse
//	@Router		/admin/customization-jobs/{id} [get]
func (h *handlers) getCustomizationJob(w http.ResponseWriter, r *http.Request) {
	in := &bedrock.GetModelCustomizationJobInput{JobIdentifier: aws.String(chi.URLParam(r, "id"))}
	out, err := h.adm.GetModelCustomizationJob(r.Context(), in)
	writeAdminResult(w, r, out, err)
}

// createCustomizationJob godoc
//
//	@Summary		Create a model customization job
//	@Description	The body is the Bedrock CreateModelCustomizationJob input, keyed by SDK field names.
//	@Description	Union fields name their member, e.g. {"CustomizationConfig": {"DistillationConfig": {...}}}.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object
//	@Failure		400	{object}	types.ErrorResponse
//	@Failure		502	{object}	types.ErrorResponse
//	@Router			/admin/customization-jobs [post]
func (h *handlers) createCustomizationJob(w http.ResponseWriter, r *http.Request) {
	var req admin.CreateJobRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.Input()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.adm.CreateModelCustomizationJob(r.Context(), in)
	writeAdminResult(w, r, out, err)
}

// writeAdminResult writes the SDK output as-is. Errors are not translated;
// the upstream message is returned with 502.
func writeAdminResult(w http.ResponseWriter, r *http.Request, out any, err error) {
	if err != nil {
		if canceled(r) {
			return
		}
		writeJSONError(w, statusFor(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}
