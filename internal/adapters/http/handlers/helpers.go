package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guessgame/completionrate/internal/adapters/http/dto"
	"github.com/guessgame/completionrate/internal/domain"
	"github.com/guessgame/completionrate/internal/platform/logging"
)

// maxBatchBody caps POST /api/v1/analytics/batch bodies at 1 MiB.
const maxBatchBody = 1 << 20

// inputs parses path and query values off one request and keeps every
// failure, so a 400 names all bad fields at once.
type inputs struct {
	r   *http.Request
	bad domain.ValidationError
}

func readInputs(r *http.Request) *inputs {
	return &inputs{r: r}
}

// userID reads the {id} path segment.
func (in *inputs) userID() int64 {
	id, err := strconv.ParseInt(chi.URLParam(in.r, "id"), 10, 64)
	if err != nil {
		in.bad.Add("id", "must be a valid integer")
	}
	return id
}

// count reads a required int32 query value. Out-of-range numbers are
// rejected like non-numeric ones.
func (in *inputs) count(name string) int32 {
	raw := in.r.URL.Query().Get(name)
	if raw == "" {
		in.bad.Add(name, domain.MsgRequired)
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		in.bad.Add(name, domain.MsgNotInteger)
	}
	return int32(n)
}

func (in *inputs) err() error {
	return in.bad.Err()
}

// readBatch decodes and checks the batch body, answering 400 itself when
// either step fails.
func readBatch(w http.ResponseWriter, r *http.Request) (dto.BatchAnalyticsRequest, bool) {
	var req dto.BatchAnalyticsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBatchBody)).Decode(&req); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid JSON"))
		return req, false
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body failed",
			"status", status, "error", err)
	}
}
