// Package acl keeps the task API's wire format and failure vocabulary out of
// the domain. The task payload shapes live in acl/task; request execution
// and error mapping live here.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/guessgame/completionrate/internal/domain"
)

// maxErrorBodySize caps how much of an error answer is parsed.
const maxErrorBodySize = 1 << 20

// taskAPIProblem accepts both RFC 9457 problem documents and the bare
// {"error": ...} or {"message": ...} objects the task API's auth layer emits.
type taskAPIProblem struct {
	Detail  string `json:"detail"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Errors  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError turns a non-200 task API answer into a domain error.
// 401 and 403 both mean the shared token was refused. Field errors on a 400
// or 422 become a *domain.ValidationError. Statuses with no domain meaning
// are reported with their code and match no domain class.
func TranslateHTTPError(resp *http.Response) error {
	problem := readProblem(resp)

	class := statusClass(resp.StatusCode)
	if class == domain.ErrValidation && len(problem.Errors) > 0 {
		var verr domain.ValidationError
		for _, fe := range problem.Errors {
			verr.Add(strings.TrimPrefix(strings.TrimPrefix(fe.Location, "body."), "query."), fe.Message)
		}
		return &verr
	}

	reason := cmp.Or(problem.Detail, problem.Error, problem.Message, http.StatusText(resp.StatusCode))
	if class == nil {
		return fmt.Errorf("task-api: unexpected status %d: %s", resp.StatusCode, reason)
	}
	return fmt.Errorf("task-api: %s: %w", reason, class)
}

func statusClass(status int) error {
	switch status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusTooManyRequests:
		return domain.ErrUnavailable
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// readProblem parses a JSON error body. Anything unreadable yields the zero
// value so the status text is reported instead.
func readProblem(resp *http.Response) taskAPIProblem {
	var p taskAPIProblem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&p); err != nil {
		return taskAPIProblem{}
	}
	return p
}
