package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/guessgame/completionrate/internal/domain"
)

func errorResponse(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{status: http.StatusBadRequest, wantErr: domain.ErrValidation},
		{status: http.StatusUnprocessableEntity, wantErr: domain.ErrValidation},
		{status: http.StatusConflict, wantErr: domain.ErrConflict},
		{status: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{status: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{status: http.StatusTooManyRequests, wantErr: domain.ErrUnavailable},
		{status: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{status: http.StatusBadGateway, wantErr: domain.ErrUnavailable},
		{status: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(&http.Response{StatusCode: tt.status, Header: http.Header{}, Body: http.NoBody})

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", tt.status, got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "problem detail",
			status:      http.StatusNotFound,
			contentType: "application/problem+json",
			body:        `{"title":"Not Found","status":404,"detail":"user 42 has no tasks"}`,
			wantSubstr:  "user 42 has no tasks",
		},
		{
			name:        "plain json error field",
			status:      http.StatusUnauthorized,
			contentType: "application/json; charset=utf-8",
			body:        `{"error":"token expired"}`,
			wantSubstr:  "token expired",
		},
		{
			name:        "plain json message field",
			status:      http.StatusForbidden,
			contentType: "application/json",
			body:        `{"message":"insufficient scope"}`,
			wantSubstr:  "insufficient scope",
		},
		{
			name:       "falls back to status text for non-JSON body",
			status:     http.StatusBadGateway,
			body:       "<html>bad gateway</html>",
			wantSubstr: "Bad Gateway",
		},
		{
			name:        "falls back to status text for malformed JSON",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `{"error":`,
			wantSubstr:  "Conflict",
		},
		{
			name:       "unexpected status keeps the code",
			status:     http.StatusTeapot,
			body:       "",
			wantSubstr: "418",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(errorResponse(tt.status, tt.contentType, tt.body))

			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "validation failed",
		"errors": [
			{"location": "query.userId", "message": "must be positive"},
			{"location": "body.title", "message": "is required"}
		]
	}`

	got := TranslateHTTPError(errorResponse(http.StatusBadRequest, "application/problem+json", body))

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", got)
	}
	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("error = %v, want errors.Is ErrValidation", got)
	}
	want := map[string]string{"userId": "must be positive", "title": "is required"}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%s] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateHTTPError_UnexpectedStatusIsNotDomainError(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(errorResponse(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict,
		domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("TranslateHTTPError(418) = %v, must not match %v", got, sentinel)
		}
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}

	if got := TranslateHTTPError(resp); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", got)
	}
}
