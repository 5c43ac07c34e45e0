package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"galerij/shared/failure"
	"galerij/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      failure.NotFound("Artwork not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Artwork not found"}`,
		},
		{
			name:     "validation",
			err:      failure.BadRequestFromString("title is required"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"title is required"}`,
		},
		{
			name:     "database",
			err:      errors.New("failed to get artworks: pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to get artworks: pq: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]any{"success": true, "id": 42})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":42}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
