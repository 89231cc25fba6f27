package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/shared"
)

type sampleForm struct {
	Name  string  `json:"name" validate:"required"`
	Amt   float64 `json:"amt" validate:"required"`
	Notes string  `json:"notes"`
}

func postRequest(body string) (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"name":"IBM","amt":10}`},
		{name: "empty", body: ``, wantErr: "request body is required"},
		{name: "malformed", body: `{"name":`, wantErr: "malformed JSON body"},
		{name: "two objects", body: `{"name":"a"}{"name":"b"}`, wantErr: "single JSON object"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, r := postRequest(tc.body)
			var form sampleForm
			err := DecodeJSON(w, r, &form)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "IBM", form.Name)
				return
			}
			assert.ErrorIs(t, err, shared.ErrValidation)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestBindReportsMissingFieldsByJSONName(t *testing.T) {
	w, r := postRequest(`{"notes":"x"}`)

	var form sampleForm
	err := Bind(w, r, &form)

	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.EqualError(t, err, "name is required; amt is required")
}

func TestRespondErrorStatusMapping(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tests := []struct {
		err    error
		status int
		detail string
	}{
		{shared.NotFound("invoice not found: %d", 9), http.StatusNotFound, "invoice not found: 9"},
		{shared.Duplicate("company %q already exists", "ibm"), http.StatusConflict, `company "ibm" already exists`},
		{shared.Invalid("amt is required"), http.StatusBadRequest, "amt is required"},
		{shared.InvalidID("invalid invoice id: %q", "x"), http.StatusBadRequest, `invalid invoice id: "x"`},
		{errors.New("connection reset"), http.StatusInternalServerError, ""},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		RespondError(rr, httptest.NewRequest(http.MethodGet, "/invoices/9", nil), logger, tc.err)

		require.Equal(t, tc.status, rr.Code)
		assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
		var problem ProblemDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
		assert.Equal(t, tc.status, problem.Status)
		assert.Equal(t, tc.detail, problem.Detail)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	}
}

func TestDeleted(t *testing.T) {
	rr := httptest.NewRecorder()
	Deleted(rr)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rr.Body.String())
}
