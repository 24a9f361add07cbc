package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
)

type sendRequest struct {
	ChatID  string `json:"chatId" validate:"required"`
	Message string `json:"message" validate:"required"`
	Month   int    `json:"month" validate:"omitempty,min=1,max=12"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
	}{
		{name: "valid", body: `{"chatId":"o1","message":"hi"}`},
		{name: "invalid json", body: `{bad`, wantErr: true},
		{name: "missing fields", body: `{"month":13}`, wantErr: true, wantFields: []string{"chatId", "message", "month"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(testCase.body))
			var dst sendRequest
			err := DecodeAndValidate(req, &dst)
			if !testCase.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperrors.HTTPStatus(err))

			var valErr *ValidationError
			if len(testCase.wantFields) > 0 {
				require.ErrorAs(t, err, &valErr)
				for _, field := range testCase.wantFields {
					assert.Contains(t, valErr.Fields(), field)
				}
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "app error keeps message",
			err:         apperrors.PermissionDenied("admin role required"),
			wantStatus:  http.StatusForbidden,
			wantCode:    apperrors.CodePermissionDenied,
			wantMessage: "admin role required",
		},
		{
			name:        "plain error is hidden",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apperrors.CodeInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			WriteError(rr, req, testCase.err, zap.NewNop())

			assert.Equal(t, testCase.wantStatus, rr.Code)
			var body ErrorBody
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, testCase.wantCode, body.Error.Code)
			assert.Equal(t, testCase.wantMessage, body.Error.Message)
		})
	}
}
