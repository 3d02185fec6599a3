package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hatchhr/hatchhr-backend-go/internal/domain/leave"
	"github.com/hatchhr/hatchhr-backend-go/internal/domain/salary"
	"github.com/hatchhr/hatchhr-backend-go/internal/handler/http/response"
	"github.com/hatchhr/hatchhr-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.Success(rec, map[string]string{"id": "lv-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "message")

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "lv-1", data["id"])
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("validation errors carry field details", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		response.HandleError(rec, validator.ValidationErrors{
			{Field: "amount", Message: "must be a positive decimal"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		errDetail, ok := body["error"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
		details, ok := errDetail["details"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "must be a positive decimal", details["amount"])
	})

	t.Run("domain sentinels map to their status codes", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			err  error
			code int
		}{
			{leave.ErrLeaveNotFound, http.StatusNotFound},
			{leave.ErrLeaveAlreadyDecided, http.StatusConflict},
			{leave.ErrInvalidTransition, http.StatusBadRequest},
			{salary.ErrDuplicateSalary, http.StatusConflict},
			{assert.AnError, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			rec := httptest.NewRecorder()
			response.HandleError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code, tc.err.Error())
		}
	})
}
