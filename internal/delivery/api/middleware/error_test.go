package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"todoapp/internal/delivery/api/response"
	deliverycontext "todoapp/internal/delivery/context"
	domainerrors "todoapp/internal/domain/errors"
	"todoapp/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	rec, body := renderError(t, errors.Wrap(domainerrors.ErrTodoNotFound, "lookup"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TODO_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleHTTPError_DetailsOnlyForClientErrors(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrValidationFailed.WithDetails("title: required"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title: required", body.Error.Details)

	rec, body = renderError(t, domainerrors.ErrInvalidToken.WithDetails("token is expired"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_DatabaseErrorHidesCause(t *testing.T) {
	rec, body := renderError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: relation todos does not exist"), "failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_EchoAndUnknownErrors(t *testing.T) {
	rec, body := renderError(t, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)

	rec, body = renderError(t, errors.New("something broke"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "something broke")
}
