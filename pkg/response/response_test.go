package response

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "lapakin/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestError_AppError(t *testing.T) {
	c, rec := newContext()

	err := Error(c, apperrors.Validation("No image file provided.", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No image file provided."}`, rec.Body.String())
}

func TestError_UnknownError(t *testing.T) {
	c, rec := newContext()

	err := Error(c, stderrors.New("secret internal detail"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret internal detail")
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}
