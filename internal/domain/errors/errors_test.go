package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, CodeConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	unauth := Unauthorized("Missing token")
	assert.Equal(t, http.StatusUnauthorized, unauth.Status)
	assert.Equal(t, "Missing token", unauth.Message)

	unprocessable := UnprocessableEntity("bad email")
	assert.Equal(t, http.StatusUnprocessableEntity, unprocessable.Status)

	badReq := BadRequest("bad")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)

	internal := InternalError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "boom", internal.Error())
}

func TestAppErrorMessageFallback(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, CodeBadRequest, "only message", nil)
	assert.Equal(t, "only message", e.Error())
	assert.Nil(t, e.Unwrap())
}
