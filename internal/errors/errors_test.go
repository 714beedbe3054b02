package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := NewInternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.NotContains(t, err.Message, "disk full")
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: game not found: chess", NewNotFoundError("game", "chess").Error())
	assert.Equal(t, http.StatusBadRequest, NewValidationError("score", "must be >= 0").Status)
	assert.Equal(t, ErrCodeBadRequest, NewBadRequestError("bad json").Code)

	var target *AppError
	assert.True(t, stderrors.As(error(NewValidationError("user_id", "bad")), &target))
	assert.Equal(t, ErrCodeValidation, target.Code)
}
