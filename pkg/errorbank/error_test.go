package errorbank

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
		{Kind("unknown"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, New(tc.kind, "boom").StatusCode(), string(tc.kind))
	}
}

func TestFrom(t *testing.T) {
	t.Run("passes through app errors", func(t *testing.T) {
		orig := NotFound("order not found")
		require.Same(t, orig, From(orig))
	})

	t.Run("passes through wrapped app errors", func(t *testing.T) {
		orig := BadRequest("bad page")
		wrapped := fmt.Errorf("handler: %w", orig)
		require.Same(t, orig, From(wrapped))
	})

	t.Run("wraps unexpected errors as internal", func(t *testing.T) {
		cause := errors.New("disk on fire")
		appErr := From(cause)
		require.Equal(t, KindInternal, appErr.Kind())
		assert.Equal(t, "internal error", appErr.Message())
		assert.ErrorIs(t, appErr, cause)
	})

	t.Run("nil in nil out", func(t *testing.T) {
		require.Nil(t, From(nil))
	})
}

func TestUnwrapAndDetails(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := Internal("failed to load order", WithCause(cause), WithDetail("id", int64(7)))

	assert.ErrorIs(t, appErr, cause)
	assert.Equal(t, map[string]any{"id": int64(7)}, appErr.Details())
	assert.Contains(t, appErr.Error(), "connection reset")
}
