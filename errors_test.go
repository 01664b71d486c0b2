package dashgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/dashgen"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := dashgen.NewNotFoundErrorWithName("model", "")
		assert.Equal(t, "dashgen: model not found", err.Error())
	})

	t.Run("ErrorWithName", func(t *testing.T) {
		err := dashgen.NewNotFoundErrorWithName("model", "Post")
		assert.Equal(t, `dashgen: model "Post" not found`, err.Error())
		assert.Equal(t, "model", err.Label())
		assert.Equal(t, "Post", err.Name())
	})

	t.Run("Is", func(t *testing.T) {
		err := dashgen.NewNotFoundErrorWithName("model", "Post")
		assert.True(t, errors.Is(err, dashgen.ErrNotFound))
		assert.False(t, errors.Is(err, dashgen.ErrUnsupported))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := dashgen.NewNotFoundErrorWithName("model", "Post")
		assert.True(t, dashgen.IsNotFound(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, dashgen.IsNotFound(wrapped))

		// Sentinel error
		assert.True(t, dashgen.IsNotFound(dashgen.ErrNotFound))

		// Non-matching error
		assert.False(t, dashgen.IsNotFound(errors.New("other error")))
		assert.False(t, dashgen.IsNotFound(nil))
	})
}
