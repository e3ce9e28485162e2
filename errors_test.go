package typeduuid_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/typeduuid"
)

func TestTagError(t *testing.T) {
	t.Parallel()

	t.Run("Is", func(t *testing.T) {
		err := &typeduuid.TagError{Input: "", Message: "tag must not be empty"}
		assert.True(t, errors.Is(err, typeduuid.ErrInvalidTag))
		assert.False(t, errors.Is(err, typeduuid.ErrInvalidUUID))
	})

	t.Run("wrapped", func(t *testing.T) {
		_, err := typeduuid.NewTag("")
		wrapped := fmt.Errorf("loading kinds: %w", err)
		assert.True(t, typeduuid.IsTagError(wrapped))
		assert.False(t, typeduuid.IsParseError(wrapped))
	})
}

func TestParseError(t *testing.T) {
	t.Parallel()

	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("invalid UUID length: 3")
		err := &typeduuid.ParseError{Tag: typeduuid.MustTag("user"), Err: cause}
		assert.Equal(t, "typeduuid: error parsing UUID (user): invalid UUID length: 3", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, typeduuid.ErrInvalidUUID))
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &typeduuid.ParseError{Tag: typeduuid.MustTag("user")}
		assert.Equal(t, "typeduuid: error parsing UUID (user)", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("helpers", func(t *testing.T) {
		_, err := typeduuid.Parse[UserKind]("x")
		assert.True(t, typeduuid.IsParseError(err))
		assert.False(t, typeduuid.IsTagError(err))
		assert.False(t, typeduuid.IsParseError(nil))
	})
}
