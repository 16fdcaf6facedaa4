package middleware_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus/middleware"
)

func TestLoggerMW_TransparentOnSuccess(t *testing.T) {
	mw := middleware.NewLoggerMW(nopLogger(t))

	result, err := mw(constHandler("payload", nil))(t.Context(), &testCmd{})

	require.NoError(t, err)
	assert.Equal(t, "payload", result)
}

func TestLoggerMW_NeverMasksFailure(t *testing.T) {
	mw := middleware.NewLoggerMW(nopLogger(t))

	handlerErr := errx.New("handler exploded", errx.WithCode("EXPLODED"))

	result, err := mw(constHandler(nil, handlerErr))(t.Context(), &testCmd{})

	assert.Nil(t, result)
	assert.Equal(t, handlerErr, err)
}
