package middleware_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/middleware"
)

func TestRecoveryMW_ConvertsPanicToError(t *testing.T) {
	mw := middleware.NewRecoveryMW(nopLogger(t))

	panicking := func(_ context.Context, _ cmdbus.Command) (any, error) {
		panic("something broke")
	}

	result, err := mw(panicking)(t.Context(), &testCmd{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, errx.T_Internal, errx.GetType(err))
}

func TestRecoveryMW_PassesThroughOnSuccess(t *testing.T) {
	mw := middleware.NewRecoveryMW(nopLogger(t))

	result, err := mw(constHandler("fine", nil))(t.Context(), &testCmd{})

	require.NoError(t, err)
	assert.Equal(t, "fine", result)
}

func TestRecoveryMW_DoesNotAlterHandlerError(t *testing.T) {
	mw := middleware.NewRecoveryMW(nopLogger(t))

	handlerErr := errx.New("boom", errx.WithCode("BOOM"))

	_, err := mw(constHandler(nil, handlerErr))(t.Context(), &testCmd{})

	assert.Equal(t, handlerErr, err)
}
