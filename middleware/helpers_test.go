// Package middleware_test contains tests for the bus middlewares.
package middleware_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/logger"
)

const kindTest = cmdbus.Kind("test_command")

type testCmd struct {
	cmdbus.Base
}

func (*testCmd) Kind() cmdbus.Kind { return kindTest }

func nopLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)
	return log
}

func constHandler(result any, err error) cmdbus.Handler {
	return func(context.Context, cmdbus.Command) (any, error) {
		return result, err
	}
}
