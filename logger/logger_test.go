// Package logger_test contains tests for the logger package.
package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus/logger"
	"github.com/rise-and-shine/cmdbus/meta"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{
			name: "json encoding",
			cfg:  logger.Config{Level: "info", Encoding: "json"},
		},
		{
			name: "pretty encoding",
			cfg:  logger.Config{Level: "debug", Encoding: "pretty"},
		},
		{
			name: "disabled logger",
			cfg:  logger.Config{Disable: true},
		},
		{
			name:    "invalid level",
			cfg:     logger.Config{Level: "loud", Encoding: "json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestWithContext(t *testing.T) {
	log, err := logger.New(logger.Config{Disable: true})
	require.NoError(t, err)

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.CorrelationID: "abc",
	})

	// Enrichment must not panic and must return a usable logger.
	enriched := log.WithContext(ctx)
	assert.NotNil(t, enriched)
	enriched.Info("still works")

	assert.NotNil(t, log.WithContext(nil)) //nolint:staticcheck // nil context tolerated by design
}
