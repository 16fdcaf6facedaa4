// Package meta_test contains tests for the meta package.
package meta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	tests := []struct {
		name        string
		metaData    map[meta.ContextKey]string
		keyToVerify meta.ContextKey
		valueExpect string
		nilValue    bool
	}{
		{
			name: "inject single value",
			metaData: map[meta.ContextKey]string{
				meta.CorrelationID: "abc-123",
			},
			keyToVerify: meta.CorrelationID,
			valueExpect: "abc-123",
		},
		{
			name: "inject multiple values",
			metaData: map[meta.ContextKey]string{
				meta.CorrelationID: "abc-123",
				meta.CommandKind:   "create_user",
			},
			keyToVerify: meta.CommandKind,
			valueExpect: "create_user",
		},
		{
			name: "empty values are skipped",
			metaData: map[meta.ContextKey]string{
				meta.CorrelationID: "",
			},
			keyToVerify: meta.CorrelationID,
			nilValue:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := meta.InjectMetaToContext(t.Context(), tt.metaData)

			value := ctx.Value(tt.keyToVerify)
			if tt.nilValue {
				assert.Nil(t, value)
				return
			}

			str, ok := value.(string)
			require.True(t, ok)
			assert.Equal(t, tt.valueExpect, str)
		})
	}
}

func TestExtractMetaFromContext(t *testing.T) {
	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.CorrelationID: "req-42",
		meta.CommandKind:   "get_user",
		meta.ServiceName:   "usersvc",
	})

	data := meta.ExtractMetaFromContext(ctx)

	assert.Equal(t, "req-42", data[meta.CorrelationID])
	assert.Equal(t, "get_user", data[meta.CommandKind])
	assert.Equal(t, "usersvc", data[meta.ServiceName])
	assert.NotContains(t, data, meta.TraceID)
}

func TestGetCorrelationID(t *testing.T) {
	assert.Empty(t, meta.GetCorrelationID(t.Context()))

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.CorrelationID: "abc",
	})
	assert.Equal(t, "abc", meta.GetCorrelationID(ctx))
}
