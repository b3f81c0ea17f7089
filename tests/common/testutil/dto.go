//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one request body before it is sent.
type Edit func(m map[string]any)

// Body renders v the way it goes over the wire and applies edits, so tests can send
// payloads the request struct itself could not express.
func Body(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, e := range edits {
		e(m)
	}
	return m
}

func Set(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(keys ...string) Edit {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
