package app

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jkbrsn/convacolor"
	"github.com/stretchr/testify/require"
)

func captureStdoutFrom(t *testing.T, fn func() error) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	err = fn()
	require.NoError(t, err)
	require.NoError(t, w.Close())

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(output)
}

// sampleConversion converts rgb with the default converter.
func sampleConversion(t *testing.T, rgb convacolor.RGB, mode convacolor.Mode) *convacolor.Conversion {
	t.Helper()
	conv, err := convacolor.New().Convert(rgb, mode)
	require.NoError(t, err)
	return conv
}

// validatedClient returns a validated client holding the conversion of rgb.
func validatedClient(t *testing.T, rgb convacolor.RGB, s Settings) *Client {
	t.Helper()
	client := NewClient(nil, s)
	require.NoError(t, client.Validate())
	require.NoError(t, client.Convert(rgb))
	return client
}

// setNoColor sets NO_COLOR for the duration of the test.
func setNoColor(t *testing.T) {
	t.Helper()
	prev, hadEnv := os.LookupEnv("NO_COLOR")
	require.NoError(t, os.Setenv("NO_COLOR", "1"))
	t.Cleanup(func() {
		if hadEnv {
			_ = os.Setenv("NO_COLOR", prev)
		} else {
			_ = os.Unsetenv("NO_COLOR")
		}
	})
}

func decodeJSONLine(t *testing.T, output string) map[string]any {
	t.Helper()
	trimmed := strings.TrimSpace(output)
	require.NotEmpty(t, trimmed)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(trimmed), &payload))
	return payload
}

func asMap(t *testing.T, value any) map[string]any {
	t.Helper()
	result, ok := value.(map[string]any)
	require.Truef(t, ok, "expected map[string]any, got %T", value)
	return result
}

func asSlice(t *testing.T, value any) []any {
	t.Helper()
	result, ok := value.([]any)
	require.Truef(t, ok, "expected []any, got %T", value)
	return result
}
