package testutil

import (
	"encoding/json"
	"io"
	"os"
	"testing"
)

// CaptureOutput runs fn with os.Stdout redirected and returns what it wrote.
// Commands print through fmt, so this is the only way to see their output.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	stdout := os.Stdout
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(r)
		done <- data
	}()

	func() {
		defer func() {
			_ = w.Close()
			os.Stdout = stdout
		}()
		fn()
	}()

	return string(<-done)
}

// ParseJSON decodes a --json command response into a generic map
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	return result
}
