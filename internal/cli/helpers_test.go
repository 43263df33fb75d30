package cli

import (
	"bytes"
	"testing"
)

var testInfo = BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2025-01-01"}

// run executes a fresh command tree with args and returns everything it wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COREBANK_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := NewRoot(testInfo)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
