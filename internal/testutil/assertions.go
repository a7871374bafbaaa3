package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertDecoded checks the log output for the report line of a definition.
// kind is "Stock", "Flow" or "Graphical function".
func AssertDecoded(t *testing.T, result *HarnessResult, kind, name string) {
	t.Helper()
	want := fmt.Sprintf("msg=%q name=%s", kind+" decoded.", name)
	require.True(t, strings.Contains(result.LogOutput, want),
		"expected %s %q to be reported, log was:\n%s", kind, name, result.LogOutput)
}

// AssertRejected checks the log output for a rejected definition whose error
// mentions fragment.
func AssertRejected(t *testing.T, result *HarnessResult, fragment string) {
	t.Helper()
	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, `msg="Definition rejected."`) && strings.Contains(line, fragment) {
			return
		}
	}
	t.Fatalf("expected a rejected definition mentioning %q, log was:\n%s", fragment, result.LogOutput)
}
