package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrashDiagnosticMessage(t *testing.T) {
	d := crashDiagnostic("no-bare-urls", errors.New("trap: out of bounds memory access"))
	require.Equal(t, "no-bare-urls", d.RuleID)
	require.Equal(t, SeverityError, d.Severity)
	require.Contains(t, d.Message, "rule crashed:")
	require.Contains(t, d.Message, "out of bounds memory access")
}

func TestWireDiagnosticConversion(t *testing.T) {
	w := wireDiagnostic{RuleID: "heading-case", Message: "use sentence case", Range: [2]int{4, 10}, Severity: "warning"}
	d := w.toDiagnostic()
	require.Equal(t, "heading-case", d.RuleID)
	require.Equal(t, SeverityWarning, d.Severity)
	require.Equal(t, [2]int{4, 10}, d.Range)
}

func TestWireDiagnosticOptionalSeverity(t *testing.T) {
	w := wireDiagnostic{RuleID: "no-todo", Message: "found TODO"}
	d := w.toDiagnostic()
	require.Equal(t, Severity(""), d.Severity)
}
