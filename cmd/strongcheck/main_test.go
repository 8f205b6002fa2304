package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/strongtypes/codec"
	"github.com/authcorp/strongtypes/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTextOutput(t *testing.T) {
	code, out, _ := runCLI(t, "", "--kind", "email", "ADA@Example.com", "not-an-email")
	assert.Equal(t, exitInvalid, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"valid", "ADA@Example.com", "ada@example.com"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"invalid", "not-an-email"}, strings.Fields(lines[1])[:2])
}

func TestAllValidExitsZero(t *testing.T) {
	code, out, _ := runCLI(t, "", "-k", "priority", "1", "5")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, 2, strings.Count(out, "valid"))
}

func TestJSONReportFromStdin(t *testing.T) {
	code, out, _ := runCLI(t, "1\n\n7\r\n", "-k", "priority", "-f", "json")
	assert.Equal(t, exitInvalid, code)

	report, err := codec.DecodeJSON[Report]([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "priority", report.Kind)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	require.Len(t, report.Results, 2)
	assert.Equal(t, Result{Input: "1", Valid: true, Canonical: "1"}, report.Results[0])
	assert.Equal(t, "7", report.Results[1].Input)
	assert.False(t, report.Results[1].Valid)
	assert.NotEmpty(t, report.Results[1].Error)
}

func TestYAMLReport(t *testing.T) {
	code, out, _ := runCLI(t, "", "-k", "grade", "--format", "yaml", "B")
	assert.Equal(t, exitOK, code)

	report, err := codec.NewTypedYAMLCodec[Report]().Decode([]byte(out))
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "B", report.Results[0].Canonical)
}

func TestListKinds(t *testing.T) {
	code, out, _ := runCLI(t, "", "--list", "-f", "json")
	assert.Equal(t, exitOK, code)

	kinds, err := codec.DecodeJSON[[]domain.Kind]([]byte(out))
	require.NoError(t, err)
	require.Len(t, kinds, len(domain.Kinds()))
	assert.Equal(t, "amount", kinds[0].Name)

	code, out, _ = runCLI(t, "", "--list")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "E.164 phone number")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown kind", []string{"--kind", "zipcode", "x"}, `unknown kind "zipcode"`},
		{"bad format", []string{"--format", "xml", "x"}, "configuration validation failed"},
		{"bad flag", []string{"--bogus"}, "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestLoggingGoesToStderr(t *testing.T) {
	code, out, stderr := runCLI(t, "", "-k", "slug", "--log-level", "info", "--log-format", "json", "hello-world")
	assert.Equal(t, exitOK, code)
	assert.NotContains(t, out, "checked values")
	assert.Contains(t, stderr, `"msg":"checked values"`)
	assert.Contains(t, stderr, `"kind":"slug"`)
}
