package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexanderYastrebov/ed25519core"
	"github.com/AlexanderYastrebov/ed25519core/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	basepointHex  = "5866666666666666666666666666666666666666666666666666666666666666"
	basepointUHex = "0900000000000000000000000000000000000000000000000000000000000000"
	twoBHex       = "c9a3f86aae465f0e56513864510f3997561fa2c9e85ea21dc2292309f3cd6022"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestGeneratedTableIsUpToDate(t *testing.T) {
	want, err := os.ReadFile("../../table_generated.go")
	require.NoError(t, err)

	got, err := renderTable("ed25519core", ed25519core.GenerateBasepointTable())
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got), "table_generated.go is stale, run go generate")
}

func TestGenTableStdout(t *testing.T) {
	out, err := execute(t, "gentable", "--output", "-", "--package", "other")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by"))
	assert.Contains(t, out, "\npackage other\n")
	assert.Contains(t, out, "// [1]B\n")
	assert.Contains(t, out, "// [255]B\n")
	assert.NotContains(t, out, "// [257]B\n")
}

func TestGenTableFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "table.go")
	out, err := execute(t, "gentable", "-o", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	want, err := renderTable("ed25519core", ed25519core.GenerateBasepointTable())
	require.NoError(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBackend(t *testing.T) {
	out, err := execute(t, "backend")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: "+field.Backend+"\n")
}

func TestBestBackend(t *testing.T) {
	for _, tc := range []struct {
		goarch   string
		features cpuFeatures
		backend  string
		setting  string
	}{
		{"amd64", cpuFeatures{}, "fe51", ""},
		{"amd64", cpuFeatures{AVX2: true}, "fe51", ""},
		{"amd64", cpuFeatures{AVX2: true, BMI2: true}, "fe2526", "GOAMD64=v3"},
		{"amd64", cpuFeatures{AVX2: true, BMI2: true, AVX512F: true, AVX512VL: true}, "fe2526", "GOAMD64=v3"},
		{"amd64", cpuFeatures{AVX2: true, BMI2: true, AVX512F: true, AVX512VL: true, AVX512IFMA: true}, "fe43", "GOAMD64=v4"},
		{"arm64", cpuFeatures{ASIMD: true}, "fe64", "GOARCH=arm64"},
		{"riscv64", cpuFeatures{}, "fe51", ""},
	} {
		backend, setting := bestBackend(tc.goarch, tc.features)
		assert.Equal(t, tc.backend, backend, "%s %+v", tc.goarch, tc.features)
		assert.Equal(t, tc.setting, setting, "%s %+v", tc.goarch, tc.features)
	}
}

func TestRunBackendHint(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBackend(&out, "amd64", cpuFeatures{AVX2: true, BMI2: true, AVX512F: true, AVX512VL: true, AVX512IFMA: true}))

	if field.Backend == "fe43" {
		assert.NotContains(t, out.String(), "hint:")
	} else {
		assert.Contains(t, out.String(), "hint:    this CPU can run fe43, rebuild with GOAMD64=v4\n")
	}
}

func TestScalarMult(t *testing.T) {
	out, err := execute(t, "scalarmult", "1")
	require.NoError(t, err)
	assert.Equal(t, "point: "+basepointHex+"\nu:     "+basepointUHex+"\n", out)

	out, err = execute(t, "scalarmult", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "point: "+twoBHex+"\n")

	out, err = execute(t, "scalarmult", "--hex", "0200000000000000000000000000000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Contains(t, out, "point: "+twoBHex+"\n")

	out, err = execute(t, "scalarmult", "--point", basepointHex, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "point: "+twoBHex+"\n")
}

func TestScalarMultErrors(t *testing.T) {
	for _, args := range [][]string{
		{"scalarmult"},
		{"scalarmult", "-1"},
		{"scalarmult", "0x10"},
		{"scalarmult", "115792089237316195423570985008687907853269984665640564039457584007913129639936"}, // 2^256
		{"scalarmult", "--hex", "02"},
		{"scalarmult", "--hex", "zz"},
		{"scalarmult", "--point", "0200000000000000000000000000000000000000000000000000000000000000", "1"},
		{"scalarmult", "--point", "58", "1"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "debug", "backend")
	assert.NoError(t, err)

	_, err = execute(t, "--log-level", "loud", "backend")
	assert.ErrorContains(t, err, `unable to parse logging level "loud"`)
}
