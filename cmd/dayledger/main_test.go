package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReportsErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYLEDGER_DB_PATH", filepath.Join(dir, "dayledger.db"))
	t.Setenv("DAYLEDGER_AUTH_SECRET", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--env-file", filepath.Join(dir, "missing.env"), "token"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "DAYLEDGER_AUTH_SECRET is not set")
}

func TestRunInvoiceNumber(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAYLEDGER_DB_PATH", filepath.Join(dir, "dayledger.db"))
	t.Setenv("DAYLEDGER_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--env-file", filepath.Join(dir, "missing.env"), "invoice-number"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "INV-001\n", stdout.String())
}
