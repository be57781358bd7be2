package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	text, err := GeneratePayoutReport(sampleRecords())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(text, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWritePDFFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payout.pdf")

	require.NoError(t, WritePDFFile("Design\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWritePDFFileBadPath(t *testing.T) {
	err := WritePDFFile("Design\n", filepath.Join(t.TempDir(), "missing", "payout.pdf"))
	assert.Error(t, err)
}
