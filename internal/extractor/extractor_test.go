package extractor

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentlens/internal/config"
)

func extractorTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Extractor.MaxFileSize = 1 << 20
	cfg.Extractor.MinTextLength = 20
	return cfg
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextDOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Senior Engineer at Acme Corporation</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go, Python</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	e := New(extractorTestConfig())
	text, err := e.ExtractText("resume.docx", buildDOCX(t, docXML))

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer at Acme Corporation")
	assert.Contains(t, text, "Skills:\tGo, Python")
	assert.True(t, strings.Index(text, "Jane Doe") < strings.Index(text, "Senior Engineer"))
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	e := New(extractorTestConfig())

	_, err := e.ExtractText("resume.txt", []byte("plain text resume content here"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextRejectsOversizedFile(t *testing.T) {
	cfg := extractorTestConfig()
	cfg.Extractor.MaxFileSize = 10
	e := New(cfg)

	_, err := e.ExtractText("resume.pdf", bytes.Repeat([]byte("a"), 11))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum size")
}

func TestExtractTextRejectsShortContent(t *testing.T) {
	docXML := `<w:document><w:body><w:p><w:r><w:t>Hi</w:t></w:r></w:p></w:body></w:document>`

	e := New(extractorTestConfig())
	_, err := e.ExtractText("resume.docx", buildDOCX(t, docXML))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestExtractTextMalformedDOCX(t *testing.T) {
	e := New(extractorTestConfig())

	_, err := e.ExtractText("resume.docx", []byte("not a zip archive"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DOCX")
}

func TestExtractTextMalformedPDF(t *testing.T) {
	e := New(extractorTestConfig())

	_, err := e.ExtractText("resume.pdf", []byte("%PDF-1.4 truncated garbage"))

	require.Error(t, err)
}

func TestExtractTextCaseInsensitiveExtension(t *testing.T) {
	docXML := `<w:document><w:body><w:p><w:r><w:t>A perfectly ordinary resume body</w:t></w:r></w:p></w:body></w:document>`

	e := New(extractorTestConfig())
	text, err := e.ExtractText("RESUME.DOCX", buildDOCX(t, docXML))

	require.NoError(t, err)
	assert.Contains(t, text, "ordinary resume body")
}
