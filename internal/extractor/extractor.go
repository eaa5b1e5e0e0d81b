// Package extractor pulls plain text out of uploaded resume files. PDF and
// DOCX are the only supported formats.
package extractor

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"talentlens/internal/config"
	"talentlens/internal/logging"
)

// ErrUnsupportedFormat marks an upload whose extension is neither .pdf nor
// .docx. Handlers translate it to a client error.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extractor converts uploaded resume documents to plain text.
type Extractor struct {
	maxFileSize   int64
	minTextLength int
	logger        logging.Logger
}

// New creates an extractor with the configured size and content limits.
func New(cfg *config.Config) *Extractor {
	return &Extractor{
		maxFileSize:   cfg.Extractor.MaxFileSize,
		minTextLength: cfg.Extractor.MinTextLength,
		logger:        logging.GetGlobalLogger(),
	}
}

// ExtractText returns the plain-text content of an uploaded file, dispatching
// on the filename extension. Files over the size limit and extractions that
// produce less text than the minimum are rejected: a resume that yields a
// handful of characters is almost always a scanned image.
func (e *Extractor) ExtractText(filename string, data []byte) (string, error) {
	if int64(len(data)) > e.maxFileSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", e.maxFileSize)
	}

	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = e.extractPDF(data)
	case ".docx":
		text, err = e.extractDOCX(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	text = normalizeText(text)
	if len(text) < e.minTextLength {
		return "", fmt.Errorf("extracted text too short (%d characters), file may be image-based", len(text))
	}

	e.logger.Debug("Extracted resume text", map[string]interface{}{
		"filename": filename,
		"length":   len(text),
	})

	return text, nil
}

func (e *Extractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("Skipping unreadable PDF page", map[string]interface{}{
				"page":  pageNum,
				"error": err.Error(),
			})
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

var (
	paragraphClose = regexp.MustCompile(`</w:p>`)
	tabMark        = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag         = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX reads word/document.xml out of the DOCX zip container and
// strips the WordprocessingML markup, keeping paragraph and tab boundaries.
func (e *Extractor) extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX container: %w", err)
	}

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document body: %w", err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read document body: %w", err)
		}

		content := paragraphClose.ReplaceAllString(string(raw), "\n")
		content = tabMark.ReplaceAllString(content, "\t")
		content = xmlTag.ReplaceAllString(content, "")
		return content, nil
	}

	return "", fmt.Errorf("DOCX container has no document body")
}

var blankRun = regexp.MustCompile(`\n{3,}`)

func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")
	text = blankRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
