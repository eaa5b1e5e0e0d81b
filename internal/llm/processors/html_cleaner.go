package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// JDCleaner normalizes submitted job description text before it reaches the
// prompt builder. Descriptions arrive pasted from job boards and often carry
// HTML markup, scripts and boilerplate that waste prompt tokens and confuse
// category extraction.
type JDCleaner struct {
	removeTags []string
}

// NewJDCleaner creates a cleaner with the default set of noise tags.
func NewJDCleaner() *JDCleaner {
	return &JDCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "path", "meta", "link", "title",
		},
	}
}

var htmlTagPattern = regexp.MustCompile(`<\s*(?i:html|body|div|p|br|span|ul|ol|li|h[1-6]|table|a)\b`)

// looksLikeHTML reports whether the text appears to contain HTML markup worth
// parsing. Plain text with the odd angle bracket is left alone.
func looksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// Clean returns the plain-text content of a job description. Markup is parsed
// and noise tags dropped; plain text passes through with whitespace
// normalization only. Parsing failures fall back to the original text rather
// than rejecting the request.
func (jc *JDCleaner) Clean(text string) string {
	if !looksLikeHTML(text) {
		return normalizeWhitespace(text)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return normalizeWhitespace(text)
	}

	for _, tag := range jc.removeTags {
		doc.Find(tag).Remove()
	}

	extracted := doc.Find("body").Text()
	if strings.TrimSpace(extracted) == "" {
		extracted = doc.Text()
	}

	return normalizeWhitespace(extracted)
}

var (
	spaceRun   = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{3,}`)
)

func normalizeWhitespace(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = newlineRun.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
