// Package extraction pulls plain text out of resume documents.
// Supported formats: PDF, DOCX and plain text. Extracted text is
// lower-cased once here so all downstream matching is case-free.
package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for file extensions outside the
// supported set.
var ErrUnsupportedFormat = fmt.Errorf("unsupported resume format")

// ResumeText extracts lower-cased plain text from the resume at path,
// dispatching on the file extension. An empty result with a nil error
// is possible (image-only PDFs); callers treat it as "nothing matched"
// rather than a failure.
func ResumeText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("resume file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfText(path)
	case ".docx":
		return docxText(path)
	case ".txt", ".md", ".text":
		return plainText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// pdfText extracts text page by page. Pages that fail to decode are
// skipped so one broken page doesn't lose the rest of the document.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.ToLower(sb.String()), nil
}

// docxTagRe strips the WordprocessingML markup GetContent leaves in.
var docxTagRe = regexp.MustCompile(`<[^>]+>`)

func docxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX %s: %w", path, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagRe.ReplaceAllString(content, " ")
	content = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	).Replace(content)

	return strings.ToLower(content), nil
}

func plainText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", path, err)
	}
	return strings.ToLower(string(raw)), nil
}
