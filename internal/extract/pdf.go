package extract

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls plain text out of PDF files for classification.
// Extraction quality is best-effort: a page that fails to parse is
// skipped, and a PDF with no extractable text (scanned pages) yields an
// empty string, which the classifier treats as valid input.
type TextExtractor struct {
	maxFileSize int64
	maxTextSize int
}

// NewTextExtractor creates a text extractor with the given file size
// limit.
func NewTextExtractor(maxFileSize int64) *TextExtractor {
	return &TextExtractor{
		maxFileSize: maxFileSize,
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractText extracts the text content of a PDF file. The returned
// string may be empty for scanned or image-only documents; that is not
// an error.
func (e *TextExtractor) ExtractText(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if err := e.validatePDFFile(path, fileInfo); err != nil {
		return "", err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return e.extractTextContent(pdfReader), nil
}

// ExtractTextOrEmpty extracts text, degrading to an empty string on any
// failure so that classification can proceed on the filename alone.
func (e *TextExtractor) ExtractTextOrEmpty(path string) string {
	text, err := e.ExtractText(path)
	if err != nil {
		log.Printf("text extraction failed for %s: %v", path, err)
		return ""
	}
	return text
}

func (e *TextExtractor) validatePDFFile(path string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return fmt.Errorf("file is not a PDF: %s", path)
	}

	if fileInfo.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), e.maxFileSize)
	}

	return nil
}

func (e *TextExtractor) extractTextContent(pdfReader *pdf.Reader) string {
	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails
			continue
		}

		if totalLength+len(content) > e.maxTextSize {
			remaining := e.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < pdfReader.NumPage() {
			builder.WriteString("\n")
		}
	}

	return strings.TrimSpace(builder.String())
}
