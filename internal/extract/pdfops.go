package extract

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// relaxedConfig returns a pdfcpu configuration tolerant of the slightly
// malformed PDFs that business scanners routinely produce.
func relaxedConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// ValidatePDF checks that the file at path is a structurally readable
// PDF.
func ValidatePDF(path string) error {
	if err := api.ValidateFile(path, relaxedConfig()); err != nil {
		return fmt.Errorf("pdf validation failed for %s: %w", path, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages in %s: %w", path, err)
	}
	return count, nil
}

// SplitPDF writes each page of the PDF at path as a standalone
// single-page PDF into outDir. Used before classification when a batch
// contains multi-document scans.
func SplitPDF(path, outDir string) error {
	if err := api.SplitFile(path, outDir, 1, relaxedConfig()); err != nil {
		return fmt.Errorf("failed to split %s: %w", path, err)
	}
	return nil
}
