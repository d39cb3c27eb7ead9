package sorter

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ezark213/document-classifier-renamer/internal/classify"
	"github.com/Ezark213/document-classifier-renamer/internal/extract"
	"github.com/Ezark213/document-classifier-renamer/internal/rename"
)

// FileResult records the outcome of classifying and renaming one file.
type FileResult struct {
	OriginalName string  `json:"original_name"`
	NewName      string  `json:"new_name,omitempty"`
	Code         string  `json:"code,omitempty"`
	TypeName     string  `json:"type_name,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// BatchResult summarizes one directory sort.
type BatchResult struct {
	Processed int          `json:"processed"`
	Failed    int          `json:"failed"`
	Files     []FileResult `json:"files"`
}

// Service orchestrates extraction, classification, and renaming for
// batches of documents. Per-file failures are recorded in the batch
// result and never abort the batch.
type Service struct {
	classifier *classify.Classifier
	extractor  *extract.TextExtractor
	csv        *extract.CSVAnalyzer
	namer      rename.Namer
}

// NewService creates a sorter service.
func NewService(classifier *classify.Classifier, extractor *extract.TextExtractor, csv *extract.CSVAnalyzer, namer rename.Namer) *Service {
	return &Service{
		classifier: classifier,
		extractor:  extractor,
		csv:        csv,
		namer:      namer,
	}
}

// SortDirectory classifies every supported file under inputDir and
// copies it under its derived name into outputDir.
func (s *Service) SortDirectory(ctx context.Context, inputDir, outputDir string) (*BatchResult, error) {
	paths, err := s.collectFiles(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	result := &BatchResult{}
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		fileResult := s.SortFile(path, outputDir)
		if fileResult.Error != "" {
			result.Failed++
			log.Printf("failed to process %s: %s", fileResult.OriginalName, fileResult.Error)
		} else {
			result.Processed++
			log.Printf("processed %s -> %s (%s, confidence %.2f)",
				fileResult.OriginalName, fileResult.NewName, fileResult.TypeName, fileResult.Confidence)
		}
		result.Files = append(result.Files, fileResult)
	}

	return result, nil
}

// SortFile classifies a single file and copies it under its derived name
// into outputDir.
func (s *Service) SortFile(path, outputDir string) FileResult {
	filename := filepath.Base(path)
	result := FileResult{OriginalName: filename}

	classification, err := s.ClassifyFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	ext := strings.ToLower(filepath.Ext(path))
	outputName := s.namer.OutputName(classification, ext, time.Now())
	outputPath := rename.UniquePath(filepath.Join(outputDir, outputName))

	if err := rename.CopyFile(path, outputPath); err != nil {
		result.Error = err.Error()
		return result
	}

	result.NewName = filepath.Base(outputPath)
	result.Code = classification.Code
	result.TypeName = classification.Name
	result.Confidence = classification.Confidence
	return result
}

// ClassifyFile classifies a file on disk without renaming it. PDF text
// and CSV headers that cannot be extracted degrade to empty input, so
// classification always proceeds on at least the filename.
func (s *Service) ClassifyFile(path string) (classify.Result, error) {
	filename := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.classifier.Classify(s.pdfText(path, filename), filename), nil
	case ".csv":
		columns := s.csv.ColumnsOrEmpty(path)
		return s.classifier.ClassifyCSV(columns, filename), nil
	default:
		return classify.Result{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// pdfText returns the text content of a PDF, gated on structural
// validation. A file that fails validation is not worth handing to the
// text extractor; classification then rests on the filename alone.
func (s *Service) pdfText(path, filename string) string {
	if err := extract.ValidatePDF(path); err != nil {
		log.Printf("skipping text extraction for %s: %v", filename, err)
		return ""
	}

	if pages, err := extract.PageCount(path); err == nil {
		log.Printf("extracting text from %s (%d pages)", filename, pages)
	}

	return s.extractor.ExtractTextOrEmpty(path)
}

// collectFiles walks inputDir and returns the supported files in
// deterministic (lexical walk) order.
func (s *Service) collectFiles(inputDir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf", ".csv":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot scan input directory %s: %w", inputDir, err)
	}

	return paths, nil
}
