package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// maxAnalysisRows caps how many data rows are read during analysis.
	maxAnalysisRows = 1000
	// sampleRowCount is how many data rows are kept as a preview.
	sampleRowCount = 3
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVAnalysis describes the structure of a tabular file.
type CSVAnalysis struct {
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
	Columns     []string   `json:"columns"`
	SampleRows  [][]string `json:"sample_rows,omitempty"`
}

// CSVAnalyzer reads tabular files for classification. Files are decoded
// with an encoding fallback chain (UTF-8, UTF-8 with BOM, Windows-1252,
// ISO 8859-1) since exported business data rarely declares its encoding.
type CSVAnalyzer struct{}

// NewCSVAnalyzer creates a CSV analyzer.
func NewCSVAnalyzer() *CSVAnalyzer {
	return &CSVAnalyzer{}
}

// Columns returns the column headers of the CSV file at path.
func (a *CSVAnalyzer) Columns(path string) ([]string, error) {
	analysis, err := a.Analyze(path)
	if err != nil {
		return nil, err
	}
	return analysis.Columns, nil
}

// ColumnsOrEmpty returns the column headers, degrading to an empty list
// on any failure so that classification can proceed on the filename
// alone.
func (a *CSVAnalyzer) ColumnsOrEmpty(path string) []string {
	columns, err := a.Columns(path)
	if err != nil {
		log.Printf("header extraction failed for %s: %v", path, err)
		return []string{}
	}
	return columns
}

// Analyze reads up to maxAnalysisRows of the file at path and reports
// its column headers, row count, and a small sample of data rows.
func (a *CSVAnalyzer) Analyze(path string) (*CSVAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV file: %w", err)
	}

	decoded, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	analysis := &CSVAnalysis{
		ColumnCount: len(header),
		Columns:     header,
	}

	for analysis.RowCount < maxAnalysisRows {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Tolerate ragged or malformed data rows; headers were enough
			// for classification.
			continue
		}
		if analysis.RowCount < sampleRowCount {
			analysis.SampleRows = append(analysis.SampleRows, row)
		}
		analysis.RowCount++
	}

	return analysis, nil
}

// decodeText converts raw file bytes to UTF-8, trying UTF-8 (with or
// without BOM) first and falling back to the Windows-1252 and ISO 8859-1
// single-byte encodings.
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return data, nil
	}

	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err == nil {
			return decoded, nil
		}
	}

	return nil, fmt.Errorf("could not decode file with any supported encoding")
}
