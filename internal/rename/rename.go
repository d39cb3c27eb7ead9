package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ezark213/document-classifier-renamer/internal/classify"
)

// Supported date format identifiers for output filenames.
const (
	DateFormatYear     = "YYYY"
	DateFormatYearMo2  = "YYMM"
	DateFormatYearMo4  = "YYYYMM"
	DateFormatFullDate = "YYYYMMDD"
)

// ValidDateFormat reports whether format is a supported date format
// identifier.
func ValidDateFormat(format string) bool {
	switch format {
	case DateFormatYear, DateFormatYearMo2, DateFormatYearMo4, DateFormatFullDate:
		return true
	}
	return false
}

// FormatDate renders t according to the given format identifier.
// Unknown identifiers fall back to the year.
func FormatDate(t time.Time, format string) string {
	switch format {
	case DateFormatYearMo2:
		return t.Format("0601")
	case DateFormatYearMo4:
		return t.Format("200601")
	case DateFormatFullDate:
		return t.Format("20060102")
	default:
		return t.Format("2006")
	}
}

// Namer derives output filenames from classification results as
// {code}_{name}_{date}.{ext}.
type Namer struct {
	DateFormat string
	// CustomDate overrides the formatted current date when non-empty.
	CustomDate string
}

// OutputName returns the output filename for a classification result.
// ext is the original file's extension including the leading dot.
func (n Namer) OutputName(result classify.Result, ext string, now time.Time) string {
	date := n.CustomDate
	if date == "" {
		date = FormatDate(now, n.DateFormat)
	}
	return fmt.Sprintf("%s_%s_%s%s", result.Code, sanitizeName(result.Name), date, ext)
}

// sanitizeName strips path separators and other characters that are not
// safe in filenames across platforms.
func sanitizeName(name string) string {
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	return strings.TrimSpace(replacer.Replace(name))
}

// UniquePath returns path unchanged if nothing exists there, otherwise
// the first {base}_{NNN}{ext} variant that is free.
func UniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%03d%s", base, counter, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// CopyFile copies src to dst, preserving the source file mode. The
// original is left in place; relocation is copy-based so a failed batch
// never loses input documents.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot access source file: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open source file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy failed: %w", err)
	}

	return finalizeCopy(out, dst)
}

// finalizeCopy closes the destination file, removing it if the close
// reports a deferred write error so no truncated copy is left behind.
func finalizeCopy(out *os.File, dst string) error {
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to finalize destination file: %w", err)
	}
	return nil
}
