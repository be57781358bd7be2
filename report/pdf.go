package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

const tabWidth = 8

// WritePDF lays the rendered report out in a monospace font so columns line up.
func WritePDF(report string, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payout Report", true)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := strings.ReplaceAll(report, "\t", strings.Repeat(" ", tabWidth))
	pdf.MultiCell(0, 5, tr(text), "", "L", false)

	return pdf.Output(w)
}

func WritePDFFile(report string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err = WritePDF(report, f); err != nil {
		f.Close()
		return fmt.Errorf("WritePDFFile::%s: %w", path, err)
	}

	return f.Close()
}
