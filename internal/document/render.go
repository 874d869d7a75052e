package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// ErrFileInUse is returned when an output PDF cannot be overwritten because
// another program holds it open. The caller should ask the user to close it
// and retry.
var ErrFileInUse = errors.New("output file is in use")

// Renderer writes the filled forms as PDFs into the output directory.
type Renderer struct {
	outputDir string
}

// NewRenderer returns a renderer writing into outputDir. The directory is
// created on first render.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{outputDir: outputDir}
}

// OutputDir returns the directory rendered files are written to.
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

// Render writes one form and returns the path of the written file.
func (r *Renderer) Render(form Form, d Data, fields FieldMap) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(r.outputDir, form.OutputFileName(d.Applicant.FirstName, d.Applicant.LastName))

	f, err := os.Create(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("%w: %s", ErrFileInUse, path)
		}

		return "", fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	pdf := buildPDF(form, d, fields)

	if err := pdf.Output(f); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}

	return path, nil
}

func buildPDF(form Form, d Data, fields FieldMap) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(form.Title(), true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, form.Title(), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, d.Establishment.Name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	const (
		keyWidth   = 95
		valueWidth = 85
		rowHeight  = 5.5
	)

	for _, e := range fields {
		if e.Value == "" {
			continue
		}

		if e.Value == checked || e.Value == "Yes" {
			pdf.SetFont("ZapfDingbats", "", 9)
			pdf.CellFormat(6, rowHeight, "4", "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(keyWidth+valueWidth-6, rowHeight, e.Key, "", "L", false)

			continue
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(keyWidth, rowHeight, e.Key, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.MultiCell(valueWidth, rowHeight, e.Value, "", "L", false)
	}

	return pdf
}
