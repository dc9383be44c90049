package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFont     = "Helvetica"
	pdfFontSize = 14
	lineHeight  = 10
	cellWidth   = 190
)

// PDFRenderer lays a report out on a single A4 page.
type PDFRenderer struct {
	compress bool
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{compress: true}
}

// Render writes r to w as a PDF document.
func (p *PDFRenderer) Render(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(p.compress)
	pdf.SetTitle(Title, false)
	pdf.SetCreator("diacheck", false)

	// Core fonts are cp1252; translate so accented input survives.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", pdfFontSize+4)
	pdf.CellFormat(cellWidth, lineHeight, tr(Title), "", 1, "C", false, 0, "")

	pdf.SetFont(pdfFont, "", pdfFontSize-4)
	for _, l := range r.headerLines() {
		pdf.CellFormat(cellWidth, lineHeight-4, tr(l), "", 1, "C", false, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont(pdfFont, "", pdfFontSize)
	for _, l := range r.detailLines() {
		pdf.CellFormat(cellWidth, lineHeight, tr(l), "", 1, "L", false, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont(pdfFont, "B", pdfFontSize)
	pdf.CellFormat(cellWidth, lineHeight, tr(r.resultLine()), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
