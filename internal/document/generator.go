// Package document lays plain text out into a PDF.
package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageSize   = "A4"
	marginMM   = 15.0
	fontFamily = "Courier"
	fontSizePt = 11.0
	lineHeight = 5.5
)

// fixedTimestamp is written as the PDF creation and modification date so
// equal input always yields equal bytes.
var fixedTimestamp = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator converts rendered text into document bytes.
type Generator interface {
	Generate(ctx context.Context, text string) ([]byte, error)
}

// PDFOptions tweak document metadata.
type PDFOptions struct {
	Title  string
	Author string
}

type pdfGenerator struct {
	opts PDFOptions
}

// NewPDFGenerator returns a Generator producing A4 pages of Courier text.
func NewPDFGenerator(opts PDFOptions) Generator {
	return &pdfGenerator{opts: opts}
}

// Generate wraps text at the page width and breaks pages automatically.
// Empty text produces a single blank page.
func (g *pdfGenerator) Generate(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", pageSize, "")
	pdf.SetCompression(false)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(fixedTimestamp)
	pdf.SetModificationDate(fixedTimestamp)
	if g.opts.Title != "" {
		pdf.SetTitle(g.opts.Title, true)
	}
	if g.opts.Author != "" {
		pdf.SetAuthor(g.opts.Author, true)
	}
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	pdf.SetFont(fontFamily, "", fontSizePt)
	pdf.AddPage()

	// Core fonts are single byte; map the text onto their code page.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text = strings.ReplaceAll(text, "₹", "Rs.")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text != "" {
		pdf.MultiCell(0, lineHeight, tr(text), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
