// Package pdfdoc builds printable A4 documents from an ordered list of
// typed blocks (text, spacer, image, table). Callers append blocks in
// reading order and hand the document to Render, which owns all coordinate
// placement and pagination. No caller ever positions content by hand.
package pdfdoc

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 20.0
)

// contentWidth is the usable width between margins.
const contentWidth = pageWidth - marginLeft - marginRight

// Align controls horizontal placement of text and cells.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// TextStyle describes font settings for a text block.
type TextStyle struct {
	Size  float64
	Bold  bool
	Align Align
}

// block is the unit of document assembly. Each kind knows how to draw
// itself at the current cursor position.
type block interface {
	draw(pdf *gofpdf.Fpdf) error
}

// Document is an ordered list of blocks plus render state.
type Document struct {
	blocks []block
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// --- Text ---

type textBlock struct {
	text  string
	style TextStyle
}

func (b *textBlock) draw(pdf *gofpdf.Fpdf) error {
	style := ""
	if b.style.Bold {
		style = "B"
	}
	size := b.style.Size
	if size == 0 {
		size = 11
	}
	align := b.style.Align
	if align == "" {
		align = AlignLeft
	}
	pdf.SetFont("Helvetica", style, size)
	lineHeight := size * 0.55
	pdf.CellFormat(contentWidth, lineHeight, b.text, "", 1, string(align), false, 0, "")
	return nil
}

// Text appends a single line of text.
func (d *Document) Text(text string, style TextStyle) *Document {
	d.blocks = append(d.blocks, &textBlock{text: text, style: style})
	return d
}

// --- Spacer ---

type spacerBlock struct {
	height float64
}

func (b *spacerBlock) draw(pdf *gofpdf.Fpdf) error {
	pdf.Ln(b.height)
	return nil
}

// Spacer appends vertical whitespace of the given height in mm.
func (d *Document) Spacer(height float64) *Document {
	d.blocks = append(d.blocks, &spacerBlock{height: height})
	return d
}

// --- Image ---

type imageBlock struct {
	path  string
	width float64
	align Align
}

func (b *imageBlock) draw(pdf *gofpdf.Fpdf) error {
	if _, err := os.Stat(b.path); err != nil {
		return fmt.Errorf("image %s: %w", b.path, err)
	}

	opts := gofpdf.ImageOptions{ReadDpi: true}
	info := pdf.RegisterImageOptions(b.path, opts)
	if pdf.Err() {
		return fmt.Errorf("register image %s: %v", b.path, pdf.Error())
	}

	width := b.width
	height := width * info.Height() / info.Width()

	x := marginLeft
	switch b.align {
	case AlignCenter:
		x = marginLeft + (contentWidth-width)/2
	case AlignRight:
		x = marginLeft + contentWidth - width
	}

	y := pdf.GetY()
	pdf.ImageOptions(b.path, x, y, width, height, false, opts, 0, "")
	pdf.SetY(y + height)
	return nil
}

// Image appends an image scaled to the given width, aligned horizontally.
// Render fails if the file does not exist.
func (d *Document) Image(path string, width float64, align Align) *Document {
	d.blocks = append(d.blocks, &imageBlock{path: path, width: width, align: align})
	return d
}

// --- Table ---

// Column defines one table column. Width is a fraction of the content
// width (all fractions should sum to 1).
type Column struct {
	Header string
	Width  float64
	Align  Align
}

// Row is one table line. Summary rows are drawn bold with shading and are
// kept visually distinct from item rows.
type Row struct {
	Cells   []string
	Summary bool
}

type tableBlock struct {
	columns []Column
	rows    []Row
}

const tableRowHeight = 8.0

func (b *tableBlock) draw(pdf *gofpdf.Fpdf) error {
	b.drawHeader(pdf)
	for _, row := range b.rows {
		// Start a new page when the next row would cross the bottom
		// margin, repeating the header for readability.
		if pdf.GetY()+tableRowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			b.drawHeader(pdf)
		}
		b.drawRow(pdf, row)
	}
	return nil
}

func (b *tableBlock) drawHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(25, 25, 112) // midnight blue
	pdf.SetTextColor(255, 255, 255)
	for _, col := range b.columns {
		pdf.CellFormat(contentWidth*col.Width, tableRowHeight, col.Header, "1", 0, string(col.Align), true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

func (b *tableBlock) drawRow(pdf *gofpdf.Fpdf, row Row) {
	if row.Summary {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245) // whitesmoke
	} else {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetFillColor(255, 255, 255)
	}
	for i, col := range b.columns {
		cell := ""
		if i < len(row.Cells) {
			cell = row.Cells[i]
		}
		align := col.Align
		if row.Summary {
			align = AlignRight
		}
		pdf.CellFormat(contentWidth*col.Width, tableRowHeight, cell, "1", 0, string(align), row.Summary, 0, "")
	}
	pdf.Ln(-1)
}

// Table appends an itemized table with a styled header row.
func (d *Document) Table(columns []Column, rows []Row) *Document {
	d.blocks = append(d.blocks, &tableBlock{columns: columns, rows: rows})
	return d
}

// --- Rendering ---

// Render lays out all blocks onto A4 pages and writes the PDF to w.
// Page breaks inside non-table blocks are handled by the underlying
// auto page break; tables manage their own breaks to repeat headers.
func (d *Document) Render(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	for _, b := range d.blocks {
		if err := b.draw(pdf); err != nil {
			return err
		}
		if pdf.Err() {
			return fmt.Errorf("pdf layout: %v", pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

// PageCount reports how many pages the rendered document will have.
// It renders into a discard writer, so it is only useful for tests.
func (d *Document) PageCount() (int, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()
	for _, b := range d.blocks {
		if err := b.draw(pdf); err != nil {
			return 0, err
		}
	}
	return pdf.PageCount(), nil
}
