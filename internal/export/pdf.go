package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signintech/gopdf"
)

const (
	fontFamily   = "doc"
	marginX      = 40.0
	marginY      = 60.0
	lineHeight   = 16.0
	cellPadding  = 6.0
	titleSize    = 16
	vendorSize   = 12
	bodySize     = 10
	footerGrey   = 100
	ruleGrey     = 203
	columnSpacer = 12.0
)

// PDFRenderer draws documents on Letter pages with one TTF font.
type PDFRenderer struct {
	fontPath string
}

func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	if r.fontPath == "" {
		return nil, errors.New("pdf font path is not configured")
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeLetter})
	pdf.AddPage()

	if err := pdf.AddTTFFont(fontFamily, r.fontPath); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	if err := pdf.AddTTFFontWithOption(fontFamily, r.fontPath, gopdf.TtfOption{Style: gopdf.Bold}); err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	p := &page{pdf: pdf, y: marginY}
	if err := p.draw(doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type page struct {
	pdf *gopdf.GoPdf
	y   float64
}

func (p *page) width() float64 {
	return gopdf.PageSizeLetter.W - 2*marginX
}

func (p *page) setFont(bold bool, size int) error {
	style := ""
	if bold {
		style = "B"
	}
	return p.pdf.SetFont(fontFamily, style, size)
}

func (p *page) ensure(height float64) {
	if p.y+height <= gopdf.PageSizeLetter.H-marginY {
		return
	}
	p.pdf.AddPage()
	p.y = marginY
}

func (p *page) text(x, w float64, s string, align Align) error {
	p.pdf.SetXY(x, p.y)
	opt := gopdf.CellOption{Align: gopdf.Left | gopdf.Top}
	if align == AlignRight {
		opt.Align = gopdf.Right | gopdf.Top
	}
	return p.pdf.CellWithOption(&gopdf.Rect{W: w, H: lineHeight}, s, opt)
}

func (p *page) draw(doc Document) error {
	if err := p.setFont(true, titleSize); err != nil {
		return err
	}
	if err := p.text(marginX, p.width(), doc.Title, AlignLeft); err != nil {
		return err
	}
	p.y += 2 * lineHeight

	if err := p.drawHeading(doc); err != nil {
		return err
	}
	if err := p.drawTable(doc.Table); err != nil {
		return err
	}
	if err := p.drawTotals(doc.Totals); err != nil {
		return err
	}

	if doc.Footer != "" {
		p.y += lineHeight
		p.ensure(lineHeight)
		if err := p.setFont(false, bodySize); err != nil {
			return err
		}
		p.pdf.SetTextColor(footerGrey, 116, 139)
		if err := p.text(marginX, p.width(), doc.Footer, AlignRight); err != nil {
			return err
		}
		p.pdf.SetTextColor(0, 0, 0)
	}
	return nil
}

// drawHeading puts the vendor block on the left and the meta lines on the
// right. Without a vendor the meta lines run down the left edge.
func (p *page) drawHeading(doc Document) error {
	half := p.width() / 2
	startY := p.y

	if doc.Vendor == nil {
		if err := p.setFont(false, bodySize); err != nil {
			return err
		}
		for _, line := range doc.Meta {
			if err := p.text(marginX, p.width(), line, AlignLeft); err != nil {
				return err
			}
			p.y += lineHeight
		}
		p.y += lineHeight
		return nil
	}

	if err := p.setFont(true, vendorSize); err != nil {
		return err
	}
	if err := p.text(marginX, half, doc.Vendor.Name, AlignLeft); err != nil {
		return err
	}
	p.y += lineHeight
	if doc.Vendor.Address != "" {
		if err := p.setFont(false, bodySize); err != nil {
			return err
		}
		p.pdf.SetTextColor(footerGrey, 116, 139)
		if err := p.text(marginX, half, doc.Vendor.Address, AlignLeft); err != nil {
			return err
		}
		p.pdf.SetTextColor(0, 0, 0)
		p.y += lineHeight
	}
	leftY := p.y

	p.y = startY
	if err := p.setFont(false, bodySize); err != nil {
		return err
	}
	for _, line := range doc.Meta {
		if err := p.text(marginX+half, half, line, AlignRight); err != nil {
			return err
		}
		p.y += lineHeight
	}
	if leftY > p.y {
		p.y = leftY
	}
	p.y += lineHeight
	return nil
}

func (p *page) columnWidths(t Table) ([]float64, error) {
	cols := len(t.Widths)
	widths := make([]float64, cols)
	fixed, weights := 0.0, 0.0

	all := append([][]Cell{t.Header}, t.Rows...)
	for i, weight := range t.Widths {
		if weight > 0 {
			weights += weight
			continue
		}
		for _, row := range all {
			if i >= len(row) {
				continue
			}
			if err := p.setFont(row[i].Bold, bodySize); err != nil {
				return nil, err
			}
			for _, line := range strings.Split(row[i].Text, "\n") {
				w, err := p.pdf.MeasureTextWidth(line)
				if err != nil {
					return nil, err
				}
				if w+2*cellPadding > widths[i] {
					widths[i] = w + 2*cellPadding
				}
			}
		}
		fixed += widths[i]
	}

	rest := p.width() - fixed
	if rest < 0 {
		rest = 0
	}
	for i, weight := range t.Widths {
		if weight > 0 {
			widths[i] = rest * weight / weights
		}
	}
	return widths, nil
}

func (p *page) drawTable(t Table) error {
	if len(t.Widths) == 0 {
		return nil
	}
	widths, err := p.columnWidths(t)
	if err != nil {
		return err
	}

	if len(t.Header) > 0 {
		if err := p.drawRow(t.Header, widths); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := p.drawRow(row, widths); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) drawRow(row []Cell, widths []float64) error {
	lines := 1
	for _, c := range row {
		if n := strings.Count(c.Text, "\n") + 1; n > lines {
			lines = n
		}
	}
	height := float64(lines)*lineHeight + cellPadding
	p.ensure(height)

	top := p.y
	x := marginX
	for i, c := range row {
		if i >= len(widths) {
			break
		}
		if err := p.setFont(c.Bold, bodySize); err != nil {
			return err
		}
		p.y = top + cellPadding/2
		for _, line := range strings.Split(c.Text, "\n") {
			if err := p.text(x+cellPadding, widths[i]-2*cellPadding, line, c.Align); err != nil {
				return err
			}
			p.y += lineHeight
		}
		x += widths[i]
	}

	p.y = top + height
	p.pdf.SetStrokeColor(ruleGrey, 213, 225)
	p.pdf.SetLineWidth(0.5)
	p.pdf.Line(marginX, p.y, marginX+p.width(), p.y)
	return nil
}

func (p *page) drawTotals(totals []Total) error {
	if len(totals) == 0 {
		return nil
	}
	p.y += lineHeight
	half := p.width() / 2
	labelW := half / 2
	for _, t := range totals {
		p.ensure(lineHeight)
		if err := p.setFont(t.Bold, bodySize); err != nil {
			return err
		}
		if err := p.text(marginX+half, labelW-columnSpacer, t.Label, AlignRight); err != nil {
			return err
		}
		if err := p.text(marginX+half+labelW, labelW, t.Value, AlignRight); err != nil {
			return err
		}
		p.y += lineHeight
	}
	return nil
}
