package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
)

const (
	fontName     = "Helvetica"
	pageMargin   = 15.0
	serviceWidth = 130.0
	priceWidth   = 50.0

	// Vertical layout in mm. The footer rule sits 20mm above the A4 edge.
	headerBottom    = 40.0
	partiesHeight   = 32.0
	tableHeadHeight = 8.0
	rowHeight       = 6.0
	descLineHeight  = 4.0
	rowGap          = 2.0
	totalsGap       = 4.0
	totalRowHeight  = 7.0
	signatureHeight = 26.0
	footerTop       = 297.0 - 20.0
)

// accent is the header band colour.
var accent = [3]int{255, 106, 61}

// Generator renders budgets as A4 PDFs using the core Helvetica font.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) ContentType() string { return "application/pdf" }

func (g *Generator) Extension() string { return "pdf" }

// Generate draws the pages exactly as paginated; amounts are printed, never recomputed.
// When the totals block and signature do not fit above the footer of the last
// page they are moved to one extra sheet.
func (g *Generator) Generate(budget model.PrintableBudget) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	doc := budget.Document
	pages := budget.Pages
	overflow := len(pages) > 0 && totalsOverflow(pdf, tr, pages[len(pages)-1])
	total := len(pages)
	if overflow {
		total++
	}

	for _, page := range pages {
		pdf.AddPage()
		drawHeader(pdf, tr, doc, page.Number, total)
		if page.Number == 1 {
			drawParties(pdf, tr, doc)
		}
		drawTableHeader(pdf, tr)
		for _, item := range page.Items {
			drawItem(pdf, tr, doc.Currency, item)
		}
		moved := overflow && len(page.Totals) > 0
		if page.Continued || moved {
			pdf.Ln(2)
			pdf.SetFont(fontName, "I", 9)
			pdf.SetTextColor(110, 110, 110)
			pdf.CellFormat(0, 6, tr("continúa en la página siguiente"), "", 1, "R", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}
		if len(page.Totals) > 0 && !moved {
			drawTotals(pdf, tr, doc.Currency, page.Totals)
			drawSignature(pdf, tr, doc)
		}
		drawFooter(pdf, tr, doc, budget.Location)
	}

	if overflow {
		pdf.AddPage()
		drawHeader(pdf, tr, doc, total, total)
		drawTotals(pdf, tr, doc.Currency, pages[len(pages)-1].Totals)
		drawSignature(pdf, tr, doc)
		drawFooter(pdf, tr, doc, budget.Location)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type translator func(string) string

// totalsOverflow reports whether the totals block and signature would run
// into the footer when drawn below page's rows.
func totalsOverflow(pdf *gofpdf.Fpdf, tr translator, page model.Page) bool {
	y := headerBottom + tableHeadHeight
	if page.Number == 1 {
		y += partiesHeight
	}
	for _, item := range page.Items {
		y += rowHeight + descLineHeight*float64(len(descriptionLines(pdf, tr, item))) + rowGap
	}
	y += totalsGap + totalRowHeight*float64(len(page.Totals)) + signatureHeight
	return y > footerTop
}

func descriptionLines(pdf *gofpdf.Fpdf, tr translator, item model.LineItem) [][]byte {
	if item.Description == "" {
		return nil
	}
	pdf.SetFont(fontName, "", 8)
	return pdf.SplitLines([]byte(tr(item.Description)), serviceWidth)
}

func drawHeader(pdf *gofpdf.Fpdf, tr translator, doc model.BudgetDocument, number, total int) {
	pdf.SetFillColor(accent[0], accent[1], accent[2])
	pdf.Rect(0, 0, 210, 32, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(pageMargin, 10)
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 5, tr(safeValue(doc.CompanyName)), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "B", 20)
	pdf.CellFormat(120, 10, "Presupuesto", "", 0, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de %d", number, total)), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(headerBottom)
}

func drawParties(pdf *gofpdf.Fpdf, tr translator, doc model.BudgetDocument) {
	top := pdf.GetY()

	pdf.SetFont(fontName, "B", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(90, 5, "PARA", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(90, 6, tr(safeValue(doc.ClientName)), "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	pdf.CellFormat(90, 5, tr("Fecha: "+safeValue(doc.Date)), "", 1, "L", false, 0, "")

	pdf.SetXY(105, top)
	pdf.SetFont(fontName, "B", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(90, 5, "DE", "", 2, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(90, 6, tr(safeValue(doc.CompanyName)), "", 2, "R", false, 0, "")
	pdf.SetFont(fontName, "", 9)
	for _, line := range []string{doc.CompanyEmail, doc.CompanyPhone, doc.CompanyAddress} {
		pdf.CellFormat(90, 5, tr(safeValue(line)), "", 2, "R", false, 0, "")
	}

	pdf.SetXY(pageMargin, top+partiesHeight)
}

func drawTableHeader(pdf *gofpdf.Fpdf, tr translator) {
	pdf.SetFont(fontName, "B", 10)
	pdf.SetFillColor(245, 245, 245)
	pdf.CellFormat(serviceWidth, tableHeadHeight, tr("Servicio"), "B", 0, "L", true, 0, "")
	pdf.CellFormat(priceWidth, tableHeadHeight, "Precio", "B", 1, "R", true, 0, "")
}

func drawItem(pdf *gofpdf.Fpdf, tr translator, currency string, item model.LineItem) {
	service := item.Service
	style := ""
	switch item.Kind {
	case model.ItemKindHeader:
		style = "B"
	case model.ItemKindMilestone:
		service = fmt.Sprintf("%s (%s%%)", item.Service, estimate.FormatNumber(item.Percentage))
	case model.ItemKindRegular, model.ItemKindSubtotal:
	}

	price := formatAmount(currency, item.Price)
	if item.IsRecurring {
		price += "/mes"
	}

	descLines := descriptionLines(pdf, tr, item)

	pdf.SetFont(fontName, style, 10)
	pdf.CellFormat(serviceWidth, rowHeight, tr(service), "", 0, "L", false, 0, "")
	pdf.CellFormat(priceWidth, rowHeight, tr(price), "", 1, "R", false, 0, "")

	pdf.SetFont(fontName, "", 8)
	pdf.SetTextColor(102, 102, 102)
	for _, line := range descLines {
		pdf.CellFormat(serviceWidth, descLineHeight, string(line), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	x, y := pdf.GetXY()
	pdf.SetDrawColor(230, 230, 230)
	pdf.Line(x, y+1, x+serviceWidth+priceWidth, y+1)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(rowGap)
}

func drawTotals(pdf *gofpdf.Fpdf, tr translator, currency string, rows []model.TotalRow) {
	pdf.Ln(totalsGap)
	for _, row := range rows {
		style := ""
		size := 10.0
		amount := formatAmount(currency, row.Amount)
		switch row.Kind {
		case model.TotalRowTotal:
			style, size = "B", 13
		case model.TotalRowDiscount:
			amount = "-" + amount
		case model.TotalRowSubtotal, model.TotalRowTax:
		}
		pdf.SetFont(fontName, style, size)
		pdf.CellFormat(serviceWidth, totalRowHeight, tr(row.Label), "", 0, "R", false, 0, "")
		pdf.CellFormat(priceWidth, totalRowHeight, tr(amount), "", 1, "R", false, 0, "")
	}
}

func drawSignature(pdf *gofpdf.Fpdf, tr translator, doc model.BudgetDocument) {
	pdf.Ln(12)
	pdf.SetFont(fontName, "I", 12)
	if strings.TrimSpace(doc.Signature) != "" {
		pdf.CellFormat(70, 8, tr(doc.Signature), "", 1, "C", false, 0, "")
	} else {
		pdf.Ln(8)
	}
	x, y := pdf.GetXY()
	pdf.Line(x, y, x+70, y)
	pdf.SetFont(fontName, "", 9)
	pdf.CellFormat(70, 6, tr(safeValue(doc.CompanyName)), "", 1, "C", false, 0, "")
}

func drawFooter(pdf *gofpdf.Fpdf, tr translator, doc model.BudgetDocument, location string) {
	pdf.SetY(-20)
	pdf.SetFont(fontName, "", 8)
	pdf.SetTextColor(102, 102, 102)
	parts := make([]string, 0, 3)
	for _, p := range []string{doc.CompanyEmail, doc.CompanyPhone, location} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	pdf.CellFormat(0, 5, tr(strings.Join(parts, "  |  ")), "T", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(currency string, value float64) string {
	return fmt.Sprintf("%s %s", currency, estimate.FormatNumber(value))
}
