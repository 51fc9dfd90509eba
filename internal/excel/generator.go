package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/freelance-pricing/internal/model"
)

const (
	summarySheet = "Resumen"
	costsSheet   = "Costos"
	maxSheetName = 31
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (g *Generator) Extension() string { return "xlsx" }

// Generate writes a summary sheet, one sheet per printed page and a sheet of
// client-paid costs.
func (g *Generator) Generate(budget model.PrintableBudget) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, summarySheet, budget); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}, costsSheet: {}}
	for _, page := range budget.Pages {
		sheetName := buildSheetName(fmt.Sprintf("Página %d", page.Number), usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writePage(file, sheetName, budget.Document.Currency, page); err != nil {
			return nil, err
		}
	}

	if _, err := file.NewSheet(costsSheet); err != nil {
		return nil, err
	}
	if err := g.writeCosts(file, costsSheet, budget.Document); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, budget model.PrintableBudget) error {
	doc := budget.Document
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	rows := [][2]interface{}{
		{"Cliente", doc.ClientName},
		{"Fecha", doc.Date},
		{"Empresa", doc.CompanyName},
		{"Email", doc.CompanyEmail},
		{"Teléfono", doc.CompanyPhone},
		{"Dirección", doc.CompanyAddress},
		{"Ubicación", budget.Location},
		{"Moneda", doc.Currency},
		{"Precio seleccionado", string(doc.PriceChoice)},
	}
	for i, r := range rows {
		set(fmt.Sprintf("A%d", i+1), r[0])
		set(fmt.Sprintf("B%d", i+1), r[1])
	}

	totalsRow := len(rows) + 2
	var totals []model.TotalRow
	if n := len(budget.Pages); n > 0 {
		totals = budget.Pages[n-1].Totals
	}
	for i, t := range totals {
		row := totalsRow + i
		set(fmt.Sprintf("A%d", row), t.Label)
		set(fmt.Sprintf("B%d", row), t.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	return nil
}

func (g *Generator) writePage(file *excelize.File, sheet, currency string, page model.Page) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"Tipo", "Servicio", "Descripción", "Porcentaje", "Recurrente", "Precio (" + currency + ")"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(cell, header)
	}

	for i, item := range page.Items {
		row := i + 2
		set(fmt.Sprintf("A%d", row), kindLabel(item.Kind))
		set(fmt.Sprintf("B%d", row), item.Service)
		set(fmt.Sprintf("C%d", row), item.Description)
		if item.Kind == model.ItemKindMilestone {
			set(fmt.Sprintf("D%d", row), item.Percentage/100)
		}
		set(fmt.Sprintf("E%d", row), yesNo(item.IsRecurring))
		set(fmt.Sprintf("F%d", row), item.Price)
	}

	next := len(page.Items) + 3
	if page.Continued {
		set(fmt.Sprintf("B%d", next), "continúa en la página siguiente")
	}
	for i, t := range page.Totals {
		set(fmt.Sprintf("E%d", next+i), t.Label)
		set(fmt.Sprintf("F%d", next+i), t.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "C", 70)
	_ = file.SetColWidth(sheet, "D", "E", 12)
	_ = file.SetColWidth(sheet, "F", "F", 16)
	return nil
}

func (g *Generator) writeCosts(file *excelize.File, sheet string, doc model.BudgetDocument) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Concepto")
	set("B1", "Mensual")
	set("C1", "Pago único")
	set("D1", "Descripción")

	row := 2
	for _, item := range doc.Items {
		if item.Kind != model.ItemKindRegular {
			continue
		}
		set(fmt.Sprintf("A%d", row), item.Service)
		if item.IsRecurring {
			set(fmt.Sprintf("B%d", row), item.Price)
		} else {
			set(fmt.Sprintf("C%d", row), item.Price)
		}
		set(fmt.Sprintf("D%d", row), item.Description)
		row++
	}

	_ = file.SetColWidth(sheet, "A", "A", 36)
	_ = file.SetColWidth(sheet, "B", "C", 14)
	_ = file.SetColWidth(sheet, "D", "D", 70)
	return nil
}

func kindLabel(kind model.ItemKind) string {
	switch kind {
	case model.ItemKindHeader:
		return "Proyecto"
	case model.ItemKindMilestone:
		return "Hito"
	case model.ItemKindSubtotal:
		return "Subtotal"
	case model.ItemKindRegular:
		return "Costo"
	default:
		return string(kind)
	}
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

func buildSheetName(name string, used map[string]struct{}) string {
	base := truncateRunes(sanitizeSheetName(name), maxSheetName)

	candidate := base
	for counter := 2; ; counter++ {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Hoja"
	}
	return value
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
