package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/freelance-pricing/internal/model"
)

func TestGenerate(t *testing.T) {
	budget := model.PrintableBudget{
		Document: model.BudgetDocument{
			ClientName:  "ACME",
			Currency:    "EUR",
			PriceChoice: model.PriceChoiceMin,
			Items: []model.LineItem{
				{Kind: model.ItemKindHeader, Service: "Desarrollo de Sitio Web", Price: 900},
				{Kind: model.ItemKindMilestone, Service: "Fase 1", Price: 270, Percentage: 30},
				{Kind: model.ItemKindRegular, Service: "Dominio", Price: 14},
				{Kind: model.ItemKindRegular, Service: "Hosting shared", Price: 5, IsRecurring: true},
			},
		},
		Pages: []model.Page{
			{Number: 1, Items: []model.LineItem{{Kind: model.ItemKindHeader, Service: "Desarrollo de Sitio Web", Price: 900}}, Continued: true},
			{Number: 2, Items: []model.LineItem{{Kind: model.ItemKindRegular, Service: "Dominio", Price: 14}}, Totals: []model.TotalRow{
				{Kind: model.TotalRowSubtotal, Label: "Subtotal", Amount: 289},
				{Kind: model.TotalRowTotal, Label: "Total", Amount: 289},
			}},
		},
		Location: "Argentina",
	}

	out, err := NewGenerator().Generate(budget)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	want := []string{"Resumen", "Página 1", "Página 2", "Costos"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", got, want)
		}
	}

	if v, _ := f.GetCellValue("Resumen", "B1"); v != "ACME" {
		t.Fatalf("client = %q", v)
	}
	if v, _ := f.GetCellValue("Página 2", "E4"); v != "Subtotal" {
		t.Fatalf("totals label = %q", v)
	}
	if v, _ := f.GetCellValue("Costos", "B3"); v != "5" {
		t.Fatalf("monthly cost = %q", v)
	}
	if v, _ := f.GetCellValue("Costos", "C2"); v != "14" {
		t.Fatalf("one-time cost = %q", v)
	}
}

func TestBuildSheetName(t *testing.T) {
	used := map[string]struct{}{"Página 1": {}}
	if got := buildSheetName("Página 1", used); got != "Página 1-2" {
		t.Fatalf("buildSheetName = %q", got)
	}
	if got := buildSheetName("a/b:c", map[string]struct{}{}); got != "a-b-c" {
		t.Fatalf("buildSheetName = %q", got)
	}
	long := buildSheetName("Una hoja con un nombre demasiado largo para excel", map[string]struct{}{})
	if len([]rune(long)) != 31 {
		t.Fatalf("name not truncated: %q", long)
	}
}
