package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/nurpe/freelance-pricing/internal/budget"
	"github.com/nurpe/freelance-pricing/internal/config"
	"github.com/nurpe/freelance-pricing/internal/estimate"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/service/mocks"
)

var testBudgetConfig = config.BudgetConfig{
	ItemsPerPage:    12,
	DefaultCurrency: "USD",
	Location:        "Argentina",
	SessionTTL:      time.Hour,
}

func webSource() budget.Source {
	res := estimate.EstimateWeb(model.WebProjectParams{
		ProjectType:  "landing",
		Pages:        5,
		Complexity:   2,
		Deadline:     "normal",
		NeedsDomain:  true,
		NeedsHosting: true,
		Pricing:      model.Pricing{Currency: "USD"},
	})
	return budget.Source{Category: model.CategoryWeb, Estimate: &res}
}

func newTestBudgetService(generators ...DocumentGenerator) (*BudgetService, *time.Time) {
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	svc := NewBudgetService(testBudgetConfig, zerolog.Nop(), generators...)
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestBudgetLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBudgetService()

	created, err := svc.Create(ctx, webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.State != budget.StateGenerated || created.Document == nil {
		t.Fatalf("unexpected view: %+v", created)
	}
	if created.Document.Date != "16 de octubre de 2026" {
		t.Fatalf("date = %q", created.Document.Date)
	}

	edit, err := svc.ToggleEdit(ctx, created.ID)
	if err != nil || edit.State != budget.StateEditing {
		t.Fatalf("ToggleEdit = %+v, %v", edit, err)
	}

	doc, err := svc.Apply(ctx, created.ID, budget.Change{Field: budget.FieldHasDiscount, Value: "true"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	doc, err = svc.Apply(ctx, created.ID, budget.Change{Field: budget.FieldDiscountPercentage, Value: "10"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.Total >= doc.Subtotal {
		t.Fatalf("discount not applied: subtotal %v total %v", doc.Subtotal, doc.Total)
	}

	doc, err = svc.SelectPrice(ctx, created.ID, "max")
	if err != nil {
		t.Fatalf("SelectPrice: %v", err)
	}
	if doc.Items[0].Price != doc.MaxPrice {
		t.Fatalf("header price = %v, want %v", doc.Items[0].Price, doc.MaxPrice)
	}

	pages, err := svc.Pages(ctx, created.ID)
	if err != nil || len(pages) != 1 || len(pages[0].Totals) == 0 {
		t.Fatalf("Pages = %+v, %v", pages, err)
	}

	idle, err := svc.SetResult(ctx, created.ID, webSource())
	if err != nil {
		t.Fatalf("SetResult: %v", err)
	}
	if idle.State != budget.StateIdle || idle.Document != nil {
		t.Fatalf("document should be discarded: %+v", idle)
	}
	if _, err := svc.Pages(ctx, created.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Pages on idle: %v", err)
	}
	if _, err := svc.ToggleEdit(ctx, created.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ToggleEdit on idle: %v", err)
	}

	regenerated, err := svc.Generate(ctx, created.ID)
	if err != nil || regenerated.State != budget.StateGenerated {
		t.Fatalf("Generate = %+v, %v", regenerated, err)
	}
	if regenerated.Document.HasDiscount || regenerated.Document.PriceChoice != model.PriceChoiceMin {
		t.Fatalf("regenerated document kept old edits: %+v", regenerated.Document)
	}
	if _, err := svc.Generate(ctx, created.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second Generate: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete: %v", err)
	}
}

func TestBudgetInputErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBudgetService()

	if _, err := svc.Create(ctx, budget.Source{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty source: %v", err)
	}
	src := webSource()
	src.Category = "spaceship"
	if _, err := svc.Create(ctx, src); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("unknown category: %v", err)
	}

	created, err := svc.Create(ctx, webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Apply(ctx, created.ID, budget.Change{Field: budget.FieldClientName, Value: "ACME"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Apply outside edit mode: %v", err)
	}
	if _, err := svc.SelectPrice(ctx, created.ID, "max"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SelectPrice outside edit mode: %v", err)
	}
	if _, err := svc.ToggleEdit(ctx, created.ID); err != nil {
		t.Fatalf("ToggleEdit: %v", err)
	}
	cases := map[string]budget.Change{
		"unknown field":    {Field: "colour", Value: "red"},
		"discount too big": {Field: budget.FieldDiscountPercentage, Value: "120"},
		"negative tax":     {Field: budget.FieldTaxRate, Value: "-1"},
	}
	for name, change := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Apply(ctx, created.ID, change); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Apply(%+v) = %v", change, err)
			}
		})
	}
	if _, err := svc.SelectPrice(ctx, created.ID, "median"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad choice: %v", err)
	}
	if _, err := svc.Get(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: %v", err)
	}
}

func TestHourlyBudgetCategory(t *testing.T) {
	res := estimate.CalculateHourlyRate(model.HourlyRateParams{
		Role: "fullstack", Seniority: "semisenior", Country: "argentina",
		Currency: "USD", MonthlyExpenses: 1000, ProfitMargin: 20, BillableHours: 140,
	})
	svc, _ := newTestBudgetService()
	created, err := svc.Create(context.Background(), budget.Source{Hourly: &res})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Document.Category != model.CategoryHourly || created.Document.PriceChoice != model.PriceChoiceMax {
		t.Fatalf("unexpected document: %+v", created.Document)
	}
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	svc, now := newTestBudgetService()

	first, err := svc.Create(ctx, webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	*now = now.Add(50 * time.Minute)
	second, err := svc.Create(ctx, webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	*now = now.Add(20 * time.Minute)
	if _, err := svc.Get(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired session still served: %v", err)
	}
	if _, err := svc.Get(ctx, second.ID); err != nil {
		t.Fatalf("live session evicted: %v", err)
	}

	*now = now.Add(2 * time.Hour)
	if n := svc.Sweep(); n != 1 {
		t.Fatalf("Sweep = %d, want 1", n)
	}
}

func TestRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	pdfGen := mocks.NewMockDocumentGenerator(ctrl)
	pdfGen.EXPECT().Extension().Return("pdf").AnyTimes()
	pdfGen.EXPECT().ContentType().Return("application/pdf").AnyTimes()

	svc, _ := newTestBudgetService(pdfGen)
	ctx := context.Background()
	created, err := svc.Create(ctx, webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.ToggleEdit(ctx, created.ID); err != nil {
		t.Fatalf("ToggleEdit: %v", err)
	}
	if _, err := svc.Apply(ctx, created.ID, budget.Change{Field: budget.FieldClientName, Value: "Café Luna"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	pdfGen.EXPECT().
		Generate(gomock.Any()).
		DoAndReturn(func(b model.PrintableBudget) ([]byte, error) {
			if b.Location != "Argentina" || len(b.Pages) != 1 {
				t.Fatalf("unexpected printable budget: %+v", b)
			}
			if b.Document.ClientName != "Café Luna" {
				t.Fatalf("client = %q", b.Document.ClientName)
			}
			return []byte("%PDF-1.3"), nil
		})

	out, err := svc.Render(ctx, created.ID, "PDF")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.FileName != "presupuesto-web-caf--luna.pdf" || out.ContentType != "application/pdf" {
		t.Fatalf("unexpected result: %+v", out)
	}

	if _, err := svc.Render(ctx, created.ID, "docx"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown format: %v", err)
	}
}

func TestRenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockDocumentGenerator(ctrl)
	gen.EXPECT().Extension().Return("xlsx").AnyTimes()
	boom := errors.New("disk full")
	gen.EXPECT().Generate(gomock.Any()).Return(nil, boom)

	svc, _ := newTestBudgetService(gen)
	created, err := svc.Create(context.Background(), webSource())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Render(context.Background(), created.ID, "xlsx"); !errors.Is(err, boom) {
		t.Fatalf("Render error = %v", err)
	}
}

func TestBuildFileName(t *testing.T) {
	id := uuid.MustParse("0b7f5c1e-2a3d-4c5b-8e9f-001122334455")
	doc := model.BudgetDocument{ClientName: budget.DefaultClientName, Category: model.CategoryAI}
	if got := buildFileName(id, "", doc, "xlsx"); got != "presupuesto-ai-0b7f5c1e.xlsx" {
		t.Fatalf("buildFileName = %q", got)
	}
}
