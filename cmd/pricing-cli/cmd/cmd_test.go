package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nurpe/freelance-pricing/internal/budget"
	"github.com/nurpe/freelance-pricing/internal/model"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func writeParams(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "params.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write params: %v", err)
	}
	return path
}

func TestEstimateCommand(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	params := writeParams(t, dir, `{"project_type":"landing","pages":5,"complexity":2,"deadline":"normal"}`)

	out := run(t, "estimate", "web", "-f", params, "--format", "json")
	var res model.EstimateResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if res.Hours != 70 || res.MinPrice != 945 {
		t.Fatalf("unexpected result: %+v", res)
	}

	out = run(t, "estimate", "web", "-f", params, "--format", "text")
	if !strings.Contains(out, "Horas estimadas: 70") || !strings.Contains(out, "Tarifa: USD 15/hora") {
		t.Fatalf("unexpected text output:\n%s", out)
	}
}

func TestBudgetCommand(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)
	params := writeParams(t, dir, `{"platform":"both","screens":8,"complexity":2,"needs_backend":true}`)
	target := filepath.Join(dir, "out.xlsx")

	out := run(t, "budget", "mobile", "-f", params, "-o", target, "--client", "ACME", "--tax", "21")
	if !strings.Contains(out, target) {
		t.Fatalf("unexpected output: %s", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("output is not an xlsx archive")
	}
}

func TestPendingEditsOrder(t *testing.T) {
	for _, v := range edits {
		*v = ""
	}
	*edits[budget.FieldDiscountPercentage] = "10"
	*edits[budget.FieldClientName] = "ACME"
	t.Cleanup(func() {
		*edits[budget.FieldDiscountPercentage] = ""
		*edits[budget.FieldClientName] = ""
	})

	changes := pendingEdits()
	if len(changes) != 3 || changes[0].Field != budget.FieldHasDiscount {
		t.Fatalf("changes = %+v", changes)
	}
}
