package cli

import (
	"bytes"
	"encoding/json"
	"shopping-path-service/internal/api/dto"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const testLayout = "../adapters/repositories/testdata/layout.json"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	jsonOutput, layoutPath, profilePath = false, "", ""
	randomCount, randomSeed = 20, 0

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")

	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", out)
	}
}

func TestOptimizeCommandText(t *testing.T) {
	out, err := run(t, "optimize", "--layout", testLayout, "milch", "gouda", "kerzen", "unicorn")
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	for _, want := range []string{
		"Your optimized shopping path:",
		"Seiten M (East → West)",
		"└─ kerzen (Side corridor)",
		"Gang 1 (East → West)",
		"  Käse:\n    └─ gouda (Right side)",
		"  Milchprodukte:\n    └─ milch (Right side)",
		"Items not found in store:\n  • unicorn",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	if strings.Index(out, "Seiten M") > strings.Index(out, "Gang 1") {
		t.Errorf("expected side corridor first, got:\n%s", out)
	}
	if strings.Contains(out, "Random Shopping List:") {
		t.Errorf("optimize must not print the list header, got:\n%s", out)
	}
}

func TestOptimizeCommandJSON(t *testing.T) {
	out, err := run(t, "optimize", "--json", "--layout", testLayout, "spaghetti", "nothing-here")
	if err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	var res dto.PathResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if len(res.Corridors) != 1 || res.Corridors[0].Name != "Gang 2" {
		t.Fatalf("expected one Gang 2 corridor, got %+v", res.Corridors)
	}
	if res.Corridors[0].EntryPoint != "West" || res.Corridors[0].ExitPoint != "East" {
		t.Errorf("expected West → East, got %s → %s", res.Corridors[0].EntryPoint, res.Corridors[0].ExitPoint)
	}
	if len(res.NotFoundItems) != 1 || res.NotFoundItems[0] != "nothing-here" {
		t.Errorf("unexpected not found items: %v", res.NotFoundItems)
	}
}

func TestOptimizeCommandRequiresItems(t *testing.T) {
	if _, err := run(t, "optimize", "--layout", testLayout); err == nil {
		t.Fatal("expected error without items")
	}
}

func TestOptimizeCommandMissingLayout(t *testing.T) {
	if _, err := run(t, "optimize", "--layout", "does-not-exist.json", "milch"); err == nil {
		t.Fatal("expected error for missing layout")
	}
}

func TestRandomCommandSeeded(t *testing.T) {
	first, err := run(t, "random", "--layout", testLayout, "--count", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}
	second, err := run(t, "random", "--layout", testLayout, "--count", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}

	if first != second {
		t.Fatalf("expected same output for same seed:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "Random Shopping List:") || !strings.Contains(first, "4. ") {
		t.Errorf("expected numbered list of 4 items, got:\n%s", first)
	}
	if strings.Contains(first, "Items not found") {
		t.Errorf("sampled items must all resolve, got:\n%s", first)
	}
}

func TestRandomCommandJSON(t *testing.T) {
	out, err := run(t, "random", "--json", "--layout", testLayout, "--count", "50")
	if err != nil {
		t.Fatalf("random failed: %v", err)
	}

	var res struct {
		Items []string         `json:"items"`
		Path  dto.PathResponse `json:"path"`
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if len(res.Items) != 9 {
		t.Errorf("expected the count to be capped at 9 products, got %d", len(res.Items))
	}
	if len(res.Path.NotFoundItems) != 0 {
		t.Errorf("expected no missing items, got %v", res.Path.NotFoundItems)
	}
}
